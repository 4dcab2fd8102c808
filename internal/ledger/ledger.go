// Package ledger derives summary and installment-schedule views from a
// transaction snapshot. Every function is pure: inputs are never mutated,
// repeated calls with the same snapshot yield the same result, and callers
// re-invoke on every snapshot change rather than relying on cached state.
//
// Amounts are stored as float64 in Firestore documents; all arithmetic here
// happens in decimal.Decimal so installment division and totals stay exact.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

// Totals is the cash-committed view of a transaction set. Installment
// purchases contribute their full amount here regardless of how many months
// the payments span.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Saving  decimal.Decimal `json:"saving"`
	Balance decimal.Decimal `json:"balance"`
}

// Summarize folds the transaction set into per-type totals and the running
// balance (income - expense - saving). An empty set yields all zeros.
func Summarize(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.Type {
		case models.TypeIncome:
			t.Income = t.Income.Add(amount)
		case models.TypeExpense:
			t.Expense = t.Expense.Add(amount)
		case models.TypeSaving:
			t.Saving = t.Saving.Add(amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense).Sub(t.Saving)
	return t
}

// CategoryBreakdown groups transactions of the given type by exact category
// string, summing amounts per group.
func CategoryBreakdown(txs []models.Transaction, txType string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(decimal.NewFromFloat(tx.Amount))
	}
	return out
}

// CardDueForMonth sums the installment amounts due from the given card in the
// given month. Transactions are matched by CardID; a transaction referencing a
// card that no longer exists simply never matches any card and contributes
// nothing (a delete-tolerant policy, not an error).
func CardDueForMonth(card models.Card, txs []models.Transaction, month Month) decimal.Decimal {
	due := decimal.Zero
	for _, tx := range txs {
		if tx.CardID != card.CardID {
			continue
		}
		due = due.Add(installmentDue(tx, month))
	}
	return due
}

// installmentDue returns the slice of tx's amount due in month, or zero when
// no installment of tx falls in it.
//
// Installment k (1-indexed) falls due k-1 whole months after the month of the
// first payment date, or of the purchase date when no first payment date was
// recorded. Division policy: installments 2..n each get amount/n rounded to
// two decimal places and the first installment absorbs the remainder, so the
// schedule always sums exactly to the original amount.
//
// Dates are validated when the transaction is created; a record that still
// carries an unparseable date cannot be scheduled and yields zero.
func installmentDue(tx models.Transaction, month Month) decimal.Decimal {
	first, ok := monthOfDate(tx.FirstPaymentDate)
	if !ok {
		if first, ok = monthOfDate(tx.Date); !ok {
			return decimal.Zero
		}
	}

	n := tx.Installments
	if n < 1 {
		n = 1
	}

	k := month.Sub(first) + 1
	if k < 1 || k > n {
		return decimal.Zero
	}

	amount := decimal.NewFromFloat(tx.Amount)
	if n == 1 {
		return amount
	}
	per := amount.DivRound(decimal.NewFromInt(int64(n)), 2)
	if k == 1 {
		return amount.Sub(per.Mul(decimal.NewFromInt(int64(n - 1))))
	}
	return per
}

// PaidMonthKey builds the paid-months overlay key for a card and month.
func PaidMonthKey(cardID string, month Month) string {
	return cardID + "-" + month.String()
}

// IsMonthPaid reports whether the user marked the card's statement for the
// given month as settled. Paid status is user-asserted and independent of the
// computed due amounts.
func IsMonthPaid(paidMonths map[string]bool, cardID string, month Month) bool {
	return paidMonths[PaidMonthKey(cardID, month)]
}

// MarkMonthPaid returns a copy of the overlay with the card/month flag set.
// The input map is left untouched.
func MarkMonthPaid(paidMonths map[string]bool, cardID string, month Month, paid bool) map[string]bool {
	out := make(map[string]bool, len(paidMonths)+1)
	for k, v := range paidMonths {
		out[k] = v
	}
	out[PaidMonthKey(cardID, month)] = paid
	return out
}
