package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TypeIncome, Amount: 1000},
		{Type: models.TypeExpense, Amount: 400},
		{Type: models.TypeSaving, Amount: 100},
	}

	got := Summarize(txs)

	if !got.Income.Equal(dec("1000")) || !got.Expense.Equal(dec("400")) || !got.Saving.Equal(dec("100")) {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if !got.Balance.Equal(dec("500")) {
		t.Fatalf("balance = %s, want 500", got.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	if !got.Income.IsZero() || !got.Expense.IsZero() || !got.Saving.IsZero() || !got.Balance.IsZero() {
		t.Fatalf("empty set should yield all zeros, got %+v", got)
	}
}

func TestSummarizeInstallmentsCountFullAmount(t *testing.T) {
	// The summary is the cash-committed view: an installment purchase counts
	// its full amount once, no matter how many months the payments span.
	txs := []models.Transaction{
		{Type: models.TypeExpense, Amount: 300000, CardID: "c1", Installments: 3, FirstPaymentDate: "2025-01-05"},
	}
	got := Summarize(txs)
	if !got.Expense.Equal(dec("300000")) {
		t.Fatalf("expense = %s, want 300000", got.Expense)
	}
}

func TestSummarizeBalanceIdentity(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TypeIncome, Amount: 1500000},
		{Type: models.TypeIncome, Amount: 450000.50},
		{Type: models.TypeExpense, Amount: 85000},
		{Type: models.TypeExpense, Amount: 25990.99},
		{Type: models.TypeSaving, Amount: 150000},
		{Type: "unknown", Amount: 999}, // ignored by every total
	}

	got := Summarize(txs)
	want := got.Income.Sub(got.Expense).Sub(got.Saving)
	if !got.Balance.Equal(want) {
		t.Fatalf("balance = %s, want income-expense-saving = %s", got.Balance, want)
	}
}

func TestCardDueForMonthEvenSplit(t *testing.T) {
	card := models.Card{CardID: "visa", Name: "Visa"}
	txs := []models.Transaction{
		{Type: models.TypeExpense, CardID: "visa", Amount: 300000, Installments: 3, FirstPaymentDate: "2025-01-05"},
	}

	for _, month := range []string{"2025-01", "2025-02", "2025-03"} {
		m, err := ParseMonth(month)
		if err != nil {
			t.Fatalf("ParseMonth(%s): %v", month, err)
		}
		due := CardDueForMonth(card, txs, m)
		if !due.Equal(dec("100000")) {
			t.Fatalf("due in %s = %s, want 100000", month, due)
		}
	}

	for _, month := range []string{"2024-12", "2025-04"} {
		m, _ := ParseMonth(month)
		if due := CardDueForMonth(card, txs, m); !due.IsZero() {
			t.Fatalf("due in %s = %s, want 0", month, due)
		}
	}
}

func TestCardDueForMonthRemainderToFirstInstallment(t *testing.T) {
	card := models.Card{CardID: "visa", Name: "Visa"}
	txs := []models.Transaction{
		{Type: models.TypeExpense, CardID: "visa", Amount: 100, Installments: 3, FirstPaymentDate: "2025-06-01"},
	}

	first := CardDueForMonth(card, txs, Month{2025, time.June})
	rest := CardDueForMonth(card, txs, Month{2025, time.July})

	if !rest.Equal(dec("33.33")) {
		t.Fatalf("non-first installment = %s, want 33.33", rest)
	}
	if !first.Equal(dec("33.34")) {
		t.Fatalf("first installment = %s, want 33.34", first)
	}
}

func TestCardDueScheduleSumsToAmount(t *testing.T) {
	card := models.Card{CardID: "visa", Name: "Visa"}
	cases := []struct {
		amount       float64
		installments int
	}{
		{300000, 3},
		{100, 3},
		{329990, 12},
		{0.01, 6},
		{890000, 7},
	}

	for _, tc := range cases {
		tx := models.Transaction{
			Type: models.TypeExpense, CardID: "visa",
			Amount: tc.amount, Installments: tc.installments,
			FirstPaymentDate: "2024-11-05",
		}
		first, _ := ParseMonth("2024-11")

		sum := decimal.Zero
		for k := 0; k < tc.installments; k++ {
			sum = sum.Add(CardDueForMonth(card, []models.Transaction{tx}, first.Add(k)))
		}
		if !sum.Equal(decimal.NewFromFloat(tc.amount)) {
			t.Fatalf("amount=%v installments=%d: schedule sums to %s", tc.amount, tc.installments, sum)
		}
	}
}

func TestCardDueYearRollover(t *testing.T) {
	card := models.Card{CardID: "mc", Name: "Mastercard"}
	txs := []models.Transaction{
		{Type: models.TypeExpense, CardID: "mc", Amount: 120000, Installments: 6, FirstPaymentDate: "2024-10-05"},
	}

	// Installments 4..6 land in 2025.
	m, _ := ParseMonth("2025-03")
	if due := CardDueForMonth(card, txs, m); !due.Equal(dec("20000")) {
		t.Fatalf("due in 2025-03 = %s, want 20000", due)
	}
	m, _ = ParseMonth("2025-04")
	if due := CardDueForMonth(card, txs, m); !due.IsZero() {
		t.Fatalf("due in 2025-04 = %s, want 0", due)
	}
}

func TestCardDueSingleInstallmentWithoutFirstPaymentDate(t *testing.T) {
	card := models.Card{CardID: "visa", Name: "Visa"}
	txs := []models.Transaction{
		{Type: models.TypeExpense, CardID: "visa", Amount: 45000, Installments: 1, Date: "2025-03-10"},
	}

	m, _ := ParseMonth("2025-03")
	if due := CardDueForMonth(card, txs, m); !due.Equal(dec("45000")) {
		t.Fatalf("due in 2025-03 = %s, want full amount", due)
	}
	for _, month := range []string{"2025-02", "2025-04"} {
		m, _ := ParseMonth(month)
		if due := CardDueForMonth(card, txs, m); !due.IsZero() {
			t.Fatalf("due in %s = %s, want 0", month, due)
		}
	}
}

func TestCardDueIgnoresOtherCards(t *testing.T) {
	visa := models.Card{CardID: "visa", Name: "Visa"}
	txs := []models.Transaction{
		{Type: models.TypeExpense, CardID: "mc", Amount: 50000, Installments: 1, FirstPaymentDate: "2025-01-15"},
		{Type: models.TypeExpense, CardID: "ghost", Amount: 70000, Installments: 2, FirstPaymentDate: "2025-01-15"},
		{Type: models.TypeExpense, Amount: 30000, Date: "2025-01-20"}, // cash expense, no card
	}

	m, _ := ParseMonth("2025-01")
	if due := CardDueForMonth(visa, txs, m); !due.IsZero() {
		t.Fatalf("visa due = %s, want 0", due)
	}
}

func TestCardDueIdempotent(t *testing.T) {
	card := models.Card{CardID: "visa", Name: "Visa"}
	txs := []models.Transaction{
		{Type: models.TypeExpense, CardID: "visa", Amount: 100, Installments: 3, FirstPaymentDate: "2025-06-01"},
	}
	m := Month{2025, time.June}

	a := CardDueForMonth(card, txs, m)
	b := CardDueForMonth(card, txs, m)
	if !a.Equal(b) {
		t.Fatalf("repeated calls disagree: %s vs %s", a, b)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TypeExpense, Category: "Ocio", Amount: 18000},
		{Type: models.TypeExpense, Category: "Ocio", Amount: 45000},
		{Type: models.TypeExpense, Category: "ocio", Amount: 1000}, // case-sensitive, separate group
		{Type: models.TypeIncome, Category: "Salario", Amount: 1500000},
	}

	got := CategoryBreakdown(txs, models.TypeExpense)

	if len(got) != 2 {
		t.Fatalf("expected 2 expense groups, got %d: %v", len(got), got)
	}
	if !got["Ocio"].Equal(dec("63000")) {
		t.Fatalf("Ocio = %s, want 63000", got["Ocio"])
	}
	if !got["ocio"].Equal(dec("1000")) {
		t.Fatalf("ocio = %s, want 1000", got["ocio"])
	}
}

func TestPaidMonthsOverlay(t *testing.T) {
	m, _ := ParseMonth("2025-01")
	original := map[string]bool{"visa-2024-12": true}

	updated := MarkMonthPaid(original, "visa", m, true)

	if !IsMonthPaid(updated, "visa", m) {
		t.Fatalf("month should be paid after MarkMonthPaid")
	}
	if IsMonthPaid(original, "visa", m) {
		t.Fatalf("MarkMonthPaid mutated its input")
	}
	if !IsMonthPaid(updated, "visa", Month{2024, time.December}) {
		t.Fatalf("existing entries should carry over")
	}

	cleared := MarkMonthPaid(updated, "visa", m, false)
	if IsMonthPaid(cleared, "visa", m) {
		t.Fatalf("month should be unpaid after clearing")
	}
}
