package models

import (
	"time"
)

// Transaction types. Savings are their own type rather than an expense
// category so the summary can report them separately.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
	TypeSaving  = "saving"
)

type Transaction struct {
	TransactionID string  `firestore:"transactionId" json:"transactionId"`
	Type          string  `firestore:"type" json:"type"` // income | expense | saving
	Category      string  `firestore:"category" json:"category"`
	Description   string  `firestore:"description" json:"description"`
	Amount        float64 `firestore:"amount" json:"amount"`
	Date          string  `firestore:"date" json:"date"` // YYYY-MM-DD

	// Credit-card purchase fields. CardID references the owning card document;
	// a purchase paid over several months carries Installments >= 1 and the
	// date its first installment falls due.
	CardID           string `firestore:"cardId,omitempty" json:"cardId,omitempty"`
	Installments     int    `firestore:"installments,omitempty" json:"installments,omitempty"`
	FirstPaymentDate string `firestore:"firstPaymentDate,omitempty" json:"firstPaymentDate,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
