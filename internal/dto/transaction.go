package dto

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`

	CardID           string `json:"cardId,omitempty"`
	Installments     int    `json:"installments,omitempty"`
	FirstPaymentDate string `json:"firstPaymentDate,omitempty"`
}

// UpdateTransactionRequest carries the only fields an existing transaction
// may change. Type, category and installment terms are immutable.
type UpdateTransactionRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
}
