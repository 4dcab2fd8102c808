package dto

import "github.com/shopspring/decimal"

type CreateCardRequest struct {
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
}

// CardMonthStatus is one card's line in the monthly payment tracker: the
// computed installment due plus the user-asserted paid flag.
type CardMonthStatus struct {
	CardID string          `json:"cardId"`
	Name   string          `json:"name"`
	Limit  float64         `json:"limit"`
	Due    decimal.Decimal `json:"due"`
	Paid   bool            `json:"paid"`
}

type CardsStatusResponse struct {
	Month string            `json:"month"`
	Cards []CardMonthStatus `json:"cards"`
}

type SetPaidRequest struct {
	Paid bool `json:"paid"`
}
