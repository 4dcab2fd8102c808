package dto

import (
	"github.com/shopspring/decimal"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/ledger"
)

type SummaryResponse struct {
	Totals ledger.Totals `json:"totals"`
	Count  int           `json:"count"`
}

type BreakdownResponse struct {
	Type       string                     `json:"type"`
	Categories map[string]decimal.Decimal `json:"categories"`
}

type InsightResponse struct {
	Advice string `json:"advice"`
}
