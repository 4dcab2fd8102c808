package services

import (
	"context"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/ledger"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

type transactionRSStore interface {
	List(ctx context.Context, uid string) ([]models.Transaction, error)
	Watch(ctx context.Context, uid string) (<-chan []models.Transaction, func(), error)
}

type reportService struct {
	txs transactionRSStore
}

func NewReportService(txs transactionRSStore) *reportService {
	return &reportService{txs: txs}
}

func (s *reportService) Summary(ctx context.Context, uid string) (dto.SummaryResponse, error) {
	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	return dto.SummaryResponse{
		Totals: ledger.Summarize(txs),
		Count:  len(txs),
	}, nil
}

func (s *reportService) Breakdown(ctx context.Context, uid, txType string) (dto.BreakdownResponse, error) {
	switch txType {
	case models.TypeIncome, models.TypeExpense, models.TypeSaving:
	default:
		return dto.BreakdownResponse{}, errs.NewValidationError("type must be income, expense or saving")
	}

	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return dto.BreakdownResponse{}, err
	}
	return dto.BreakdownResponse{
		Type:       txType,
		Categories: ledger.CategoryBreakdown(txs, txType),
	}, nil
}

// WatchSummary subscribes to the transaction collection and re-runs the
// aggregator on every snapshot. The aggregator holds no state between calls,
// so each emitted summary is derived solely from the snapshot that triggered
// it. The cancel handle must be called at teardown; it is idempotent.
func (s *reportService) WatchSummary(ctx context.Context, uid string) (<-chan dto.SummaryResponse, func(), error) {
	snapshots, stop, err := s.txs.Watch(ctx, uid)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan dto.SummaryResponse, 1)
	go func() {
		defer close(out)
		for txs := range snapshots {
			summary := dto.SummaryResponse{
				Totals: ledger.Summarize(txs),
				Count:  len(txs),
			}
			select {
			case out <- summary:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, stop, nil
}
