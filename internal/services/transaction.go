package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/pkg/logger"
)

const dateLayout = "2006-01-02"

type transactionTSStore interface {
	Create(ctx context.Context, uid string, tx *models.Transaction) error
	Get(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, uid string) ([]models.Transaction, error)
	Update(ctx context.Context, uid, transactionID, description string, amount float64, date string) error
	Delete(ctx context.Context, uid, transactionID string) error
}

type transactionService struct {
	txs transactionTSStore
}

func NewTransactionService(txs transactionTSStore) *transactionService {
	return &transactionService{txs: txs}
}

func (s *transactionService) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	return s.txs.List(ctx, uid)
}

// Create is the validation boundary: everything the ledger later assumes
// about a transaction (known type, non-negative amount, parseable dates,
// sane installment terms) is enforced here and nowhere downstream.
func (s *transactionService) Create(ctx context.Context, uid string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateCreateTransaction(req); err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		TransactionID:    uuid.New().String(),
		Type:             req.Type,
		Category:         req.Category,
		Description:      req.Description,
		Amount:           req.Amount,
		Date:             req.Date,
		CardID:           req.CardID,
		Installments:     req.Installments,
		FirstPaymentDate: req.FirstPaymentDate,
	}
	if tx.CardID != "" && tx.Installments == 0 {
		tx.Installments = 1
	}

	if err := s.txs.Create(ctx, uid, tx); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction created", "transaction_id", tx.TransactionID, "type", tx.Type)
	return tx, nil
}

// Update edits the three mutable fields. Type, category and installment
// terms never change after creation.
func (s *transactionService) Update(ctx context.Context, uid, transactionID string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if req.Description == "" {
		return nil, errs.NewValidationError("description is required")
	}
	if req.Amount < 0 {
		return nil, errs.NewValidationError("amount must be non-negative")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, errs.NewValidationError("date must be YYYY-MM-DD")
	}

	if err := s.txs.Update(ctx, uid, transactionID, req.Description, req.Amount, req.Date); err != nil {
		return nil, mapNotFound(err, "transaction not found")
	}
	tx, err := s.txs.Get(ctx, uid, transactionID)
	if err != nil {
		return nil, mapNotFound(err, "transaction not found")
	}
	return tx, nil
}

func (s *transactionService) Delete(ctx context.Context, uid, transactionID string) error {
	if _, err := s.txs.Get(ctx, uid, transactionID); err != nil {
		return mapNotFound(err, "transaction not found")
	}
	if err := s.txs.Delete(ctx, uid, transactionID); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction deleted", "transaction_id", transactionID)
	return nil
}

func validateCreateTransaction(req dto.CreateTransactionRequest) error {
	switch req.Type {
	case models.TypeIncome, models.TypeExpense, models.TypeSaving:
	default:
		return errs.NewValidationError("type must be income, expense or saving")
	}
	if req.Category == "" {
		return errs.NewValidationError("category is required")
	}
	if req.Amount < 0 {
		return errs.NewValidationError("amount must be non-negative")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return errs.NewValidationError("date must be YYYY-MM-DD")
	}

	if req.Installments < 0 {
		return errs.NewValidationError("installments must be at least 1")
	}
	if req.CardID == "" {
		if req.Installments > 0 || req.FirstPaymentDate != "" {
			return errs.NewValidationError("installment terms require a cardId")
		}
		return nil
	}
	if req.Type != models.TypeExpense {
		return errs.NewValidationError("card purchases must be expenses")
	}
	if req.FirstPaymentDate != "" {
		if _, err := time.Parse(dateLayout, req.FirstPaymentDate); err != nil {
			return errs.NewValidationError("firstPaymentDate must be YYYY-MM-DD")
		}
	}
	return nil
}
