package services

import (
	"context"
	"errors"
	"testing"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/pkg/helpers"
)

type stubTransactionStore struct {
	created     *models.Transaction
	createCalls int
	updated     map[string]any
	deleted     []string
	stored      *models.Transaction
	err         error
}

func (s *stubTransactionStore) Create(_ context.Context, _ string, tx *models.Transaction) error {
	s.created = tx
	s.createCalls++
	return s.err
}

func (s *stubTransactionStore) Get(_ context.Context, _, transactionID string) (*models.Transaction, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.stored == nil {
		return nil, errors.New("missing")
	}
	return s.stored, nil
}

func (s *stubTransactionStore) List(_ context.Context, _ string) ([]models.Transaction, error) {
	return nil, s.err
}

func (s *stubTransactionStore) Update(_ context.Context, _, transactionID, description string, amount float64, date string) error {
	s.updated = map[string]any{"id": transactionID, "description": description, "amount": amount, "date": date}
	return s.err
}

func (s *stubTransactionStore) Delete(_ context.Context, _, transactionID string) error {
	s.deleted = append(s.deleted, transactionID)
	return s.err
}

func TestTransactionCreate(t *testing.T) {
	store := &stubTransactionStore{}
	svc := NewTransactionService(store)
	ctx := helpers.TestCtx()

	tx, err := svc.Create(ctx, "uid", dto.CreateTransactionRequest{
		Type:        models.TypeExpense,
		Category:    "Ocio",
		Description: "Entradas Cine",
		Amount:      18000,
		Date:        "2025-01-08",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if store.createCalls != 1 {
		t.Fatalf("store.Create called %d times, want 1", store.createCalls)
	}
	if tx.TransactionID == "" {
		t.Fatalf("transaction ID was not assigned")
	}
	if tx.Installments != 0 {
		t.Fatalf("cash expense should carry no installments: %+v", tx)
	}
}

func TestTransactionCreateCardPurchaseDefaultsInstallments(t *testing.T) {
	store := &stubTransactionStore{}
	svc := NewTransactionService(store)
	ctx := helpers.TestCtx()

	tx, err := svc.Create(ctx, "uid", dto.CreateTransactionRequest{
		Type:        models.TypeExpense,
		Category:    "Ocio",
		Description: "Netflix",
		Amount:      10790,
		Date:        "2025-01-15",
		CardID:      "card-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if tx.Installments != 1 {
		t.Fatalf("card purchase without installments should default to 1, got %d", tx.Installments)
	}
}

func TestTransactionCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"unknown type", dto.CreateTransactionRequest{Type: "transfer", Category: "x", Amount: 1, Date: "2025-01-01"}},
		{"missing category", dto.CreateTransactionRequest{Type: models.TypeExpense, Amount: 1, Date: "2025-01-01"}},
		{"negative amount", dto.CreateTransactionRequest{Type: models.TypeExpense, Category: "x", Amount: -1, Date: "2025-01-01"}},
		{"bad date", dto.CreateTransactionRequest{Type: models.TypeExpense, Category: "x", Amount: 1, Date: "01/01/2025"}},
		{"installments without card", dto.CreateTransactionRequest{Type: models.TypeExpense, Category: "x", Amount: 1, Date: "2025-01-01", Installments: 3}},
		{"first payment date without card", dto.CreateTransactionRequest{Type: models.TypeExpense, Category: "x", Amount: 1, Date: "2025-01-01", FirstPaymentDate: "2025-02-01"}},
		{"card purchase as income", dto.CreateTransactionRequest{Type: models.TypeIncome, Category: "x", Amount: 1, Date: "2025-01-01", CardID: "c1"}},
		{"bad first payment date", dto.CreateTransactionRequest{Type: models.TypeExpense, Category: "x", Amount: 1, Date: "2025-01-01", CardID: "c1", FirstPaymentDate: "soon"}},
		{"negative installments", dto.CreateTransactionRequest{Type: models.TypeExpense, Category: "x", Amount: 1, Date: "2025-01-01", CardID: "c1", Installments: -2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubTransactionStore{}
			svc := NewTransactionService(store)

			_, err := svc.Create(helpers.TestCtx(), "uid", tc.req)

			var verr *errs.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if store.createCalls != 0 {
				t.Fatalf("invalid input must never reach the store")
			}
		})
	}
}

func TestTransactionUpdateEditableFieldsOnly(t *testing.T) {
	store := &stubTransactionStore{stored: &models.Transaction{TransactionID: "t1"}}
	svc := NewTransactionService(store)

	_, err := svc.Update(helpers.TestCtx(), "uid", "t1", dto.UpdateTransactionRequest{
		Description: "Cena",
		Amount:      45000,
		Date:        "2025-01-20",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if store.updated["description"] != "Cena" || store.updated["amount"] != float64(45000) || store.updated["date"] != "2025-01-20" {
		t.Fatalf("unexpected update payload: %+v", store.updated)
	}
}

func TestTransactionUpdateRejectsBadInput(t *testing.T) {
	store := &stubTransactionStore{stored: &models.Transaction{TransactionID: "t1"}}
	svc := NewTransactionService(store)

	_, err := svc.Update(helpers.TestCtx(), "uid", "t1", dto.UpdateTransactionRequest{
		Description: "Cena",
		Amount:      -1,
		Date:        "2025-01-20",
	})

	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.updated != nil {
		t.Fatalf("store should not be touched on invalid input")
	}
}

func TestTransactionDelete(t *testing.T) {
	store := &stubTransactionStore{stored: &models.Transaction{TransactionID: "t1"}}
	svc := NewTransactionService(store)

	if err := svc.Delete(helpers.TestCtx(), "uid", "t1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "t1" {
		t.Fatalf("unexpected deletions: %v", store.deleted)
	}
}
