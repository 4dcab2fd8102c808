package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/ledger"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/pkg/logger"
)

type cardCSStore interface {
	Create(ctx context.Context, uid string, card *models.Card) error
	List(ctx context.Context, uid string) ([]models.Card, error)
	Get(ctx context.Context, uid, cardID string) (*models.Card, error)
	Delete(ctx context.Context, uid, cardID string) error
}

type transactionCSStore interface {
	List(ctx context.Context, uid string) ([]models.Transaction, error)
}

type userCSStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type cardService struct {
	cards cardCSStore
	txs   transactionCSStore
	users userCSStore
}

func NewCardService(cards cardCSStore, txs transactionCSStore, users userCSStore) *cardService {
	return &cardService{cards: cards, txs: txs, users: users}
}

func (s *cardService) ListCards(ctx context.Context, uid string) ([]models.Card, error) {
	return s.cards.List(ctx, uid)
}

func (s *cardService) CreateCard(ctx context.Context, uid string, req dto.CreateCardRequest) (*models.Card, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("card name is required")
	}
	if req.Limit < 0 {
		return nil, errs.NewValidationError("card limit must be non-negative")
	}

	card := &models.Card{
		CardID: uuid.New().String(),
		Name:   req.Name,
		Limit:  req.Limit,
	}
	if err := s.cards.Create(ctx, uid, card); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("card created", "card_id", card.CardID, "name", card.Name)
	return card, nil
}

// DeleteCard removes the card only. Transactions that still reference its ID
// stay untouched; the ledger simply stops matching them to any card.
func (s *cardService) DeleteCard(ctx context.Context, uid, cardID string) error {
	if _, err := s.cards.Get(ctx, uid, cardID); err != nil {
		return mapNotFound(err, "card not found")
	}
	return s.cards.Delete(ctx, uid, cardID)
}

// MonthStatus builds the payment tracker for one month: per card, the
// installments falling due and whether the user marked that statement paid.
func (s *cardService) MonthStatus(ctx context.Context, uid string, month ledger.Month) (dto.CardsStatusResponse, error) {
	resp := dto.CardsStatusResponse{Month: month.String()}

	cards, err := s.cards.List(ctx, uid)
	if err != nil {
		return resp, err
	}
	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return resp, err
	}
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return resp, mapNotFound(err, "profile not found")
	}

	resp.Cards = make([]dto.CardMonthStatus, 0, len(cards))
	for _, card := range cards {
		resp.Cards = append(resp.Cards, dto.CardMonthStatus{
			CardID: card.CardID,
			Name:   card.Name,
			Limit:  card.Limit,
			Due:    ledger.CardDueForMonth(card, txs, month),
			Paid:   ledger.IsMonthPaid(user.PaidMonths, card.CardID, month),
		})
	}
	return resp, nil
}
