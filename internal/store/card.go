package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

type cardStore struct {
	client *firestore.Client
}

func NewCardStore(client *firestore.Client) *cardStore {
	return &cardStore{client: client}
}

func (s *cardStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("cards")
}

func (s *cardStore) Create(ctx context.Context, uid string, card *models.Card) error {
	now := time.Now()
	if card.CreatedAt.IsZero() {
		card.CreatedAt = now
	}
	card.UpdatedAt = now
	_, err := s.collection(uid).Doc(card.CardID).Set(ctx, card)
	return err
}

func (s *cardStore) List(ctx context.Context, uid string) ([]models.Card, error) {
	docs, err := s.collection(uid).OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	cards := make([]models.Card, 0, len(docs))
	for _, d := range docs {
		var c models.Card
		if err := d.DataTo(&c); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (s *cardStore) Get(ctx context.Context, uid, cardID string) (*models.Card, error) {
	doc, err := s.collection(uid).Doc(cardID).Get(ctx)
	if err != nil {
		return nil, err
	}
	var c models.Card
	if err := doc.DataTo(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *cardStore) Delete(ctx context.Context, uid, cardID string) error {
	_, err := s.collection(uid).Doc(cardID).Delete(ctx)
	return err
}

func (s *cardStore) DeleteAll(ctx context.Context, uid string) error {
	return deleteCollection(ctx, s.client, s.collection(uid))
}
