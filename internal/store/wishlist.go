package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

type wishlistStore struct {
	client *firestore.Client
}

func NewWishlistStore(client *firestore.Client) *wishlistStore {
	return &wishlistStore{client: client}
}

func (s *wishlistStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("wishlist")
}

func (s *wishlistStore) Create(ctx context.Context, uid string, item *models.WishlistItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	_, err := s.collection(uid).Doc(item.ItemID).Set(ctx, item)
	return err
}

func (s *wishlistStore) List(ctx context.Context, uid string) ([]models.WishlistItem, error) {
	docs, err := s.collection(uid).OrderBy("price", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]models.WishlistItem, 0, len(docs))
	for _, d := range docs {
		var item models.WishlistItem
		if err := d.DataTo(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *wishlistStore) Get(ctx context.Context, uid, itemID string) (*models.WishlistItem, error) {
	doc, err := s.collection(uid).Doc(itemID).Get(ctx)
	if err != nil {
		return nil, err
	}
	var item models.WishlistItem
	if err := doc.DataTo(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *wishlistStore) Delete(ctx context.Context, uid, itemID string) error {
	_, err := s.collection(uid).Doc(itemID).Delete(ctx)
	return err
}

func (s *wishlistStore) DeleteAll(ctx context.Context, uid string) error {
	return deleteCollection(ctx, s.client, s.collection(uid))
}
