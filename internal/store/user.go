package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

type userStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{
		Client:     client,
		Collection: client.Collection("users"),
	}
}

func (us *userStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := us.Collection.Doc(user.UID).Create(ctx, user)
	return err
}

func (us *userStore) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := us.Collection.Doc(user.UID).Set(ctx, user, firestore.MergeAll)
	return err
}

func (us *userStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	var user models.User

	doc, err := us.Collection.Doc(uid).Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateCategories replaces only the category lists on the profile document.
func (us *userStore) UpdateCategories(ctx context.Context, uid string, cats models.Categories) error {
	_, err := us.Collection.Doc(uid).Update(ctx, []firestore.Update{
		{Path: "categories", Value: cats},
		{Path: "updatedAt", Value: time.Now()},
	})
	return err
}

// UpdatePaidMonths replaces the whole paid-months overlay. The overlay is
// small (one flag per card per month) so a full rewrite keeps the update
// consistent with the copy-on-write semantics of ledger.MarkMonthPaid.
func (us *userStore) UpdatePaidMonths(ctx context.Context, uid string, paidMonths map[string]bool) error {
	_, err := us.Collection.Doc(uid).Update(ctx, []firestore.Update{
		{Path: "paidMonths", Value: paidMonths},
		{Path: "updatedAt", Value: time.Now()},
	})
	return err
}

func (us *userStore) DeleteUser(ctx context.Context, uid string) error {
	_, err := us.Collection.Doc(uid).Delete(ctx)
	return err
}
