package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

type acquisitionStore struct {
	client *firestore.Client
}

func NewAcquisitionStore(client *firestore.Client) *acquisitionStore {
	return &acquisitionStore{client: client}
}

func (s *acquisitionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("acquisitions")
}

func (s *acquisitionStore) Create(ctx context.Context, uid string, acq *models.Acquisition) error {
	if acq.CreatedAt.IsZero() {
		acq.CreatedAt = time.Now()
	}
	_, err := s.collection(uid).Doc(acq.AcquisitionID).Set(ctx, acq)
	return err
}

func (s *acquisitionStore) List(ctx context.Context, uid string) ([]models.Acquisition, error) {
	docs, err := s.collection(uid).OrderBy("date", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	acqs := make([]models.Acquisition, 0, len(docs))
	for _, d := range docs {
		var a models.Acquisition
		if err := d.DataTo(&a); err != nil {
			return nil, err
		}
		acqs = append(acqs, a)
	}
	return acqs, nil
}

func (s *acquisitionStore) Delete(ctx context.Context, uid, acquisitionID string) error {
	_, err := s.collection(uid).Doc(acquisitionID).Delete(ctx)
	return err
}

func (s *acquisitionStore) DeleteAll(ctx context.Context, uid string) error {
	return deleteCollection(ctx, s.client, s.collection(uid))
}
