package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/pkg/helpers"
)

type stubWishlistStore struct {
	items   []models.WishlistItem
	created *models.WishlistItem
	deleted []string
}

func (s *stubWishlistStore) Create(_ context.Context, _ string, item *models.WishlistItem) error {
	s.created = item
	return nil
}

func (s *stubWishlistStore) List(_ context.Context, _ string) ([]models.WishlistItem, error) {
	return s.items, nil
}

func (s *stubWishlistStore) Get(_ context.Context, _, itemID string) (*models.WishlistItem, error) {
	for i := range s.items {
		if s.items[i].ItemID == itemID {
			return &s.items[i], nil
		}
	}
	return nil, errStoreNotFound
}

func (s *stubWishlistStore) Delete(_ context.Context, _, itemID string) error {
	s.deleted = append(s.deleted, itemID)
	return nil
}

type stubAcquisitionStore struct {
	acquisitions []models.Acquisition
	created      *models.Acquisition
	createErr    error
	deleted      []string
}

func (s *stubAcquisitionStore) Create(_ context.Context, _ string, acq *models.Acquisition) error {
	s.created = acq
	return s.createErr
}

func (s *stubAcquisitionStore) List(_ context.Context, _ string) ([]models.Acquisition, error) {
	return s.acquisitions, nil
}

func (s *stubAcquisitionStore) Delete(_ context.Context, _, acquisitionID string) error {
	s.deleted = append(s.deleted, acquisitionID)
	return nil
}

func TestWishlistAdd(t *testing.T) {
	store := &stubWishlistStore{}
	svc := NewWishlistService(store, &stubAcquisitionStore{})

	item, err := svc.Add(helpers.TestCtx(), "uid", dto.AddWishlistItemRequest{Name: "PlayStation 5", Price: 549990})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.ItemID == "" || store.created == nil {
		t.Fatalf("item was not created: %+v", item)
	}
}

func TestWishlistAddValidation(t *testing.T) {
	svc := NewWishlistService(&stubWishlistStore{}, &stubAcquisitionStore{})

	for _, req := range []dto.AddWishlistItemRequest{
		{Name: "", Price: 100},
		{Name: "PS5", Price: -1},
	} {
		_, err := svc.Add(helpers.TestCtx(), "uid", req)
		var verr *errs.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %+v, got %v", req, err)
		}
	}
}

func TestWishlistAcquire(t *testing.T) {
	items := &stubWishlistStore{items: []models.WishlistItem{
		{ItemID: "i1", Name: "PlayStation 5", Link: "https://example.com/ps5", Price: 549990},
	}}
	acquisitions := &stubAcquisitionStore{}
	svc := NewWishlistService(items, acquisitions)

	acq, err := svc.Acquire(helpers.TestCtx(), "uid", "i1", dto.AcquireRequest{Date: "2025-03-01"})
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	if acq.Name != "PlayStation 5" || acq.Price != 549990 || acq.Date != "2025-03-01" {
		t.Fatalf("acquisition does not mirror the item: %+v", acq)
	}
	if acq.AcquisitionID == "" {
		t.Fatalf("acquisition ID was not assigned")
	}
	if len(items.deleted) != 1 || items.deleted[0] != "i1" {
		t.Fatalf("item must leave the wishlist: %v", items.deleted)
	}
}

func TestWishlistAcquireDefaultsDate(t *testing.T) {
	items := &stubWishlistStore{items: []models.WishlistItem{{ItemID: "i1", Name: "PS5", Price: 1}}}
	svc := NewWishlistService(items, &stubAcquisitionStore{})
	svc.now = func() time.Time { return time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC) }

	acq, err := svc.Acquire(helpers.TestCtx(), "uid", "i1", dto.AcquireRequest{})
	if err != nil {
		t.Fatalf("Acquire returned error: %v", err)
	}
	if acq.Date != "2025-03-10" {
		t.Fatalf("date = %q, want 2025-03-10", acq.Date)
	}
}

func TestWishlistAcquireMissingItem(t *testing.T) {
	acquisitions := &stubAcquisitionStore{}
	svc := NewWishlistService(&stubWishlistStore{}, acquisitions)

	if _, err := svc.Acquire(helpers.TestCtx(), "uid", "nope", dto.AcquireRequest{}); err == nil {
		t.Fatalf("expected error for unknown item")
	}
	if acquisitions.created != nil {
		t.Fatalf("no acquisition should be created")
	}
}

func TestWishlistAcquireKeepsItemOnCreateFailure(t *testing.T) {
	items := &stubWishlistStore{items: []models.WishlistItem{{ItemID: "i1", Name: "PS5", Price: 1}}}
	acquisitions := &stubAcquisitionStore{createErr: errors.New("write failed")}
	svc := NewWishlistService(items, acquisitions)

	if _, err := svc.Acquire(helpers.TestCtx(), "uid", "i1", dto.AcquireRequest{Date: "2025-03-01"}); err == nil {
		t.Fatalf("expected error")
	}
	if items.deleted != nil {
		t.Fatalf("item must stay on the wishlist when the acquisition write fails")
	}
}
