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

type wishlistWSStore interface {
	Create(ctx context.Context, uid string, item *models.WishlistItem) error
	List(ctx context.Context, uid string) ([]models.WishlistItem, error)
	Get(ctx context.Context, uid, itemID string) (*models.WishlistItem, error)
	Delete(ctx context.Context, uid, itemID string) error
}

type acquisitionWSStore interface {
	Create(ctx context.Context, uid string, acq *models.Acquisition) error
	List(ctx context.Context, uid string) ([]models.Acquisition, error)
	Delete(ctx context.Context, uid, acquisitionID string) error
}

type wishlistService struct {
	wishlist     wishlistWSStore
	acquisitions acquisitionWSStore
	now          func() time.Time
}

func NewWishlistService(wishlist wishlistWSStore, acquisitions acquisitionWSStore) *wishlistService {
	return &wishlistService{
		wishlist:     wishlist,
		acquisitions: acquisitions,
		now:          time.Now,
	}
}

func (s *wishlistService) List(ctx context.Context, uid string) ([]models.WishlistItem, error) {
	return s.wishlist.List(ctx, uid)
}

func (s *wishlistService) Add(ctx context.Context, uid string, req dto.AddWishlistItemRequest) (*models.WishlistItem, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}
	if req.Price < 0 {
		return nil, errs.NewValidationError("price must be non-negative")
	}

	item := &models.WishlistItem{
		ItemID: uuid.New().String(),
		Name:   req.Name,
		Link:   req.Link,
		Price:  req.Price,
	}
	if err := s.wishlist.Create(ctx, uid, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *wishlistService) Delete(ctx context.Context, uid, itemID string) error {
	if _, err := s.wishlist.Get(ctx, uid, itemID); err != nil {
		return mapNotFound(err, "wishlist item not found")
	}
	return s.wishlist.Delete(ctx, uid, itemID)
}

// Acquire converts a wishlist item into an acquisition: the item's fields are
// copied into the acquisitions collection with a purchase date and the item
// is removed from the wishlist. Acquisitions never merge into transactions.
func (s *wishlistService) Acquire(ctx context.Context, uid, itemID string, req dto.AcquireRequest) (*models.Acquisition, error) {
	item, err := s.wishlist.Get(ctx, uid, itemID)
	if err != nil {
		return nil, mapNotFound(err, "wishlist item not found")
	}

	date := req.Date
	if date == "" {
		date = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, errs.NewValidationError("date must be YYYY-MM-DD")
	}

	acq := &models.Acquisition{
		AcquisitionID: uuid.New().String(),
		Name:          item.Name,
		Link:          item.Link,
		Price:         item.Price,
		Date:          date,
	}
	if err := s.acquisitions.Create(ctx, uid, acq); err != nil {
		return nil, err
	}
	if err := s.wishlist.Delete(ctx, uid, itemID); err != nil {
		// The acquisition exists and the item lingers; the user can delete it
		// by hand, so report the failure rather than unwinding the purchase.
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("wishlist item acquired", "item_id", itemID, "acquisition_id", acq.AcquisitionID)
	return acq, nil
}

func (s *wishlistService) ListAcquisitions(ctx context.Context, uid string) ([]models.Acquisition, error) {
	return s.acquisitions.List(ctx, uid)
}

func (s *wishlistService) DeleteAcquisition(ctx context.Context, uid, acquisitionID string) error {
	return s.acquisitions.Delete(ctx, uid, acquisitionID)
}
