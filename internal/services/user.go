package services

import (
	"context"
	"time"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/ledger"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/pkg/logger"
)

type userUSStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateCategories(ctx context.Context, uid string, cats models.Categories) error
	UpdatePaidMonths(ctx context.Context, uid string, paidMonths map[string]bool) error
	DeleteUser(ctx context.Context, uid string) error
}

type transactionUSStore interface {
	SeedBatch(ctx context.Context, uid string, txs []models.Transaction) error
	DeleteAll(ctx context.Context, uid string) error
}

type cardUSStore interface {
	Create(ctx context.Context, uid string, card *models.Card) error
	DeleteAll(ctx context.Context, uid string) error
}

type wishlistUSStore interface {
	Create(ctx context.Context, uid string, item *models.WishlistItem) error
	DeleteAll(ctx context.Context, uid string) error
}

type acquisitionUSStore interface {
	DeleteAll(ctx context.Context, uid string) error
}

type userService struct {
	users        userUSStore
	txs          transactionUSStore
	cards        cardUSStore
	wishlist     wishlistUSStore
	acquisitions acquisitionUSStore
	now          func() time.Time
}

func NewUserService(users userUSStore, txs transactionUSStore, cards cardUSStore, wishlist wishlistUSStore, acquisitions acquisitionUSStore) *userService {
	return &userService{
		users:        users,
		txs:          txs,
		cards:        cards,
		wishlist:     wishlist,
		acquisitions: acquisitions,
		now:          time.Now,
	}
}

// Register creates the profile document and seeds the account with default
// categories, two starter cards and demo data so a new user lands on a
// populated dashboard instead of an empty one.
func (s *userService) Register(ctx context.Context, uid, email string, req dto.RegisterRequest) (*models.User, error) {
	if _, err := s.users.GetUser(ctx, uid); err == nil {
		return nil, errs.NewAlreadyExistsError("profile already exists")
	}

	name := req.Name
	if name == "" {
		name = "Usuario"
	}
	countryCode := req.CountryCode
	if countryCode == "" {
		countryCode = "+56"
	}

	now := s.now()
	user := &models.User{
		UID:         uid,
		Name:        name,
		Phone:       req.Phone,
		Email:       email,
		CountryCode: countryCode,
		Categories:  defaultCategories(),
		PaidMonths:  map[string]bool{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if err := s.seed(ctx, uid, now); err != nil {
		// Profile exists; seeding is best-effort convenience data.
		log.Warn("seeding demo data failed", "error", err)
	}

	log.Info("user registered", "name", name)
	return user, nil
}

func (s *userService) seed(ctx context.Context, uid string, now time.Time) error {
	cards := seedCards()
	for i := range cards {
		if err := s.cards.Create(ctx, uid, &cards[i]); err != nil {
			return err
		}
	}
	if err := s.txs.SeedBatch(ctx, uid, seedTransactions(now, cards)); err != nil {
		return err
	}
	for _, item := range seedWishlist() {
		if err := s.wishlist.Create(ctx, uid, &item); err != nil {
			return err
		}
	}
	return nil
}

func (s *userService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return nil, mapNotFound(err, "profile not found")
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return nil, mapNotFound(err, "profile not found")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errs.NewValidationError("name must not be empty")
		}
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.CountryCode != nil {
		user.CountryCode = *req.CountryCode
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateCategories(ctx context.Context, uid string, cats models.Categories) error {
	if len(cats.Income) == 0 || len(cats.Expense) == 0 {
		return errs.NewValidationError("category lists must not be empty")
	}
	if err := s.users.UpdateCategories(ctx, uid, cats); err != nil {
		return mapNotFound(err, "profile not found")
	}
	return nil
}

// SetMonthPaid flips the user-asserted paid flag for a card statement. The
// overlay is loaded, rewritten through the ledger's copy-on-write helper and
// stored back whole.
func (s *userService) SetMonthPaid(ctx context.Context, uid, cardID string, month ledger.Month, paid bool) error {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return mapNotFound(err, "profile not found")
	}

	updated := ledger.MarkMonthPaid(user.PaidMonths, cardID, month, paid)
	if err := s.users.UpdatePaidMonths(ctx, uid, updated); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("paid month updated", "card_id", cardID, "month", month.String(), "paid", paid)
	return nil
}

// FullReset irreversibly deletes everything the user owns: all four
// subcollections, then the profile document itself. Confirmation is the
// presentation layer's job; by the time this runs the decision is final.
func (s *userService) FullReset(ctx context.Context, uid string) error {
	if err := s.txs.DeleteAll(ctx, uid); err != nil {
		return err
	}
	if err := s.cards.DeleteAll(ctx, uid); err != nil {
		return err
	}
	if err := s.wishlist.DeleteAll(ctx, uid); err != nil {
		return err
	}
	if err := s.acquisitions.DeleteAll(ctx, uid); err != nil {
		return err
	}
	if err := s.users.DeleteUser(ctx, uid); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("account data fully reset")
	return nil
}
