package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/ledger"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/middleware"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/response"
)

type cardService interface {
	ListCards(ctx context.Context, uid string) ([]models.Card, error)
	CreateCard(ctx context.Context, uid string, req dto.CreateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, uid, cardID string) error
	MonthStatus(ctx context.Context, uid string, month ledger.Month) (dto.CardsStatusResponse, error)
}

type cardHandlers struct {
	ResponseHandler response.ResponseHandler
	CardSvc         cardService
	UserSvc         userService
}

func NewCardHandlers(deps *Deps) *cardHandlers {
	return &cardHandlers{
		ResponseHandler: deps.ResponseHandler,
		CardSvc:         deps.CardSvc,
		UserSvc:         deps.UserSvc,
	}
}

func (h *cardHandlers) CardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/status", h.MonthStatus) // must be before /{cardId}
	r.Delete("/{cardId}", h.Delete)
	r.Put("/{cardId}/paid/{month}", h.SetMonthPaid)
	return r
}

func (h *cardHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	cards, err := h.CardSvc.ListCards(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, cards)
}

func (h *cardHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	card, err := h.CardSvc.CreateCard(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, card)
}

func (h *cardHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	uid := middleware.UID(r.Context())
	if err := h.CardSvc.DeleteCard(r.Context(), uid, cardID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// MonthStatus answers the payment tracker for ?month=YYYY-MM, defaulting to
// the current month.
func (h *cardHandlers) MonthStatus(w http.ResponseWriter, r *http.Request) {
	month := ledger.MonthOf(time.Now())
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := ledger.ParseMonth(raw)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("month must be YYYY-MM"))
			return
		}
		month = parsed
	}

	uid := middleware.UID(r.Context())
	status, err := h.CardSvc.MonthStatus(r.Context(), uid, month)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, status)
}

func (h *cardHandlers) SetMonthPaid(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	month, err := ledger.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("month must be YYYY-MM"))
		return
	}

	var req dto.SetPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	if err := h.UserSvc.SetMonthPaid(r.Context(), uid, cardID, month, req.Paid); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
