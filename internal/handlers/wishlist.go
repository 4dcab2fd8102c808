package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/middleware"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/response"
)

type wishlistService interface {
	List(ctx context.Context, uid string) ([]models.WishlistItem, error)
	Add(ctx context.Context, uid string, req dto.AddWishlistItemRequest) (*models.WishlistItem, error)
	Delete(ctx context.Context, uid, itemID string) error
	Acquire(ctx context.Context, uid, itemID string, req dto.AcquireRequest) (*models.Acquisition, error)
	ListAcquisitions(ctx context.Context, uid string) ([]models.Acquisition, error)
	DeleteAcquisition(ctx context.Context, uid, acquisitionID string) error
}

type wishlistHandlers struct {
	ResponseHandler response.ResponseHandler
	WishlistSvc     wishlistService
}

func NewWishlistHandlers(deps *Deps) *wishlistHandlers {
	return &wishlistHandlers{
		ResponseHandler: deps.ResponseHandler,
		WishlistSvc:     deps.WishlistSvc,
	}
}

func (h *wishlistHandlers) WishlistRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Get("/acquisitions", h.ListAcquisitions) // must be before /{itemId}
	r.Delete("/acquisitions/{acquisitionId}", h.DeleteAcquisition)
	r.Delete("/{itemId}", h.Delete)
	r.Post("/{itemId}/acquire", h.Acquire)
	return r
}

func (h *wishlistHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	items, err := h.WishlistSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, items)
}

func (h *wishlistHandlers) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddWishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	item, err := h.WishlistSvc.Add(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, item)
}

func (h *wishlistHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	uid := middleware.UID(r.Context())
	if err := h.WishlistSvc.Delete(r.Context(), uid, itemID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *wishlistHandlers) Acquire(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	// The body is optional; an empty body means "acquired today".
	var req dto.AcquireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	acq, err := h.WishlistSvc.Acquire(r.Context(), uid, itemID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, acq)
}

func (h *wishlistHandlers) ListAcquisitions(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	acqs, err := h.WishlistSvc.ListAcquisitions(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, acqs)
}

func (h *wishlistHandlers) DeleteAcquisition(w http.ResponseWriter, r *http.Request) {
	acquisitionID := chi.URLParam(r, "acquisitionId")
	uid := middleware.UID(r.Context())
	if err := h.WishlistSvc.DeleteAcquisition(r.Context(), uid, acquisitionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
