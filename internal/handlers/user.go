package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/ledger"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/middleware"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/response"
)

type userService interface {
	Register(ctx context.Context, uid, email string, req dto.RegisterRequest) (*models.User, error)
	GetProfile(ctx context.Context, uid string) (*models.User, error)
	UpdateProfile(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error)
	UpdateCategories(ctx context.Context, uid string, cats models.Categories) error
	SetMonthPaid(ctx context.Context, uid, cardID string, month ledger.Month, paid bool) error
	FullReset(ctx context.Context, uid string) error
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         userService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/me", h.GetProfile)
	r.Put("/me", h.UpdateProfile)
	r.Put("/me/categories", h.UpdateCategories)
	r.Delete("/me", h.FullReset)
	return r
}

func (h *userHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	email := middleware.Email(r.Context())
	user, err := h.UserSvc.Register(r.Context(), uid, email, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, user)
}

func (h *userHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.GetProfile(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	user, err := h.UserSvc.UpdateProfile(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

func (h *userHandlers) UpdateCategories(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCategoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	if err := h.UserSvc.UpdateCategories(r.Context(), uid, req.Categories); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// FullReset wipes the account. The confirmation prompt lives in the client;
// this endpoint executes unconditionally.
func (h *userHandlers) FullReset(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	if err := h.UserSvc.FullReset(r.Context(), uid); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
