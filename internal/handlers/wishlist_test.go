package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
)

type stubWishlistService struct {
	items      []models.WishlistItem
	added      dto.AddWishlistItemRequest
	acquiredID string
	acquireReq dto.AcquireRequest
	acq        *models.Acquisition
	err        error
}

func (s *stubWishlistService) List(_ context.Context, uid string) ([]models.WishlistItem, error) {
	return s.items, s.err
}

func (s *stubWishlistService) Add(_ context.Context, uid string, req dto.AddWishlistItemRequest) (*models.WishlistItem, error) {
	s.added = req
	return &models.WishlistItem{ItemID: "i1", Name: req.Name, Price: req.Price}, s.err
}

func (s *stubWishlistService) Delete(_ context.Context, uid, itemID string) error {
	return s.err
}

func (s *stubWishlistService) Acquire(_ context.Context, uid, itemID string, req dto.AcquireRequest) (*models.Acquisition, error) {
	s.acquiredID = itemID
	s.acquireReq = req
	return s.acq, s.err
}

func (s *stubWishlistService) ListAcquisitions(_ context.Context, uid string) ([]models.Acquisition, error) {
	return nil, s.err
}

func (s *stubWishlistService) DeleteAcquisition(_ context.Context, uid, acquisitionID string) error {
	return s.err
}

func acquireRequest(body string) *http.Request {
	req := authedRequest(http.MethodPost, "/wishlist/i1/acquire", body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("itemId", "i1")
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestWishlistAddHandler(t *testing.T) {
	svc := &stubWishlistService{}
	resp := &stubResponseHandler{}
	h := NewWishlistHandlers(&Deps{ResponseHandler: resp, WishlistSvc: svc})

	rr := httptest.NewRecorder()
	h.Add(rr, authedRequest(http.MethodPost, "/wishlist", `{"name":"PlayStation 5","price":549990}`))

	if svc.added.Name != "PlayStation 5" {
		t.Fatalf("service received wrong payload: %+v", svc.added)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("WriteSuccess not called with status 201")
	}
}

func TestWishlistAcquireHandler(t *testing.T) {
	svc := &stubWishlistService{acq: &models.Acquisition{AcquisitionID: "a1", Name: "PS5"}}
	resp := &stubResponseHandler{}
	h := NewWishlistHandlers(&Deps{ResponseHandler: resp, WishlistSvc: svc})

	rr := httptest.NewRecorder()
	h.Acquire(rr, acquireRequest(`{"date":"2025-03-01"}`))

	if svc.acquiredID != "i1" || svc.acquireReq.Date != "2025-03-01" {
		t.Fatalf("service received wrong acquire call: id=%s req=%+v", svc.acquiredID, svc.acquireReq)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("WriteSuccess not called with status 201")
	}
}

func TestWishlistAcquireHandlerEmptyBody(t *testing.T) {
	svc := &stubWishlistService{acq: &models.Acquisition{AcquisitionID: "a1"}}
	resp := &stubResponseHandler{}
	h := NewWishlistHandlers(&Deps{ResponseHandler: resp, WishlistSvc: svc})

	rr := httptest.NewRecorder()
	h.Acquire(rr, acquireRequest(""))

	if resp.handleErrorCalled {
		t.Fatalf("empty body must be tolerated, got %v", resp.handleError)
	}
	if svc.acquiredID != "i1" || svc.acquireReq.Date != "" {
		t.Fatalf("service received wrong acquire call: id=%s req=%+v", svc.acquiredID, svc.acquireReq)
	}
}
