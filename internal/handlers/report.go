package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/middleware"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/response"
	"github.com/javiermalaquita9-svg/finanzas-app/pkg/logger"
)

type reportService interface {
	Summary(ctx context.Context, uid string) (dto.SummaryResponse, error)
	Breakdown(ctx context.Context, uid, txType string) (dto.BreakdownResponse, error)
	WatchSummary(ctx context.Context, uid string) (<-chan dto.SummaryResponse, func(), error)
}

type insightService interface {
	GetInsight(ctx context.Context, uid string) (dto.InsightResponse, error)
}

type reportHandlers struct {
	ResponseHandler response.ResponseHandler
	ReportSvc       reportService
	InsightSvc      insightService
}

func NewReportHandlers(deps *Deps) *reportHandlers {
	return &reportHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReportSvc:       deps.ReportSvc,
		InsightSvc:      deps.InsightSvc,
	}
}

func (h *reportHandlers) ReportRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.Summary)
	r.Get("/summary/stream", h.StreamSummary)
	r.Get("/breakdown", h.Breakdown)
	r.Get("/insight", h.Insight)
	return r
}

func (h *reportHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	summary, err := h.ReportSvc.Summary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}

func (h *reportHandlers) Breakdown(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	breakdown, err := h.ReportSvc.Breakdown(r.Context(), uid, r.URL.Query().Get("type"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, breakdown)
}

// StreamSummary pushes the summary as server-sent events, one event per
// transaction-collection change, until the client disconnects.
func (h *reportHandlers) StreamSummary(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.ResponseHandler.WriteError(w, r, http.StatusInternalServerError, "internal_error", "streaming unsupported")
		return
	}

	uid := middleware.UID(r.Context())
	summaries, stop, err := h.ReportSvc.WatchSummary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	defer stop()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	log := logger.FromContext(r.Context())
	for {
		select {
		case summary, open := <-summaries:
			if !open {
				return
			}
			payload, err := json.Marshal(summary)
			if err != nil {
				log.Error("failed to encode summary event", "error", err)
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

func (h *reportHandlers) Insight(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	insight, err := h.InsightSvc.GetInsight(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, insight)
}
