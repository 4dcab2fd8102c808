package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/dto"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
	"github.com/javiermalaquita9-svg/finanzas-app/internal/models"
	"github.com/javiermalaquita9-svg/finanzas-app/pkg/helpers"
)

const insightSystemPrompt = "You are a personal finance assistant for a household budgeting app. " +
	"Given a user's monthly totals and expense breakdown, reply with short, concrete advice " +
	"(3 bullet points at most) in the same language as the category names. Never invent numbers."

type insightVertexAdapter interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type insightReports interface {
	Summary(ctx context.Context, uid string) (dto.SummaryResponse, error)
	Breakdown(ctx context.Context, uid, txType string) (dto.BreakdownResponse, error)
}

type insightService struct {
	vertex  insightVertexAdapter
	reports insightReports
}

func NewInsightService(vertex insightVertexAdapter, reports insightReports) *insightService {
	return &insightService{vertex: vertex, reports: reports}
}

// GetInsight renders the current financial position into a prompt and asks
// the model for advice. The model only ever sees aggregates, never individual
// transactions.
func (s *insightService) GetInsight(ctx context.Context, uid string) (dto.InsightResponse, error) {
	summary, err := s.reports.Summary(ctx, uid)
	if err != nil {
		return dto.InsightResponse{}, err
	}
	breakdown, err := s.reports.Breakdown(ctx, uid, models.TypeExpense)
	if err != nil {
		return dto.InsightResponse{}, err
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:          insightSystemPrompt,
		UserMessage:     renderInsightPrompt(summary, breakdown),
		Temperature:     helpers.Ptr(float32(0.4)),
		MaxOutputTokens: helpers.Ptr(int32(512)),
	})
	if err != nil {
		return dto.InsightResponse{}, errs.NewExternalServiceError("vertex", err.Error(), true)
	}
	if resp.Text == "" {
		return dto.InsightResponse{}, errs.NewExternalServiceError("vertex", "empty model response", true)
	}

	return dto.InsightResponse{Advice: resp.Text}, nil
}

func renderInsightPrompt(summary dto.SummaryResponse, breakdown dto.BreakdownResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Totals: income %s, expenses %s, savings %s, balance %s.\n",
		summary.Totals.Income, summary.Totals.Expense, summary.Totals.Saving, summary.Totals.Balance)

	b.WriteString("Expenses by category:\n")
	categories := make([]string, 0, len(breakdown.Categories))
	for name := range breakdown.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		fmt.Fprintf(&b, "- %s: %s\n", name, breakdown.Categories[name])
	}
	return b.String()
}
