package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brightlearn/backend/internal/finance"
	"github.com/brightlearn/backend/internal/model"
	"github.com/brightlearn/backend/internal/service"
)

const defaultProjectionMonths = 24

// FinanceHandler serves the financial model: snapshot, break-even,
// investment, and projection endpoints.
type FinanceHandler struct {
	svc service.FinanceService
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(svc service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// financeError maps engine/service errors to the JSON error contract.
// Expected data incompleteness renders as a "data missing" state, never
// as a 500.
func financeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, finance.ErrNoPlanSelected):
		writeError(w, http.StatusUnprocessableEntity, "no_plan_selected")
	case errors.Is(err, service.ErrUnknownPlan):
		writeError(w, http.StatusNotFound, "plan_not_found")
	case errors.Is(err, finance.ErrPlanDataIncomplete):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_plan_data")
	case errors.Is(err, finance.ErrInvalidCostData):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_financial_data")
	default:
		slog.Error("finance computation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

// Summary handles GET /api/finance/summary.
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil {
		financeError(w, err)
		return
	}
	roundSnapshot(snap)
	writeJSON(w, http.StatusOK, map[string]any{"snapshot": snap})
}

// BreakEven handles GET /api/finance/break-even?plan=KEY.
func (h *FinanceHandler) BreakEven(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.BreakEven(r.Context(), r.URL.Query().Get("plan"))
	if err != nil {
		financeError(w, err)
		return
	}
	result.MonthlyCosts = finance.Round2(result.MonthlyCosts)
	result.AnnualCosts = finance.Round2(result.AnnualCosts)
	writeJSON(w, http.StatusOK, map[string]any{"break_even": result})
}

// Investment handles GET /api/finance/investment.
func (h *FinanceHandler) Investment(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.svc.Investment(r.Context())
	if err != nil {
		financeError(w, err)
		return
	}
	roundInvestment(breakdown)
	writeJSON(w, http.StatusOK, map[string]any{"investment": breakdown})
}

// Projection handles GET /api/finance/projection?plan=KEY&months=N.
func (h *FinanceHandler) Projection(w http.ResponseWriter, r *http.Request) {
	months := defaultProjectionMonths
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_months")
			return
		}
		months = parsed
	}

	points, err := h.svc.Projection(r.Context(), r.URL.Query().Get("plan"), months)
	if err != nil {
		financeError(w, err)
		return
	}
	for i := range points {
		points[i].MonthlyRecognizedRevenue = finance.Round2(points[i].MonthlyRecognizedRevenue)
		points[i].CumulativeRevenue = finance.Round2(points[i].CumulativeRevenue)
	}
	writeJSON(w, http.StatusOK, map[string]any{"projection": points})
}

// Currency magnitudes round to 2 decimals at the boundary; client
// counts are already integers or intentionally fractional averages.
func roundSnapshot(snap *model.FinanceSnapshot) {
	snap.Totals.Total = finance.Round2(snap.Totals.Total)
	snap.Totals.Fixed = finance.Round2(snap.Totals.Fixed)
	snap.Totals.Variable = finance.Round2(snap.Totals.Variable)
	for key, v := range snap.Totals.ByCategory {
		snap.Totals.ByCategory[key] = finance.Round2(v)
	}
	for _, bucket := range snap.Costs.Fixed {
		bucket.Total = finance.Round2(bucket.Total)
	}
	for _, bucket := range snap.Costs.Variable {
		bucket.Total = finance.Round2(bucket.Total)
	}
	snap.Revenue.AverageAnnualPrice = finance.Round2(snap.Revenue.AverageAnnualPrice)
	snap.Revenue.AverageMonthlyPerClient = finance.Round2(snap.Revenue.AverageMonthlyPerClient)
	if snap.Investment != nil {
		roundInvestment(snap.Investment)
	}
}

func roundInvestment(b *model.InvestmentBreakdown) {
	b.Total.Min = finance.Round2(b.Total.Min)
	b.Total.Max = finance.Round2(b.Total.Max)
	for i := range b.Breakdown {
		b.Breakdown[i].Amount = finance.Round2(b.Breakdown[i].Amount)
	}
}
