package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightlearn/backend/internal/config"
	"github.com/brightlearn/backend/internal/finance"
	"github.com/brightlearn/backend/internal/model"
)

// ErrUnknownPlan is returned when a plan key matches no configured plan.
var ErrUnknownPlan = errors.New("unknown plan")

// ---------------------------------------------------------------------------
// Minimal interfaces (only what FinanceService needs)
// ---------------------------------------------------------------------------

type FinanceCostItemRepo interface {
	ListActive(ctx context.Context) ([]*model.CostItem, error)
}

// ---------------------------------------------------------------------------
// FinanceService
// ---------------------------------------------------------------------------

// FinanceService computes the financial aggregates served by the API.
// Every method reads the cost-item store once and computes a fresh
// result; nothing is cached across calls, so a plan switch or cost edit
// is reflected on the next request.
type FinanceService interface {
	Snapshot(ctx context.Context) (*model.FinanceSnapshot, error)
	BreakEven(ctx context.Context, planKey string) (*model.BreakEvenResult, error)
	Investment(ctx context.Context) (*model.InvestmentBreakdown, error)
	Projection(ctx context.Context, planKey string, horizonMonths int) ([]model.ProjectionPoint, error)
}

type financeService struct {
	costItems FinanceCostItemRepo
	cfg       *config.FinanceConfig
}

// NewFinanceService creates a FinanceService over the cost-item store
// and the loaded finance config.
func NewFinanceService(costItems FinanceCostItemRepo, cfg *config.FinanceConfig) FinanceService {
	return &financeService{costItems: costItems, cfg: cfg}
}

func (s *financeService) totals(ctx context.Context) (*model.CostStructure, model.FinanceTotals, error) {
	items, err := s.costItems.ListActive(ctx)
	if err != nil {
		return nil, model.FinanceTotals{}, fmt.Errorf("list cost items: %w", err)
	}
	cs, err := finance.Aggregate(items)
	if err != nil {
		return nil, model.FinanceTotals{}, err
	}
	return cs, finance.Totals(cs), nil
}

func (s *financeService) selectPlan(planKey string) (*model.PricingPlan, error) {
	if planKey == "" {
		return nil, finance.ErrNoPlanSelected
	}
	for _, p := range s.cfg.PricingPlans() {
		if p.Key == planKey {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, planKey)
}

// Snapshot builds the full finance snapshot: bucketed costs, totals,
// the revenue model with blended averages, and the investment estimate.
func (s *financeService) Snapshot(ctx context.Context) (*model.FinanceSnapshot, error) {
	cs, totals, err := s.totals(ctx)
	if err != nil {
		return nil, err
	}

	plans := s.cfg.PricingPlans()
	avgAnnual, err := finance.AverageAnnualPrice(plans, s.cfg.ClientDistribution)
	if err != nil {
		return nil, err
	}
	avgMonthly, err := finance.AverageMonthlyPerClient(plans, s.cfg.ClientDistribution)
	if err != nil {
		return nil, err
	}

	return &model.FinanceSnapshot{
		Currency: s.cfg.Currency,
		Costs:    cs,
		Totals:   totals,
		Revenue: &model.RevenueModel{
			Plans:                   plans,
			AverageAnnualPrice:      avgAnnual,
			AverageMonthlyPerClient: avgMonthly,
			Year1Target:             model.Year1Target{Clients: s.cfg.Year1TargetClients},
		},
		Investment: finance.Investment(totals, *s.cfg.Investment, s.cfg.Currency),
	}, nil
}

// BreakEven computes the break-even client counts for the selected plan.
func (s *financeService) BreakEven(ctx context.Context, planKey string) (*model.BreakEvenResult, error) {
	plan, err := s.selectPlan(planKey)
	if err != nil {
		return nil, err
	}
	_, totals, err := s.totals(ctx)
	if err != nil {
		return nil, err
	}
	return finance.BreakEven(totals, plan)
}

// Investment computes the initial-investment estimate from the current
// cost base and the configured assumptions.
func (s *financeService) Investment(ctx context.Context) (*model.InvestmentBreakdown, error) {
	_, totals, err := s.totals(ctx)
	if err != nil {
		return nil, err
	}
	return finance.Investment(totals, *s.cfg.Investment, s.cfg.Currency), nil
}

// Projection produces the month-by-month growth series for the selected
// plan, ramping linearly toward the configured year-1 client target.
func (s *financeService) Projection(ctx context.Context, planKey string, horizonMonths int) ([]model.ProjectionPoint, error) {
	plan, err := s.selectPlan(planKey)
	if err != nil {
		return nil, err
	}
	return finance.ProjectMonths(plan, s.cfg.Year1TargetClients, horizonMonths, finance.LinearRamp)
}
