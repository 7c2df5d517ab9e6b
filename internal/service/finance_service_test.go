package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/brightlearn/backend/internal/config"
	"github.com/brightlearn/backend/internal/finance"
	"github.com/brightlearn/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockCostItemRepo struct {
	listActiveFunc func(ctx context.Context) ([]*model.CostItem, error)
	replaceFunc    func(ctx context.Context, items []*model.CostItem) error
}

func (m *mockCostItemRepo) ListActive(ctx context.Context) ([]*model.CostItem, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx)
	}
	return nil, nil
}

func (m *mockCostItemRepo) ReplaceAll(ctx context.Context, items []*model.CostItem) error {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, items)
	}
	return nil
}

func testConfig() *config.FinanceConfig {
	assumptions := finance.DefaultInvestmentAssumptions()
	return &config.FinanceConfig{
		Currency: "EUR",
		Plans: []config.PlanConfig{
			{Key: "standard", Label: "Standard", AnnualPrice: 2499, RecognitionPeriodMonths: 12, PaymentPeriodMonths: 12},
			{Key: "premium", Label: "Premium", AnnualPrice: 3999, RecognitionPeriodMonths: 18, PaymentPeriodMonths: 12},
		},
		Year1TargetClients: 120,
		Investment:         &assumptions,
	}
}

func costItems(items ...*model.CostItem) *mockCostItemRepo {
	return &mockCostItemRepo{
		listActiveFunc: func(_ context.Context) ([]*model.CostItem, error) {
			return items, nil
		},
	}
}

// ---------------------------------------------------------------------------
// Snapshot
// ---------------------------------------------------------------------------

func TestFinanceService_Snapshot(t *testing.T) {
	repo := costItems(
		&model.CostItem{Label: "CEO", Amount: 5000, Category: "leadership"},
		&model.CostItem{Label: "Ads", Amount: 1500, Category: "marketing"},
	)
	svc := NewFinanceService(repo, testConfig())

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.Currency != "EUR" {
		t.Errorf("expected currency EUR, got %q", snap.Currency)
	}
	if snap.Totals.Total != 6500 || snap.Totals.Fixed != 5000 || snap.Totals.Variable != 1500 {
		t.Errorf("unexpected totals: %+v", snap.Totals)
	}
	if len(snap.Revenue.Plans) != 2 {
		t.Errorf("expected 2 plans, got %d", len(snap.Revenue.Plans))
	}
	if snap.Revenue.AverageAnnualPrice != 3249 {
		t.Errorf("expected average annual price 3249, got %v", snap.Revenue.AverageAnnualPrice)
	}
	// (2499/12 + 3999/18) / 2
	wantAvgMonthly := (2499.0/12 + 3999.0/18) / 2
	if math.Abs(snap.Revenue.AverageMonthlyPerClient-wantAvgMonthly) > 1e-9 {
		t.Errorf("expected average monthly %v, got %v", wantAvgMonthly, snap.Revenue.AverageMonthlyPerClient)
	}
	if snap.Revenue.Year1Target.Clients != 120 {
		t.Errorf("expected year1 target 120, got %d", snap.Revenue.Year1Target.Clients)
	}
	if snap.Investment == nil || snap.Investment.Total.Min <= 0 {
		t.Errorf("expected investment breakdown, got %+v", snap.Investment)
	}
}

func TestFinanceService_Snapshot_InvalidCostItem(t *testing.T) {
	repo := costItems(&model.CostItem{Label: "Broken", Amount: -5, Category: "leadership"})
	svc := NewFinanceService(repo, testConfig())

	_, err := svc.Snapshot(context.Background())
	if !errors.Is(err, finance.ErrInvalidCostData) {
		t.Errorf("expected ErrInvalidCostData, got %v", err)
	}
}

func TestFinanceService_Snapshot_RepoError(t *testing.T) {
	repo := &mockCostItemRepo{
		listActiveFunc: func(_ context.Context) ([]*model.CostItem, error) {
			return nil, errors.New("db error")
		},
	}
	svc := NewFinanceService(repo, testConfig())
	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Error("expected error from repo failure")
	}
}

// ---------------------------------------------------------------------------
// BreakEven
// ---------------------------------------------------------------------------

func TestFinanceService_BreakEven(t *testing.T) {
	repo := costItems(
		&model.CostItem{Label: "CEO", Amount: 5000, Category: "leadership"},
		&model.CostItem{Label: "Dev", Amount: 3000, Category: "technical"},
	)
	svc := NewFinanceService(repo, testConfig())

	result, err := svc.BreakEven(context.Background(), "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ClientsPerYear != 39 {
		t.Errorf("expected 39 clients/year, got %d", result.ClientsPerYear)
	}
}

func TestFinanceService_BreakEven_NoPlanSelected(t *testing.T) {
	svc := NewFinanceService(costItems(), testConfig())
	_, err := svc.BreakEven(context.Background(), "")
	if !errors.Is(err, finance.ErrNoPlanSelected) {
		t.Errorf("expected ErrNoPlanSelected, got %v", err)
	}
}

func TestFinanceService_BreakEven_UnknownPlan(t *testing.T) {
	svc := NewFinanceService(costItems(), testConfig())
	_, err := svc.BreakEven(context.Background(), "enterprise")
	if !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("expected ErrUnknownPlan, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Investment / Projection
// ---------------------------------------------------------------------------

func TestFinanceService_Investment_NoCostItems(t *testing.T) {
	svc := NewFinanceService(costItems(), testConfig())
	breakdown, err := svc.Investment(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if breakdown.Total.Min <= 0 || breakdown.Total.Max < breakdown.Total.Min {
		t.Errorf("invalid range with zero cost items: %+v", breakdown.Total)
	}
}

func TestFinanceService_Projection(t *testing.T) {
	svc := NewFinanceService(costItems(), testConfig())
	points, err := svc.Projection(context.Background(), "premium", 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 24 {
		t.Fatalf("expected 24 points, got %d", len(points))
	}
	if points[23].Clients != 120 {
		t.Errorf("expected target 120 reached, got %d", points[23].Clients)
	}
}

func TestFinanceService_Projection_UnknownPlan(t *testing.T) {
	svc := NewFinanceService(costItems(), testConfig())
	if _, err := svc.Projection(context.Background(), "nope", 12); !errors.Is(err, ErrUnknownPlan) {
		t.Errorf("expected ErrUnknownPlan, got %v", err)
	}
}
