package finance

import (
	"errors"
	"math"
	"testing"
)

func TestProjectMonths_LinearRamp(t *testing.T) {
	p := plan("standard", 2400, 12) // 200/month recognized
	points, err := ProjectMonths(p, 120, 12, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 12 {
		t.Fatalf("expected 12 points, got %d", len(points))
	}

	for i, pt := range points {
		month := i + 1
		if pt.Month != month {
			t.Errorf("point %d: expected month %d, got %d", i, month, pt.Month)
		}
		wantClients := int(math.Round(120 * float64(month) / 12))
		if pt.Clients != wantClients {
			t.Errorf("month %d: expected %d clients, got %d", month, wantClients, pt.Clients)
		}
		wantRevenue := float64(wantClients) * 200
		if math.Abs(pt.MonthlyRecognizedRevenue-wantRevenue) > 1e-9 {
			t.Errorf("month %d: expected revenue %v, got %v", month, wantRevenue, pt.MonthlyRecognizedRevenue)
		}
	}

	if points[11].Clients != 120 {
		t.Errorf("expected target reached in final month, got %d", points[11].Clients)
	}
}

func TestProjectMonths_CumulativeNonDecreasing(t *testing.T) {
	points, err := ProjectMonths(plan("premium", 3999, 18), 250, 36, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := 0.0
	for _, pt := range points {
		if pt.CumulativeRevenue < prev {
			t.Errorf("month %d: cumulative revenue decreased (%v -> %v)", pt.Month, prev, pt.CumulativeRevenue)
		}
		prev = pt.CumulativeRevenue
	}
}

func TestProjectMonths_Deterministic(t *testing.T) {
	p := plan("standard", 2499, 12)
	a, err := ProjectMonths(p, 120, 24, SCurveRamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ProjectMonths(p, 120, 24, SCurveRamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("month %d differs between runs: %+v vs %+v", a[i].Month, a[i], b[i])
		}
	}
}

func TestProjectMonths_CustomCurve(t *testing.T) {
	// Step curve: nobody until the last month, then everyone.
	step := func(month, horizon, target int) int {
		if month == horizon {
			return target
		}
		return 0
	}
	points, err := ProjectMonths(plan("standard", 2400, 12), 50, 6, step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pt := range points[:5] {
		if pt.Clients != 0 || pt.MonthlyRecognizedRevenue != 0 {
			t.Errorf("month %d: expected zero, got %+v", pt.Month, pt)
		}
	}
	if points[5].Clients != 50 {
		t.Errorf("expected 50 clients in final month, got %d", points[5].Clients)
	}
	if points[5].CumulativeRevenue != points[5].MonthlyRecognizedRevenue {
		t.Errorf("cumulative should equal final month revenue, got %v", points[5].CumulativeRevenue)
	}
}

func TestProjectMonths_SCurvePlateausAtTarget(t *testing.T) {
	points, err := ProjectMonths(plan("standard", 2400, 12), 100, 24, SCurveRamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := points[len(points)-1]
	if last.Clients < 95 || last.Clients > 100 {
		t.Errorf("expected S-curve near target at horizon, got %d", last.Clients)
	}
	for _, pt := range points {
		if pt.Clients < 0 || pt.Clients > 100 {
			t.Errorf("month %d: clients %d out of [0,100]", pt.Month, pt.Clients)
		}
	}
}

func TestProjectMonths_InvalidInputs(t *testing.T) {
	p := plan("standard", 2400, 12)

	if _, err := ProjectMonths(p, 120, 0, nil); !errors.Is(err, ErrInvalidCostData) {
		t.Errorf("expected error for zero horizon, got %v", err)
	}
	if _, err := ProjectMonths(p, -5, 12, nil); !errors.Is(err, ErrInvalidCostData) {
		t.Errorf("expected error for negative target, got %v", err)
	}
	if _, err := ProjectMonths(plan("free", 0, 12), 120, 12, nil); !errors.Is(err, ErrPlanDataIncomplete) {
		t.Errorf("expected ErrPlanDataIncomplete for zero-price plan, got %v", err)
	}
	if _, err := ProjectMonths(nil, 120, 12, nil); !errors.Is(err, ErrNoPlanSelected) {
		t.Errorf("expected ErrNoPlanSelected, got %v", err)
	}
}
