package finance

import (
	"fmt"
	"math"

	"github.com/brightlearn/backend/internal/model"
)

// GrowthCurve maps a month (1..horizon) to a client count on the way to
// targetClients. Curves must be deterministic; the projection calls one
// curve value per month.
type GrowthCurve func(month, horizonMonths, targetClients int) int

// LinearRamp grows the client base linearly, reaching targetClients in
// the final month.
func LinearRamp(month, horizonMonths, targetClients int) int {
	return int(math.Round(float64(targetClients) * float64(month) / float64(horizonMonths)))
}

// SCurveRamp follows a logistic ramp: slow start, fast middle, and a
// plateau at targetClients. Midpoint sits at half the horizon.
func SCurveRamp(month, horizonMonths, targetClients int) int {
	k := 8.0 / float64(horizonMonths)
	mid := float64(horizonMonths) / 2
	v := float64(targetClients) / (1 + math.Exp(-k*(float64(month)-mid)))
	return int(math.Round(v))
}

// ProjectMonths produces the month-by-month client and recognized
// revenue series for charting: one point per month from 1 to
// horizonMonths, each month's revenue being that month's client count
// times the plan's monthly recognized revenue, with a running
// cumulative sum. A nil curve defaults to LinearRamp.
func ProjectMonths(plan *model.PricingPlan, targetClients, horizonMonths int, curve GrowthCurve) ([]model.ProjectionPoint, error) {
	monthlyPerClient, err := MonthlyRecognizedRevenue(plan)
	if err != nil {
		return nil, err
	}
	if horizonMonths <= 0 {
		return nil, fmt.Errorf("%w: projection horizon must be positive, got %d", ErrInvalidCostData, horizonMonths)
	}
	if targetClients < 0 {
		return nil, fmt.Errorf("%w: target clients must not be negative, got %d", ErrInvalidCostData, targetClients)
	}
	if curve == nil {
		curve = LinearRamp
	}

	points := make([]model.ProjectionPoint, 0, horizonMonths)
	cumulative := 0.0
	for month := 1; month <= horizonMonths; month++ {
		clients := curve(month, horizonMonths, targetClients)
		if clients < 0 {
			clients = 0
		}
		revenue := float64(clients) * monthlyPerClient
		cumulative += revenue
		points = append(points, model.ProjectionPoint{
			Month:                    month,
			Clients:                  clients,
			MonthlyRecognizedRevenue: revenue,
			CumulativeRevenue:        cumulative,
		})
	}
	return points, nil
}
