package finance

import (
	"fmt"
	"math"

	"github.com/brightlearn/backend/internal/model"
)

// BreakEven derives the client count needed to cover the aggregated
// costs with one plan's annual price.
//
// Clients pay a full year upfront, so the comparison is annualized on
// both sides: 12x the monthly cost base against the plan's annual
// price. ClientsPerYear rounds up — a fractional client cannot cover
// cost. ClientsPerMonth is the derived average, kept fractional for
// display.
func BreakEven(totals model.FinanceTotals, plan *model.PricingPlan) (*model.BreakEvenResult, error) {
	if plan == nil {
		return nil, ErrNoPlanSelected
	}
	if plan.AnnualPrice <= 0 {
		return nil, fmt.Errorf("%w: plan %q has no positive annual price", ErrPlanDataIncomplete, plan.Key)
	}

	monthlyCosts := totals.Total
	annualCosts := monthlyCosts * 12
	clientsPerYear := int(math.Ceil(annualCosts / plan.AnnualPrice))

	return &model.BreakEvenResult{
		ClientsPerYear:       clientsPerYear,
		ClientsPerMonth:      float64(clientsPerYear) / 12,
		MonthlyCosts:         monthlyCosts,
		AnnualCosts:          annualCosts,
		AnnualPricePerClient: plan.AnnualPrice,
	}, nil
}
