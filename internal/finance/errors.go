// Package finance implements the financial modeling engine: cost
// aggregation, recognized-revenue math, break-even, investment, and
// month-by-month projections. Every computation is a pure function of
// its inputs; persistence and plan selection live with the callers.
package finance

import "errors"

var (
	// ErrInvalidCostData marks a cost item that would corrupt totals
	// (negative or non-finite amount, unknown category).
	ErrInvalidCostData = errors.New("invalid financial data")

	// ErrPlanDataIncomplete marks a plan that cannot support revenue math
	// (zero/negative price or recognition period).
	ErrPlanDataIncomplete = errors.New("plan data incomplete")

	// ErrNoPlanSelected is returned by calculations that need a plan when
	// none was supplied. There is no fallback default plan.
	ErrNoPlanSelected = errors.New("no plan selected")
)
