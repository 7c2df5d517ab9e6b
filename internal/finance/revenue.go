package finance

import (
	"fmt"
	"math"

	"github.com/brightlearn/backend/internal/model"
)

// MonthlyRecognizedRevenue returns the per-month recognized revenue for a
// plan under accrual accounting: the annual price spread evenly over the
// recognition period. The divisor is always the plan's recognition period,
// not the 12-month payment period — a "pay 12, get 18" plan recognizes
// its price over 18 months.
func MonthlyRecognizedRevenue(plan *model.PricingPlan) (float64, error) {
	if plan == nil {
		return 0, ErrNoPlanSelected
	}
	if !plan.Complete() {
		return 0, fmt.Errorf("%w: plan %q (price %v, recognition %d months)",
			ErrPlanDataIncomplete, plan.Key, plan.AnnualPrice, plan.RecognitionPeriodMonths)
	}
	return plan.AnnualPrice / float64(plan.RecognitionPeriodMonths), nil
}

// AverageAnnualPrice blends the annual prices of the supplied plans.
// With a nil distribution this is the arithmetic mean; otherwise a
// weighted mean by the client-distribution share keyed per plan.
// Incomplete plans are excluded; if no complete plan remains, the
// average cannot be computed.
func AverageAnnualPrice(plans []*model.PricingPlan, dist map[string]float64) (float64, error) {
	return averageOver(plans, dist, func(p *model.PricingPlan) float64 {
		return p.AnnualPrice
	})
}

// AverageMonthlyPerClient blends the monthly recognized revenue per
// client across plans, with the same weighting rules as AverageAnnualPrice.
func AverageMonthlyPerClient(plans []*model.PricingPlan, dist map[string]float64) (float64, error) {
	return averageOver(plans, dist, func(p *model.PricingPlan) float64 {
		return p.AnnualPrice / float64(p.RecognitionPeriodMonths)
	})
}

func averageOver(plans []*model.PricingPlan, dist map[string]float64, value func(*model.PricingPlan) float64) (float64, error) {
	var sum, weightSum float64
	for _, p := range plans {
		if !p.Complete() {
			continue
		}
		weight := 1.0
		if dist != nil {
			weight = dist[p.Key]
			if weight <= 0 {
				continue
			}
		}
		sum += value(p) * weight
		weightSum += weight
	}
	if weightSum == 0 {
		return 0, fmt.Errorf("%w: no complete plan to average over", ErrPlanDataIncomplete)
	}
	avg := sum / weightSum
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return 0, fmt.Errorf("%w: average is not finite", ErrPlanDataIncomplete)
	}
	return avg, nil
}
