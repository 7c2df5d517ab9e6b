package finance

import "github.com/brightlearn/backend/internal/model"

// InvestmentPhaseAssumption describes one phase of the initial
// investment: how many months of operating costs it covers and the
// one-time outlays (legal, infrastructure setup) attached to it.
type InvestmentPhaseAssumption struct {
	Name         string  `yaml:"name"`
	RunwayMonths float64 `yaml:"runway_months"`
	OneTimeCosts float64 `yaml:"one_time_costs"`
	Description  string  `yaml:"description"`
}

// InvestmentAssumptions parameterize the investment estimate. The
// contingency rate widens the max bound above the phase sum. All values
// are overridable via the finance config; the engine holds no hidden
// multipliers.
type InvestmentAssumptions struct {
	Phases          []InvestmentPhaseAssumption `yaml:"phases"`
	ContingencyRate float64                     `yaml:"contingency_rate"`
}

// DefaultInvestmentAssumptions is the baseline assumption set: six
// months of runway across launch/growth/scale plus standard setup
// outlays, with a 25% contingency on the max bound.
func DefaultInvestmentAssumptions() InvestmentAssumptions {
	return InvestmentAssumptions{
		Phases: []InvestmentPhaseAssumption{
			{Name: "launch", RunwayMonths: 3, OneTimeCosts: 15000, Description: "company setup, legal, initial infrastructure"},
			{Name: "growth", RunwayMonths: 2, OneTimeCosts: 5000, Description: "first marketing push"},
			{Name: "scale", RunwayMonths: 1, OneTimeCosts: 0, Description: "buffer toward self-sustaining revenue"},
		},
		ContingencyRate: 0.25,
	}
}

// Investment derives the one-time initial-investment estimate from the
// aggregated monthly cost base. Each phase amount is its runway months
// of operating cost plus its one-time outlays; the min bound is the
// phase sum and the max bound adds the contingency rate on top. With
// zero cost items the range is driven by the one-time outlays alone and
// is never negative.
func Investment(totals model.FinanceTotals, assumptions InvestmentAssumptions, currency string) *model.InvestmentBreakdown {
	monthly := totals.Total

	breakdown := make([]model.InvestmentPhase, 0, len(assumptions.Phases))
	var sum float64
	for _, phase := range assumptions.Phases {
		amount := monthly*phase.RunwayMonths + phase.OneTimeCosts
		sum += amount
		breakdown = append(breakdown, model.InvestmentPhase{
			Phase:       phase.Name,
			Amount:      amount,
			Description: phase.Description,
		})
	}

	return &model.InvestmentBreakdown{
		Total: model.InvestmentRange{
			Min: sum,
			Max: sum * (1 + assumptions.ContingencyRate),
		},
		Breakdown: breakdown,
		Currency:  currency,
	}
}
