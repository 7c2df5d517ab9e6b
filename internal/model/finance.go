package model

// CostBucket groups the cost items that fall under one bucket key.
type CostBucket struct {
	Items []*CostItem `json:"items"`
	Total float64     `json:"total"`
}

// CostStructure is the canonical nested grouping of cost items.
// Every active item appears in exactly one bucket.
type CostStructure struct {
	Fixed    map[BucketKey]*CostBucket `json:"fixed"`
	Variable map[BucketKey]*CostBucket `json:"variable"`
}

// FinanceTotals are the derived totals of a cost structure.
// Invariant: Total == Fixed + Variable == sum of ByCategory values.
type FinanceTotals struct {
	Total      float64               `json:"total"`
	Fixed      float64               `json:"fixed"`
	Variable   float64               `json:"variable"`
	ByCategory map[BucketKey]float64 `json:"by_category"`
}

// FinanceSnapshot is the aggregate the engine operates on. It is built
// fresh from the cost-item store and plan config on every computation
// cycle and never mutated in place.
type FinanceSnapshot struct {
	Currency   string               `json:"currency"`
	Costs      *CostStructure       `json:"costs"`
	Totals     FinanceTotals        `json:"totals"`
	Revenue    *RevenueModel        `json:"revenue"`
	Investment *InvestmentBreakdown `json:"investment,omitempty"`
}

// BreakEvenResult holds the client counts needed to cover costs against
// one selected plan. Derived, never stored.
type BreakEvenResult struct {
	ClientsPerYear       int     `json:"clients_per_year"`
	ClientsPerMonth      float64 `json:"clients_per_month"`
	MonthlyCosts         float64 `json:"monthly_costs"`
	AnnualCosts          float64 `json:"annual_costs"`
	AnnualPricePerClient float64 `json:"annual_price_per_client"`
}

// InvestmentBreakdown is the one-time initial-investment estimate.
type InvestmentBreakdown struct {
	Total     InvestmentRange   `json:"total"`
	Breakdown []InvestmentPhase `json:"breakdown"`
	Currency  string            `json:"currency,omitempty"`
}

// InvestmentRange is a min/max estimate band.
type InvestmentRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// InvestmentPhase is one phase line of the investment breakdown.
type InvestmentPhase struct {
	Phase       string  `json:"phase"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// ProjectionPoint is one month of the client-growth / revenue series.
type ProjectionPoint struct {
	Month                    int     `json:"month"`
	Clients                  int     `json:"clients"`
	MonthlyRecognizedRevenue float64 `json:"monthly_recognized_revenue"`
	CumulativeRevenue        float64 `json:"cumulative_revenue"`
}
