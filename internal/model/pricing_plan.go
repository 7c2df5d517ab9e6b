package model

// PricingPlan is a named annual-prepay pricing tier.
//
// Clients pay PaymentPeriodMonths upfront (typically 12) and receive
// RecognitionPeriodMonths of content/service. The business intentionally
// delivers more service-months than are paid for ("pay 12, get 18"), so
// RecognitionPeriodMonths >= PaymentPeriodMonths.
type PricingPlan struct {
	Key                     string  `json:"key"`
	Label                   string  `json:"label"`
	AnnualPrice             float64 `json:"annual_price"`
	RecognitionPeriodMonths int     `json:"recognition_period_months"`
	PaymentPeriodMonths     int     `json:"payment_period_months"`
}

// Complete reports whether the plan carries enough data to compute
// recognized revenue from it.
func (p *PricingPlan) Complete() bool {
	return p != nil && p.AnnualPrice > 0 && p.RecognitionPeriodMonths > 0
}

// RevenueModel holds the active pricing plans and blended averages.
type RevenueModel struct {
	Plans                   []*PricingPlan `json:"plans"`
	AverageAnnualPrice      float64        `json:"average_annual_price"`
	AverageMonthlyPerClient float64        `json:"average_monthly_per_client"`
	Year1Target             Year1Target    `json:"year1_target"`
}

// Year1Target is the first-year client acquisition goal.
type Year1Target struct {
	Clients int `json:"clients"`
}

// PlanByKey returns the plan with the given key, or nil.
func (m *RevenueModel) PlanByKey(key string) *PricingPlan {
	for _, p := range m.Plans {
		if p.Key == key {
			return p
		}
	}
	return nil
}
