// Package config loads the finance configuration file: pricing plans,
// investment assumptions, and business targets. Everything the engine
// needs besides the cost items themselves comes from here.
package config

import (
	"fmt"
	"os"

	"github.com/brightlearn/backend/internal/finance"
	"github.com/brightlearn/backend/internal/model"
	"gopkg.in/yaml.v3"
)

// FinanceConfig mirrors the finance.yaml file.
type FinanceConfig struct {
	Currency           string                         `yaml:"currency"`
	Plans              []PlanConfig                   `yaml:"plans"`
	Year1TargetClients int                            `yaml:"year1_target_clients"`
	ClientDistribution map[string]float64             `yaml:"client_distribution"`
	Investment         *finance.InvestmentAssumptions `yaml:"investment"`
}

// PlanConfig is one pricing plan entry in the file.
type PlanConfig struct {
	Key                     string  `yaml:"key"`
	Label                   string  `yaml:"label"`
	AnnualPrice             float64 `yaml:"annual_price"`
	RecognitionPeriodMonths int     `yaml:"recognition_period_months"`
	PaymentPeriodMonths     int     `yaml:"payment_period_months"`
}

// LoadFinance reads and validates the finance config file.
//
// Defaulting happens here, once, so the engine only ever sees complete
// plans: an omitted payment period becomes 12, and an omitted
// recognition period falls back to the payment period. Plans that are
// invalid after defaulting (non-positive price, recognition shorter
// than payment) are a load error, not a silent exclusion.
func LoadFinance(path string) (*FinanceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read finance config: %w", err)
	}

	var cfg FinanceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse finance config: %w", err)
	}

	if cfg.Currency == "" {
		cfg.Currency = "EUR"
	}
	if cfg.Year1TargetClients < 0 {
		return nil, fmt.Errorf("finance config: year1_target_clients must not be negative")
	}
	if len(cfg.Plans) == 0 {
		return nil, fmt.Errorf("finance config: at least one pricing plan is required")
	}

	seen := make(map[string]bool, len(cfg.Plans))
	for i := range cfg.Plans {
		p := &cfg.Plans[i]
		if p.Key == "" {
			return nil, fmt.Errorf("finance config: plan %d has no key", i)
		}
		if seen[p.Key] {
			return nil, fmt.Errorf("finance config: duplicate plan key %q", p.Key)
		}
		seen[p.Key] = true

		if p.PaymentPeriodMonths == 0 {
			p.PaymentPeriodMonths = 12
		}
		if p.RecognitionPeriodMonths == 0 {
			p.RecognitionPeriodMonths = p.PaymentPeriodMonths
		}
		if p.AnnualPrice <= 0 {
			return nil, fmt.Errorf("finance config: plan %q has non-positive annual price", p.Key)
		}
		if p.RecognitionPeriodMonths < p.PaymentPeriodMonths {
			return nil, fmt.Errorf("finance config: plan %q recognizes %d months but collects %d — recognition must cover the payment period",
				p.Key, p.RecognitionPeriodMonths, p.PaymentPeriodMonths)
		}
	}

	if cfg.Investment == nil {
		assumptions := finance.DefaultInvestmentAssumptions()
		cfg.Investment = &assumptions
	}

	return &cfg, nil
}

// PricingPlans converts the configured plans into model plans.
func (c *FinanceConfig) PricingPlans() []*model.PricingPlan {
	plans := make([]*model.PricingPlan, 0, len(c.Plans))
	for _, p := range c.Plans {
		plans = append(plans, &model.PricingPlan{
			Key:                     p.Key,
			Label:                   p.Label,
			AnnualPrice:             p.AnnualPrice,
			RecognitionPeriodMonths: p.RecognitionPeriodMonths,
			PaymentPeriodMonths:     p.PaymentPeriodMonths,
		})
	}
	return plans
}
