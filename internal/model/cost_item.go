package model

import "time"

// CostItem represents one line in the company's monthly cost breakdown.
type CostItem struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Amount    float64   `json:"amount"` // monthly amount in currency units, >= 0
	Category  string    `json:"category"`
	Details   string    `json:"details,omitempty"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CostItemInput is the request payload for one cost item line.
type CostItemInput struct {
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Details  string  `json:"details,omitempty"`
}
