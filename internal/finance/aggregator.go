package finance

import (
	"fmt"
	"math"

	"github.com/brightlearn/backend/internal/model"
)

// Aggregate groups active cost items into the canonical fixed/variable
// bucket structure. Every bucket key is present in the result even when
// empty, so consumers can render a stable category list.
//
// Aggregation fails fast on bad input: a negative or non-finite amount,
// or a category that maps to no known bucket, rejects the whole
// computation. Silently coercing such items to zero would hide
// data-entry errors in a financial report.
func Aggregate(items []*model.CostItem) (*model.CostStructure, error) {
	cs := &model.CostStructure{
		Fixed:    make(map[model.BucketKey]*model.CostBucket, len(model.FixedBuckets)),
		Variable: make(map[model.BucketKey]*model.CostBucket, len(model.VariableBuckets)),
	}
	for _, key := range model.FixedBuckets {
		cs.Fixed[key] = &model.CostBucket{}
	}
	for _, key := range model.VariableBuckets {
		cs.Variable[key] = &model.CostBucket{}
	}

	for _, item := range items {
		if item.Amount < 0 || math.IsNaN(item.Amount) || math.IsInf(item.Amount, 0) {
			return nil, fmt.Errorf("%w: item %q has amount %v", ErrInvalidCostData, item.Label, item.Amount)
		}
		key, known := model.BucketFor(item.Category)
		if !known {
			return nil, fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidCostData, item.Label, item.Category)
		}

		group := cs.Fixed
		if model.IsVariable(key) {
			group = cs.Variable
		}
		bucket := group[key]
		bucket.Items = append(bucket.Items, item)
		bucket.Total += item.Amount
	}

	return cs, nil
}

// CategoryTotal sums the amounts of one bucket's items. Empty bucket is 0.
func CategoryTotal(items []*model.CostItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Amount
	}
	return total
}

// Totals derives the aggregate totals of a cost structure.
// Total == Fixed + Variable == sum over ByCategory.
func Totals(cs *model.CostStructure) model.FinanceTotals {
	totals := model.FinanceTotals{
		ByCategory: make(map[model.BucketKey]float64, len(cs.Fixed)+len(cs.Variable)),
	}
	for key, bucket := range cs.Fixed {
		totals.ByCategory[key] = bucket.Total
		totals.Fixed += bucket.Total
	}
	for key, bucket := range cs.Variable {
		totals.ByCategory[key] = bucket.Total
		totals.Variable += bucket.Total
	}
	totals.Total = totals.Fixed + totals.Variable
	return totals
}
