package repository

import (
	"context"

	"github.com/brightlearn/backend/internal/model"
)

// CostItemRepository is the persistence interface for the cost item store.
// The finance engine consumes one ListActive read per computation cycle.
type CostItemRepository interface {
	ListActive(ctx context.Context) ([]*model.CostItem, error)
	// ReplaceAll deletes the existing items and inserts the given list in
	// one transaction, preserving the supplied order.
	ReplaceAll(ctx context.Context, items []*model.CostItem) error
}
