package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/brightlearn/backend/internal/finance"
	"github.com/brightlearn/backend/internal/model"
	"github.com/brightlearn/backend/internal/repository"
)

// CostItemService is the admin surface for the cost item list.
type CostItemService interface {
	List(ctx context.Context) ([]*model.CostItem, error)
	// Replace validates the inputs and swaps the whole list atomically.
	Replace(ctx context.Context, inputs []model.CostItemInput) ([]*model.CostItem, error)
}

type costItemService struct {
	repo repository.CostItemRepository
}

// NewCostItemService creates a CostItemService.
func NewCostItemService(repo repository.CostItemRepository) CostItemService {
	return &costItemService{repo: repo}
}

func (s *costItemService) List(ctx context.Context) ([]*model.CostItem, error) {
	return s.repo.ListActive(ctx)
}

// Replace validates every input before touching the store, so a bad
// line never leaves the list half-replaced.
func (s *costItemService) Replace(ctx context.Context, inputs []model.CostItemInput) ([]*model.CostItem, error) {
	items := make([]*model.CostItem, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Label) == "" {
			return nil, fmt.Errorf("%w: item %d has no label", finance.ErrInvalidCostData, i)
		}
		if in.Amount < 0 || math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
			return nil, fmt.Errorf("%w: item %q has amount %v", finance.ErrInvalidCostData, in.Label, in.Amount)
		}
		if _, known := model.BucketFor(in.Category); !known {
			return nil, fmt.Errorf("%w: item %q has unknown category %q", finance.ErrInvalidCostData, in.Label, in.Category)
		}
		items = append(items, &model.CostItem{
			Label:    strings.TrimSpace(in.Label),
			Amount:   in.Amount,
			Category: in.Category,
			Details:  in.Details,
		})
	}

	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}
