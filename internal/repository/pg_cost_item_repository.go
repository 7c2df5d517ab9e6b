package repository

import (
	"context"

	"github.com/brightlearn/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgCostItemRepository is the PostgreSQL implementation of CostItemRepository.
type PgCostItemRepository struct {
	pool *pgxpool.Pool
}

// NewPgCostItemRepository creates a PgCostItemRepository.
func NewPgCostItemRepository(pool *pgxpool.Pool) *PgCostItemRepository {
	return &PgCostItemRepository{pool: pool}
}

// ListActive returns all active cost items in display order.
func (r *PgCostItemRepository) ListActive(ctx context.Context) ([]*model.CostItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, label, amount, category, details, active, sort_order, created_at, updated_at
		 FROM cost_items WHERE active ORDER BY sort_order, created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*model.CostItem
	for rows.Next() {
		var item model.CostItem
		if err := rows.Scan(
			&item.ID, &item.Label, &item.Amount, &item.Category,
			&item.Details, &item.Active, &item.SortOrder,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// ReplaceAll deletes the existing items and inserts the given list in one
// transaction, preserving the supplied order.
func (r *PgCostItemRepository) ReplaceAll(ctx context.Context, items []*model.CostItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM cost_items`); err != nil {
		return err
	}

	for i, item := range items {
		item.SortOrder = i
		item.Active = true
		if err := tx.QueryRow(ctx,
			`INSERT INTO cost_items (label, amount, category, details, active, sort_order)
			 VALUES ($1, $2, $3, $4, TRUE, $5)
			 RETURNING id, created_at, updated_at`,
			item.Label, item.Amount, item.Category, item.Details, i,
		).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
