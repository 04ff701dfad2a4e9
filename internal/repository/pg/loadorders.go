package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

const (
	queryGetLoadOrder    = `SELECT reference, current_folio, status, updated_at FROM load_orders WHERE reference = $1`
	queryUpdateLoadOrder = `UPDATE load_orders SET current_folio = $1, status = $2, updated_at = $3 WHERE reference = $4`
)

func (r *Repository) GetLoadOrder(ctx context.Context, reference string) (*model.LoadOrder, error) {
	var lo model.LoadOrder
	err := r.db.QueryRowContext(ctx, queryGetLoadOrder, reference).
		Scan(&lo.Reference, &lo.CurrentFolio, &lo.Status, &lo.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrLoadOrderNotFound
		}
		return nil, r.wrap("get load order", err)
	}

	return &lo, nil
}

func (r *Repository) UpdateLoadOrder(ctx context.Context, lo model.LoadOrder) error {
	_, err := r.db.ExecContext(ctx, queryUpdateLoadOrder, lo.CurrentFolio, lo.Status, lo.UpdatedAt, lo.Reference)
	if err != nil {
		return r.wrap("update load order", err)
	}

	return nil
}
