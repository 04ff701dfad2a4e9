package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

const (
	orderColumns = `folio, registered_at, block, station, fuel_grade, liters, total, delivery_date, priority, status,
		requested_by, carrier, vehicle_unit, plate1, plate2, operator, assignment_ref, eta, notes`

	queryCreateOrder = `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	queryListOrders = `SELECT ` + orderColumns + ` FROM orders ORDER BY registered_at DESC`
	queryGetOrder   = `SELECT ` + orderColumns + ` FROM orders WHERE folio = $1`

	queryUpdateOrder = `UPDATE orders SET block = $1, status = $2, carrier = $3, vehicle_unit = $4, plate1 = $5, plate2 = $6,
		operator = $7, assignment_ref = $8, eta = $9, notes = $10 WHERE folio = $11`
)

func (r *Repository) CreateOrder(ctx context.Context, o model.Order) error {
	_, err := r.db.ExecContext(ctx, queryCreateOrder,
		o.Folio,
		o.RegisteredAt,
		nullString(o.Block),
		o.Station,
		o.FuelGrade,
		o.Liters,
		o.Total,
		o.DeliveryDate,
		o.Priority,
		string(o.Status),
		o.RequestingUser,
		o.Assignment.Carrier,
		o.Assignment.VehicleUnit,
		o.Assignment.Plate1,
		o.Assignment.Plate2,
		o.Assignment.Operator,
		o.Assignment.Reference,
		o.Assignment.ETA,
		o.Notes,
	)
	if err != nil {
		return r.wrap("create order", err)
	}

	return nil
}

// ListOrders - все заказы, новые первыми
func (r *Repository) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx, queryListOrders)
	if err != nil {
		return nil, r.wrap("list orders", err)
	}
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, r.wrap("scan order", err)
		}
		result = append(result, o)
	}

	if err := rows.Err(); err != nil {
		return nil, r.wrap("list orders", err)
	}

	return result, nil
}

func (r *Repository) GetOrder(ctx context.Context, folio string) (*model.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, queryGetOrder, folio))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, r.wrap("get order", err)
	}

	return &o, nil
}

// UpdateOrder - перезаписывает изменяемые поля заказа: блок, статус, назначение, заметку
func (r *Repository) UpdateOrder(ctx context.Context, o model.Order) error {
	res, err := r.db.ExecContext(ctx, queryUpdateOrder,
		nullString(o.Block),
		string(o.Status),
		o.Assignment.Carrier,
		o.Assignment.VehicleUnit,
		o.Assignment.Plate1,
		o.Assignment.Plate2,
		o.Assignment.Operator,
		o.Assignment.Reference,
		o.Assignment.ETA,
		o.Notes,
		o.Folio,
	)
	if err != nil {
		return r.wrap("update order", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrap("update order", err)
	}
	if affected == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row scanner) (model.Order, error) {
	var (
		o      model.Order
		block  sql.NullString
		status string
	)

	err := row.Scan(
		&o.Folio,
		&o.RegisteredAt,
		&block,
		&o.Station,
		&o.FuelGrade,
		&o.Liters,
		&o.Total,
		&o.DeliveryDate,
		&o.Priority,
		&status,
		&o.RequestingUser,
		&o.Assignment.Carrier,
		&o.Assignment.VehicleUnit,
		&o.Assignment.Plate1,
		&o.Assignment.Plate2,
		&o.Assignment.Operator,
		&o.Assignment.Reference,
		&o.Assignment.ETA,
		&o.Notes,
	)
	if err != nil {
		return o, err
	}

	o.Block = block.String
	o.Status = model.OrderStatus(status)

	return o, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
