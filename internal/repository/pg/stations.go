package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

const (
	queryListStations = `SELECT id, name, address, credit_available, price_extra, price_supreme, price_diesel
		FROM stations ORDER BY id`

	tankStatusColumns = `station_id, capacity_extra, capacity_supreme, capacity_diesel,
		avg_extra, avg_supreme, avg_diesel, volume_extra, volume_supreme, volume_diesel, last_updated`

	queryListTankStatuses = `SELECT ` + tankStatusColumns + ` FROM tank_status ORDER BY id`
	queryGetTankStatus    = `SELECT ` + tankStatusColumns + ` FROM tank_status WHERE station_id = $1 ORDER BY id LIMIT 1`

	queryUpdateTankVolumes = `UPDATE tank_status SET volume_extra = $1, volume_supreme = $2, volume_diesel = $3, last_updated = $4
		WHERE id = (SELECT id FROM tank_status WHERE station_id = $5 ORDER BY id LIMIT 1)`
)

type scanner interface {
	Scan(dest ...any) error
}

func (r *Repository) ListStations(ctx context.Context) ([]model.StationRecord, error) {
	rows, err := r.db.QueryContext(ctx, queryListStations)
	if err != nil {
		return nil, r.wrap("list stations", err)
	}
	defer rows.Close()

	result := make([]model.StationRecord, 0)
	for rows.Next() {
		var s model.StationRecord
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Credit, &s.PriceExtra, &s.PriceSupreme, &s.PriceDiesel); err != nil {
			return nil, r.wrap("scan station", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, r.wrap("list stations", err)
	}

	return result, nil
}

func (r *Repository) ListTankStatuses(ctx context.Context) ([]model.TankStatusRecord, error) {
	rows, err := r.db.QueryContext(ctx, queryListTankStatuses)
	if err != nil {
		return nil, r.wrap("list tank statuses", err)
	}
	defer rows.Close()

	result := make([]model.TankStatusRecord, 0)
	for rows.Next() {
		t, err := scanTankStatus(rows)
		if err != nil {
			return nil, r.wrap("scan tank status", err)
		}
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, r.wrap("list tank statuses", err)
	}

	return result, nil
}

func (r *Repository) GetTankStatus(ctx context.Context, stationID string) (*model.TankStatusRecord, error) {
	t, err := scanTankStatus(r.db.QueryRowContext(ctx, queryGetTankStatus, stationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrStationNotFound
		}
		return nil, r.wrap("get tank status", err)
	}

	return &t, nil
}

func (r *Repository) UpdateTankVolumes(ctx context.Context, t model.TankStatusRecord) error {
	res, err := r.db.ExecContext(ctx, queryUpdateTankVolumes,
		t.VolumeExtra,
		t.VolumeSupreme,
		t.VolumeDiesel,
		t.LastUpdated,
		t.StationID,
	)
	if err != nil {
		return r.wrap("update tank volumes", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrap("update tank volumes", err)
	}
	if affected == 0 {
		return model.ErrStationNotFound
	}

	return nil
}

func scanTankStatus(row scanner) (model.TankStatusRecord, error) {
	var t model.TankStatusRecord
	err := row.Scan(
		&t.StationID,
		&t.CapacityExtra, &t.CapacitySupreme, &t.CapacityDiesel,
		&t.AvgExtra, &t.AvgSupreme, &t.AvgDiesel,
		&t.VolumeExtra, &t.VolumeSupreme, &t.VolumeDiesel,
		&t.LastUpdated,
	)
	return t, err
}
