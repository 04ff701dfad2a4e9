package service

import (
	"context"
	"strings"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

func (s *Service) GetStations(ctx context.Context) ([]model.Station, *model.APIError) {
	stations, err := s.storage.ListStations(ctx)
	if err != nil {
		return nil, s.storeError("list stations", err)
	}

	tanks, err := s.storage.ListTankStatuses(ctx)
	if err != nil {
		return nil, s.storeError("list tank statuses", err)
	}

	result := make([]model.Station, 0, len(stations))
	for _, station := range stations {
		result = append(result, mergeStation(station, findTank(tanks, station.ID)))
	}

	return result, nil
}

// findTank - первая запись телеметрии станции
func findTank(tanks []model.TankStatusRecord, stationID string) *model.TankStatusRecord {
	id := strings.TrimSpace(stationID)
	for i := range tanks {
		if strings.TrimSpace(tanks[i].StationID) == id {
			return &tanks[i]
		}
	}
	return nil
}

func mergeStation(station model.StationRecord, tank *model.TankStatusRecord) model.Station {
	result := model.Station{
		ID:      station.ID,
		Name:    station.Name,
		Address: station.Address,
		Credit:  parseAmount(station.Credit),
		Prices: model.Prices{
			Extra:   parseAmount(station.PriceExtra),
			Supreme: parseAmount(station.PriceSupreme),
			Diesel:  parseAmount(station.PriceDiesel),
		},
		LastUpdated: model.NoTelemetryTimestamp,
	}

	if tank == nil {
		return result
	}

	result.Capacity = model.GradeValues{
		Extra:   parseAmount(tank.CapacityExtra),
		Supreme: parseAmount(tank.CapacitySupreme),
		Diesel:  parseAmount(tank.CapacityDiesel),
	}
	result.AverageDraw = model.GradeValues{
		Extra:   parseAmount(tank.AvgExtra),
		Supreme: parseAmount(tank.AvgSupreme),
		Diesel:  parseAmount(tank.AvgDiesel),
	}
	result.CurrentVolume = model.GradeValues{
		Extra:   parseAmount(tank.VolumeExtra),
		Supreme: parseAmount(tank.VolumeSupreme),
		Diesel:  parseAmount(tank.VolumeDiesel),
	}
	if tank.LastUpdated != "" {
		result.LastUpdated = tank.LastUpdated
	}

	return result
}
