package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

const telemetryTimeLayout = "02/01/2006 15:04:05"

// UpdateTankVolumes - значения не проверяются на отрицательность и превышение емкости
func (s *Service) UpdateTankVolumes(ctx context.Context, input model.UpdateTanksDTO) *model.APIError {
	stationID := strings.TrimSpace(input.StationID)
	if stationID == "" {
		return badRequest(requiredError("stationId"))
	}

	tank, err := s.storage.GetTankStatus(ctx, stationID)
	if err != nil {
		if errors.Is(err, model.ErrStationNotFound) {
			return newAPIError(http.StatusNotFound, model.ErrStationNotFoundMessage)
		}
		return s.storeError("get tank status "+stationID, err)
	}

	tank.VolumeExtra = formatAmount(input.Extra)
	tank.VolumeSupreme = formatAmount(input.Supreme)
	tank.VolumeDiesel = formatAmount(input.Diesel)
	tank.LastUpdated = s.localNow().Format(telemetryTimeLayout)

	if err := s.storage.UpdateTankVolumes(ctx, *tank); err != nil {
		if errors.Is(err, model.ErrStationNotFound) {
			return newAPIError(http.StatusNotFound, model.ErrStationNotFoundMessage)
		}
		return s.storeError("update tank volumes "+stationID, err)
	}

	s.publish(ctx, model.EventTankVolumesUpdated, stationID, model.TankVolumesUpdatedPayload{
		StationID:   stationID,
		Extra:       input.Extra,
		Supreme:     input.Supreme,
		Diesel:      input.Diesel,
		LastUpdated: tank.LastUpdated,
	})

	return nil
}
