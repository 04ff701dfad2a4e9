package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/fueldispatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetStations_MergesTelemetry(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().
		ListStations(gomock.Any()).
		Return([]model.StationRecord{
			{ID: "E01", Name: "Centro", Address: "Av. Juárez 1", Credit: "$1,234.50", PriceExtra: "$23.10", PriceSupreme: "25.4", PriceDiesel: "N/A"},
			{ID: "E02", Name: "Norte", Credit: ""},
		}, nil)
	deps.storage.EXPECT().
		ListTankStatuses(gomock.Any()).
		Return([]model.TankStatusRecord{
			{StationID: " E01 ", CapacityExtra: "40,000", AvgExtra: "1,500", VolumeExtra: "12000", VolumeDiesel: "abc", LastUpdated: "10/10/2026 08:00:00"},
			{StationID: "E01", CapacityExtra: "1", LastUpdated: "ignored"},
		}, nil)

	stations, apiErr := svc.GetStations(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, stations, 2)

	centro := stations[0]
	assert.Equal(t, "E01", centro.ID)
	assert.InDelta(t, 1234.50, centro.Credit, 1e-9)
	assert.Equal(t, model.Prices{Extra: 23.10, Supreme: 25.4, Diesel: 0}, centro.Prices)
	assert.Equal(t, 40000.0, centro.Capacity.Extra)
	assert.Equal(t, 1500.0, centro.AverageDraw.Extra)
	assert.Equal(t, 12000.0, centro.CurrentVolume.Extra)
	assert.Equal(t, 0.0, centro.CurrentVolume.Diesel)
	assert.Equal(t, "10/10/2026 08:00:00", centro.LastUpdated)

	norte := stations[1]
	assert.Equal(t, 0.0, norte.Credit)
	assert.Equal(t, model.GradeValues{}, norte.Capacity)
	assert.Equal(t, model.GradeValues{}, norte.CurrentVolume)
	assert.Equal(t, model.NoTelemetryTimestamp, norte.LastUpdated)
}

func TestService_GetStations_OverflowingCellIsZero(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().
		ListStations(gomock.Any()).
		Return([]model.StationRecord{{ID: "E01", Credit: "1e400", PriceDiesel: "-1e400"}}, nil)
	deps.storage.EXPECT().
		ListTankStatuses(gomock.Any()).
		Return([]model.TankStatusRecord{{StationID: "E01", VolumeExtra: "9e999"}}, nil)

	stations, apiErr := svc.GetStations(context.Background())
	require.Nil(t, apiErr)
	require.Len(t, stations, 1)

	assert.Equal(t, 0.0, stations[0].Credit)
	assert.Equal(t, 0.0, stations[0].Prices.Diesel)
	assert.Equal(t, 0.0, stations[0].CurrentVolume.Extra)

	_, err := json.Marshal(stations)
	assert.NoError(t, err)
}

func TestService_GetStations_StoreError(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().ListStations(gomock.Any()).Return(nil, model.ErrStoreUnavailable)

	stations, apiErr := svc.GetStations(context.Background())

	assert.Nil(t, stations)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrStoreUnavailableMessage, apiErr.Message)
}
