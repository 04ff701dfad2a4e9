package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/fueldispatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ScheduleBlock_SkipsMissingFolios(t *testing.T) {
	svc, deps := newTestService(t)

	deps.mirror.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	deps.events.EXPECT().
		Publish(gomock.Any(), model.EventOrdersScheduled, "2024-W1", model.OrdersScheduledPayload{
			BlockLabel: "2024-W1",
			Folios:     []string{"A1", "A2"},
		}).
		Return(nil)

	deps.storage.EXPECT().GetOrder(gomock.Any(), "A1").Return(&model.Order{Folio: "A1", Status: model.OrderStatusPending}, nil)
	deps.storage.EXPECT().GetOrder(gomock.Any(), "A2").Return(&model.Order{Folio: "A2", Status: model.OrderStatusPending}, nil)
	deps.storage.EXPECT().GetOrder(gomock.Any(), "ZZZ").Return(nil, model.ErrOrderNotFound)

	deps.storage.EXPECT().
		UpdateOrder(gomock.Any(), model.Order{Folio: "A1", Block: "2024-W1", Status: model.OrderStatusAccepted}).
		Return(nil)
	deps.storage.EXPECT().
		UpdateOrder(gomock.Any(), model.Order{Folio: "A2", Block: "2024-W1", Status: model.OrderStatusAccepted}).
		Return(nil)

	count, apiErr := svc.ScheduleBlock(context.Background(), model.ScheduleBlockDTO{
		Folios:     []string{"A1", "A2", "ZZZ", "A1"},
		BlockLabel: " 2024-W1 ",
	})

	require.Nil(t, apiErr)
	assert.Equal(t, 2, count)
}

func TestService_ScheduleBlock_NothingFound(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().GetOrder(gomock.Any(), "ZZZ").Return(nil, model.ErrOrderNotFound)

	count, apiErr := svc.ScheduleBlock(context.Background(), model.ScheduleBlockDTO{Folios: []string{"ZZZ"}, BlockLabel: "B"})

	require.Nil(t, apiErr)
	assert.Equal(t, 0, count)
}

func TestService_ScheduleBlock_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input model.ScheduleBlockDTO
	}{
		{"no folios", model.ScheduleBlockDTO{BlockLabel: "2024-W1"}},
		{"empty label", model.ScheduleBlockDTO{Folios: []string{"A1"}, BlockLabel: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			count, apiErr := svc.ScheduleBlock(context.Background(), tt.input)

			assert.Equal(t, 0, count)
			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
		})
	}
}

func TestService_ScheduleBlock_StoreErrorStopsLoop(t *testing.T) {
	svc, deps := newTestService(t)
	deps.allowSideEffects()

	deps.storage.EXPECT().GetOrder(gomock.Any(), "A1").Return(&model.Order{Folio: "A1"}, nil)
	deps.storage.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil)
	deps.storage.EXPECT().GetOrder(gomock.Any(), "A2").Return(nil, errors.New("conn reset"))

	count, apiErr := svc.ScheduleBlock(context.Background(), model.ScheduleBlockDTO{
		Folios:     []string{"A1", "A2", "A3"},
		BlockLabel: "2024-W1",
	})

	assert.Equal(t, 1, count)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}
