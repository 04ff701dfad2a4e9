package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/fueldispatch/internal/model"
	"github.com/stretchr/testify/assert"

	mockPG "github.com/ibeloyar/fueldispatch/internal/repository/pg/mocks"
)

var (
	businessLoc = time.FixedZone("CST", -6*60*60)
	fixedNow    = time.Date(2026, 10, 14, 16, 30, 0, 0, time.UTC)
)

type testDeps struct {
	storage *mockPG.MockStorageRepo
	mirror  *mockPG.MockDocumentMirror
	events  *mockPG.MockEventPublisher
}

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		storage: mockPG.NewMockStorageRepo(ctrl),
		mirror:  mockPG.NewMockDocumentMirror(ctrl),
		events:  mockPG.NewMockEventPublisher(ctrl),
	}

	svc := New(deps.storage, deps.mirror, deps.events, businessLoc, nil)
	svc.now = func() time.Time { return fixedNow }

	return svc, deps
}

// allowSideEffects - зеркало и публикация событий не проверяются в тесте
func (d testDeps) allowSideEffects() {
	d.mirror.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func assignedOrder(folio string) *model.Order {
	return &model.Order{
		Folio:  folio,
		Status: model.OrderStatusInTransit,
		Assignment: model.Assignment{
			Carrier:     "Fletes del Norte",
			VehicleUnit: "U-12",
			Plate1:      "ABC-123",
			Plate2:      "XYZ-789",
			Operator:    "Juan Pérez",
			Reference:   "ORD1",
			ETA:         "15:30",
		},
	}
}

func TestService_Ping_StoreUnavailable(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().
		Ping(gomock.Any()).
		Return(model.ErrStoreUnavailable)

	apiErr := svc.Ping(context.Background())

	assert.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrStoreUnavailableMessage, apiErr.Message)
}

func TestService_MirrorFailureDoesNotFailRequest(t *testing.T) {
	svc, deps := newTestService(t)

	order := &model.Order{Folio: "F1", Status: model.OrderStatusPending}

	deps.storage.EXPECT().GetOrder(gomock.Any(), "F1").Return(order, nil)
	deps.storage.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil)
	deps.mirror.EXPECT().SaveOrder(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	deps.events.EXPECT().Publish(gomock.Any(), model.EventOrderStatusChanged, "F1", gomock.Any()).Return(errors.New("kafka down"))

	apiErr := svc.UpdateOrderStatus(context.Background(), "F1", model.UpdateStatusDTO{Status: "entregado"})

	assert.Nil(t, apiErr)
}
