package http

import (
	"context"

	"github.com/ibeloyar/fueldispatch/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	Ping(ctx context.Context) *model.APIError

	Login(ctx context.Context, input model.LoginDTO) (*model.UserInfo, *model.APIError)

	GetStations(ctx context.Context) ([]model.Station, *model.APIError)
	UpdateTankVolumes(ctx context.Context, input model.UpdateTanksDTO) *model.APIError

	CreateOrder(ctx context.Context, input model.CreateOrderDTO) *model.APIError
	GetOrders(ctx context.Context, filter model.OrderFilter) (*model.GetOrdersResponse, *model.APIError)
	GetOrder(ctx context.Context, folio string) (*model.Order, *model.APIError)
	UpdateOrderStatus(ctx context.Context, folio string, input model.UpdateStatusDTO) *model.APIError
	AssignOrder(ctx context.Context, folio string, input model.Assignment) *model.APIError

	Reallocate(ctx context.Context, input model.ReallocateDTO) *model.APIError
	ScheduleBlock(ctx context.Context, input model.ScheduleBlockDTO) (int, *model.APIError)
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Controller{
		lg:      lg,
		service: s,
	}
}
