package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ibeloyar/fueldispatch/internal/model"
	"go.uber.org/zap"
)

type StorageRepo interface {
	Ping(ctx context.Context) error

	GetUsersByEmail(ctx context.Context, email string) ([]model.User, error)

	ListStations(ctx context.Context) ([]model.StationRecord, error)
	ListTankStatuses(ctx context.Context) ([]model.TankStatusRecord, error)
	GetTankStatus(ctx context.Context, stationID string) (*model.TankStatusRecord, error)
	UpdateTankVolumes(ctx context.Context, tank model.TankStatusRecord) error

	CreateOrder(ctx context.Context, order model.Order) error
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, folio string) (*model.Order, error)
	UpdateOrder(ctx context.Context, order model.Order) error

	GetLoadOrder(ctx context.Context, reference string) (*model.LoadOrder, error)
	UpdateLoadOrder(ctx context.Context, loadOrder model.LoadOrder) error
}

// DocumentMirror - второе хранилище заказов, запись после основного
type DocumentMirror interface {
	SaveOrder(ctx context.Context, order model.Order) error
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload any) error
}

type Service struct {
	storage StorageRepo
	mirror  DocumentMirror
	events  EventPublisher

	loc *time.Location
	now func() time.Time
	lg  *zap.SugaredLogger
}

func New(s StorageRepo, m DocumentMirror, e EventPublisher, loc *time.Location, lg *zap.SugaredLogger) *Service {
	if loc == nil {
		loc = time.Local
	}
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Service{
		storage: s,
		mirror:  m,
		events:  e,

		loc: loc,
		now: time.Now,
		lg:  lg,
	}
}

func (s *Service) Ping(ctx context.Context) *model.APIError {
	if err := s.storage.Ping(ctx); err != nil {
		return s.storeError("ping", err)
	}
	return nil
}

// localNow - текущее время в часовом поясе бизнеса
func (s *Service) localNow() time.Time {
	return s.now().In(s.loc)
}

// storeError - логирует ошибку хранилища и скрывает детали от клиента
func (s *Service) storeError(op string, err error) *model.APIError {
	s.lg.Errorf("%s: %v", op, err)

	if errors.Is(err, model.ErrStoreUnavailable) {
		return newAPIError(http.StatusInternalServerError, model.ErrStoreUnavailableMessage)
	}
	return newAPIError(http.StatusInternalServerError, model.ErrInternalServerMessage)
}

// mirrorOrder - ошибка зеркала не валит запрос, основное хранилище уже записано
func (s *Service) mirrorOrder(ctx context.Context, order model.Order) {
	if err := s.mirror.SaveOrder(ctx, order); err != nil {
		s.lg.Warnf("mirror order %s: %v", order.Folio, err)
	}
}

func (s *Service) publish(ctx context.Context, eventType, key string, payload any) {
	if err := s.events.Publish(ctx, eventType, key, payload); err != nil {
		s.lg.Warnf("publish %s for %s: %v", eventType, key, err)
	}
}

func newAPIError(code int, message string) *model.APIError {
	return &model.APIError{
		Code:    code,
		Message: message,
	}
}

func badRequest(err error) *model.APIError {
	return newAPIError(http.StatusBadRequest, err.Error())
}
