package service

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

const scopeAll = "ALL"

// CreateOrder - новый заказ всегда Pending, статус из запроса игнорируется
func (s *Service) CreateOrder(ctx context.Context, input model.CreateOrderDTO) *model.APIError {
	if err := validateCreateOrderDTO(input); err != nil {
		return badRequest(err)
	}

	registeredAt := s.localNow()
	if input.RegistrationTimestamp != nil && !input.RegistrationTimestamp.IsZero() {
		registeredAt = input.RegistrationTimestamp.In(s.loc)
	}

	order := model.Order{
		Folio:          strings.TrimSpace(input.Folio),
		RegisteredAt:   registeredAt,
		Station:        strings.TrimSpace(input.Station),
		FuelGrade:      strings.TrimSpace(input.FuelGrade),
		Liters:         input.Liters,
		Total:          input.Total,
		DeliveryDate:   strings.TrimSpace(input.DeliveryDate),
		Priority:       strings.TrimSpace(input.Priority),
		Status:         model.OrderStatusPending,
		RequestingUser: strings.TrimSpace(input.RequestingUser),
	}

	if err := s.storage.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, model.ErrDuplicateFolio) {
			return newAPIError(http.StatusConflict, model.ErrDuplicateFolioMessage)
		}
		return s.storeError("create order", err)
	}

	s.mirrorOrder(ctx, order)
	s.publish(ctx, model.EventOrderCreated, order.Folio, order)

	return nil
}

func (s *Service) GetOrders(ctx context.Context, filter model.OrderFilter) (*model.GetOrdersResponse, *model.APIError) {
	orders, err := s.storage.ListOrders(ctx)
	if err != nil {
		return nil, s.storeError("list orders", err)
	}

	filtered := filterOrders(orders, filter)

	return &model.GetOrdersResponse{
		Orders: filtered,
		Stats:  countStatuses(filtered),
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, folio string) (*model.Order, *model.APIError) {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return nil, badRequest(requiredError("folio"))
	}

	return s.findOrder(ctx, folio)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, folio string, input model.UpdateStatusDTO) *model.APIError {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return badRequest(requiredError("folio"))
	}
	if strings.TrimSpace(input.Status) == "" {
		return badRequest(requiredError("status"))
	}

	status, ok := model.ParseStatus(input.Status)
	if !ok {
		return badRequest(errUnknownStatus)
	}

	order, apiErr := s.findOrder(ctx, folio)
	if apiErr != nil {
		return apiErr
	}

	order.Status = status
	if apiErr := s.saveOrder(ctx, "update order status", *order); apiErr != nil {
		return apiErr
	}

	s.publish(ctx, model.EventOrderStatusChanged, order.Folio, model.OrderStatusChangedPayload{
		Folio:  order.Folio,
		Status: status,
	})

	return nil
}

// AssignOrder - назначает перевозчика, заказ переходит в InTransit
func (s *Service) AssignOrder(ctx context.Context, folio string, input model.Assignment) *model.APIError {
	folio = strings.TrimSpace(folio)
	if folio == "" {
		return badRequest(requiredError("folio"))
	}

	assignment := trimAssignment(input)
	if !assignment.IsComplete() {
		return badRequest(errIncompleteAssignment)
	}

	order, apiErr := s.findOrder(ctx, folio)
	if apiErr != nil {
		return apiErr
	}

	order.Assignment = assignment
	order.Status = model.OrderStatusInTransit
	if apiErr := s.saveOrder(ctx, "assign order", *order); apiErr != nil {
		return apiErr
	}

	s.publish(ctx, model.EventOrderAssigned, order.Folio, order)

	return nil
}

func (s *Service) findOrder(ctx context.Context, folio string) (*model.Order, *model.APIError) {
	order, err := s.storage.GetOrder(ctx, folio)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, newAPIError(http.StatusNotFound, model.ErrOrderNotFoundMessage)
		}
		return nil, s.storeError("get order "+folio, err)
	}

	return order, nil
}

// saveOrder - запись в основное хранилище, затем в зеркало
func (s *Service) saveOrder(ctx context.Context, op string, order model.Order) *model.APIError {
	if err := s.storage.UpdateOrder(ctx, order); err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return newAPIError(http.StatusNotFound, model.ErrOrderNotFoundMessage)
		}
		return s.storeError(op+" "+order.Folio, err)
	}

	s.mirrorOrder(ctx, order)
	return nil
}

func filterOrders(orders []model.Order, filter model.OrderFilter) []model.Order {
	role := model.ParseRole(filter.Role)
	block := strings.TrimSpace(filter.Block)
	scope := strings.TrimSpace(filter.Stations)

	stations := make(map[string]struct{})
	for _, id := range model.SplitScope(scope) {
		stations[id] = struct{}{}
	}

	result := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if block != "" && strings.TrimSpace(order.Block) != block {
			continue
		}
		if !inScope(order, role, scope, stations) {
			continue
		}
		result = append(result, order)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].RegisteredAt.After(result[j].RegisteredAt)
	})

	return result
}

func inScope(order model.Order, role model.Role, scope string, stations map[string]struct{}) bool {
	switch {
	case role.Unrestricted():
		return true
	case role == model.RoleCarrier:
		// у перевозчика в scope передается его имя
		return scope != "" && strings.TrimSpace(order.Assignment.Carrier) == scope
	case scope == scopeAll:
		return true
	}

	_, ok := stations[strings.TrimSpace(order.Station)]
	return ok
}

func countStatuses(orders []model.Order) model.OrderStats {
	var stats model.OrderStats

	for _, order := range orders {
		status, _ := model.ParseStatus(string(order.Status))

		switch status {
		case model.OrderStatusPending:
			stats.Pending++
		case model.OrderStatusInTransit:
			stats.InTransit++
		case model.OrderStatusDelivered:
			stats.Delivered++
		case model.OrderStatusAccepted:
			stats.Accepted++
		}
	}

	return stats
}
