package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

const reallocationNote = "Reasignado a folio %s"

// Reallocate - переносит назначение перевозчика с исходного заказа на целевой.
// Порядок записи: целевой заказ, исходный заказ, журнал заказов на загрузку.
// Каждый заказ попадает в зеркало сразу после записи в основное хранилище.
// Уже выполненные записи при ошибке не откатываются.
func (s *Service) Reallocate(ctx context.Context, input model.ReallocateDTO) *model.APIError {
	input = model.ReallocateDTO{
		SourceFolio:   strings.TrimSpace(input.SourceFolio),
		DestFolio:     strings.TrimSpace(input.DestFolio),
		AssignmentRef: strings.TrimSpace(input.AssignmentRef),
	}

	if err := validateReallocateDTO(input); err != nil {
		return badRequest(err)
	}

	source, apiErr := s.findOrder(ctx, input.SourceFolio)
	if apiErr != nil {
		return apiErr
	}

	dest, apiErr := s.findOrder(ctx, input.DestFolio)
	if apiErr != nil {
		return apiErr
	}

	if !source.Assignment.IsComplete() {
		return badRequest(errSourceNotAssigned)
	}

	dest.Assignment = source.Assignment
	dest.Assignment.Reference = input.AssignmentRef
	dest.Status = model.OrderStatusInTransit

	source.Assignment = model.Assignment{}
	source.Status = model.OrderStatusPending
	source.Notes = fmt.Sprintf(reallocationNote, dest.Folio)

	if err := s.storage.UpdateOrder(ctx, *dest); err != nil {
		return s.storeError("reallocate: update destination "+dest.Folio, err)
	}
	s.mirrorOrder(ctx, *dest)

	if err := s.storage.UpdateOrder(ctx, *source); err != nil {
		return s.storeError("reallocate: update source "+source.Folio, err)
	}
	s.mirrorOrder(ctx, *source)

	if apiErr := s.repointLoadOrder(ctx, input.AssignmentRef, dest.Folio); apiErr != nil {
		return apiErr
	}

	s.publish(ctx, model.EventOrderReallocated, dest.Folio, model.OrderReallocatedPayload{
		SourceFolio:   source.Folio,
		DestFolio:     dest.Folio,
		AssignmentRef: input.AssignmentRef,
		Carrier:       dest.Assignment.Carrier,
	})

	return nil
}

// repointLoadOrder - отсутствие записи в журнале не ошибка
func (s *Service) repointLoadOrder(ctx context.Context, reference, folio string) *model.APIError {
	loadOrder, err := s.storage.GetLoadOrder(ctx, reference)
	if err != nil {
		if errors.Is(err, model.ErrLoadOrderNotFound) {
			return nil
		}
		return s.storeError("reallocate: get load order "+reference, err)
	}

	loadOrder.CurrentFolio = folio
	loadOrder.Status = model.LoadOrderStatusReallocated
	loadOrder.UpdatedAt = s.localNow()

	if err := s.storage.UpdateLoadOrder(ctx, *loadOrder); err != nil {
		return s.storeError("reallocate: update load order "+reference, err)
	}

	return nil
}
