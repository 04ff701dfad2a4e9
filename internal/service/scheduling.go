package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

// ScheduleBlock - возвращает число реально обновленных заказов; отсутствующие folio пропускаются
func (s *Service) ScheduleBlock(ctx context.Context, input model.ScheduleBlockDTO) (int, *model.APIError) {
	input.BlockLabel = strings.TrimSpace(input.BlockLabel)
	if err := validateScheduleBlockDTO(input); err != nil {
		return 0, badRequest(err)
	}

	seen := make(map[string]struct{}, len(input.Folios))
	processed := make([]string, 0, len(input.Folios))

	for _, folio := range input.Folios {
		folio = strings.TrimSpace(folio)
		if folio == "" {
			continue
		}
		if _, ok := seen[folio]; ok {
			continue
		}
		seen[folio] = struct{}{}

		order, err := s.storage.GetOrder(ctx, folio)
		if err != nil {
			if errors.Is(err, model.ErrOrderNotFound) {
				continue
			}
			return len(processed), s.storeError("schedule block: get order "+folio, err)
		}

		order.Block = input.BlockLabel
		order.Status = model.OrderStatusAccepted

		if err := s.storage.UpdateOrder(ctx, *order); err != nil {
			if errors.Is(err, model.ErrOrderNotFound) {
				continue
			}
			return len(processed), s.storeError("schedule block: update order "+folio, err)
		}

		s.mirrorOrder(ctx, *order)
		processed = append(processed, folio)
	}

	if len(processed) > 0 {
		s.publish(ctx, model.EventOrdersScheduled, input.BlockLabel, model.OrdersScheduledPayload{
			BlockLabel: input.BlockLabel,
			Folios:     processed,
		})
	}

	return len(processed), nil
}
