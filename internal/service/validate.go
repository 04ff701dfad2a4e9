package service

import (
	"fmt"
	"strings"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

var (
	errSameFolio            = invalidRequest("source and destination folios must differ")
	errSourceNotAssigned    = invalidRequest("source order has no assignment")
	errIncompleteAssignment = invalidRequest("assignment requires carrier, vehicleUnit, plate1, operator and reference")
	errEmptyFolios          = invalidRequest("folios are required")
	errUnknownStatus        = invalidRequest("unknown status")
	errLitersNotPositive    = invalidRequest("liters must be greater than zero")
	errTotalNotPositive     = invalidRequest("total must be greater than zero")
)

// invalidRequest - все ошибки валидации оборачивают model.ErrInvalidRequest
func invalidRequest(msg string) error {
	return fmt.Errorf("%w: %s", model.ErrInvalidRequest, msg)
}

func requiredError(field string) error {
	return invalidRequest(field + " is required")
}

func validateCreateOrderDTO(input model.CreateOrderDTO) error {
	required := []struct {
		name  string
		value string
	}{
		{"folio", input.Folio},
		{"station", input.Station},
		{"fuelGrade", input.FuelGrade},
		{"deliveryDate", input.DeliveryDate},
		{"priority", input.Priority},
		{"requestingUser", input.RequestingUser},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return requiredError(f.name)
		}
	}

	if input.Liters <= 0 {
		return errLitersNotPositive
	}
	if input.Total <= 0 {
		return errTotalNotPositive
	}

	return nil
}

func validateReallocateDTO(input model.ReallocateDTO) error {
	if input.SourceFolio == "" {
		return requiredError("sourceFolio")
	}
	if input.DestFolio == "" {
		return requiredError("destFolio")
	}
	if input.AssignmentRef == "" {
		return requiredError("assignmentRef")
	}
	if input.SourceFolio == input.DestFolio {
		return errSameFolio
	}

	return nil
}

func validateScheduleBlockDTO(input model.ScheduleBlockDTO) error {
	if len(input.Folios) == 0 {
		return errEmptyFolios
	}
	if input.BlockLabel == "" {
		return requiredError("blockLabel")
	}

	return nil
}

func trimAssignment(a model.Assignment) model.Assignment {
	return model.Assignment{
		Carrier:     strings.TrimSpace(a.Carrier),
		VehicleUnit: strings.TrimSpace(a.VehicleUnit),
		Plate1:      strings.TrimSpace(a.Plate1),
		Plate2:      strings.TrimSpace(a.Plate2),
		Operator:    strings.TrimSpace(a.Operator),
		Reference:   strings.TrimSpace(a.Reference),
		ETA:         strings.TrimSpace(a.ETA),
	}
}
