package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   OrderStatus
		wantOk bool
	}{
		{"", OrderStatusPending, true},
		{"PENDIENTE", OrderStatusPending, true},
		{"Aceptada", OrderStatusAccepted, true},
		{"En Tránsito", OrderStatusInTransit, true},
		{"in-transit", OrderStatusInTransit, true},
		{"Entregado", OrderStatusDelivered, true},
		{"canceled", OrderStatusCancelled, true},
		{"desconocido", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole(" ADMIN "))
	assert.Equal(t, RoleManager, ParseRole("Gerente"))
	assert.Equal(t, RoleLogistics, ParseRole("Logística"))
	assert.Equal(t, RoleCarrier, ParseRole("fletera"))
	assert.Equal(t, Role("Auditor"), ParseRole(" Auditor"))

	assert.True(t, RoleAdmin.Unrestricted())
	assert.True(t, RoleLogistics.Unrestricted())
	assert.False(t, RoleManager.Unrestricted())
	assert.False(t, RoleCarrier.Unrestricted())
}

func TestSplitScope(t *testing.T) {
	assert.Equal(t, []string{"E01", "E02"}, SplitScope(" E01, ,E02,"))
	assert.Empty(t, SplitScope(""))
}

func TestAssignment(t *testing.T) {
	a := Assignment{Carrier: "Fletes", VehicleUnit: "U1", Plate1: "P1", Operator: "Op", Reference: "ORD1"}

	assert.True(t, a.IsComplete())
	assert.False(t, a.IsEmpty())
	assert.True(t, Assignment{}.IsEmpty())

	a.Operator = "  "
	assert.False(t, a.IsComplete())
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: 404, Message: ErrOrderNotFoundMessage}
	assert.Equal(t, ErrOrderNotFoundMessage, err.Error())
}
