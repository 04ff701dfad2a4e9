package model

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusInTransit OrderStatus = "InTransit"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"

	LoadOrderStatusReallocated = "Reallocated"
)

var statusAliases = map[string]OrderStatus{
	"":          OrderStatusPending,
	"pending":   OrderStatusPending,
	"pendiente": OrderStatusPending,

	"accepted": OrderStatusAccepted,
	"aceptado": OrderStatusAccepted,
	"aceptada": OrderStatusAccepted,

	"intransit":  OrderStatusInTransit,
	"entransito": OrderStatusInTransit,
	"transito":   OrderStatusInTransit,
	"enruta":     OrderStatusInTransit,

	"delivered": OrderStatusDelivered,
	"entregado": OrderStatusDelivered,
	"entregada": OrderStatusDelivered,

	"cancelled": OrderStatusCancelled,
	"canceled":  OrderStatusCancelled,
	"cancelado": OrderStatusCancelled,
	"cancelada": OrderStatusCancelled,
}

// ParseStatus - приводит статус к каноническому виду без учета регистра и диакритики.
// Пустой статус считается Pending.
func ParseStatus(raw string) (OrderStatus, bool) {
	status, ok := statusAliases[normalizeLabel(raw)]
	return status, ok
}

// Assignment - логистическая часть заказа
type Assignment struct {
	Carrier     string `json:"carrier"`
	VehicleUnit string `json:"vehicleUnit"`
	Plate1      string `json:"plate1"`
	Plate2      string `json:"plate2"`
	Operator    string `json:"operator"`
	Reference   string `json:"reference"`
	ETA         string `json:"eta"`
}

func (a Assignment) IsEmpty() bool {
	return a == Assignment{}
}

// IsComplete - заполнены все обязательные поля, Plate2 и ETA необязательны
func (a Assignment) IsComplete() bool {
	for _, v := range []string{a.Carrier, a.VehicleUnit, a.Plate1, a.Operator, a.Reference} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

type Order struct {
	Folio          string      `json:"folio"`
	RegisteredAt   time.Time   `json:"registeredAt"`
	Block          string      `json:"block"`
	Station        string      `json:"station"`
	FuelGrade      string      `json:"fuelGrade"`
	Liters         float64     `json:"liters"`
	Total          float64     `json:"total"`
	DeliveryDate   string      `json:"deliveryDate"`
	Priority       string      `json:"priority"`
	Status         OrderStatus `json:"status"`
	RequestingUser string      `json:"requestingUser"`
	Assignment     Assignment  `json:"assignment"`
	Notes          string      `json:"notes"`
}

// LoadOrder - запись журнала заказов на загрузку (assignment reference)
type LoadOrder struct {
	Reference    string    `json:"reference"`
	CurrentFolio string    `json:"currentFolio"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateOrderDTO struct {
	Folio                 string     `json:"folio"`
	Station               string     `json:"station"`
	FuelGrade             string     `json:"fuelGrade"`
	Liters                float64    `json:"liters"`
	Total                 float64    `json:"total"`
	DeliveryDate          string     `json:"deliveryDate"`
	Priority              string     `json:"priority"`
	RequestingUser        string     `json:"requestingUser"`
	RegistrationTimestamp *time.Time `json:"registrationTimestamp,omitempty"`
}

type OrderFilter struct {
	Block    string
	Role     string
	Stations string
}

type OrderStats struct {
	Pending   int `json:"pending"`
	InTransit int `json:"inTransit"`
	Delivered int `json:"delivered"`
	Accepted  int `json:"accepted"`
}

type GetOrdersResponse struct {
	Orders []Order    `json:"orders"`
	Stats  OrderStats `json:"stats"`
}

type UpdateStatusDTO struct {
	Status string `json:"status"`
}

type ReallocateDTO struct {
	SourceFolio   string `json:"sourceFolio"`
	DestFolio     string `json:"destFolio"`
	AssignmentRef string `json:"assignmentRef"`
}

type ScheduleBlockDTO struct {
	Folios     []string `json:"folios"`
	BlockLabel string   `json:"blockLabel"`
}
