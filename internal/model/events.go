package model

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"
	EventOrderAssigned      = "OrderAssigned"
	EventOrderReallocated   = "OrderReallocated"
	EventOrdersScheduled    = "OrdersScheduled"
	EventTankVolumesUpdated = "TankVolumesUpdated"
)

type OrderReallocatedPayload struct {
	SourceFolio   string `json:"source_folio"`
	DestFolio     string `json:"dest_folio"`
	AssignmentRef string `json:"assignment_ref"`
	Carrier       string `json:"carrier"`
}

type OrdersScheduledPayload struct {
	BlockLabel string   `json:"block_label"`
	Folios     []string `json:"folios"`
}

type OrderStatusChangedPayload struct {
	Folio  string      `json:"folio"`
	Status OrderStatus `json:"status"`
}

type TankVolumesUpdatedPayload struct {
	StationID   string  `json:"station_id"`
	Extra       float64 `json:"extra"`
	Supreme     float64 `json:"supreme"`
	Diesel      float64 `json:"diesel"`
	LastUpdated string  `json:"last_updated"`
}
