package mirror

import (
	"time"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

// orderDocument - имена полей документа являются контрактом с потребителями зеркала, не переименовывать
type orderDocument struct {
	Folio         string    `json:"FOLIO"`
	FechaRegistro time.Time `json:"FECHA_REGISTRO"`
	Bloque        string    `json:"BLOQUE,omitempty"`
	Estacion      string    `json:"ESTACION"`
	Combustible   string    `json:"COMBUSTIBLE"`
	Litros        float64   `json:"LITROS"`
	Total         float64   `json:"TOTAL"`
	FechaEntrega  string    `json:"FECHA_ENTREGA"`
	Prioridad     string    `json:"PRIORIDAD"`
	Estatus       string    `json:"ESTATUS"`
	Usuario       string    `json:"USUARIO"`
	Fletera       string    `json:"FLETERA"`
	Unidad        string    `json:"UNIDAD"`
	Placa1        string    `json:"PLACA_1"`
	Placa2        string    `json:"PLACA_2"`
	Operador      string    `json:"OPERADOR"`
	OrdenCarga    string    `json:"ORDEN_CARGA"`
	ETA           string    `json:"ETA"`
	Notas         string    `json:"NOTAS,omitempty"`
}

func toDocument(o model.Order) orderDocument {
	return orderDocument{
		Folio:         o.Folio,
		FechaRegistro: o.RegisteredAt,
		Bloque:        o.Block,
		Estacion:      o.Station,
		Combustible:   o.FuelGrade,
		Litros:        o.Liters,
		Total:         o.Total,
		FechaEntrega:  o.DeliveryDate,
		Prioridad:     o.Priority,
		Estatus:       string(o.Status),
		Usuario:       o.RequestingUser,
		Fletera:       o.Assignment.Carrier,
		Unidad:        o.Assignment.VehicleUnit,
		Placa1:        o.Assignment.Plate1,
		Placa2:        o.Assignment.Plate2,
		Operador:      o.Assignment.Operator,
		OrdenCarga:    o.Assignment.Reference,
		ETA:           o.Assignment.ETA,
		Notas:         o.Notes,
	}
}
