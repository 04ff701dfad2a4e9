package model

const NoTelemetryTimestamp = "Sin datos"

// StationRecord - строка справочника станций, числа хранятся в виде отображаемых строк ("$12,345.67")
type StationRecord struct {
	ID           string
	Name         string
	Address      string
	Credit       string
	PriceExtra   string
	PriceSupreme string
	PriceDiesel  string
}

// TankStatusRecord - строка телеметрии резервуаров станции
type TankStatusRecord struct {
	StationID       string
	CapacityExtra   string
	CapacitySupreme string
	CapacityDiesel  string
	AvgExtra        string
	AvgSupreme      string
	AvgDiesel       string
	VolumeExtra     string
	VolumeSupreme   string
	VolumeDiesel    string
	LastUpdated     string
}

type Prices struct {
	Extra   float64 `json:"Extra"`
	Supreme float64 `json:"Supreme"`
	Diesel  float64 `json:"Diesel"`
}

type GradeValues struct {
	Extra   float64 `json:"extra"`
	Supreme float64 `json:"supreme"`
	Diesel  float64 `json:"diesel"`
}

type Station struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	Credit        float64     `json:"credit"`
	Prices        Prices      `json:"prices"`
	Capacity      GradeValues `json:"capacity"`
	AverageDraw   GradeValues `json:"averageDraw"`
	CurrentVolume GradeValues `json:"currentVolume"`
	LastUpdated   string      `json:"lastUpdated"`
}

type UpdateTanksDTO struct {
	StationID string  `json:"stationId"`
	Extra     float64 `json:"extra"`
	Supreme   float64 `json:"supreme"`
	Diesel    float64 `json:"diesel"`
}
