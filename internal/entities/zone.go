package entities

// DeliveryZone — дистанционная скобка вендора [MinKm, MaxKm) с фиксированной
// платой и вилкой ETA. Скобки вендора обязаны быть смежными и не пересекаться.
type DeliveryZone struct {
	ID            int64
	VendorID      int64
	MinKm         float64
	MaxKm         float64
	Fee           int64
	EtaMinMinutes int32
	EtaMaxMinutes int32
	Active        bool
	DisplayOrder  int32
}

// ZoneQuote — результат расчёта зоны. Замораживается на заказе при создании:
// последующие изменения зон на уже созданные заказы не влияют.
type ZoneQuote struct {
	DistanceKm    float64
	Fee           int64
	EtaMinMinutes int32
	EtaMaxMinutes int32
	Available     bool
	Reason        string
}
