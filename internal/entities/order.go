package entities

import "time"

type Order struct {
	ID         string
	VendorID   int64
	CustomerID int64

	Items       []OrderItem
	Subtotal    int64
	DeliveryFee int64
	Discount    int64
	Total       int64

	DeliveryAddress string
	DeliveryPoint   GeoPoint
	DistanceKm      float64

	Status     OrderStatusType
	PickupCode string

	AcceptanceExpiresAt *time.Time
	DriverID            *int64
	CancelReason        *string

	OrderedAt   time.Time
	ConfirmedAt *time.Time
	AcceptedAt  *time.Time
	PreparingAt *time.Time
	ReadyAt     *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CheckTotals проверяет денежный инвариант заказа.
func (o *Order) CheckTotals() bool {
	var itemsTotal int64
	for _, item := range o.Items {
		itemsTotal += item.Total
	}
	return o.Subtotal == itemsTotal &&
		o.Total == o.Subtotal-o.Discount+o.DeliveryFee
}

type OrderItem struct {
	ID        int64
	OrderID   string
	ProductID int64
	// Name — снапшот названия на момент заказа, меню может поменяться.
	Name      string
	Quantity  int32
	UnitPrice int64
	Options   []OrderItemOption
	Total     int64
}

type OrderItemOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type GeoPoint struct {
	Lat float64
	Lng float64
}

type OrderModify struct {
	ID                  *string
	Status              *OrderStatusType
	DriverID            *int64
	AcceptanceExpiresAt *time.Time
	CancelReason        *string
}
