package order

import "time"

type OrderDB struct {
	ID         string
	VendorID   int64
	CustomerID int64

	Subtotal    int64
	DeliveryFee int64
	Discount    int64
	Total       int64

	DeliveryAddress string
	DeliveryLat     float64
	DeliveryLng     float64
	DistanceKm      float64

	Status     string
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

type OrderItemDB struct {
	ID        int64
	OrderID   string
	ProductID int64
	Name      string
	Quantity  int32
	UnitPrice int64
	// Options хранится как jsonb.
	Options []byte
	Total   int64
}
