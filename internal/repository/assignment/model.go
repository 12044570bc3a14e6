package assignment

import "time"

type AssignmentDB struct {
	ID       int64
	OrderID  string
	DriverID int64

	AssignedAt time.Time

	PickedUpAt  *time.Time
	ScannedCode *string
	PickupLat   *float64
	PickupLng   *float64

	DeliveredAt *time.Time
	DeliveryLat *float64
	DeliveryLng *float64
	ProofRef    *string
	Notes       *string

	Cancelled    bool
	CancelReason *string
}
