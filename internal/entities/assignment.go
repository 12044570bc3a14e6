package entities

import "time"

// DriverAssignment связывает заказ с водителем. На заказ допускается не более
// одной активной (не отменённой) записи — это держит partial unique index в БД.
type DriverAssignment struct {
	ID       int64
	OrderID  string
	DriverID int64

	AssignedAt time.Time

	PickedUpAt  *time.Time
	ScannedCode *string
	PickupPoint *GeoPoint

	DeliveredAt   *time.Time
	DeliveryPoint *GeoPoint
	ProofRef      *string
	Notes         *string

	Cancelled    bool
	CancelReason *string
}

func (a *DriverAssignment) Active() bool {
	return !a.Cancelled
}

type DriverAssignmentModify struct {
	ID            *int64
	OrderID       *string
	DriverID      *int64
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	ScannedCode   *string
	PickupPoint   *GeoPoint
	DeliveredAt   *time.Time
	DeliveryPoint *GeoPoint
	ProofRef      *string
	Notes         *string
	Cancelled     *bool
	CancelReason  *string
}
