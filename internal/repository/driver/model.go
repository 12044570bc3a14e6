package driver

import "time"

type DriverDB struct {
	ID                  int64
	Name                string
	Phone               string
	Available           bool
	Status              string
	CurrentOrderCount   int32
	MaxConcurrentOrders int32
	LastLat             *float64
	LastLng             *float64
	LocationAt          *time.Time
	DeliveredTotal      int64
	Rating              float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
