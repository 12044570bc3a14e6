package entities

import "time"

type Driver struct {
	ID        int64
	Name      string
	Phone     string
	Available bool
	Status    DriverStatusType
	// CurrentOrderCount меняется только условным инкрементом в репозитории,
	// чтобы два конкурентных диспатча не перебронировали водителя.
	CurrentOrderCount   int32
	MaxConcurrentOrders int32
	LastLocation        *GeoPoint
	LocationAt          *time.Time
	DeliveredTotal      int64
	Rating              float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DriverStatusType string

const (
	DriverActive   DriverStatusType = "active"
	DriverInactive DriverStatusType = "inactive"
)

func (s DriverStatusType) String() string {
	return string(s)
}

type DriverModify struct {
	ID        *int64
	Name      *string
	Phone     *string
	Available *bool
	Status    *DriverStatusType
}
