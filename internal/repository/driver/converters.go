package driver

import "marketplace/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	var lastLocation *entities.GeoPoint
	if d.LastLat != nil && d.LastLng != nil {
		lastLocation = &entities.GeoPoint{Lat: *d.LastLat, Lng: *d.LastLng}
	}

	return &entities.Driver{
		ID:                  d.ID,
		Name:                d.Name,
		Phone:               d.Phone,
		Available:           d.Available,
		Status:              entities.DriverStatusType(d.Status),
		CurrentOrderCount:   d.CurrentOrderCount,
		MaxConcurrentOrders: d.MaxConcurrentOrders,
		LastLocation:        lastLocation,
		LocationAt:          d.LocationAt,
		DeliveredTotal:      d.DeliveredTotal,
		Rating:              d.Rating,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}
