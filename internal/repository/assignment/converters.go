package assignment

import "marketplace/internal/entities"

func ToDomain(a *AssignmentDB) *entities.DriverAssignment {
	if a == nil {
		return nil
	}

	return &entities.DriverAssignment{
		ID:            a.ID,
		OrderID:       a.OrderID,
		DriverID:      a.DriverID,
		AssignedAt:    a.AssignedAt,
		PickedUpAt:    a.PickedUpAt,
		ScannedCode:   a.ScannedCode,
		PickupPoint:   toDomainPoint(a.PickupLat, a.PickupLng),
		DeliveredAt:   a.DeliveredAt,
		DeliveryPoint: toDomainPoint(a.DeliveryLat, a.DeliveryLng),
		ProofRef:      a.ProofRef,
		Notes:         a.Notes,
		Cancelled:     a.Cancelled,
		CancelReason:  a.CancelReason,
	}
}

func toDomainPoint(lat, lng *float64) *entities.GeoPoint {
	if lat == nil || lng == nil {
		return nil
	}
	return &entities.GeoPoint{Lat: *lat, Lng: *lng}
}
