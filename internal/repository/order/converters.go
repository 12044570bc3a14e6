package order

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	domainItems := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		domainItem, err := toDomainItem(item)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, domainItem)
	}

	return &entities.Order{
		ID:                  o.ID,
		VendorID:            o.VendorID,
		CustomerID:          o.CustomerID,
		Items:               domainItems,
		Subtotal:            o.Subtotal,
		DeliveryFee:         o.DeliveryFee,
		Discount:            o.Discount,
		Total:               o.Total,
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryPoint:       entities.GeoPoint{Lat: o.DeliveryLat, Lng: o.DeliveryLng},
		DistanceKm:          o.DistanceKm,
		Status:              entities.OrderStatusType(o.Status),
		PickupCode:          o.PickupCode,
		AcceptanceExpiresAt: o.AcceptanceExpiresAt,
		DriverID:            o.DriverID,
		CancelReason:        o.CancelReason,
		OrderedAt:           o.OrderedAt,
		ConfirmedAt:         o.ConfirmedAt,
		AcceptedAt:          o.AcceptedAt,
		PreparingAt:         o.PreparingAt,
		ReadyAt:             o.ReadyAt,
		PickedUpAt:          o.PickedUpAt,
		DeliveredAt:         o.DeliveredAt,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}, nil
}

func toDomainItem(item OrderItemDB) (entities.OrderItem, error) {
	var options []entities.OrderItemOption
	if len(item.Options) > 0 {
		if err := json.Unmarshal(item.Options, &options); err != nil {
			return entities.OrderItem{}, fmt.Errorf("unmarshal order item options: %w", err)
		}
	}

	return entities.OrderItem{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Options:   options,
		Total:     item.Total,
	}, nil
}

func FromDomainItem(orderID string, item entities.OrderItem) (*OrderItemDB, error) {
	var options []byte
	if len(item.Options) > 0 {
		var err error
		options, err = json.Marshal(item.Options)
		if err != nil {
			return nil, fmt.Errorf("marshal order item options: %w", err)
		}
	}

	return &OrderItemDB{
		OrderID:   orderID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Options:   options,
		Total:     item.Total,
	}, nil
}
