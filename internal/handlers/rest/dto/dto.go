// Package dto — общие типы запросов и ответов REST-слоя.
package dto

import (
	"time"

	"marketplace/internal/entities"
)

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OrderItemOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type OrderItemCreate struct {
	ProductID int64             `json:"product_id"`
	Name      string            `json:"name"`
	Quantity  int32             `json:"quantity"`
	UnitPrice int64             `json:"unit_price"`
	Options   []OrderItemOption `json:"options,omitempty"`
}

type OrderCreateRequest struct {
	VendorID        int64             `json:"vendor_id"`
	Items           []OrderItemCreate `json:"items"`
	Discount        int64             `json:"discount"`
	DeliveryAddress string            `json:"delivery_address"`
	DeliveryPoint   GeoPoint          `json:"delivery_point"`
}

type OrderItemResponse struct {
	ProductID int64             `json:"product_id"`
	Name      string            `json:"name"`
	Quantity  int32             `json:"quantity"`
	UnitPrice int64             `json:"unit_price"`
	Options   []OrderItemOption `json:"options,omitempty"`
	Total     int64             `json:"total"`
}

// OrderResponse намеренно не содержит pickup-код: он отдаётся только вендору
// отдельным endpoint-ом.
type OrderResponse struct {
	ID                  string              `json:"id"`
	VendorID            int64               `json:"vendor_id"`
	CustomerID          int64               `json:"customer_id"`
	Items               []OrderItemResponse `json:"items"`
	Subtotal            int64               `json:"subtotal"`
	DeliveryFee         int64               `json:"delivery_fee"`
	Discount            int64               `json:"discount"`
	Total               int64               `json:"total"`
	DeliveryAddress     string              `json:"delivery_address"`
	DeliveryPoint       GeoPoint            `json:"delivery_point"`
	DistanceKm          float64             `json:"distance_km"`
	Status              string              `json:"status"`
	AcceptanceExpiresAt *time.Time          `json:"acceptance_expires_at,omitempty"`
	DriverID            *int64              `json:"driver_id,omitempty"`
	CancelReason        *string             `json:"cancel_reason,omitempty"`
	OrderedAt           time.Time           `json:"ordered_at"`
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

type PendingOrderResponse struct {
	Order              OrderResponse `json:"order"`
	SecondsUntilExpiry int64         `json:"seconds_until_expiry"`
}

type PendingOrdersResponse struct {
	Orders []PendingOrderResponse `json:"orders"`
}

type TrackStageResponse struct {
	Status  string     `json:"status"`
	Reached bool       `json:"reached"`
	At      *time.Time `json:"at,omitempty"`
}

type HistoryEntryResponse struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Actor      string    `json:"actor"`
	ActorName  string    `json:"actor_name,omitempty"`
	Note       string    `json:"note,omitempty"`
	Location   *GeoPoint `json:"location,omitempty"`
	At         time.Time `json:"at"`
}

type TrackResponse struct {
	Order            OrderResponse          `json:"order"`
	Stages           []TrackStageResponse   `json:"stages"`
	History          []HistoryEntryResponse `json:"history"`
	DriverLocation   *GeoPoint              `json:"driver_location,omitempty"`
	DriverLocationAt *time.Time             `json:"driver_location_at,omitempty"`
}

type DeliveryCostResponse struct {
	DistanceKm    float64 `json:"distance_km"`
	Fee           int64   `json:"fee"`
	EtaMinMinutes int32   `json:"eta_min_minutes"`
	EtaMaxMinutes int32   `json:"eta_max_minutes"`
	Available     bool    `json:"available"`
	Reason        string  `json:"reason,omitempty"`
}

type AssignRequest struct {
	DriverID *int64 `json:"driver_id,omitempty"`
}

type AssignmentResponse struct {
	ID          int64      `json:"id"`
	OrderID     string     `json:"order_id"`
	DriverID    int64      `json:"driver_id"`
	AssignedAt  time.Time  `json:"assigned_at"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

type PickupRequest struct {
	ScannedCode string   `json:"scanned_code"`
	Location    GeoPoint `json:"location"`
}

type DeliverRequest struct {
	Location GeoPoint `json:"location"`
	ProofRef *string  `json:"proof_ref,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

type DriverLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type RadarModeRequest struct {
	Mode string `json:"mode"`
}

type VendorAvailabilityResponse struct {
	VendorID int64  `json:"vendor_id"`
	Status   string `json:"status"`
}

type RadarStatusResponse struct {
	VendorID  int64     `json:"vendor_id"`
	Mode      string    `json:"mode"`
	ModeSetAt time.Time `json:"mode_set_at"`
	Effective string    `json:"effective"`
	Pending   int64     `json:"pending"`
	Preparing int64     `json:"preparing"`
	Ready     int64     `json:"ready"`
}

func FromOrder(order *entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		options := make([]OrderItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			options = append(options, OrderItemOption{Name: opt.Name, Price: opt.Price})
		}
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Options:   options,
			Total:     item.Total,
		})
	}

	return OrderResponse{
		ID:                  order.ID,
		VendorID:            order.VendorID,
		CustomerID:          order.CustomerID,
		Items:               items,
		Subtotal:            order.Subtotal,
		DeliveryFee:         order.DeliveryFee,
		Discount:            order.Discount,
		Total:               order.Total,
		DeliveryAddress:     order.DeliveryAddress,
		DeliveryPoint:       GeoPoint{Lat: order.DeliveryPoint.Lat, Lng: order.DeliveryPoint.Lng},
		DistanceKm:          order.DistanceKm,
		Status:              order.Status.String(),
		AcceptanceExpiresAt: order.AcceptanceExpiresAt,
		DriverID:            order.DriverID,
		CancelReason:        order.CancelReason,
		OrderedAt:           order.OrderedAt,
	}
}

func FromAssignment(assignment *entities.DriverAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          assignment.ID,
		OrderID:     assignment.OrderID,
		DriverID:    assignment.DriverID,
		AssignedAt:  assignment.AssignedAt,
		PickedUpAt:  assignment.PickedUpAt,
		DeliveredAt: assignment.DeliveredAt,
	}
}
