package entities

import "time"

// StatusHistoryEntry — строка аудиторского журнала переходов. Append-only:
// записи никогда не обновляются и не удаляются, это source of truth для споров.
type StatusHistoryEntry struct {
	ID         int64
	OrderID    string
	FromStatus OrderStatusType
	ToStatus   OrderStatusType
	Actor      ActorType
	ActorID    int64
	ActorName  string
	Note       string
	Location   *GeoPoint
	CreatedAt  time.Time
}

// StatusEvent — событие перехода для fan-out (kafka + realtime канал заказа).
type StatusEvent struct {
	OrderID    string          `json:"order_id"`
	VendorID   int64           `json:"vendor_id"`
	CustomerID int64           `json:"customer_id"`
	DriverID   *int64          `json:"driver_id,omitempty"`
	FromStatus OrderStatusType `json:"from_status"`
	ToStatus   OrderStatusType `json:"to_status"`
	Actor      ActorType       `json:"actor"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}
