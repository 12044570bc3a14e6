package entities

// PushNotification — уведомление участнику заказа о смене статуса.
type PushNotification struct {
	RecipientType ActorType `json:"recipient_type"`
	RecipientID   int64     `json:"recipient_id"`
	OrderID       string    `json:"order_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
}
