package fanout

import (
	"context"

	"marketplace/internal/entities"
)

// Sink — один канал доставки событий (kafka-топик, realtime-канал заказа).
// Ошибки синка логируются и глотаются, в стейт-машину они не возвращаются.
type Sink interface {
	Deliver(ctx context.Context, event entities.StatusEvent) error
	Name() string
}
