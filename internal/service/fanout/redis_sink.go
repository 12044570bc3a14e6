package fanout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"marketplace/internal/entities"
)

// OrderChannel — имя realtime-канала заказа в redis pub/sub. На него
// подписан SSE-хендлер трекинга.
func OrderChannel(orderID string) string {
	return "order:events:" + orderID
}

type RedisSink struct {
	client *redis.Client
}

func NewRedisSink(client *redis.Client) *RedisSink {
	return &RedisSink{client: client}
}

func (s *RedisSink) Name() string {
	return "redis"
}

func (s *RedisSink) Deliver(ctx context.Context, event entities.StatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	if err := s.client.Publish(ctx, OrderChannel(event.OrderID), payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", OrderChannel(event.OrderID), err)
	}
	return nil
}
