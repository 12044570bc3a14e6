package fanout

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisSource — обратная сторона RedisSink: подписка SSE-хендлера на
// realtime-канал заказа.
type RedisSource struct {
	client *redis.Client
}

func NewRedisSource(client *redis.Client) *RedisSource {
	return &RedisSource{client: client}
}

// Subscribe возвращает канал сырых JSON-событий заказа и функцию отписки.
func (s *RedisSource) Subscribe(ctx context.Context, orderID string) (<-chan string, func()) {
	pubsub := s.client.Subscribe(ctx, OrderChannel(orderID))

	out := make(chan string)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			select {
			case out <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = pubsub.Close() }
}
