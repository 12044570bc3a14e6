package radarcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"marketplace/internal/entities"
	"marketplace/internal/service/radar"
)

// Cache хранит эффективную доступность вендоров для витрины; источник истины — postgres.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func key(vendorID int64) string {
	return fmt.Sprintf("vendor:acceptance:%d", vendorID)
}

func (c *Cache) Set(ctx context.Context, vendorID int64, status entities.VendorAcceptance) error {
	err := c.client.Set(ctx, key(vendorID), status.String(), c.ttl).Err()
	if err != nil {
		return fmt.Errorf("radar cache set: %w", err)
	}
	return nil
}

func (c *Cache) Get(ctx context.Context, vendorID int64) (entities.VendorAcceptance, error) {
	val, err := c.client.Get(ctx, key(vendorID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", radar.ErrStatusNotCached
		}
		return "", fmt.Errorf("radar cache get: %w", err)
	}
	return entities.VendorAcceptance(val), nil
}
