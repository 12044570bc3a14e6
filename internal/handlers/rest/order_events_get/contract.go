//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_events_get_test
package order_events_get

import (
	"context"

	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type EventSource interface {
	Subscribe(ctx context.Context, orderID string) (<-chan string, func())
}
