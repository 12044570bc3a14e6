//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// ExecuteFn — реакция на один статус заказа.
type ExecuteFn func(ctx context.Context, event entities.StatusEvent) error

type HandlerFactory interface {
	GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
