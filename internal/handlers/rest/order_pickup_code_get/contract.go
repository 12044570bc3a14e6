//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_pickup_code_get_test
package order_pickup_code_get

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}
