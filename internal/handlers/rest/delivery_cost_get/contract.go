//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_cost_get_test
package delivery_cost_get

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
	Quote(ctx context.Context, vendorID int64, point entities.GeoPoint) (*entities.ZoneQuote, error)
}
