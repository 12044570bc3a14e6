//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_location_post_test
package driver_location_post

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
	UpdateDriverLocation(ctx context.Context, driverID int64, point entities.GeoPoint) error
}
