//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=radar_mode_post_test
package radar_mode_post

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
	SetMode(ctx context.Context, vendorID int64, mode entities.VendorMode) (*entities.VendorAvailability, error)
}
