//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_pickup_post_test
package assignment_pickup_post

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
	RecordPickup(ctx context.Context, assignmentID int64, scannedCode string, point entities.GeoPoint, actor entities.Actor) (*entities.DriverAssignment, error)
}
