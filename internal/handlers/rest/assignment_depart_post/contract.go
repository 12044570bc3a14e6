//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_depart_post_test
package assignment_depart_post

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
	StartDelivery(ctx context.Context, assignmentID int64, actor entities.Actor) (*entities.DriverAssignment, error)
}
