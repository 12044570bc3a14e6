//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_pending_get_test
package orders_pending_get

import (
	"context"

	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListPending(ctx context.Context, vendorID int64) ([]order.PendingOrder, error)
}
