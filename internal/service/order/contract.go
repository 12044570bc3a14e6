//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/statemachine"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	ListByVendorAndStatus(ctx context.Context, vendorID int64, status entities.OrderStatusType) ([]entities.Order, error)
	// ListExpiredWaiting возвращает заказы в waiting_acceptance с истёкшим
	// дедлайном. limit ограничивает размер одного прохода свипа.
	ListExpiredWaiting(ctx context.Context, now time.Time, limit int64) ([]entities.Order, error)
}

type HistoryProvider interface {
	ListByOrderID(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error)
}

type ZoneRepository interface {
	GetActiveByVendorID(ctx context.Context, vendorID int64) ([]entities.DeliveryZone, error)
}

type DriverProvider interface {
	GetByID(ctx context.Context, driverID int64) (*entities.Driver, error)
}

type AvailabilityGate interface {
	CanAcceptOrders(ctx context.Context, vendorID int64, now time.Time) (entities.VendorAcceptance, *entities.VendorAvailability, error)
}

type ZoneCalculator interface {
	Calculate(vendorLoc, customerLoc entities.GeoPoint, zones []entities.DeliveryZone) entities.ZoneQuote
}

type StateMachine interface {
	Transition(ctx context.Context, req statemachine.Request) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
