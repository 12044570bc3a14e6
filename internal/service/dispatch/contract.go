//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/statemachine"
)

type AssignmentRepository interface {
	Create(ctx context.Context, modify entities.DriverAssignmentModify) (*entities.DriverAssignment, error)
	GetByID(ctx context.Context, id int64) (*entities.DriverAssignment, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (*entities.DriverAssignment, error)
	Update(ctx context.Context, modify entities.DriverAssignmentModify) (*entities.DriverAssignment, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, driverID int64) (*entities.Driver, error)
	// SelectForAssignment выбирает доступного активного водителя с запасом
	// по вместимости: ближайший к точке вендора, при равенстве — наименее
	// загруженный.
	SelectForAssignment(ctx context.Context, near entities.GeoPoint) (*entities.Driver, error)
	// AcquireSlot — условный инкремент счётчика загрузки
	// (... WHERE current_order_count < max_concurrent_orders).
	// false — водитель уже забит конкурентным диспатчем.
	AcquireSlot(ctx context.Context, driverID int64) (bool, error)
	ReleaseSlot(ctx context.Context, driverID int64) error
	// CompleteDelivery освобождает слот и инкрементит счётчик доставок.
	CompleteDelivery(ctx context.Context, driverID int64) error
	UpdateLocation(ctx context.Context, driverID int64, point entities.GeoPoint, at time.Time) error
}

type OrderProvider interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type VendorProvider interface {
	GetByVendorID(ctx context.Context, vendorID int64) (*entities.VendorAvailability, error)
}

type StateMachine interface {
	Transition(ctx context.Context, req statemachine.Request) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
