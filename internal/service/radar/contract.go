//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=radar_test
package radar

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByVendorID(ctx context.Context, vendorID int64) (*entities.VendorAvailability, error)
	GetAll(ctx context.Context) ([]entities.VendorAvailability, error)
	Update(ctx context.Context, modify entities.VendorAvailabilityModify) (*entities.VendorAvailability, error)
}

type OrderCounter interface {
	// CountByVendorAndStatuses возвращает количество заказов вендора в каждом
	// из запрошенных статусов.
	CountByVendorAndStatuses(ctx context.Context, vendorID int64, statuses []entities.OrderStatusType) (map[entities.OrderStatusType]int64, error)
}

// StatusCache — кеш эффективной доступности для витрины, чтобы листинг
// вендоров не зависел от того, что кто-то дернул конкретного вендора.
type StatusCache interface {
	Set(ctx context.Context, vendorID int64, status entities.VendorAcceptance) error
	// Get возвращает ErrStatusNotCached при промахе.
	Get(ctx context.Context, vendorID int64) (entities.VendorAcceptance, error)
}
