package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/dispatch"
)

const driverColumns = `id, name, phone, available, status,
		current_order_count, max_concurrent_orders,
		last_lat, last_lng, location_at,
		delivered_total, rating, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, driverID int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, driverID).Scan(scanTargets(&driverModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

// SelectForAssignment ранжирует кандидатов по близости к точке вендора, при
// равенстве — по текущей загрузке.
func (r *Repository) SelectForAssignment(ctx context.Context, near entities.GeoPoint) (*entities.Driver, error) {
	query := `
        SELECT ` + driverColumns + `
        FROM drivers
        WHERE available
          AND status = 'active'
          AND current_order_count < max_concurrent_orders
          AND last_lat IS NOT NULL
        ORDER BY
            (last_lat - $1) * (last_lat - $1) + (last_lng - $2) * (last_lng - $2) ASC,
            current_order_count ASC,
            id ASC
        LIMIT 1
	`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, near.Lat, near.Lng).Scan(scanTargets(&driverModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrNoDriverAvailable
		}
		return nil, fmt.Errorf("unexpected driver repository select for assignment error: %w", err)
	}

	return ToDomain(&driverModel), nil
}

// AcquireSlot — условный инкремент. Условие в WHERE гарантирует, что два
// конкурентных диспатча не посадят на водителя больше max_concurrent_orders.
func (r *Repository) AcquireSlot(ctx context.Context, driverID int64) (bool, error) {
	query := `
        UPDATE drivers
        SET current_order_count = current_order_count + 1,
            updated_at = NOW()
        WHERE id = $1
          AND available
          AND status = 'active'
          AND current_order_count < max_concurrent_orders
	`

	result, err := r.querier.Exec(ctx, query, driverID)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository acquire slot error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) ReleaseSlot(ctx context.Context, driverID int64) error {
	query := `
        UPDATE drivers
        SET current_order_count = GREATEST(current_order_count - 1, 0),
            updated_at = NOW()
        WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, driverID)
	if err != nil {
		return fmt.Errorf("unexpected driver repository release slot error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dispatch.ErrDriverNotFound
	}

	return nil
}

func (r *Repository) CompleteDelivery(ctx context.Context, driverID int64) error {
	query := `
        UPDATE drivers
        SET current_order_count = GREATEST(current_order_count - 1, 0),
            delivered_total = delivered_total + 1,
            updated_at = NOW()
        WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, driverID)
	if err != nil {
		return fmt.Errorf("unexpected driver repository complete delivery error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dispatch.ErrDriverNotFound
	}

	return nil
}

func (r *Repository) UpdateLocation(ctx context.Context, driverID int64, point entities.GeoPoint, at time.Time) error {
	query := `
        UPDATE drivers
        SET last_lat = $2,
            last_lng = $3,
            location_at = $4,
            updated_at = NOW()
        WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, driverID, point.Lat, point.Lng, at)
	if err != nil {
		return fmt.Errorf("unexpected driver repository update location error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dispatch.ErrDriverNotFound
	}

	return nil
}

func scanTargets(d *DriverDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.Name,
		&d.Phone,
		&d.Available,
		&d.Status,
		&d.CurrentOrderCount,
		&d.MaxConcurrentOrders,
		&d.LastLat,
		&d.LastLng,
		&d.LocationAt,
		&d.DeliveredTotal,
		&d.Rating,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}
