package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/statemachine"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, vendor_id, customer_id,
		subtotal, delivery_fee, discount, total,
		delivery_address, delivery_lat, delivery_lng, distance_km,
		status, pickup_code,
		acceptance_expires_at, driver_id, cancel_reason,
		ordered_at, confirmed_at, accepted_at, preparing_at, ready_at, picked_up_at, delivered_at,
		created_at, updated_at`

// milestoneColumns — какая веха проставляется при входе в статус.
var milestoneColumns = map[entities.OrderStatusType]string{
	entities.OrderPendingConfirmation: "confirmed_at",
	entities.OrderAccepted:            "accepted_at",
	entities.OrderPreparing:           "preparing_at",
	entities.OrderReady:               "ready_at",
	entities.OrderDriverPickedUp:      "picked_up_at",
	entities.OrderDelivered:           "delivered_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, vendor_id, customer_id,
			subtotal, delivery_fee, discount, total,
			delivery_address, delivery_lat, delivery_lng, distance_km,
			status, pickup_code, acceptance_expires_at, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.VendorID,
		orderEntity.CustomerID,
		orderEntity.Subtotal,
		orderEntity.DeliveryFee,
		orderEntity.Discount,
		orderEntity.Total,
		orderEntity.DeliveryAddress,
		orderEntity.DeliveryPoint.Lat,
		orderEntity.DeliveryPoint.Lng,
		orderEntity.DistanceKm,
		orderEntity.Status.String(),
		orderEntity.PickupCode,
		orderEntity.AcceptanceExpiresAt,
		orderEntity.OrderedAt,
	).Scan(scanTargets(&orderModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemModels, err := r.insertItems(ctx, orderEntity.ID, orderEntity.Items)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, itemModels)
}

func (r *Repository) insertItems(ctx context.Context, orderID string, items []entities.OrderItem) ([]OrderItemDB, error) {
	query := `
		INSERT INTO order_items (order_id, product_id, name, quantity, unit_price, options, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, order_id, product_id, name, quantity, unit_price, options, total
	`

	itemModels := make([]OrderItemDB, 0, len(items))
	for _, item := range items {
		itemModify, err := FromDomainItem(orderID, item)
		if err != nil {
			return nil, err
		}

		var itemModel OrderItemDB
		err = r.querier.QueryRow(
			ctx,
			query,
			itemModify.OrderID,
			itemModify.ProductID,
			itemModify.Name,
			itemModify.Quantity,
			itemModify.UnitPrice,
			itemModify.Options,
			itemModify.Total,
		).Scan(
			&itemModel.ID,
			&itemModel.OrderID,
			&itemModel.ProductID,
			&itemModel.Name,
			&itemModel.Quantity,
			&itemModel.UnitPrice,
			&itemModel.Options,
			&itemModel.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository insert item error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	return itemModels, nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, statemachine.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	itemModels, err := r.selectItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, itemModels)
}

func (r *Repository) selectItems(ctx context.Context, orderID string) ([]OrderItemDB, error) {
	query := `
		SELECT id, order_id, product_id, name, quantity, unit_price, options, total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository select items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]OrderItemDB, 0, 8)
	for rows.Next() {
		var itemModel OrderItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.OrderID,
			&itemModel.ProductID,
			&itemModel.Name,
			&itemModel.Quantity,
			&itemModel.UnitPrice,
			&itemModel.Options,
			&itemModel.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository select items error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository select items error: %w", err)
	}

	return itemModels, nil
}

func (r *Repository) ListByVendorAndStatus(ctx context.Context, vendorID int64, status entities.OrderStatusType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE vendor_id = $1 AND status = $2
		ORDER BY ordered_at`

	return r.selectOrders(ctx, query, vendorID, status.String())
}

func (r *Repository) ListExpiredWaiting(ctx context.Context, now time.Time, limit int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1 AND acceptance_expires_at <= $2
		ORDER BY acceptance_expires_at
		LIMIT $3`

	return r.selectOrders(ctx, query, entities.OrderWaitingAcceptance.String(), now, limit)
}

func (r *Repository) selectOrders(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository select error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(scanTargets(&orderModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository select error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository select error: %w", err)
	}

	orderEntities := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		itemModels, err := r.selectItems(ctx, orderModels[i].ID)
		if err != nil {
			return nil, err
		}

		orderEntity, err := ToDomain(&orderModels[i], itemModels)
		if err != nil {
			return nil, err
		}
		orderEntities = append(orderEntities, *orderEntity)
	}

	return orderEntities, nil
}

// UpdateStatusCAS — compare-and-set по статусу. Условие WHERE id AND status
// гарантирует, что конкурентный переход не будет молча перезаписан.
func (r *Repository) UpdateStatusCAS(ctx context.Context, orderID string, from entities.OrderStatusType, modify entities.OrderModify) (bool, error) {
	if modify.Status == nil {
		return false, errors.New("order repository cas update requires target status")
	}

	builder := qb.
		Update("orders").
		Set("status", modify.Status.String())

	// опциональные поля
	if modify.DriverID != nil {
		builder = builder.Set("driver_id", modify.DriverID)
	}
	if modify.AcceptanceExpiresAt != nil {
		builder = builder.Set("acceptance_expires_at", modify.AcceptanceExpiresAt)
	}
	if modify.CancelReason != nil {
		builder = builder.Set("cancel_reason", modify.CancelReason)
	}

	if column, ok := milestoneColumns[*modify.Status]; ok {
		builder = builder.Set(column, sq.Expr("NOW()"))
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID, "status": from.String()})

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected order repository cas update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository cas update error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) CountByVendorAndStatuses(ctx context.Context, vendorID int64, statuses []entities.OrderStatusType) (map[entities.OrderStatusType]int64, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusStrings = append(statusStrings, status.String())
	}

	query := `
		SELECT status, COUNT(*)
		FROM orders
		WHERE vendor_id = $1 AND status = ANY($2)
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query, vendorID, statusStrings)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, len(statuses))
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return counts, nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.VendorID,
		&o.CustomerID,
		&o.Subtotal,
		&o.DeliveryFee,
		&o.Discount,
		&o.Total,
		&o.DeliveryAddress,
		&o.DeliveryLat,
		&o.DeliveryLng,
		&o.DistanceKm,
		&o.Status,
		&o.PickupCode,
		&o.AcceptanceExpiresAt,
		&o.DriverID,
		&o.CancelReason,
		&o.OrderedAt,
		&o.ConfirmedAt,
		&o.AcceptedAt,
		&o.PreparingAt,
		&o.ReadyAt,
		&o.PickedUpAt,
		&o.DeliveredAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
}
