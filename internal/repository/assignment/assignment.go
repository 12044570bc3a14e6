package assignment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/dispatch"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const assignmentColumns = `id, order_id, driver_id, assigned_at,
		picked_up_at, scanned_code, pickup_lat, pickup_lng,
		delivered_at, delivery_lat, delivery_lng, proof_ref, notes,
		cancelled, cancel_reason`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, assignmentModify entities.DriverAssignmentModify) (*entities.DriverAssignment, error) {
	query := `
		INSERT INTO driver_assignments (order_id, driver_id, assigned_at)
		VALUES ($1, $2, $3)
		RETURNING ` + assignmentColumns

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		assignmentModify.OrderID,
		assignmentModify.DriverID,
		assignmentModify.AssignedAt,
	).Scan(scanTargets(&assignmentModel)...)
	if err != nil {
		// partial unique index по order_id WHERE NOT cancelled
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DriverAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM driver_assignments WHERE id = $1`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository getbyid error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID string) (*entities.DriverAssignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM driver_assignments
		WHERE order_id = $1 AND NOT cancelled`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(scanTargets(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get active error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

func (r *Repository) Update(ctx context.Context, assignmentModify entities.DriverAssignmentModify) (*entities.DriverAssignment, error) {
	builder := qb.
		Update("driver_assignments")

	// опционнные поля
	if assignmentModify.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", assignmentModify.PickedUpAt)
	}
	if assignmentModify.ScannedCode != nil {
		builder = builder.Set("scanned_code", assignmentModify.ScannedCode)
	}
	if assignmentModify.PickupPoint != nil {
		builder = builder.
			Set("pickup_lat", assignmentModify.PickupPoint.Lat).
			Set("pickup_lng", assignmentModify.PickupPoint.Lng)
	}
	if assignmentModify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", assignmentModify.DeliveredAt)
	}
	if assignmentModify.DeliveryPoint != nil {
		builder = builder.
			Set("delivery_lat", assignmentModify.DeliveryPoint.Lat).
			Set("delivery_lng", assignmentModify.DeliveryPoint.Lng)
	}
	if assignmentModify.ProofRef != nil {
		builder = builder.Set("proof_ref", assignmentModify.ProofRef)
	}
	if assignmentModify.Notes != nil {
		builder = builder.Set("notes", assignmentModify.Notes)
	}
	if assignmentModify.Cancelled != nil {
		builder = builder.Set("cancelled", assignmentModify.Cancelled)
	}
	if assignmentModify.CancelReason != nil {
		builder = builder.Set("cancel_reason", assignmentModify.CancelReason)
	}

	builder = builder.
		Where(sq.Eq{"id": assignmentModify.ID}).
		Suffix("RETURNING " + assignmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	var assignmentModel AssignmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

func scanTargets(a *AssignmentDB) []interface{} {
	return []interface{}{
		&a.ID,
		&a.OrderID,
		&a.DriverID,
		&a.AssignedAt,
		&a.PickedUpAt,
		&a.ScannedCode,
		&a.PickupLat,
		&a.PickupLng,
		&a.DeliveredAt,
		&a.DeliveryLat,
		&a.DeliveryLng,
		&a.ProofRef,
		&a.Notes,
		&a.Cancelled,
		&a.CancelReason,
	}
}
