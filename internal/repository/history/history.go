package history

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

// Repository пишет в append-only журнал переходов, UPDATE и DELETE тут не существуют.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, entry entities.StatusHistoryEntry) error {
	query := `
		INSERT INTO status_history (order_id, from_status, to_status, actor_type, actor_id, actor_name, note, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var lat, lng *float64
	if entry.Location != nil {
		lat, lng = &entry.Location.Lat, &entry.Location.Lng
	}

	_, err := r.querier.Exec(
		ctx,
		query,
		entry.OrderID,
		entry.FromStatus.String(),
		entry.ToStatus.String(),
		entry.Actor.String(),
		entry.ActorID,
		entry.ActorName,
		entry.Note,
		lat,
		lng,
	)
	if err != nil {
		return fmt.Errorf("unexpected history repository append error: %w", err)
	}

	return nil
}

func (r *Repository) ListByOrderID(ctx context.Context, orderID string) ([]entities.StatusHistoryEntry, error) {
	query := `
		SELECT id, order_id, from_status, to_status, actor_type, actor_id, actor_name, note, lat, lng, created_at
		FROM status_history
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.StatusHistoryEntry, 0, 8)
	for rows.Next() {
		var (
			entry    entities.StatusHistoryEntry
			lat, lng *float64
		)
		err := rows.Scan(
			&entry.ID,
			&entry.OrderID,
			&entry.FromStatus,
			&entry.ToStatus,
			&entry.Actor,
			&entry.ActorID,
			&entry.ActorName,
			&entry.Note,
			&lat,
			&lng,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository list error: %w", err)
		}

		if lat != nil && lng != nil {
			entry.Location = &entities.GeoPoint{Lat: *lat, Lng: *lng}
		}
		entries = append(entries, entry)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}

	return entries, nil
}
