package zone

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetActiveByVendorID(ctx context.Context, vendorID int64) ([]entities.DeliveryZone, error) {
	query := `
		SELECT id, vendor_id, min_km, max_km, fee, eta_min_minutes, eta_max_minutes, active, display_order
		FROM delivery_zones
		WHERE vendor_id = $1 AND active
		ORDER BY display_order, min_km
	`

	rows, err := r.querier.Query(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository get active error: %w", err)
	}
	defer rows.Close()

	zoneEntities := make([]entities.DeliveryZone, 0, 4)
	for rows.Next() {
		var zoneEntity entities.DeliveryZone
		err := rows.Scan(
			&zoneEntity.ID,
			&zoneEntity.VendorID,
			&zoneEntity.MinKm,
			&zoneEntity.MaxKm,
			&zoneEntity.Fee,
			&zoneEntity.EtaMinMinutes,
			&zoneEntity.EtaMaxMinutes,
			&zoneEntity.Active,
			&zoneEntity.DisplayOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected zone repository get active error: %w", err)
		}
		zoneEntities = append(zoneEntities, zoneEntity)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected zone repository get active error: %w", err)
	}

	return zoneEntities, nil
}
