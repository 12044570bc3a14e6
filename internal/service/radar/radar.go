package radar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// Radar — гейт приёма заказов вендора: ручной режим поверх недельного расписания.
type Radar struct {
	log        logger.Logger
	repository Repository
	orders     OrderCounter
	cache      StatusCache
}

func New(log logger.Logger, repository Repository, orders OrderCounter, cache StatusCache) *Radar {
	return &Radar{
		log:        log.With(),
		repository: repository,
		orders:     orders,
		cache:      cache,
	}
}

func (r *Radar) CanAcceptOrders(ctx context.Context, vendorID int64, now time.Time) (entities.VendorAcceptance, *entities.VendorAvailability, error) {
	availability, err := r.repository.GetByVendorID(ctx, vendorID)
	if err != nil {
		return entities.VendorNotAccepting, nil, fmt.Errorf("get vendor availability: %w", err)
	}

	return effectiveAcceptance(availability, now), availability, nil
}

func (r *Radar) SetMode(ctx context.Context, vendorID int64, mode entities.VendorMode) (*entities.VendorAvailability, error) {
	switch mode {
	case entities.VendorOpen, entities.VendorBusy, entities.VendorClosed:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}

	now := time.Now().UTC()
	availability, err := r.repository.Update(ctx, entities.VendorAvailabilityModify{
		VendorID:  &vendorID,
		Mode:      &mode,
		ModeSetAt: &now,
	})
	if err != nil {
		return nil, fmt.Errorf("update vendor mode: %w", err)
	}

	r.refreshCache(ctx, availability, now)
	return availability, nil
}

func (r *Radar) Status(ctx context.Context, vendorID int64) (*entities.RadarStatus, error) {
	availability, err := r.repository.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("get vendor availability: %w", err)
	}

	counts, err := r.orders.CountByVendorAndStatuses(ctx, vendorID, []entities.OrderStatusType{
		entities.OrderWaitingAcceptance,
		entities.OrderAccepted,
		entities.OrderPreparing,
		entities.OrderReady,
	})
	if err != nil {
		return nil, fmt.Errorf("count vendor orders: %w", err)
	}

	return &entities.RadarStatus{
		VendorID:  vendorID,
		Mode:      availability.Mode,
		ModeSetAt: availability.ModeSetAt,
		Effective: effectiveAcceptance(availability, time.Now().UTC()),
		Pending:   counts[entities.OrderWaitingAcceptance],
		Preparing: counts[entities.OrderAccepted] + counts[entities.OrderPreparing],
		Ready:     counts[entities.OrderReady],
	}, nil
}

// SweepEffectiveStatus возвращает число вендоров, у которых расписание
// закрыло приём несмотря на режим open.
func (r *Radar) SweepEffectiveStatus(ctx context.Context) (int64, error) {
	all, err := r.repository.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list vendor availability: %w", err)
	}

	now := time.Now().UTC()
	var forcedClosed int64
	for i := range all {
		availability := &all[i]
		effective := effectiveAcceptance(availability, now)
		if availability.Mode == entities.VendorOpen && effective == entities.VendorNotAccepting {
			forcedClosed++
		}
		r.refreshCache(ctx, availability, now)
	}
	return forcedClosed, nil
}

// EffectiveStatus — доступность вендора для витрины, кеш с прогревом при промахе.
func (r *Radar) EffectiveStatus(ctx context.Context, vendorID int64) (entities.VendorAcceptance, error) {
	cached, err := r.cache.Get(ctx, vendorID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrStatusNotCached) {
		r.log.Warn("storefront status cache read failed",
			logger.NewField("vendor_id", vendorID),
			logger.NewField("error", err),
		)
	}

	availability, err := r.repository.GetByVendorID(ctx, vendorID)
	if err != nil {
		return entities.VendorNotAccepting, fmt.Errorf("get vendor availability: %w", err)
	}

	now := time.Now().UTC()
	r.refreshCache(ctx, availability, now)
	return effectiveAcceptance(availability, now), nil
}

func (r *Radar) refreshCache(ctx context.Context, availability *entities.VendorAvailability, now time.Time) {
	// Кеш витрины best-effort: обновится на следующем свипе.
	if err := r.cache.Set(ctx, availability.VendorID, effectiveAcceptance(availability, now)); err != nil {
		r.log.Warn("failed to refresh storefront status cache",
			logger.NewField("vendor_id", availability.VendorID),
			logger.NewField("error", err),
		)
	}
}

func effectiveAcceptance(availability *entities.VendorAvailability, now time.Time) entities.VendorAcceptance {
	if availability.Mode == entities.VendorClosed {
		return entities.VendorNotAccepting
	}

	entry := availability.Schedule[int(now.Weekday())]
	minuteOfDay := now.Hour()*60 + now.Minute()
	if !entry.IsOpenAt(minuteOfDay) {
		return entities.VendorNotAccepting
	}

	if availability.Mode == entities.VendorBusy {
		return entities.VendorBusyNow
	}
	return entities.VendorAccepting
}
