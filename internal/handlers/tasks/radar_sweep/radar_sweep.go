package radar_sweep

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	SweepEffectiveStatus(ctx context.Context) (int64, error)
}

// RadarSweep пересчитывает эффективную доступность всех вендоров и обновляет
// кеш витрины: расписание меняет статус и без действий самого вендора.
type RadarSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRadarSweep(log logger.Logger, service Service, interval time.Duration) *RadarSweep {
	return &RadarSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RadarSweep) TTL() time.Duration {
	return r.interval
}

func (r *RadarSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	closedBySchedule, err := r.service.SweepEffectiveStatus(ctxWithTimeout)

	if closedBySchedule > 0 {
		r.log.With(
			logger.NewField("closed_by_schedule", closedBySchedule),
		).Info("radar sweep")
	}

	return err
}

func (r *RadarSweep) Info() string {
	return "radar effective status sweep"
}
