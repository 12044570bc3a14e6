package acceptance_expiry

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	ExpireOverdueAcceptances(ctx context.Context) (int64, error)
}

// AcceptanceExpiry переводит в rejected заказы, которые вендор не подтвердил
// за отведённое окно.
type AcceptanceExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAcceptanceExpiry(log logger.Logger, service Service, interval time.Duration) *AcceptanceExpiry {
	return &AcceptanceExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AcceptanceExpiry) TTL() time.Duration {
	return a.interval
}

func (a *AcceptanceExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	expired, err := a.service.ExpireOverdueAcceptances(ctxWithTimeout)

	if expired > 0 {
		a.log.With(
			logger.NewField("expired_orders", expired),
		).Info("acceptance expiry sweep")
	}

	return err
}

func (a *AcceptanceExpiry) Info() string {
	return "acceptance expiry sweep"
}
