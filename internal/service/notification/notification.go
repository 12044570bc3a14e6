package notification

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// Service реагирует на события смены статуса из Kafka: рассылает пуши
// участникам заказа и дергает автодиспатч, когда заказ готов к выдаче.
type Service struct {
	factory HandlerFactory
	log     serviceLogger
}

func New(log serviceLogger, factory HandlerFactory) *Service {
	return &Service{
		factory: factory,
		log:     log,
	}
}

func (s *Service) ProcessStatusEvent(ctx context.Context, event entities.StatusEvent) error {
	handler, err := s.factory.GetHandler(event.ToStatus)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			// не у каждого статуса есть реакция
			s.log.With(
				logger.NewField("order", event.OrderID),
				logger.NewField("status", event.ToStatus.String()),
			).Info("status event has no side effects, skipping")
			return nil
		}
		return fmt.Errorf("get handler for status %s: %w", event.ToStatus, err)
	}

	if err := handler(ctx, event); err != nil {
		return fmt.Errorf("handle status %s for order %s: %w", event.ToStatus, event.OrderID, err)
	}

	return nil
}
