package fanout

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const deliverTimeout = 5 * time.Second

// Fanout — ограниченная очередь событий переходов с фиксированным пулом
// консьюмеров. При переполнении вытесняется самое старое событие, источник
// правды — журнал, а не очередь.
type Fanout struct {
	log     logger.Logger
	queue   chan entities.StatusEvent
	sinks   []Sink
	workers int
}

func New(log logger.Logger, queueSize, workers int, sinks ...Sink) *Fanout {
	if queueSize <= 0 {
		queueSize = 1024
	}
	if workers <= 0 {
		workers = 2
	}
	return &Fanout{
		log:     log.With(),
		queue:   make(chan entities.StatusEvent, queueSize),
		sinks:   sinks,
		workers: workers,
	}
}

func (f *Fanout) Start(ctx context.Context) {
	for i := 0; i < f.workers; i++ {
		go f.run(ctx)
	}
}

// Publish никогда не блокирует вызывающий переход.
func (f *Fanout) Publish(event entities.StatusEvent) {
	for {
		select {
		case f.queue <- event:
			QueueDepth.Set(float64(len(f.queue)))
			return
		default:
		}

		// Очередь полна: выталкиваем самое старое и пробуем ещё раз.
		select {
		case dropped := <-f.queue:
			EventsDroppedTotal.Inc()
			f.log.Warn("fanout queue full, dropping oldest event",
				logger.NewField("order_id", dropped.OrderID),
				logger.NewField("status", dropped.ToStatus),
			)
		default:
		}
	}
}

func (f *Fanout) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-f.queue:
			QueueDepth.Set(float64(len(f.queue)))
			f.deliver(ctx, event)
		}
	}
}

func (f *Fanout) deliver(ctx context.Context, event entities.StatusEvent) {
	for _, sink := range f.sinks {
		deliverCtx, cancel := context.WithTimeout(ctx, deliverTimeout)
		err := sink.Deliver(deliverCtx, event)
		cancel()

		if err != nil {
			// At-most-once: не ретраим, просто считаем и логируем.
			SinkErrorsTotal.WithLabelValues(sink.Name()).Inc()
			f.log.Error("fanout delivery failed",
				logger.NewField("sink", sink.Name()),
				logger.NewField("order_id", event.OrderID),
				logger.NewField("error", err),
			)
			continue
		}
		EventsPublishedTotal.WithLabelValues(sink.Name()).Inc()
	}
}
