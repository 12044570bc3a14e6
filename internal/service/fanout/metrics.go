package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanout_events_published_total",
			Help: "Total number of status events delivered per sink",
		},
		[]string{"sink"},
	)

	EventsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fanout_events_dropped_total",
			Help: "Total number of status events dropped due to a full queue",
		},
	)

	SinkErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanout_sink_errors_total",
			Help: "Total number of delivery errors per sink",
		},
		[]string{"sink"},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fanout_queue_depth",
			Help: "Current number of status events waiting in the fan-out queue",
		},
	)
)
