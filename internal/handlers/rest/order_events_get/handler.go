package order_events_get

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/pkg/logger"
)

// Handler стримит события смены статуса заказа как Server-Sent Events.
// Источник — redis pub/sub канал заказа, соединение живёт до отключения
// клиента или остановки сервера.
type Handler struct {
	log    handlerLogger
	source EventSource
}

func New(log handlerLogger, source EventSource) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		source: source,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]

	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	events, unsubscribe := h.source.Subscribe(r.Context(), orderID)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case payload, ok := <-events:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: status\ndata: %s\n\n", payload); err != nil {
				h.log.With(
					logger.NewField("order", orderID),
					logger.NewField("error", err),
				).Warn("SSE write failed, closing stream")
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
