package order_pickup_code_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/middlewares/auth"
	orderservice "marketplace/internal/service/order"
	"marketplace/internal/service/statemachine"
	"marketplace/pkg/logger"
)

const qrSizePx = 256

// Handler отдаёт pickup-код заказа как QR PNG. Код видит только вендор заказа:
// водитель получает его сканером с упаковки, не из API.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	orderID := mux.Vars(r)["order_id"]

	orderEntity, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, statemachine.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	allowed := actor.Type == entities.ActorAdmin ||
		(actor.Type == entities.ActorVendor && actor.ID == orderEntity.VendorID)
	if !allowed {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	png, err := qrcode.Encode(orderEntity.PickupCode, qrcode.Medium, qrSizePx)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode pickup code QR")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write QR response")
	}
}
