package orders_pending_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/pkg/logger"
)

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
	vendorID, err := strconv.ParseInt(mux.Vars(r)["vendor_id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// очередь приёмки видит только сам вендор
	actor, ok := auth.FromContext(r.Context())
	if !ok || (actor.Type == entities.ActorVendor && actor.ID != vendorID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if actor.Type != entities.ActorVendor && actor.Type != entities.ActorAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	pending, err := h.service.ListPending(r.Context(), vendorID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.PendingOrdersResponse{
		Orders: make([]dto.PendingOrderResponse, 0, len(pending)),
	}
	for i := range pending {
		response.Orders = append(response.Orders, dto.PendingOrderResponse{
			Order:              dto.FromOrder(&pending[i].Order),
			SecondsUntilExpiry: pending[i].SecondsUntilExpiry,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
