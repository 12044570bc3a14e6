package delivery_cost_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	orderservice "marketplace/internal/service/order"
	"marketplace/internal/service/radar"
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

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quote, err := h.service.Quote(r.Context(), vendorID, entities.GeoPoint{Lat: lat, Lng: lng})
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrMissingCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, radar.ErrVendorNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryCostResponse{
		DistanceKm:    quote.DistanceKm,
		Fee:           quote.Fee,
		EtaMinMinutes: quote.EtaMinMinutes,
		EtaMaxMinutes: quote.EtaMaxMinutes,
		Available:     quote.Available,
		Reason:        quote.Reason,
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
