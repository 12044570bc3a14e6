package order_track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/dto"
	orderservice "marketplace/internal/service/order"
	"marketplace/internal/service/statemachine"
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
	orderID := mux.Vars(r)["order_id"]

	view, err := h.service.Track(r.Context(), orderID)
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

	response := dto.TrackResponse{
		Order:            dto.FromOrder(view.Order),
		Stages:           make([]dto.TrackStageResponse, 0, len(view.Stages)),
		History:          make([]dto.HistoryEntryResponse, 0, len(view.History)),
		DriverLocationAt: view.DriverLocationAt,
	}
	for _, stage := range view.Stages {
		response.Stages = append(response.Stages, dto.TrackStageResponse{
			Status:  stage.Status.String(),
			Reached: stage.Reached,
			At:      stage.At,
		})
	}
	for _, entry := range view.History {
		item := dto.HistoryEntryResponse{
			FromStatus: entry.FromStatus.String(),
			ToStatus:   entry.ToStatus.String(),
			Actor:      entry.Actor.String(),
			ActorName:  entry.ActorName,
			Note:       entry.Note,
			At:         entry.CreatedAt,
		}
		if entry.Location != nil {
			item.Location = &dto.GeoPoint{Lat: entry.Location.Lat, Lng: entry.Location.Lng}
		}
		response.History = append(response.History, item)
	}
	if view.DriverLocation != nil {
		response.DriverLocation = &dto.GeoPoint{
			Lat: view.DriverLocation.Lat,
			Lng: view.DriverLocation.Lng,
		}
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
