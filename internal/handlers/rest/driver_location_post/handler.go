package driver_location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/dispatch"
	"marketplace/pkg/logger"
)

// Handler принимает пинг геолокации от приложения водителя. ID водителя
// берётся из токена: чужую локацию обновить нельзя.
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
	if !ok || actor.Type != entities.ActorDriver {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var locationDTO dto.DriverLocationRequest
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if locationDTO.Lat == 0 && locationDTO.Lng == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdateDriverLocation(r.Context(), actor.ID, entities.GeoPoint{
		Lat: locationDTO.Lat,
		Lng: locationDTO.Lng,
	})
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("driver", actor.ID),
				logger.NewField("error", err),
			).Error("update driver location")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
