package assignment_pickup_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/dispatch"
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
	actor, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	assignmentID, err := strconv.ParseInt(mux.Vars(r)["assignment_id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var pickupDTO dto.PickupRequest
	err = json.NewDecoder(r.Body).Decode(&pickupDTO)
	if err != nil || pickupDTO.ScannedCode == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	point := entities.GeoPoint{Lat: pickupDTO.Location.Lat, Lng: pickupDTO.Location.Lng}

	assignment, err := h.service.RecordPickup(r.Context(), assignmentID, pickupDTO.ScannedCode, point, actor)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrAssignmentNotFound),
			errors.Is(err, statemachine.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrBarcodeMismatch):
			// неверный код: заказ остался как был, скан можно повторить
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, statemachine.ErrActorNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, dispatch.ErrAssignmentInactive),
			errors.Is(err, dispatch.ErrAlreadyPickedUp),
			errors.Is(err, statemachine.ErrIllegalTransition),
			errors.Is(err, statemachine.ErrConcurrentModification):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromAssignment(assignment)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
