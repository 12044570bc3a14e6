package order_assign_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
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

	// без тела — автоподбор водителя
	var assignDTO dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderID := mux.Vars(r)["order_id"]

	assignment, err := h.service.Assign(r.Context(), orderID, assignDTO.DriverID, actor)
	if err != nil {
		switch {
		case errors.Is(err, statemachine.ErrOrderNotFound),
			errors.Is(err, dispatch.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, statemachine.ErrActorNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, dispatch.ErrNoDriverAvailable),
			errors.Is(err, dispatch.ErrOrderAlreadyAssigned),
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
