package radar_mode_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
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

	actor, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	switch {
	case actor.Type == entities.ActorAdmin:
	case actor.Type == entities.ActorVendor && actor.ID == vendorID:
	default:
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var modeDTO dto.RadarModeRequest
	err = json.NewDecoder(r.Body).Decode(&modeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	availability, err := h.service.SetMode(r.Context(), vendorID, entities.VendorMode(modeDTO.Mode))
	if err != nil {
		switch {
		case errors.Is(err, radar.ErrInvalidMode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, radar.ErrVendorNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RadarStatusResponse{
		VendorID:  availability.VendorID,
		Mode:      availability.Mode.String(),
		ModeSetAt: availability.ModeSetAt,
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
