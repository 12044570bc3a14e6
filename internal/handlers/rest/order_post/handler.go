package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/pkg/middlewares/auth"
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
	actor, ok := auth.FromContext(r.Context())
	if !ok || actor.Type != entities.ActorCustomer {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var createDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]orderservice.ItemDraft, 0, len(createDTO.Items))
	for _, item := range createDTO.Items {
		options := make([]entities.OrderItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			options = append(options, entities.OrderItemOption{Name: opt.Name, Price: opt.Price})
		}
		items = append(items, orderservice.ItemDraft{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Options:   options,
		})
	}

	orderEntity, err := h.service.Create(r.Context(), orderservice.CreateRequest{
		VendorID:        createDTO.VendorID,
		CustomerID:      actor.ID,
		Items:           items,
		Discount:        createDTO.Discount,
		DeliveryAddress: createDTO.DeliveryAddress,
		DeliveryPoint:   entities.GeoPoint{Lat: createDTO.DeliveryPoint.Lat, Lng: createDTO.DeliveryPoint.Lng},
	})
	if err != nil {
		var rangeErr *orderservice.OutsideDeliveryRangeError
		switch {
		case errors.Is(err, orderservice.ErrEmptyOrder),
			errors.Is(err, orderservice.ErrInvalidItem),
			errors.Is(err, orderservice.ErrTotalsMismatch),
			errors.Is(err, orderservice.ErrMissingCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrVendorUnavailable):
			w.WriteHeader(http.StatusConflict)
		case errors.As(err, &rangeErr):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, radar.ErrVendorNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
