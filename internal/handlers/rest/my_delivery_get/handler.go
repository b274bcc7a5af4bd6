package my_delivery_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"waterboys/internal/entities"
	"waterboys/internal/handlers/rest/dto"
	authmw "waterboys/internal/pkg/middlewares/auth"
	"waterboys/internal/service/order"
	"waterboys/pkg/logger"
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

// ServeHTTP отдает коллекцию заказов агента: его собственные плюс
// свободные pending. Параметры scope, status и q опциональны.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := authmw.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	filter := order.Filter{
		Scope:  order.Scope(query.Get("scope")),
		Status: entities.OrderStatusType(query.Get("status")),
		Query:  query.Get("q"),
	}

	orderEntities, err := h.service.ListOrders(r.Context(), user.ID, filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidUserID),
			errors.Is(err, order.ErrUndefinedScope):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MyDeliveryResponse{
		Error:  false,
		Orders: dto.NewOrderList(orderEntities),
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
