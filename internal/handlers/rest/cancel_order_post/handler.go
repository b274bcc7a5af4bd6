package cancel_order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"waterboys/internal/handlers/rest/dto"
	"waterboys/internal/service/delivery"
	"waterboys/pkg/logger"
)

type Handler struct {
	log           handlerLogger
	service       Service
	authenticator Authenticator
}

func New(log handlerLogger, service Service, authenticator Authenticator) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:           handlerLog,
		service:       service,
		authenticator: authenticator,
	}
}

// ServeHTTP отменяет заказ, находящийся у агента в работе.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var actionDTO dto.OrderActionRequest
	err := json.NewDecoder(r.Body).Decode(&actionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), actionDTO.Token)
	if err != nil {
		writeResponse(h.log, w, http.StatusUnauthorized, dto.OrderActionResponse{
			Error:   true,
			Message: "Session not found.",
		})
		return
	}
	if user.ID != actionDTO.UserID {
		writeResponse(h.log, w, http.StatusForbidden, dto.OrderActionResponse{
			Error:   true,
			Message: "Token does not belong to this user.",
		})
		return
	}

	orderEntity, err := h.service.CancelOrder(r.Context(), actionDTO.ID, actionDTO.UserID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidOrderID),
			errors.Is(err, delivery.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrOrderNotFound):
			writeResponse(h.log, w, http.StatusNotFound, dto.OrderActionResponse{
				Error:   true,
				Message: "Order not found.",
			})
		case errors.Is(err, delivery.ErrUnauthorized):
			writeResponse(h.log, w, http.StatusForbidden, dto.OrderActionResponse{
				Error:   true,
				Message: "Order belongs to another agent.",
			})
		case errors.Is(err, delivery.ErrInvalidTransition):
			writeResponse(h.log, w, http.StatusConflict, dto.OrderActionResponse{
				Error:   true,
				Message: "Order cannot be cancelled in its current status.",
			})
		case errors.Is(err, delivery.ErrOrderConflict):
			writeResponse(h.log, w, http.StatusConflict, dto.OrderActionResponse{
				Error:   true,
				Message: "Order was changed by another request. Try again.",
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	order := dto.NewOrder(orderEntity)
	writeResponse(h.log, w, http.StatusOK, dto.OrderActionResponse{
		Error: false,
		Order: &order,
	})
}

func writeResponse(log handlerLogger, w http.ResponseWriter, status int, response dto.OrderActionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
