package stats_get

import (
	"encoding/json"
	"errors"
	"net/http"

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

// ServeHTTP отдает сводку по доставленным заказам агента.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := authmw.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	stats, err := h.service.AgentStats(r.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StatsResponse{
		TotalLiters:    stats.Liters,
		TotalRevenue:   stats.Revenue,
		DeliveredCount: stats.Clients,
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
