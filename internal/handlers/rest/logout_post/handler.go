package logout_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"waterboys/internal/handlers/rest/dto"
	"waterboys/internal/service/auth"
	"waterboys/pkg/logger"
)

const bearerPrefix = "Bearer "

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
	header := r.Header.Get("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	err := h.service.Logout(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken),
			errors.Is(err, auth.ErrSessionNotFound):
			writeResponse(h.log, w, http.StatusUnauthorized, dto.LogoutResponse{
				Error:   true,
				Message: "Session not found.",
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeResponse(h.log, w, http.StatusOK, dto.LogoutResponse{
		Error:   false,
		Message: "Logged out.",
	})
}

func writeResponse(log handlerLogger, w http.ResponseWriter, status int, response dto.LogoutResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
