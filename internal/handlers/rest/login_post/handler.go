package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"waterboys/internal/handlers/rest/dto"
	"waterboys/internal/service/auth"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, token, err := h.service.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields):
			writeResponse(h.log, w, http.StatusBadRequest, dto.LoginResponse{
				Error:   true,
				Message: "Email and password are required.",
			})
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeResponse(h.log, w, http.StatusUnauthorized, dto.LoginResponse{
				Error:   true,
				Message: "Invalid email or password.",
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeResponse(h.log, w, http.StatusOK, dto.LoginResponse{
		Error: false,
		User:  dto.NewUser(user, token),
	})
}

func writeResponse(log handlerLogger, w http.ResponseWriter, status int, response dto.LoginResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
