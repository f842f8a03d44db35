package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hearingclinic/admin-api/internal/repository"
	"github.com/hearingclinic/admin-api/internal/services"
	"github.com/rs/zerolog/log"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

// writeServiceError maps service/repository errors onto HTTP statuses.
// Anything unrecognized is treated as a store failure.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrSchedulingConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Record not found")
	default:
		log.Error().Err(err).Msg(fallback)
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}
