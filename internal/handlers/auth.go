package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login verifies credentials and returns a token plus the public user
// projection.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
