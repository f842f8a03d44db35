package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/middleware"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/services"
)

type SlotHandler struct {
	slotService *services.SlotService
}

func NewSlotHandler(slotService *services.SlotService) *SlotHandler {
	return &SlotHandler{slotService: slotService}
}

// ListSlots returns all surgery slots ordered by start time.
func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching surgery slots")
		return
	}
	if slots == nil {
		slots = []models.SurgerySlot{}
	}
	writeJSON(w, http.StatusOK, slots)
}

// CreateSlot persists a new surgery slot attributed to the caller.
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req models.SurgerySlotCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	createdBy := ""
	if claims, ok := middleware.GetClaims(r.Context()); ok {
		createdBy = claims.Username
	}

	slot, err := h.slotService.Create(r.Context(), &req, createdBy)
	if err != nil {
		writeServiceError(w, err, "Error creating surgery slot")
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

// DeleteSlot removes a surgery slot; missing IDs yield 404.
func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	if err := h.slotService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Error deleting surgery slot")
		return
	}
	writeMessage(w, http.StatusOK, "Surgery slot deleted successfully")
}
