package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/services"
)

type AppointmentHandler struct {
	apptService *services.AppointmentService
}

func NewAppointmentHandler(apptService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{apptService: apptService}
}

// ListAppointments returns all bookings ordered by appointment date.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.apptService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching appointments")
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

// CreateAppointment validates and persists a new booking.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req models.AppointmentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appt, err := h.apptService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Error creating appointment")
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

// UpdateAppointment applies a partial field set to a booking.
func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req models.AppointmentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appt, err := h.apptService.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "Error updating appointment")
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

// DeleteAppointment removes a booking; missing IDs yield 404.
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.apptService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Error deleting appointment")
		return
	}
	writeMessage(w, http.StatusOK, "Appointment deleted successfully")
}
