package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/services"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ListContacts returns all inquiries, newest first.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Error fetching contacts")
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// CreateContact is the public inquiry-form intake.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "Error creating contact")
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

// UpdateContactStatus moves an inquiry along its lifecycle.
func (h *ContactHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	var req models.ContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, err, "Error updating contact")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// DeleteContact removes an inquiry; missing IDs yield 404.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Error deleting contact")
		return
	}
	writeMessage(w, http.StatusOK, "Contact deleted successfully")
}
