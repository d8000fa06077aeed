package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/azzaconstruction/contact-backend/internal/models"
	"github.com/azzaconstruction/contact-backend/internal/services"
)

// ContactHandler serves the contact-form endpoints.
type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact handles submitting the contact form. Validation failures are
// the caller's fault (400); storage and mail failures are flattened to a
// generic 500 without distinguishing which stage broke.
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	err := h.service.Submit(r.Context(), req)
	var missing *models.MissingFieldError
	if errors.As(err, &missing) {
		writeJSON(w, http.StatusBadRequest, StatusResponse{
			Success: false,
			Message: "Please fill all required fields",
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "Error sending message. Please try again later.",
		})
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: "Message sent successfully! We will get back to you soon.",
	})
}
