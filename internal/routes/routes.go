package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/azzaconstruction/contact-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, contact *handlers.ContactHandler) {
	// Contact form routes
	r.Post("/api/contact", contact.SubmitContact)

	// Admin export of all stored submissions
	r.Get("/api/download-submissions", contact.DownloadSubmissions)
}
