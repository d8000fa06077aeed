package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/azzaconstruction/contact-backend/pkg/logger"
)

// StatusResponse is the JSON body of every non-file endpoint.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeJSON serializes payload to JSON with status and logs on failure.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger.Sugar != nil {
		logger.Sugar.Errorf("failed to encode response: %v", err)
	}
}
