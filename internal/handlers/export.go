package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/azzaconstruction/contact-backend/internal/services"
)

const exportFilename = "contact_submissions.xlsx"

// DownloadSubmissions returns the whole store serialized as a downloadable
// spreadsheet. No filtering, no pagination.
func (h *ContactHandler) DownloadSubmissions(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Export(r.Context())
	if errors.Is(err, services.ErrNoSubmissions) {
		writeJSON(w, http.StatusNotFound, StatusResponse{
			Success: false,
			Message: "No submissions found",
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "Error downloading file",
		})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
