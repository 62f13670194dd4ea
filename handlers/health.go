// ABOUTME: HTTP handlers for root and health endpoints
// ABOUTME: Reports model load state for load balancers and operators

package handlers

import (
	"net/http"

	"github.com/studyplanner/study-time-api/models"
)

// Root returns a running message pointing at the interactive docs.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.RootResponse{
		Message: "Study Time Prediction API is running! Use /docs for interactive documentation.",
	})
}

// Health returns API health status. Status is "healthy" exactly when the
// model reference is loaded; a failed load leaves the process permanently
// in "model_missing" until restart.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "model_missing"
	if h.reg != nil {
		status = "healthy"
	}

	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:          status,
		ModelLoaded:     h.reg != nil,
		ModelFileExists: h.modelFileExists(),
	})
}
