// ABOUTME: HTTP handlers for the study time prediction API
// ABOUTME: Holds the shared model reference and JSON response helpers

package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/studyplanner/study-time-api/config"
	"github.com/studyplanner/study-time-api/models"
	"github.com/studyplanner/study-time-api/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

// Handler serves all API endpoints. The regressor is set once at
// construction and never mutated, so no locking is needed across requests.
// A nil regressor means the model failed to load; prediction requests are
// refused but the process keeps serving health checks.
type Handler struct {
	cfg *config.Config
	reg services.Regressor
}

// NewHandler creates the API handler. cfg may be nil in tests; reg may be
// nil to model the unloaded state.
func NewHandler(cfg *config.Config, reg services.Regressor) *Handler {
	return &Handler{
		cfg: cfg,
		reg: reg,
	}
}

// modelFileExists reports whether the configured artifact path exists on
// disk. Health reporting only; the load already happened at startup.
func (h *Handler) modelFileExists() bool {
	if h.cfg == nil || h.cfg.ModelPath == "" {
		return false
	}
	_, err := os.Stat(h.cfg.ModelPath)
	return err == nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, fields []models.FieldError) {
	h.writeJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{
		Error:  "Request validation failed",
		Fields: fields,
		Code:   http.StatusUnprocessableEntity,
	})
}
