// ABOUTME: HTTP handler for the prediction endpoint
// ABOUTME: Validates input, vectorizes, runs inference, shapes the response

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/studyplanner/study-time-api/models"
	"github.com/studyplanner/study-time-api/services"
)

var (
	predictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "studytime_predictions_total",
		Help: "Total successful predictions served.",
	})

	predictedHours = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "studytime_predicted_hours",
		Help:    "Distribution of raw predicted study hours per day.",
		Buckets: []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4},
	})
)

// Predict runs the full prediction pipeline: validate -> vectorize ->
// infer -> format. Inference is deterministic, so failures are never
// retried; they are logged and surfaced as server errors.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	// Fail fast when the model never loaded. Restart is the only recovery.
	if h.reg == nil {
		h.writeError(w, "Model not loaded. Ensure the model artifact exists, then restart the service.", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return
		}
		h.writeError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	req, fieldErrs, err := services.ParsePredictionRequest(body)
	if err != nil {
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if len(fieldErrs) > 0 {
		h.writeValidationError(w, fieldErrs)
		return
	}

	features := services.Vectorize(req)

	pred, err := h.reg.Predict(features)
	if err != nil {
		slog.Error("Model inference failed", "error", err)
		h.writeError(w, "Prediction failed", http.StatusInternalServerError)
		return
	}

	predictionsTotal.Inc()
	predictedHours.Observe(pred.Hours)

	h.writeJSON(w, http.StatusOK, models.NewPredictionResponse(req, pred.Hours, pred.Confidence))
}
