// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/predict")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration. Method enforcement is
// done by Go 1.22+ router pattern matching.
func (h *Handler) Routes() []Route {
	return []Route{
		// Status ("/{$}" matches exactly "/", not every unregistered path)
		{Method: http.MethodGet, Path: "/{$}", Handler: h.Root},
		{Method: http.MethodGet, Path: "/health", Handler: h.Health},

		// Prediction
		{Method: http.MethodPost, Path: "/predict", Handler: h.Predict},

		// Documentation
		{Method: http.MethodGet, Path: "/docs", Handler: h.Docs},
		{Method: http.MethodGet, Path: "/openapi.yaml", Handler: h.OpenAPISpec},

		// Operational
		{Method: http.MethodGet, Path: "/metrics", Handler: promhttp.Handler().ServeHTTP},
	}
}
