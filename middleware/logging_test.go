// ABOUTME: Tests for request logging middleware
// ABOUTME: Verifies request IDs, status capture, and handler passthrough

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogRequest_SetsRequestID(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
}

func TestLogRequest_UniqueRequestIDs(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {})

	ids := make(map[string]bool)
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest("GET", "/", nil))
		ids[w.Header().Get("X-Request-ID")] = true
	}

	if len(ids) != 10 {
		t.Errorf("Expected 10 unique request IDs, got %d", len(ids))
	}
}

func TestLogRequest_PassesThroughStatusAndBody(t *testing.T) {
	handler := LogRequest(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status 418, got %d", w.Code)
	}
	if w.Body.String() != "short and stout" {
		t.Errorf("Unexpected body: %q", w.Body.String())
	}
}
