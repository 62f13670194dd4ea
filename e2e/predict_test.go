// ABOUTME: End-to-end tests running the full HTTP stack against a real artifact
// ABOUTME: Exercises routing, middleware, model loading, and response formats

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/studyplanner/study-time-api/config"
	"github.com/studyplanner/study-time-api/handlers"
	"github.com/studyplanner/study-time-api/middleware"
	"github.com/studyplanner/study-time-api/models"
	"github.com/studyplanner/study-time-api/services"
)

const exampleBody = `{
	"failures": 0, "higher": 1, "absences": 3, "freetime": 2, "goout": 3,
	"famrel": 4, "famsup": 1, "schoolsup": 0, "paid": 1, "traveltime": 2,
	"health": 5, "internet": 1, "age": 17
}`

// testForest mirrors the sample artifact shipped with the repo: three small
// trees splitting on failures/higher, health/absences, and age/goout.
func testForest() services.Forest {
	leaf := -2

	return services.Forest{
		FeatureNames: services.FeatureOrder,
		NFeatures:    services.FeatureCount,
		Trees: []services.Tree{
			{
				ChildrenLeft:  []int{1, 2, -1, -1, -1},
				ChildrenRight: []int{4, 3, -1, -1, -1},
				Feature:       []int{0, 1, leaf, leaf, leaf},
				Threshold:     []float64{0.5, 0.5, -2, -2, -2},
				Value:         []float64{0, 0, 1.2, 2.6, 0.8},
			},
			{
				ChildrenLeft:  []int{1, -1, 3, -1, -1},
				ChildrenRight: []int{2, -1, 4, -1, -1},
				Feature:       []int{10, leaf, 2, leaf, leaf},
				Threshold:     []float64{3.5, -2, 10.5, -2, -2},
				Value:         []float64{0, 1.5, 0, 2.4, 1.1},
			},
			{
				ChildrenLeft:  []int{1, 2, -1, -1, -1},
				ChildrenRight: []int{4, 3, -1, -1, -1},
				Feature:       []int{12, 4, leaf, leaf, leaf},
				Threshold:     []float64{17.5, 3.5, -2, -2, -2},
				Value:         []float64{0, 0, 2.2, 1.4, 1.9},
			},
		},
	}
}

// startServer writes the artifact to a temp dir, loads it, and serves the
// full route table behind the same middleware chain main() installs.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.json")
	data, err := json.Marshal(testForest())
	if err != nil {
		t.Fatalf("Failed to encode artifact: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	forest, err := services.LoadForest(path)
	if err != nil {
		t.Fatalf("Failed to load artifact: %v", err)
	}

	cfg := &config.Config{
		Port:               "0",
		Environment:        "test",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		ShutdownTimeout:    5,
		ModelPath:          path,
	}

	h := handlers.NewHandler(cfg, forest)
	corsMiddleware := middleware.CORSWithConfig(cfg.CORSAllowedOrigins)

	mux := http.NewServeMux()
	for _, rt := range h.Routes() {
		chained := middleware.Chain(rt.Handler,
			middleware.LogRequest,
			corsMiddleware,
			middleware.Metrics(rt.Path),
		)
		mux.HandleFunc(rt.Method+" "+rt.Path, chained)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return resp, data
}

func TestPredictEndToEnd(t *testing.T) {
	srv := startServer(t)

	resp, body := postJSON(t, srv.URL+"/predict", exampleBody)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header from logging middleware")
	}

	var pred models.PredictionResponse
	if err := json.Unmarshal(body, &pred); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if pred.PredictedStudyTime != "2.5 hours/day" {
		t.Errorf("Expected '2.5 hours/day', got %q", pred.PredictedStudyTime)
	}
	if !strings.HasSuffix(pred.ConfidenceLevel, "%") {
		t.Errorf("Expected percentage confidence, got %q", pred.ConfidenceLevel)
	}
	wantFactors := []string{"Low failures", "High motivation", "Good health"}
	if len(pred.KeyInfluencingFactors) != len(wantFactors) {
		t.Fatalf("Expected factors %v, got %v", wantFactors, pred.KeyInfluencingFactors)
	}
	for i, want := range wantFactors {
		if pred.KeyInfluencingFactors[i] != want {
			t.Errorf("Factor %d: expected %q, got %q", i, want, pred.KeyInfluencingFactors[i])
		}
	}
	if pred.Recommendation == "" {
		t.Error("Expected a recommendation")
	}
}

func TestPredictEndToEnd_ConcurrentIdenticalRequests(t *testing.T) {
	srv := startServer(t)

	// Grab one reference response, then hammer the endpoint concurrently and
	// require every response to match it byte for byte.
	_, reference := postJSON(t, srv.URL+"/predict", exampleBody)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			resp, err := http.Post(srv.URL+"/predict", "application/json", strings.NewReader(exampleBody))
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status %d: %s", resp.StatusCode, body)
			}
			if !bytes.Equal(body, reference) {
				return fmt.Errorf("response diverged: %s vs %s", body, reference)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Errorf("Concurrent requests diverged: %v", err)
	}
}

func TestPredictEndToEnd_ValidationErrors(t *testing.T) {
	srv := startServer(t)

	resp, body := postJSON(t, srv.URL+"/predict", `{"failures": 0, "age": 17.5}`)

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422, got %d: %s", resp.StatusCode, body)
	}

	var verr models.ValidationErrorResponse
	if err := json.Unmarshal(body, &verr); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	// 11 missing fields plus the fractional age.
	if len(verr.Fields) != 12 {
		t.Errorf("Expected 12 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}
}

func TestPredictEndToEnd_BoundaryInputs(t *testing.T) {
	srv := startServer(t)

	bodies := []string{
		strings.NewReplacer(`"age": 17`, `"age": 15`, `"absences": 3`, `"absences": 0`).Replace(exampleBody),
		strings.NewReplacer(`"age": 17`, `"age": 22`, `"absences": 3`, `"absences": 93`).Replace(exampleBody),
	}

	for _, body := range bodies {
		resp, data := postJSON(t, srv.URL+"/predict", body)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", resp.StatusCode, data)
		}
	}
}

func TestHealthEndToEnd(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var health models.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("Expected status healthy, got %q", health.Status)
	}
	if !health.ModelLoaded || !health.ModelFileExists {
		t.Errorf("Expected model loaded and file present, got %+v", health)
	}
}

func TestRootEndToEnd(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var root models.RootResponse
	if err := json.NewDecoder(resp.Body).Decode(&root); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.Contains(root.Message, "/docs") {
		t.Errorf("Expected root message to mention /docs, got %q", root.Message)
	}

	// The exact-match pattern must not swallow unknown paths.
	notFound, err := http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope failed: %v", err)
	}
	notFound.Body.Close()
	if notFound.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", notFound.StatusCode)
	}
}

func TestMetricsEndToEnd(t *testing.T) {
	srv := startServer(t)

	// Generate some traffic first so the counters exist.
	postJSON(t, srv.URL+"/predict", exampleBody)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read metrics: %v", err)
	}
	if !strings.Contains(string(body), "studytime_http_requests_total") {
		t.Error("Expected studytime_http_requests_total in metrics output")
	}
	if !strings.Contains(string(body), "studytime_predictions_total") {
		t.Error("Expected studytime_predictions_total in metrics output")
	}
}

func TestCORSEndToEnd(t *testing.T) {
	srv := startServer(t)

	req, err := http.NewRequest("GET", srv.URL+"/health", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Expected allowed origin echoed back, got %q", got)
	}
}

func TestDocsEndToEnd(t *testing.T) {
	srv := startServer(t)

	resp, err := http.Get(srv.URL + "/docs")
	if err != nil {
		t.Fatalf("GET /docs failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "/openapi.yaml") {
		t.Error("Expected docs page to reference /openapi.yaml")
	}

	spec, err := http.Get(srv.URL + "/openapi.yaml")
	if err != nil {
		t.Fatalf("GET /openapi.yaml failed: %v", err)
	}
	defer spec.Body.Close()
	if spec.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 for spec, got %d", spec.StatusCode)
	}
}
