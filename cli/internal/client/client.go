// ABOUTME: HTTP client for the Study Time Prediction API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is the API client for the prediction service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /health endpoint response
type HealthResponse struct {
	Status          string `json:"status"`
	ModelLoaded     bool   `json:"model_loaded"`
	ModelFileExists bool   `json:"model_file_exists"`
}

// PredictionRequest holds the 13 feature values sent to /predict
type PredictionRequest struct {
	Failures   int `json:"failures"`
	Higher     int `json:"higher"`
	Absences   int `json:"absences"`
	FreeTime   int `json:"freetime"`
	GoOut      int `json:"goout"`
	FamRel     int `json:"famrel"`
	FamSup     int `json:"famsup"`
	SchoolSup  int `json:"schoolsup"`
	Paid       int `json:"paid"`
	TravelTime int `json:"traveltime"`
	Health     int `json:"health"`
	Internet   int `json:"internet"`
	Age        int `json:"age"`
}

// PredictionResponse represents the /predict endpoint response
type PredictionResponse struct {
	PredictedStudyTime    string   `json:"predicted_study_time"`
	ConfidenceLevel       string   `json:"confidence_level"`
	KeyInfluencingFactors []string `json:"key_influencing_factors"`
	Recommendation        string   `json:"recommendation"`
}

// apiError represents an API error body, including validation field details
type apiError struct {
	Error  string `json:"error"`
	Code   int    `json:"code"`
	Fields []struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	} `json:"fields"`
}

// Health calls GET /health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach API at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	return &health, nil
}

// Predict calls POST /predict with the given features
func (c *Client) Predict(ctx context.Context, input PredictionRequest) (*PredictionResponse, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach API at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var prediction PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("decode prediction response: %w", err)
	}
	return &prediction, nil
}

// decodeError converts a non-200 response into a readable error
func (c *Client) decodeError(resp *http.Response) error {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if len(apiErr.Fields) > 0 {
		details := make([]string, 0, len(apiErr.Fields))
		for _, f := range apiErr.Fields {
			details = append(details, fmt.Sprintf("%s: %s", f.Field, f.Reason))
		}
		return fmt.Errorf("%s (%s)", apiErr.Error, strings.Join(details, ", "))
	}

	return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
}
