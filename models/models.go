// ABOUTME: Data models for prediction requests and API responses
// ABOUTME: JSON-serializable structures matching client expectations

package models

// PredictionRequest holds the 13 student features the model was trained on.
// Field order here matches the training-time feature order; the vectorizer
// relies on it.
type PredictionRequest struct {
	Failures   int `json:"failures"`   // past class failures (0-4)
	Higher     int `json:"higher"`     // wants higher education (0/1)
	Absences   int `json:"absences"`   // school absences (0-93)
	FreeTime   int `json:"freetime"`   // free time after school (1-5)
	GoOut      int `json:"goout"`      // going out with friends (1-5)
	FamRel     int `json:"famrel"`     // family relationship quality (1-5)
	FamSup     int `json:"famsup"`     // family educational support (0/1)
	SchoolSup  int `json:"schoolsup"`  // extra school support (0/1)
	Paid       int `json:"paid"`       // extra paid classes (0/1)
	TravelTime int `json:"traveltime"` // home-to-school travel time (1-4)
	Health     int `json:"health"`     // current health status (1-5)
	Internet   int `json:"internet"`   // internet access at home (0/1)
	Age        int `json:"age"`        // student age (15-22)
}

// PredictionResponse is the /predict response body.
type PredictionResponse struct {
	PredictedStudyTime    string   `json:"predicted_study_time"`
	ConfidenceLevel       string   `json:"confidence_level"`
	KeyInfluencingFactors []string `json:"key_influencing_factors"`
	Recommendation        string   `json:"recommendation"`
}

// NewPredictionResponse assembles the full response from the raw model
// output and the original request fields.
func NewPredictionResponse(req PredictionRequest, hours, confidence float64) PredictionResponse {
	return PredictionResponse{
		PredictedStudyTime:    FormatStudyTime(hours),
		ConfidenceLevel:       FormatConfidence(confidence),
		KeyInfluencingFactors: KeyFactors(req),
		Recommendation:        RecommendationFor(hours),
	}
}

// HealthResponse is the /health response body.
type HealthResponse struct {
	Status          string `json:"status"`
	ModelLoaded     bool   `json:"model_loaded"`
	ModelFileExists bool   `json:"model_file_exists"`
}

// RootResponse is the / response body.
type RootResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrorResponse enumerates every offending field in a rejected
// request. No partial acceptance: one bad field fails the whole request.
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
	Code   int          `json:"code"`
}
