// ABOUTME: Request body validation for the prediction endpoint
// ABOUTME: Checks presence and numeric type of all 13 feature fields

package services

import (
	"encoding/json"
	"math"

	"github.com/studyplanner/study-time-api/models"
)

// ParsePredictionRequest decodes and validates a /predict request body.
// A non-nil error means the body is not a JSON object at all. A non-empty
// field error list enumerates every missing or mistyped field; the request
// object is only usable when the list is empty.
func ParsePredictionRequest(body []byte) (models.PredictionRequest, []models.FieldError, error) {
	var req models.PredictionRequest

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, nil, err
	}

	// Destinations in FeatureOrder so error reporting follows field order.
	fields := map[string]*int{
		"failures":   &req.Failures,
		"higher":     &req.Higher,
		"absences":   &req.Absences,
		"freetime":   &req.FreeTime,
		"goout":      &req.GoOut,
		"famrel":     &req.FamRel,
		"famsup":     &req.FamSup,
		"schoolsup":  &req.SchoolSup,
		"paid":       &req.Paid,
		"traveltime": &req.TravelTime,
		"health":     &req.Health,
		"internet":   &req.Internet,
		"age":        &req.Age,
	}

	var fieldErrs []models.FieldError
	for _, name := range FeatureOrder {
		msg, ok := raw[name]
		if !ok {
			fieldErrs = append(fieldErrs, models.FieldError{Field: name, Reason: "field is required"})
			continue
		}

		var value float64
		if err := json.Unmarshal(msg, &value); err != nil {
			fieldErrs = append(fieldErrs, models.FieldError{Field: name, Reason: "must be a number"})
			continue
		}
		if value != math.Trunc(value) {
			fieldErrs = append(fieldErrs, models.FieldError{Field: name, Reason: "must be an integer"})
			continue
		}

		*fields[name] = int(value)
	}

	if len(fieldErrs) > 0 {
		return models.PredictionRequest{}, fieldErrs, nil
	}
	return req, nil, nil
}
