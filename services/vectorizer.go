// ABOUTME: Feature vector construction from validated prediction requests
// ABOUTME: Fixed field ordering matching the model's training-time layout

package services

import "github.com/studyplanner/study-time-api/models"

// FeatureCount is the number of features the model was trained on.
const FeatureCount = 13

// FeatureOrder is the exact training-time feature order. The model artifact
// is validated against this list at load time; changing it breaks every
// previously exported artifact.
var FeatureOrder = []string{
	"failures",
	"higher",
	"absences",
	"freetime",
	"goout",
	"famrel",
	"famsup",
	"schoolsup",
	"paid",
	"traveltime",
	"health",
	"internet",
	"age",
}

// Vectorize maps a validated request to the fixed-order feature vector.
// Pure function: identical input always yields an identical vector.
func Vectorize(req models.PredictionRequest) []float64 {
	return []float64{
		float64(req.Failures),
		float64(req.Higher),
		float64(req.Absences),
		float64(req.FreeTime),
		float64(req.GoOut),
		float64(req.FamRel),
		float64(req.FamSup),
		float64(req.SchoolSup),
		float64(req.Paid),
		float64(req.TravelTime),
		float64(req.Health),
		float64(req.Internet),
		float64(req.Age),
	}
}
