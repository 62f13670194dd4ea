// ABOUTME: Canned study recommendations keyed by predicted hours
// ABOUTME: Three fixed buckets selected by predicted value range

package models

// Recommendation buckets. Thresholds are in predicted hours per day and the
// buckets are checked low to high, so exactly one string is returned for any
// input.
const (
	recommendLowStudyTime  = "Try to dedicate more daily study time and reduce distractions."
	recommendMidStudyTime  = "Maintain current study pattern, focus on building consistent daily habits."
	recommendHighStudyTime = "Great! Keep up the good work, aim for balance between study and rest."
)

// RecommendationFor returns the canned recommendation for a predicted study
// time in hours per day.
func RecommendationFor(hours float64) string {
	switch {
	case hours < 1:
		return recommendLowStudyTime
	case hours < 2:
		return recommendMidStudyTime
	default:
		return recommendHighStudyTime
	}
}
