// ABOUTME: Display formatting for predicted study time and confidence
// ABOUTME: Rounds raw model output into human-readable labels

package models

import (
	"fmt"
	"math"
	"strconv"
)

// FormatStudyTime rounds a raw prediction to the nearest half hour and
// appends units, e.g. "2.5 hours/day". Negative model output (possible with
// pathological artifacts) clamps to zero.
func FormatStudyTime(hours float64) string {
	rounded := math.Round(hours*2) / 2
	if rounded < 0 {
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64) + " hours/day"
}

// FormatConfidence renders a 0-1 confidence as a percentage label, e.g.
// "87%". This is a display heuristic, not a statistical interval.
func FormatConfidence(confidence float64) string {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return fmt.Sprintf("%d%%", int(math.Round(confidence*100)))
}
