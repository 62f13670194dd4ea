// ABOUTME: Rule-based influencing factor selection for predictions
// ABOUTME: Threshold checks on request fields, not derived from the model

package models

// maxKeyFactors caps the factor list; rules are evaluated in order and the
// first three matches win.
const maxKeyFactors = 3

// factorRule pairs a display string with its threshold check.
type factorRule struct {
	label string
	match func(PredictionRequest) bool
}

// factorRules are evaluated in fixed order so identical requests always
// produce the same factor list.
var factorRules = []factorRule{
	{"Low failures", func(r PredictionRequest) bool { return r.Failures == 0 }},
	{"High motivation", func(r PredictionRequest) bool { return r.Higher == 1 }},
	{"Good health", func(r PredictionRequest) bool { return r.Health >= 4 }},
	{"High absences affecting study time", func(r PredictionRequest) bool { return r.Absences > 10 }},
}

// KeyFactors returns up to three influencing-factor strings for the request.
// Returns an empty (non-nil) slice when no rule matches so the JSON field
// serializes as [] rather than null.
func KeyFactors(req PredictionRequest) []string {
	factors := make([]string, 0, maxKeyFactors)
	for _, rule := range factorRules {
		if len(factors) == maxKeyFactors {
			break
		}
		if rule.match(req) {
			factors = append(factors, rule.label)
		}
	}
	return factors
}
