// ABOUTME: Generates a deterministic sample model artifact for local use
// ABOUTME: Lets the service run end-to-end without real training artifacts

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/studyplanner/study-time-api/services"
)

// sampleForest builds a small hand-crafted forest over the real feature
// layout. The splits are chosen to be plausible (failures, health, absences,
// age, goout) and the leaf values sit in the 0.5-4.0 hours/day range the
// real model was trained on. Output is fully deterministic.
func sampleForest() services.Forest {
	leaf := -2 // sklearn convention for leaf feature/threshold slots

	return services.Forest{
		FeatureNames: services.FeatureOrder,
		NFeatures:    services.FeatureCount,
		Trees: []services.Tree{
			// failures, then higher
			{
				ChildrenLeft:  []int{1, 2, -1, -1, -1},
				ChildrenRight: []int{4, 3, -1, -1, -1},
				Feature:       []int{0, 1, leaf, leaf, leaf},
				Threshold:     []float64{0.5, 0.5, -2, -2, -2},
				Value:         []float64{0, 0, 1.2, 2.6, 0.8},
			},
			// health, then absences
			{
				ChildrenLeft:  []int{1, -1, 3, -1, -1},
				ChildrenRight: []int{2, -1, 4, -1, -1},
				Feature:       []int{10, leaf, 2, leaf, leaf},
				Threshold:     []float64{3.5, -2, 10.5, -2, -2},
				Value:         []float64{0, 1.5, 0, 2.4, 1.1},
			},
			// age, then goout
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

func main() {
	path := "study_time_model.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := json.MarshalIndent(sampleForest(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode model: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote sample model artifact to %s\n", path)
}
