// ABOUTME: Random forest regressor loaded from a JSON model artifact
// ABOUTME: Loaded once at startup, read-only afterwards, walked per request

package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Prediction is the raw output of a regressor: the predicted study time in
// hours per day and a 0-1 confidence heuristic.
type Prediction struct {
	Hours      float64
	Confidence float64
}

// Regressor evaluates a fixed-length feature vector. Implementations must be
// safe for concurrent use; the handler shares one instance across requests.
type Regressor interface {
	Predict(features []float64) (Prediction, error)
	NumFeatures() int
}

// Tree is a single decision tree in flattened array layout, one entry per
// node. A node is a leaf when ChildrenLeft[i] == -1.
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// Forest is a random forest regression model deserialized from a JSON
// artifact. The prediction is the mean of all tree outputs.
type Forest struct {
	FeatureNames []string `json:"feature_names"`
	NFeatures    int      `json:"n_features"`
	Trees        []Tree   `json:"trees"`
}

// Confidence band displayed to users. Tight tree agreement reports the top
// of the band, maximal disagreement the bottom.
const (
	confidenceFloor   = 0.80
	confidenceCeiling = 0.95
)

// LoadForest reads and validates a model artifact. Any shape mismatch fails
// the load; callers are expected to keep serving with a nil model rather
// than crash.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}

	return &f, nil
}

// validate checks the artifact against the feature contract the vectorizer
// produces. Catching a mismatch here beats a silently meaningless prediction
// at request time.
func (f *Forest) validate() error {
	if f.NFeatures != FeatureCount {
		return fmt.Errorf("expected %d features, artifact has %d", FeatureCount, f.NFeatures)
	}
	if len(f.FeatureNames) > 0 {
		if len(f.FeatureNames) != FeatureCount {
			return fmt.Errorf("feature_names has %d entries, expected %d", len(f.FeatureNames), FeatureCount)
		}
		for i, name := range f.FeatureNames {
			if name != FeatureOrder[i] {
				return fmt.Errorf("feature_names[%d] is %q, expected %q", i, name, FeatureOrder[i])
			}
		}
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("artifact contains no trees")
	}

	for ti, tree := range f.Trees {
		n := len(tree.ChildrenLeft)
		if n == 0 {
			return fmt.Errorf("tree %d is empty", ti)
		}
		if len(tree.ChildrenRight) != n || len(tree.Feature) != n ||
			len(tree.Threshold) != n || len(tree.Value) != n {
			return fmt.Errorf("tree %d has inconsistent node arrays", ti)
		}
		for i := 0; i < n; i++ {
			left, right := tree.ChildrenLeft[i], tree.ChildrenRight[i]
			if left == -1 {
				continue
			}
			if left < 0 || left >= n || right < 0 || right >= n {
				return fmt.Errorf("tree %d node %d has out-of-range children", ti, i)
			}
			if tree.Feature[i] < 0 || tree.Feature[i] >= FeatureCount {
				return fmt.Errorf("tree %d node %d references feature %d", ti, i, tree.Feature[i])
			}
		}
	}

	return nil
}

// NumFeatures returns the feature vector length the forest expects.
func (f *Forest) NumFeatures() int {
	return f.NFeatures
}

// Predict walks every tree and averages the leaf values. Confidence is
// derived from tree agreement: the standard deviation of per-tree outputs
// mapped into the display band. Deterministic for identical input.
func (f *Forest) Predict(features []float64) (Prediction, error) {
	if len(features) != f.NFeatures {
		return Prediction{}, fmt.Errorf("feature vector has length %d, model expects %d", len(features), f.NFeatures)
	}

	outputs := make([]float64, len(f.Trees))
	var sum float64
	for i, tree := range f.Trees {
		out := tree.eval(features)
		outputs[i] = out
		sum += out
	}
	mean := sum / float64(len(f.Trees))

	return Prediction{
		Hours:      mean,
		Confidence: agreementConfidence(outputs, mean),
	}, nil
}

// eval walks the tree from the root to a leaf.
func (t Tree) eval(features []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		if features[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// agreementConfidence maps the spread of per-tree outputs into the
// confidence band. One standard deviation of a full hour or more hits the
// floor; perfect agreement hits the ceiling.
func agreementConfidence(outputs []float64, mean float64) float64 {
	if len(outputs) < 2 {
		return confidenceFloor
	}

	var variance float64
	for _, out := range outputs {
		d := out - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(outputs)))

	spread := math.Min(stddev, 1.0)
	return confidenceCeiling - (confidenceCeiling-confidenceFloor)*spread
}
