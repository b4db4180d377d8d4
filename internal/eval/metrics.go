package eval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/praxislabs/praxis/internal/model"
)

// Metric is a single evaluation metric with a score in [0,1] when computed
type Metric struct {
	Name    string   `json:"name"`
	Score   *float64 `json:"score"` // nil when not computed
	Details string   `json:"details"`
}

// NumericAgreement scores line-item agreement between expected and
// predicted values: for each expected key, a match means the predicted
// value exists and differs by at most tolerance.
func NumericAgreement(expected, predicted map[string]float64, tolerance float64) Metric {
	if len(expected) == 0 {
		return Metric{Name: "numeric_agreement", Details: "No expected items provided."}
	}

	keys := make([]string, 0, len(expected))
	for k := range expected {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	matches := 0
	var missing []string
	for _, k := range keys {
		p, ok := predicted[k]
		if !ok {
			missing = append(missing, k)
			continue
		}
		diff := expected[k] - p
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			matches++
		}
	}

	score := clamp01(float64(matches) / float64(len(expected)))
	details := fmt.Sprintf("matches=%d/%d, tolerance=%v, missing=%d", matches, len(expected), tolerance, len(missing))
	if len(missing) > 0 {
		shown := missing
		suffix := ""
		if len(shown) > 5 {
			shown = shown[:5]
			suffix = "..."
		}
		details += fmt.Sprintf(" (%s%s)", strings.Join(shown, ", "), suffix)
	}
	return Metric{Name: "numeric_agreement", Score: &score, Details: details}
}

// AttributionCoverage scores the share of claims carrying non-empty evidence
func AttributionCoverage(claims []model.Claim) Metric {
	if len(claims) == 0 {
		return Metric{Name: "attribution_coverage", Details: "No claims provided."}
	}

	covered := 0
	var missingIdx []int
	for i, c := range claims {
		if c.HasEvidence() {
			covered++
		} else {
			missingIdx = append(missingIdx, i)
		}
	}

	score := clamp01(float64(covered) / float64(len(claims)))
	shown := missingIdx
	suffix := ""
	if len(shown) > 10 {
		shown = shown[:10]
		suffix = "..."
	}
	details := fmt.Sprintf("covered=%d/%d, missing_indexes=%v%s", covered, len(claims), shown, suffix)
	return Metric{Name: "attribution_coverage", Score: &score, Details: details}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
