// Package agreement decides whether a claimed numeric value is consistent
// with an evidence-backed numeric value. Pure and deterministic: the
// result carries every input and intermediate so audit logs can replay
// the decision.
package agreement

import (
	"fmt"
	"math"
)

// epsilon guards the relative-difference scale against division by zero
const epsilon = 1e-12

// Default tolerances
const (
	DefaultAbsTol = 0.01
	DefaultRelTol = 0.01
)

// Result is the full record of one agreement check
type Result struct {
	OK            bool    `json:"ok"`
	ClaimValue    float64 `json:"claim_value"`
	EvidenceValue float64 `json:"evidence_value"`
	AbsDiff       float64 `json:"abs_diff"`
	RelDiff       float64 `json:"rel_diff"`
	AbsTol        float64 `json:"abs_tol"`
	RelTol        float64 `json:"rel_tol"`
	Reason        string  `json:"reason"`
}

// Check compares a claimed value against an evidence value. It passes when
// either the absolute difference is within absTol or the relative
// difference is within relTol: small absolute rounding and large-magnitude
// relative noise are both tolerated.
func Check(claimValue, evidenceValue, absTol, relTol float64) Result {
	absDiff := math.Abs(claimValue - evidenceValue)

	scale := math.Max(math.Abs(evidenceValue), epsilon)
	relDiff := absDiff / scale

	absOK := absDiff <= absTol
	relOK := relDiff <= relTol

	var reason string
	switch {
	case absOK:
		reason = "abs_ok"
	case relOK:
		reason = "rel_ok"
	default:
		reason = fmt.Sprintf(
			"mismatch(abs_diff=%.6g > abs_tol=%.6g, rel_diff=%.6g > rel_tol=%.6g)",
			absDiff, absTol, relDiff, relTol,
		)
	}

	return Result{
		OK:            absOK || relOK,
		ClaimValue:    claimValue,
		EvidenceValue: evidenceValue,
		AbsDiff:       absDiff,
		RelDiff:       relDiff,
		AbsTol:        absTol,
		RelTol:        relTol,
		Reason:        reason,
	}
}

// CheckDefault applies the default tolerances
func CheckDefault(claimValue, evidenceValue float64) Result {
	return Check(claimValue, evidenceValue, DefaultAbsTol, DefaultRelTol)
}
