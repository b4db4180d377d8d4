// Package verify turns a batch of claims into a structured, auditable
// verdict gating release. The gate tests evidence presence only; numeric
// agreement is a separate, composable diagnostic layered on top (see
// numeric.go) and never moves the gate.
package verify

import (
	"fmt"
	"math"
	"strconv"

	"github.com/praxislabs/praxis/internal/model"
)

// Per-claim reasons, fixed vocabulary
const (
	ReasonEvidencePresent = "Evidence present."
	ReasonMissingEvidence = "Missing evidence."
)

// SummaryNoClaims marks the deliberate "nothing to certify" state
const SummaryNoClaims = "No claims provided."

// EvidencePresence enforces an attribution coverage threshold over a batch
// of claims:
//
//   - coverage >= threshold        => pass
//   - coverage == 0, claims exist  => fail
//   - otherwise                    => needs_review
//
// An empty batch is needs_review, distinct from a certified pass.
func EvidencePresence(claims []model.Claim, minAttributionCoverage float64) model.VerificationReport {
	if len(claims) == 0 {
		return model.VerificationReport{
			Status:  model.StatusNeedsReview,
			Checks:  []model.ClaimCheck{},
			Summary: SummaryNoClaims,
		}
	}

	total := len(claims)
	withEvidence := 0

	checks := make([]model.ClaimCheck, 0, total)
	for _, c := range claims {
		if c.HasEvidence() {
			withEvidence++
			checks = append(checks, model.ClaimCheck{
				ClaimID: c.ID,
				Status:  model.StatusPass,
				Reason:  ReasonEvidencePresent,
			})
		} else {
			checks = append(checks, model.ClaimCheck{
				ClaimID: c.ID,
				Status:  model.StatusFail,
				Reason:  ReasonMissingEvidence,
			})
		}
	}

	coverage := float64(withEvidence) / float64(total)

	var overall model.VerificationStatus
	switch {
	case coverage >= minAttributionCoverage:
		overall = model.StatusPass
	case coverage == 0.0:
		overall = model.StatusFail
	default:
		overall = model.StatusNeedsReview
	}

	return model.VerificationReport{
		Status: overall,
		Checks: checks,
		Summary: fmt.Sprintf("evidence_coverage=%.3f (%d/%d), threshold=%s",
			coverage, withEvidence, total, formatThreshold(minAttributionCoverage)),
	}
}

// Coverage computes the attribution coverage fraction on its own, for
// metrics and harness expectations. Returns 0 for an empty batch.
func Coverage(claims []model.Claim) float64 {
	if len(claims) == 0 {
		return 0
	}
	withEvidence := 0
	for _, c := range claims {
		if c.HasEvidence() {
			withEvidence++
		}
	}
	return float64(withEvidence) / float64(len(claims))
}

// formatThreshold renders a threshold the way it appears in the summary
// contract: integral values keep one decimal place ("1.0"), everything
// else uses the shortest representation ("0.5", "0.75").
func formatThreshold(t float64) string {
	if t == math.Trunc(t) && !math.IsInf(t, 0) {
		return fmt.Sprintf("%.1f", t)
	}
	return strconv.FormatFloat(t, 'g', -1, 64)
}
