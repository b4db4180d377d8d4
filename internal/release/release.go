// Package release maps a verification report to an actionable release
// decision. The mapping is total and fixed; release decisions never feed
// back into verification within a run.
package release

import "github.com/praxislabs/praxis/internal/model"

// Fixed-vocabulary reasons
const (
	ReasonProceed = "All verification gates passed."
	ReasonHold    = "Verification incomplete; human review or additional evidence required."
	ReasonBlock   = "Verification failed; release blocked."
)

// Decide converts a verification status into a release outcome:
// pass => proceed, needs_review => hold, anything else => block.
func Decide(report model.VerificationReport) model.ReleaseOutcome {
	switch report.Status {
	case model.StatusPass:
		return model.ReleaseOutcome{Decision: model.DecisionProceed, Reason: ReasonProceed}
	case model.StatusNeedsReview:
		return model.ReleaseOutcome{Decision: model.DecisionHold, Reason: ReasonHold}
	default:
		return model.ReleaseOutcome{Decision: model.DecisionBlock, Reason: ReasonBlock}
	}
}
