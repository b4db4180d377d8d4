package release

import (
	"testing"

	"github.com/praxislabs/praxis/internal/model"
)

func TestDecide_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		status     model.VerificationStatus
		wantDec    model.ReleaseDecision
		wantReason string
	}{
		{"pass proceeds", model.StatusPass, model.DecisionProceed, "All verification gates passed."},
		{"needs_review holds", model.StatusNeedsReview, model.DecisionHold, "Verification incomplete; human review or additional evidence required."},
		{"fail blocks", model.StatusFail, model.DecisionBlock, "Verification failed; release blocked."},
		{"unknown status blocks", model.VerificationStatus("garbage"), model.DecisionBlock, "Verification failed; release blocked."},
		{"empty status blocks", model.VerificationStatus(""), model.DecisionBlock, "Verification failed; release blocked."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Decide(model.VerificationReport{Status: tt.status})
			if outcome.Decision != tt.wantDec {
				t.Errorf("expected %s, got %s", tt.wantDec, outcome.Decision)
			}
			if outcome.Reason != tt.wantReason {
				t.Errorf("expected reason %q, got %q", tt.wantReason, outcome.Reason)
			}
		})
	}
}

func TestDecide_IgnoresChecks(t *testing.T) {
	// Only the overall status drives the decision; per-claim checks are
	// informational at this stage.
	report := model.VerificationReport{
		Status: model.StatusPass,
		Checks: []model.ClaimCheck{
			{ClaimID: "c1", Status: model.StatusFail, Reason: "Missing evidence."},
		},
	}
	if outcome := Decide(report); outcome.Decision != model.DecisionProceed {
		t.Errorf("expected proceed for pass status, got %s", outcome.Decision)
	}
}
