package verify

import (
	"fmt"
	"testing"

	"github.com/praxislabs/praxis/internal/model"
)

func claimBatch(total, withEvidence int) []model.Claim {
	claims := make([]model.Claim, 0, total)
	for i := 0; i < total; i++ {
		c := model.Claim{
			ID:   fmt.Sprintf("c%d", i),
			Type: model.ClaimTypeTextual,
			Text: "test claim",
		}
		if i < withEvidence {
			c.Evidence = []model.EvidenceRef{{
				SourceID: "trial_balance.csv",
				Locator:  "account=Revenue",
			}}
		}
		claims = append(claims, c)
	}
	return claims
}

func TestEvidencePresence_EmptyBatch(t *testing.T) {
	report := EvidencePresence(nil, 1.0)

	if report.Status != model.StatusNeedsReview {
		t.Errorf("expected needs_review for empty batch, got %s", report.Status)
	}
	if len(report.Checks) != 0 {
		t.Errorf("expected no checks, got %d", len(report.Checks))
	}
	if report.Summary != "No claims provided." {
		t.Errorf("unexpected summary: %q", report.Summary)
	}
}

func TestEvidencePresence_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name         string
		withEvidence int
		threshold    float64
		want         model.VerificationStatus
	}{
		{"half covered, full threshold", 1, 1.0, model.StatusNeedsReview},
		{"half covered, half threshold", 1, 0.5, model.StatusPass},
		{"none covered", 0, 1.0, model.StatusFail},
		{"none covered, low threshold", 0, 0.1, model.StatusFail},
		{"all covered", 2, 1.0, model.StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := EvidencePresence(claimBatch(2, tt.withEvidence), tt.threshold)
			if report.Status != tt.want {
				t.Errorf("expected %s, got %s", tt.want, report.Status)
			}
		})
	}
}

func TestEvidencePresence_SummaryFormat(t *testing.T) {
	report := EvidencePresence(claimBatch(2, 1), 1.0)

	want := "evidence_coverage=0.500 (1/2), threshold=1.0"
	if report.Summary != want {
		t.Errorf("summary mismatch:\n  want %q\n  got  %q", want, report.Summary)
	}

	report = EvidencePresence(claimBatch(4, 3), 0.5)
	want = "evidence_coverage=0.750 (3/4), threshold=0.5"
	if report.Summary != want {
		t.Errorf("summary mismatch:\n  want %q\n  got  %q", want, report.Summary)
	}
}

func TestEvidencePresence_PerClaimChecks(t *testing.T) {
	claims := claimBatch(3, 2)
	report := EvidencePresence(claims, 1.0)

	if len(report.Checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(report.Checks))
	}
	for i, check := range report.Checks {
		if check.ClaimID != claims[i].ID {
			t.Errorf("check %d: order mismatch, got %s", i, check.ClaimID)
		}
	}
	if report.Checks[0].Status != model.StatusPass || report.Checks[0].Reason != "Evidence present." {
		t.Errorf("unexpected first check: %+v", report.Checks[0])
	}
	if report.Checks[2].Status != model.StatusFail || report.Checks[2].Reason != "Missing evidence." {
		t.Errorf("unexpected last check: %+v", report.Checks[2])
	}
}

// statusRank orders statuses from worst to best for the monotonicity check
func statusRank(s model.VerificationStatus) int {
	switch s {
	case model.StatusFail:
		return 0
	case model.StatusNeedsReview:
		return 1
	default:
		return 2
	}
}

func TestEvidencePresence_CoverageMonotonicity(t *testing.T) {
	const total = 6
	thresholds := []float64{0.25, 0.5, 1.0}

	for _, threshold := range thresholds {
		prevRank := -1
		prevCoverage := -1.0
		for withEvidence := 0; withEvidence <= total; withEvidence++ {
			report := EvidencePresence(claimBatch(total, withEvidence), threshold)

			coverage := Coverage(claimBatch(total, withEvidence))
			if coverage < prevCoverage {
				t.Fatalf("coverage decreased at %d/%d", withEvidence, total)
			}
			if rank := statusRank(report.Status); rank < prevRank {
				t.Fatalf("status moved toward fail at %d/%d threshold %v", withEvidence, total, threshold)
			} else {
				prevRank = rank
			}
			prevCoverage = coverage
		}
	}
}

func TestCoverage(t *testing.T) {
	if got := Coverage(nil); got != 0 {
		t.Errorf("expected 0 for empty batch, got %v", got)
	}
	if got := Coverage(claimBatch(4, 1)); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}
