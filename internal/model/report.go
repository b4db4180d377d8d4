package model

// VerificationStatus is the tri-state outcome of the verification gate
type VerificationStatus string

const (
	StatusPass        VerificationStatus = "pass"
	StatusFail        VerificationStatus = "fail"
	StatusNeedsReview VerificationStatus = "needs_review"
)

// ClaimCheck is the per-claim verdict inside a report
type ClaimCheck struct {
	ClaimID string             `json:"claim_id"`
	Status  VerificationStatus `json:"status"`
	Reason  string             `json:"reason"`
}

// VerificationReport is the structured, auditable output of the gate.
// The summary embeds the coverage fraction and threshold in a fixed
// format consumed by downstream reporting.
type VerificationReport struct {
	Status  VerificationStatus `json:"status"`
	Checks  []ClaimCheck       `json:"checks"`
	Summary string             `json:"summary"`
}

// ReleaseDecision is the action derived from a verification report
type ReleaseDecision string

const (
	DecisionProceed ReleaseDecision = "proceed"
	DecisionHold    ReleaseDecision = "hold"
	DecisionBlock   ReleaseDecision = "block"
)

// ReleaseOutcome pairs a release decision with its fixed-vocabulary reason
type ReleaseOutcome struct {
	Decision ReleaseDecision `json:"decision"`
	Reason   string          `json:"reason"`
}
