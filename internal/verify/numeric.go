package verify

import (
	"github.com/praxislabs/praxis/internal/agreement"
	"github.com/praxislabs/praxis/internal/evidence"
	"github.com/praxislabs/praxis/internal/model"
)

// NumericCheck is the agreement verdict for one numeric claim. Claims that
// cannot be checked (no value, no evidence, no numeric field in the backing
// row) are reported as skipped rather than failed.
type NumericCheck struct {
	ClaimID string            `json:"claim_id"`
	Skipped bool              `json:"skipped"`
	Reason  string            `json:"reason,omitempty"` // populated when skipped
	Result  *agreement.Result `json:"result,omitempty"`
}

// Skip reasons, fixed vocabulary
const (
	SkipNotNumeric   = "not a numeric claim"
	SkipNoValue      = "claim carries no value"
	SkipNoEvidence   = "claim carries no evidence"
	SkipNoNumericRow = "evidence row has no parseable numeric field"
)

// NumericChecks runs the agreement comparator over every numeric claim
// whose first evidence reference carries a structured data row. This is a
// diagnostic companion to EvidencePresence: the gate decision stays
// presence-only.
func NumericChecks(claims []model.Claim, absTol, relTol float64) []NumericCheck {
	checks := make([]NumericCheck, 0, len(claims))

	for _, c := range claims {
		if c.Type != model.ClaimTypeNumeric {
			checks = append(checks, NumericCheck{ClaimID: c.ID, Skipped: true, Reason: SkipNotNumeric})
			continue
		}
		if c.Value == nil {
			checks = append(checks, NumericCheck{ClaimID: c.ID, Skipped: true, Reason: SkipNoValue})
			continue
		}
		if !c.HasEvidence() {
			checks = append(checks, NumericCheck{ClaimID: c.ID, Skipped: true, Reason: SkipNoEvidence})
			continue
		}

		evidenceValue, ok := rowValue(c.Evidence[0].DataRow)
		if !ok {
			checks = append(checks, NumericCheck{ClaimID: c.ID, Skipped: true, Reason: SkipNoNumericRow})
			continue
		}

		result := agreement.Check(*c.Value, evidenceValue, absTol, relTol)
		checks = append(checks, NumericCheck{ClaimID: c.ID, Result: &result})
	}

	return checks
}

// rowValue extracts the numeric value from an evidence data row using the
// same column preference the evidence store applies at resolution time
func rowValue(row map[string]string) (float64, bool) {
	if row == nil {
		return 0, false
	}
	for _, col := range []string{"amount", "balance", "value"} {
		if raw, ok := row[col]; ok {
			if v, ok := evidence.ParseNumber(raw); ok {
				return v, true
			}
		}
	}
	for col, raw := range row {
		if col == evidence.KeyColumn {
			continue
		}
		if v, ok := evidence.ParseNumber(raw); ok {
			return v, true
		}
	}
	return 0, false
}
