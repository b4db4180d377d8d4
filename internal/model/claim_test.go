package model

import (
	"encoding/json"
	"testing"
)

func TestHasEvidence(t *testing.T) {
	c := Claim{ID: "c1", Type: ClaimTypeTextual, Text: "no refs"}
	if c.HasEvidence() {
		t.Error("claim without refs should report no evidence")
	}

	c.Evidence = []EvidenceRef{{SourceID: "trial_balance.csv", Locator: "account=Revenue"}}
	if !c.HasEvidence() {
		t.Error("claim with a ref should report evidence")
	}
}

func TestHashContent_Stable(t *testing.T) {
	a := HashContent("account=Revenue\nbalance=100")
	b := HashContent("account=Revenue\nbalance=100")
	if a != b {
		t.Error("identical content should hash identically")
	}
	if len(a) != 64 {
		t.Errorf("expected hex sha256 digest, got %d chars", len(a))
	}
	if a == HashContent("account=Revenue\nbalance=101") {
		t.Error("different content should not collide")
	}
}

func TestHashRow_OrderIndependent(t *testing.T) {
	// Map iteration order varies; the digest must not
	row := map[string]string{"account": "Revenue", "balance": "100", "currency": "USD"}
	first := HashRow(row)
	for i := 0; i < 20; i++ {
		if HashRow(row) != first {
			t.Fatal("row digest changed across calls")
		}
	}

	same := map[string]string{"currency": "USD", "balance": "100", "account": "Revenue"}
	if HashRow(same) != first {
		t.Error("equal rows built in different order should hash identically")
	}

	other := map[string]string{"account": "Revenue", "balance": "200", "currency": "USD"}
	if HashRow(other) == first {
		t.Error("different cell values should change the digest")
	}
}

func TestClaim_JSONShape(t *testing.T) {
	c := Claim{
		ID:    "rev_total",
		Type:  ClaimTypeNumeric,
		Text:  "Total revenue equals 152000.50 USD",
		Value: Float64(152000.50),
		Unit:  "USD",
		Evidence: []EvidenceRef{{
			SourceID: "trial_balance.csv",
			Locator:  "account=Revenue",
		}},
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "type", "text", "value", "unit", "evidence"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in claim JSON", key)
		}
	}
	// Optional fields stay out of the payload when unset
	if _, ok := decoded["source_meta"]; ok {
		t.Error("unset source_meta should be omitted")
	}

	unattributed := Claim{ID: "c2", Type: ClaimTypeTextual, Text: "no refs"}
	data, err = json.Marshal(unattributed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded = nil
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["evidence"]; !ok {
		t.Error("evidence must serialize even when empty: absence is meaningful")
	}
	if _, ok := decoded["value"]; ok {
		t.Error("nil value should be omitted")
	}
}

func TestFloat64(t *testing.T) {
	p := Float64(3.5)
	if p == nil || *p != 3.5 {
		t.Errorf("expected pointer to 3.5, got %v", p)
	}
}
