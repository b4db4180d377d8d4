package model

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ClaimType categorizes the nature of a claim
type ClaimType string

const (
	ClaimTypeNumeric ClaimType = "numeric" // Carries a numeric value to check against evidence
	ClaimTypeTextual ClaimType = "textual" // Free-text assertion
	ClaimTypePolicy  ClaimType = "policy"  // Standards/presentation assertion (e.g., GAAP/IFRS)
	ClaimTypeDerived ClaimType = "derived" // Computed from other claims or facts
)

// EvidenceRef is a stable pointer to evidence plus optional integrity metadata
type EvidenceRef struct {
	SourceID    string            `json:"source_id"`              // Stable source identifier (e.g., "trial_balance.csv")
	Locator     string            `json:"locator"`                // Where inside the source (e.g., "account=Revenue")
	ContentHash string            `json:"content_hash,omitempty"` // Hash of the evidence payload at resolution time
	Snippet     string            `json:"snippet,omitempty"`      // Short human-readable excerpt for logs
	DataRow     map[string]string `json:"data_row,omitempty"`     // Structured row payload backing deterministic checks
}

// Claim is an atomic assertion that must be attributable to evidence
type Claim struct {
	ID         string            `json:"id"`
	Type       ClaimType         `json:"type"`
	Text       string            `json:"text"`
	Value      *float64          `json:"value,omitempty"`
	Unit       string            `json:"unit,omitempty"`
	Evidence   []EvidenceRef     `json:"evidence"`              // Empty means unattributed, which is meaningful
	SourceMeta map[string]string `json:"source_meta,omitempty"` // Free-form producer metadata
}

// HasEvidence reports whether the claim carries at least one evidence reference
func (c Claim) HasEvidence() bool {
	return len(c.Evidence) > 0
}

// HashContent returns the stable hex sha256 digest of a content string
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// HashRow hashes a data row independent of map iteration order.
// Keys are sorted before serialization so the same row contents always
// produce the same digest.
func HashRow(row map[string]string) string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(row[k])
	}
	return HashContent(b.String())
}

// Float64 returns a pointer to v, for populating Claim.Value
func Float64(v float64) *float64 {
	return &v
}
