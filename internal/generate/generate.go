// Package generate produces deterministic, dataset-grounded claim batches.
// It is the in-tree claim producer used by demos, the eval harness, and
// tests; external producers can feed the engine the same model.Claim shape.
package generate

import (
	"errors"

	"github.com/praxislabs/praxis/internal/dataset"
	"github.com/praxislabs/praxis/internal/evidence"
	"github.com/praxislabs/praxis/internal/model"
)

// FromDataset generates claims grounded in a loaded dataset. The batch
// intentionally includes one claim with missing evidence so the
// verification gate is exercised in demos and tests.
func FromDataset(ds *dataset.Dataset) ([]model.Claim, error) {
	store := evidence.NewStore(ds)

	var revenueEvidence []model.EvidenceRef
	var revenueValue *float64

	ref, err := store.TrialBalanceAccount("Revenue")
	switch {
	case err == nil:
		revenueEvidence = []model.EvidenceRef{*ref}
		if v, ok := rowAmount(ref.DataRow); ok {
			revenueValue = model.Float64(v)
		}
	case errors.Is(err, evidence.ErrAccountNotFound), errors.Is(err, evidence.ErrNoNumericField):
		// Datasets without a Revenue line stay deterministic: the claim
		// carries no evidence and fails the presence check.
	default:
		return nil, err
	}

	claims := []model.Claim{
		{
			ID:       "rev_total",
			Type:     model.ClaimTypeNumeric,
			Text:     "Total revenue reported in the trial balance.",
			Value:    revenueValue,
			Unit:     "USD",
			Evidence: revenueEvidence,
		},
		{
			ID:       "profit_positive",
			Type:     model.ClaimTypeTextual,
			Text:     "The company is profitable.",
			Evidence: nil, // intentionally unattributed
		},
	}
	return claims, nil
}

// Fallback returns the deterministic no-dataset batch: a single
// unattributed claim, expected to fail evidence presence.
func Fallback() []model.Claim {
	return []model.Claim{
		{
			ID:   "sample_textual_no_evidence",
			Type: model.ClaimTypeTextual,
			Text: "Sample claim with missing evidence (expected to fail evidence presence).",
		},
	}
}

// Sample generates claims from the dataset at root when one is given,
// otherwise the fallback batch
func Sample(loader *dataset.Loader, root string) ([]model.Claim, error) {
	if root == "" {
		return Fallback(), nil
	}
	ds, err := loader.Load(root)
	if err != nil {
		return nil, err
	}
	return FromDataset(ds)
}

func rowAmount(row map[string]string) (float64, bool) {
	for _, col := range []string{"amount", "balance", "value"} {
		if raw, ok := row[col]; ok {
			if v, ok := evidence.ParseNumber(raw); ok {
				return v, true
			}
		}
	}
	return 0, false
}
