// Package evidence resolves evidence references against tabular data
// sources. The store is deterministic and does not interpret business
// meaning: "does this account exist and what is its value" lives here,
// while numeric semantics (tolerances, agreement) live in the agreement
// package so each side stays independently auditable.
package evidence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/praxislabs/praxis/internal/dataset"
	"github.com/praxislabs/praxis/internal/model"
)

// Data-absence conditions. Callers are expected to detect these with
// errors.Is and degrade to "no evidence" rather than propagate: a claim
// lacking evidence is a valid state, not a system fault.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoNumericField  = errors.New("no numeric field in matched row")
)

// KeyColumn is the designated key column for tabular evidence sources
const KeyColumn = "account"

// numericColumns are searched in preference order before falling back to
// the first non-key column that parses as a number
var numericColumns = []string{"amount", "balance", "value"}

// Store resolves named accounts to concrete numeric evidence values from
// the tables of one dataset
type Store struct {
	ds *dataset.Dataset
}

// NewStore creates a store over a loaded dataset
func NewStore(ds *dataset.Dataset) *Store {
	return &Store{ds: ds}
}

// TrialBalanceAccount resolves an account from the trial balance table
func (s *Store) TrialBalanceAccount(name string) (*model.EvidenceRef, error) {
	return ResolveNumeric(s.ds.TrialBalance, name)
}

// ResolveNumeric resolves a field name to a numeric evidence value in a
// table. Matching is an exact normalized-string comparison (case-insensitive,
// whitespace-trimmed) against the key column; the first matching row wins.
func ResolveNumeric(table *dataset.Table, name string) (*model.EvidenceRef, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: %q (no table)", ErrAccountNotFound, name)
	}

	want := normalize(name)
	for _, row := range table.Rows {
		if normalize(row[KeyColumn]) != want {
			continue
		}

		col, _, ok := numericField(table, row)
		if !ok {
			return nil, fmt.Errorf("%w: account %q in %s", ErrNoNumericField, name, table.Name)
		}

		return &model.EvidenceRef{
			SourceID:    table.Name,
			Locator:     fmt.Sprintf("%s=%s", KeyColumn, row[KeyColumn]),
			ContentHash: model.HashRow(row),
			Snippet:     fmt.Sprintf("%s %s=%s", row[KeyColumn], col, row[col]),
			DataRow:     row,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q in %s", ErrAccountNotFound, name, table.Name)
}

// ResolveValue resolves the numeric value itself, for callers that only
// need the number (e.g., numeric agreement checks)
func ResolveValue(table *dataset.Table, name string) (float64, *model.EvidenceRef, error) {
	ref, err := ResolveNumeric(table, name)
	if err != nil {
		return 0, nil, err
	}
	col, _, _ := numericField(table, ref.DataRow)
	v, _ := ParseNumber(ref.DataRow[col])
	return v, ref, nil
}

// numericField finds the column carrying the row's numeric value:
// preferred names first, then the first non-key column that parses.
func numericField(table *dataset.Table, row map[string]string) (string, float64, bool) {
	for _, col := range numericColumns {
		raw, ok := row[col]
		if !ok {
			continue
		}
		if v, ok := ParseNumber(raw); ok {
			return col, v, true
		}
	}
	for _, col := range table.Header {
		if col == KeyColumn {
			continue
		}
		if v, ok := ParseNumber(row[col]); ok {
			return col, v, true
		}
	}
	return "", 0, false
}

// ParseNumber parses a numeric cell. Thousands separators and surrounding
// whitespace are tolerated; an empty string is "not present", not zero.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
