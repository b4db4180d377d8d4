package evidence

import (
	"errors"
	"strings"
	"testing"

	"github.com/praxislabs/praxis/internal/dataset"
)

func trialBalanceTable() *dataset.Table {
	return &dataset.Table{
		Name:   "trial_balance.csv",
		Header: []string{"account", "balance", "currency"},
		Rows: []map[string]string{
			{"account": "Revenue", "balance": "152000.50", "currency": "USD"},
			{"account": "COGS", "balance": "-61000.00", "currency": "USD"},
			{"account": "Notes", "balance": "", "currency": "USD"},
		},
	}
}

func TestResolveNumeric_Found(t *testing.T) {
	ref, err := ResolveNumeric(trialBalanceTable(), "Revenue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ref.SourceID != "trial_balance.csv" {
		t.Errorf("unexpected source id: %s", ref.SourceID)
	}
	if ref.Locator != "account=Revenue" {
		t.Errorf("unexpected locator: %s", ref.Locator)
	}
	if ref.ContentHash == "" {
		t.Error("expected content hash to be populated")
	}
	if !strings.Contains(ref.Snippet, "balance=152000.50") {
		t.Errorf("snippet should carry the resolved cell: %q", ref.Snippet)
	}
	if ref.DataRow["balance"] != "152000.50" {
		t.Errorf("data row should carry the raw cells: %v", ref.DataRow)
	}
}

func TestResolveNumeric_NormalizedMatch(t *testing.T) {
	for _, name := range []string{"revenue", "REVENUE", "  Revenue  ", "ReVeNuE"} {
		ref, err := ResolveNumeric(trialBalanceTable(), name)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", name, err)
			continue
		}
		if ref.Locator != "account=Revenue" {
			t.Errorf("%q: unexpected locator %s", name, ref.Locator)
		}
	}
}

func TestResolveNumeric_AccountNotFound(t *testing.T) {
	_, err := ResolveNumeric(trialBalanceTable(), "Goodwill")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}

	_, err = ResolveNumeric(nil, "Revenue")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound for nil table, got %v", err)
	}
}

func TestResolveNumeric_NoNumericField(t *testing.T) {
	// The Notes row has an empty balance and a non-numeric currency cell
	_, err := ResolveNumeric(trialBalanceTable(), "Notes")
	if !errors.Is(err, ErrNoNumericField) {
		t.Errorf("expected ErrNoNumericField, got %v", err)
	}
}

func TestResolveNumeric_FirstMatchWins(t *testing.T) {
	table := &dataset.Table{
		Name:   "trial_balance.csv",
		Header: []string{"account", "balance"},
		Rows: []map[string]string{
			{"account": "Revenue", "balance": "100"},
			{"account": "revenue", "balance": "200"},
		},
	}

	_, ref, err := ResolveValue(table, "Revenue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.DataRow["balance"] != "100" {
		t.Errorf("expected first matching row, got %v", ref.DataRow)
	}
}

func TestResolveValue(t *testing.T) {
	v, ref, err := ResolveValue(trialBalanceTable(), "COGS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -61000.00 {
		t.Errorf("expected -61000, got %v", v)
	}
	if ref == nil || ref.Locator != "account=COGS" {
		t.Errorf("unexpected ref: %+v", ref)
	}
}

func TestResolveNumeric_ColumnPreference(t *testing.T) {
	table := &dataset.Table{
		Name:   "transactions.csv",
		Header: []string{"account", "id", "amount", "balance"},
		Rows: []map[string]string{
			{"account": "Cash", "id": "7", "amount": "42.50", "balance": "9000"},
		},
	}

	v, ref, err := ResolveValue(table, "Cash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42.50 {
		t.Errorf("amount column should win, got %v", v)
	}
	if !strings.Contains(ref.Snippet, "amount=42.50") {
		t.Errorf("snippet should name the winning column: %q", ref.Snippet)
	}
}

func TestResolveNumeric_FallbackColumnOrder(t *testing.T) {
	// No preferred column name: the first header column past the key that
	// parses is the value. label does not parse, so total wins.
	table := &dataset.Table{
		Name:   "misc.csv",
		Header: []string{"account", "label", "total"},
		Rows: []map[string]string{
			{"account": "Cash", "label": "petty", "total": "300"},
		},
	}

	v, _, err := ResolveValue(table, "Cash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 300 {
		t.Errorf("expected fallback to the first parseable column, got %v", v)
	}
}

func TestResolveNumeric_HashStability(t *testing.T) {
	a, err := ResolveNumeric(trialBalanceTable(), "Revenue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ResolveNumeric(trialBalanceTable(), "revenue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ContentHash != b.ContentHash {
		t.Error("same row should hash identically regardless of lookup spelling")
	}

	c, err := ResolveNumeric(trialBalanceTable(), "COGS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ContentHash == c.ContentHash {
		t.Error("different rows should not collide")
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"  100.5  ", 100.5, true},
		{"1,234,567.89", 1234567.89, true},
		{"-42", -42, true},
		{"", 0, false},
		{"   ", 0, false},
		{"n/a", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		v, ok := ParseNumber(tt.raw)
		if ok != tt.ok || v != tt.want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tt.raw, v, ok, tt.want, tt.ok)
		}
	}
}

func TestStore_TrialBalanceAccount(t *testing.T) {
	ds := &dataset.Dataset{TrialBalance: trialBalanceTable()}
	store := NewStore(ds)

	ref, err := store.TrialBalanceAccount("Revenue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.SourceID != "trial_balance.csv" {
		t.Errorf("unexpected source id: %s", ref.SourceID)
	}
}
