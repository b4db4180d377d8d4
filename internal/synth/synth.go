// Package synth builds seeded synthetic financial datasets in the layout
// the verification engine consumes: transactions, balanced journal
// entries, a trial balance, an anomaly ledger, and a manifest with file
// digests. The same seed always produces byte-identical CSVs.
package synth

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/praxislabs/praxis/internal/dataset"
)

// Config controls dataset generation
type Config struct {
	Seed          int64
	Companies     int
	Transactions  int
	AnomalyFrac   float64
	StartDate     time.Time
	EndDate       time.Time
	Currency      string
	SchemaVersion string
}

// DefaultConfig returns a small, demo-sized dataset configuration
func DefaultConfig() Config {
	return Config{
		Seed:          42,
		Companies:     20,
		Transactions:  2000,
		AnomalyFrac:   0.02,
		StartDate:     time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Currency:      "USD",
		SchemaVersion: "1.0",
	}
}

// Manifest records what was generated and the digest of every file
type Manifest struct {
	SchemaVersion string            `json:"schema_version"`
	Seed          int64             `json:"seed"`
	Companies     int               `json:"companies"`
	Transactions  int               `json:"transactions"`
	Anomalies     int               `json:"anomalies"`
	GeneratedAt   string            `json:"generated_at"`
	Files         map[string]string `json:"files"` // filename -> sha256
}

type txnKind struct {
	name   string
	debit  string
	credit string
}

// Double-entry mapping per transaction type
var txnKinds = []txnKind{
	{"invoice", "Accounts Receivable", "Revenue"},
	{"payment", "Cash", "Accounts Receivable"},
	{"payroll", "Payroll Expense", "Cash"},
	{"journal_adjustment", "Misc Expense", "Accruals"},
	{"refund", "Revenue", "Cash"},
	{"purchase", "COGS", "Accounts Payable"},
}

// Build generates a dataset into outDir and returns its manifest
func Build(cfg Config, outDir string) (*Manifest, error) {
	if cfg.Transactions <= 0 || cfg.Companies <= 0 {
		return nil, fmt.Errorf("transactions and companies must be positive")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	days := int(cfg.EndDate.Sub(cfg.StartDate).Hours()/24) + 1
	if days < 1 {
		return nil, fmt.Errorf("end date before start date")
	}

	txRows := [][]string{{"txn_id", "company_id", "date", "amount", "currency", "type"}}
	jeRows := [][]string{{"txn_id", "account", "debit", "credit"}}
	anomalyRows := [][]string{{"txn_id", "kind", "note"}}
	balances := make(map[string]float64)

	for i := 0; i < cfg.Transactions; i++ {
		id := fmt.Sprintf("T%06d", i+1)
		company := fmt.Sprintf("C%03d", rng.Intn(cfg.Companies))
		date := cfg.StartDate.AddDate(0, 0, rng.Intn(days)).Format("2006-01-02")
		kind := txnKinds[rng.Intn(len(txnKinds))]
		amount := round2(10 + rng.Float64()*9990)

		txRows = append(txRows, []string{
			id, company, date, formatAmount(amount), cfg.Currency, kind.name,
		})
		jeRows = append(jeRows,
			[]string{id, kind.debit, formatAmount(amount), "0"},
			[]string{id, kind.credit, "0", formatAmount(amount)},
		)

		// Trial balance convention here: credit-normal accounts accumulate
		// credits, everything else accumulates debits.
		balances[kind.debit] += amount
		balances[kind.credit] += amount

		if rng.Float64() < cfg.AnomalyFrac {
			anomalyRows = append(anomalyRows, []string{id, "amount_outlier", "synthetic anomaly"})
		}
	}

	tbRows := [][]string{{"account", "amount"}}
	accounts := make([]string, 0, len(balances))
	for account := range balances {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	for _, account := range accounts {
		tbRows = append(tbRows, []string{account, formatAmount(round2(balances[account]))})
	}

	files := map[string][][]string{
		dataset.FileTransactions:   txRows,
		dataset.FileJournalEntries: jeRows,
		dataset.FileTrialBalance:   tbRows,
		dataset.FileAnomalies:      anomalyRows,
	}

	digests := make(map[string]string, len(files)+1)
	for name, rows := range files {
		path := filepath.Join(outDir, name)
		if err := writeCSV(path, rows); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		digest, err := sha256File(path)
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", name, err)
		}
		digests[name] = digest
	}

	manifest := &Manifest{
		SchemaVersion: cfg.SchemaVersion,
		Seed:          cfg.Seed,
		Companies:     cfg.Companies,
		Transactions:  cfg.Transactions,
		Anomalies:     len(anomalyRows) - 1,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Files:         digests,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, dataset.FileManifest), data, 0644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	return manifest, nil
}

func writeCSV(path string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
