package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Required files in a dataset run directory
const (
	FileTransactions   = "transactions.csv"
	FileJournalEntries = "journal_entries.csv"
	FileTrialBalance   = "trial_balance.csv"
)

// Optional files
const (
	FileAnomalies   = "anomalies.csv"
	FileClaimsTruth = "claims_truth.jsonl"
	FileManifest    = "manifest.json"
)

// Table is an in-memory view of one CSV file: a header row plus data rows
// keyed by column name. Row order matches the file.
type Table struct {
	Name   string
	Header []string
	Rows   []map[string]string
}

// Dataset is an in-memory view of a dataset run directory.
// Files is a convenience index so other packages can locate dataset
// artifacts by their standard filename.
type Dataset struct {
	Root  string
	Files map[string]string

	Transactions   *Table
	JournalEntries *Table
	TrialBalance   *Table

	Anomalies *Table // nil when absent
}

// Table returns the loaded table for a standard filename, nil if absent
func (d *Dataset) Table(name string) *Table {
	switch name {
	case FileTransactions:
		return d.Transactions
	case FileJournalEntries:
		return d.JournalEntries
	case FileTrialBalance:
		return d.TrialBalance
	case FileAnomalies:
		return d.Anomalies
	default:
		return nil
	}
}

// Load reads a dataset run directory. Missing required files or unreadable
// tables are hard errors: they are environment problems, not conditions the
// verification engine should mask.
func Load(root string) (*Dataset, error) {
	files := make(map[string]string)

	required := []string{FileTransactions, FileJournalEntries, FileTrialBalance}
	for _, name := range required {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("missing required dataset file: %s", p)
		}
		files[name] = p
	}

	for _, name := range []string{FileAnomalies, FileClaimsTruth, FileManifest} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			files[name] = p
		}
	}

	tx, err := LoadTable(files[FileTransactions])
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", FileTransactions, err)
	}
	je, err := LoadTable(files[FileJournalEntries])
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", FileJournalEntries, err)
	}
	tb, err := LoadTable(files[FileTrialBalance])
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", FileTrialBalance, err)
	}

	ds := &Dataset{
		Root:           root,
		Files:          files,
		Transactions:   tx,
		JournalEntries: je,
		TrialBalance:   tb,
	}

	if p, ok := files[FileAnomalies]; ok {
		anomalies, err := LoadTable(p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", FileAnomalies, err)
		}
		ds.Anomalies = anomalies
	}

	return ds, nil
}

// LoadTable reads a single CSV file with a header row into a Table
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv: %s", path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return &Table{
		Name:   filepath.Base(path),
		Header: header,
		Rows:   rows,
	}, nil
}
