package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Case is one evaluation case: expectations asserted against the engine's
// outputs. All expectation fields are optional; a case with none recorded
// simply reports outputs without a pass/fail verdict.
type Case struct {
	Name string `yaml:"name" json:"name"`
	Path string `yaml:"-" json:"-"`

	EvidenceCoverageMin *float64 `yaml:"evidence_coverage_min" json:"evidence_coverage_min,omitempty"`
	EvidenceCoverageMax *float64 `yaml:"evidence_coverage_max" json:"evidence_coverage_max,omitempty"`

	VerificationStatusIn []string `yaml:"verification_status_in" json:"verification_status_in,omitempty"`
	ReleaseDecisionIn    []string `yaml:"release_decision_in" json:"release_decision_in,omitempty"`
}

// HasExpectations reports whether the case asserts anything
func (c Case) HasExpectations() bool {
	return c.EvidenceCoverageMin != nil ||
		c.EvidenceCoverageMax != nil ||
		len(c.VerificationStatusIn) > 0 ||
		len(c.ReleaseDecisionIn) > 0
}

// DefaultCase is the no-expectations case used when no file is given
func DefaultCase() Case {
	return Case{Name: "default"}
}

// LoadCase reads a case file. JSON files are parsed as JSON, everything
// else as YAML.
func LoadCase(path string) (Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Case{}, fmt.Errorf("read case file: %w", err)
	}

	var c Case
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &c); err != nil {
			return Case{}, fmt.Errorf("parse case JSON %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Case{}, fmt.Errorf("parse case YAML %s: %w", path, err)
		}
	}

	c.Path = path
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c, nil
}
