// Package artifact snapshots a full pipeline run into an immutable,
// timestamped record for audit. Persistence here is best-effort by
// contract: a failed write is reported to the caller but must never alter
// the release decision already computed.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/praxislabs/praxis/internal/model"
)

// Schema tags this record format for future readers
const Schema = "praxis.run_artifact.v1"

// LatestFile is the overwritten pointer to the most recent run
const LatestFile = "latest.json"

const timestampLayout = "20060102_150405"

// Artifact is one run's full audit record. Written once, never mutated.
type Artifact struct {
	Schema     string                   `json:"schema"`
	Timestamp  string                   `json:"timestamp"`
	GitRev     string                   `json:"git_rev"`
	RunSource  string                   `json:"run_source"`
	Inputs     Inputs                   `json:"inputs"`
	Planner    AgentOutput              `json:"planner"`
	Controller AgentOutput              `json:"controller"`
	Claims     ClaimsSection            `json:"claims"`
	Verify     model.VerificationReport `json:"verification"`
	Release    model.ReleaseOutcome     `json:"release"`
	Extra      map[string]string        `json:"extra,omitempty"`
}

// Inputs is the configuration snapshot for the run
type Inputs struct {
	DatasetRoot            string  `json:"dataset_root,omitempty"`
	MinAttributionCoverage float64 `json:"min_attribution_coverage"`
}

// AgentOutput captures optional planner/controller free text
type AgentOutput struct {
	Enabled   bool   `json:"enabled"`
	Output    string `json:"output"`
	OutputLen int    `json:"output_len"`
}

// ClaimsSection holds typed claim snapshots
type ClaimsSection struct {
	Count int             `json:"count"`
	Items []ClaimSnapshot `json:"items"`
}

// ClaimSnapshot is the serialized view of one claim. The claim schema is
// the single source of truth; there is no attribute probing here.
type ClaimSnapshot struct {
	ID            string              `json:"id"`
	Type          model.ClaimType     `json:"type"`
	Text          string              `json:"text"`
	Value         *float64            `json:"value,omitempty"`
	Unit          string              `json:"unit,omitempty"`
	Evidence      []model.EvidenceRef `json:"evidence"`
	EvidenceCount int                 `json:"evidence_count"`
}

// BuildParams collects everything Build snapshots
type BuildParams struct {
	RunSource              string
	DatasetRoot            string
	MinAttributionCoverage float64
	PlannerOutput          *string // nil means the planner did not run
	ControllerOutput       *string
	Claims                 []model.Claim
	Report                 model.VerificationReport
	Outcome                model.ReleaseOutcome
	Extra                  map[string]string
}

// Build assembles the artifact in memory. Nothing is written until Write,
// so a cancelled run never leaves a partial file behind.
func Build(ctx context.Context, p BuildParams) Artifact {
	items := make([]ClaimSnapshot, 0, len(p.Claims))
	for _, c := range p.Claims {
		ev := c.Evidence
		if ev == nil {
			ev = []model.EvidenceRef{}
		}
		items = append(items, ClaimSnapshot{
			ID:            c.ID,
			Type:          c.Type,
			Text:          c.Text,
			Value:         c.Value,
			Unit:          c.Unit,
			Evidence:      ev,
			EvidenceCount: len(ev),
		})
	}

	return Artifact{
		Schema:     Schema,
		Timestamp:  time.Now().UTC().Format(timestampLayout),
		GitRev:     gitRevShort(ctx),
		RunSource:  p.RunSource,
		Inputs:     Inputs{DatasetRoot: p.DatasetRoot, MinAttributionCoverage: p.MinAttributionCoverage},
		Planner:    agentOutput(p.PlannerOutput),
		Controller: agentOutput(p.ControllerOutput),
		Claims:     ClaimsSection{Count: len(items), Items: items},
		Verify:     p.Report,
		Release:    p.Outcome,
		Extra:      p.Extra,
	}
}

// Write persists the artifact to runsDir as run_<timestamp>_<rev>.json and
// overwrites the latest.json pointer with the same content. The primary
// file is uniquely named per run; the pointer is last-writer-wins.
func Write(a Artifact, runsDir string) (string, error) {
	if err := os.MkdirAll(runsDir, 0755); err != nil {
		return "", fmt.Errorf("create runs dir: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal artifact: %w", err)
	}

	path := filepath.Join(runsDir, fmt.Sprintf("run_%s_%s.json", a.Timestamp, a.GitRev))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	if err := os.WriteFile(filepath.Join(runsDir, LatestFile), data, 0644); err != nil {
		return "", fmt.Errorf("write latest pointer: %w", err)
	}

	return path, nil
}

// ReadLatest loads the most recent run from the pointer file
func ReadLatest(runsDir string) (*Artifact, error) {
	data, err := os.ReadFile(filepath.Join(runsDir, LatestFile))
	if err != nil {
		return nil, fmt.Errorf("read latest artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse latest artifact: %w", err)
	}
	return &a, nil
}

func agentOutput(text *string) AgentOutput {
	if text == nil {
		return AgentOutput{Enabled: false, Output: "", OutputLen: 0}
	}
	return AgentOutput{Enabled: true, Output: *text, OutputLen: len(*text)}
}

// gitRevShort returns the short source-control revision, or "unknown".
// The subprocess is bounded so artifact building cannot hang a run.
func gitRevShort(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return "unknown"
	}
	return rev
}
