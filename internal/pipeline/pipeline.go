// Package pipeline wires the full run: load dataset, generate claims,
// verify evidence presence, decide release, snapshot the run artifact.
// The optional agent layer runs around the core and its output is only
// ever recorded, never consulted.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/praxislabs/praxis/internal/agent"
	"github.com/praxislabs/praxis/internal/artifact"
	"github.com/praxislabs/praxis/internal/cache"
	"github.com/praxislabs/praxis/internal/dataset"
	"github.com/praxislabs/praxis/internal/generate"
	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/model"
	"github.com/praxislabs/praxis/internal/release"
	"github.com/praxislabs/praxis/internal/verify"
)

// Pipeline executes verification runs under one configuration
type Pipeline struct {
	cfg    *model.Config
	loader *dataset.Loader
	agents *agent.Runner // nil when the agent layer is disabled
}

// New creates a pipeline from configuration. A misconfigured agent layer
// is reported as a warning and disabled; the run itself proceeds.
func New(cfg *model.Config) *Pipeline {
	var loader *dataset.Loader
	if cfg.Cache.Enabled {
		loader = dataset.NewLoader(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	} else {
		loader = dataset.NewLoader(0, 0)
	}

	p := &Pipeline{cfg: cfg, loader: loader}

	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else if provider != nil {
			if cfg.Cache.Dir != "" {
				provider = llm.NewCachedProvider(provider, cache.NewDiskCache(cfg.Cache.Dir, cfg.Cache.TTL), cfg.Cache.TTL)
			}
			p.agents = agent.NewRunner(provider, cfg.LLM.AgentsDir, cfg.LLM.MaxTokens)
		}
	}

	return p
}

// Loader exposes the shared dataset loader for the eval harness
func (p *Pipeline) Loader() *dataset.Loader {
	return p.loader
}

// RunResult is the outcome of one pipeline run
type RunResult struct {
	Claims        []model.Claim
	Report        model.VerificationReport
	Outcome       model.ReleaseOutcome
	NumericChecks []verify.NumericCheck

	PlannerOutput    *string
	ControllerOutput *string

	ArtifactPath  string // empty when artifact writing is disabled or failed
	ArtifactError error  // non-fatal by contract
}

// RunParams parameterizes one run
type RunParams struct {
	RunSource   string
	PlanContext string // planner input; empty skips the planner
	Goal        string // controller goal; empty skips the controller
}

// Run executes the pipeline once. Only claim generation and dataset
// loading can fail the run; verification and release are total, and
// artifact persistence failures are captured in the result.
func (p *Pipeline) Run(ctx context.Context, params RunParams) (*RunResult, error) {
	claims, err := generate.Sample(p.loader, p.cfg.Dataset.Root)
	if err != nil {
		return nil, fmt.Errorf("generate claims: %w", err)
	}

	result := &RunResult{Claims: claims}

	if p.agents != nil && params.PlanContext != "" {
		if text, err := p.agents.Plan(ctx, params.PlanContext); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: planner failed: %v\n", err)
		} else {
			result.PlannerOutput = &text
		}
	}
	if p.agents != nil && params.Goal != "" && result.PlannerOutput != nil {
		if text, err := p.agents.Decide(ctx, *result.PlannerOutput, params.Goal); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: controller failed: %v\n", err)
		} else {
			result.ControllerOutput = &text
		}
	}

	result.Report = verify.EvidencePresence(claims, p.cfg.Verification.MinAttributionCoverage)
	result.Outcome = release.Decide(result.Report)
	result.NumericChecks = verify.NumericChecks(claims, p.cfg.Verification.AbsTolerance, p.cfg.Verification.RelTolerance)

	if p.cfg.Artifacts.Enabled {
		a := artifact.Build(ctx, artifact.BuildParams{
			RunSource:              params.RunSource,
			DatasetRoot:            p.cfg.Dataset.Root,
			MinAttributionCoverage: p.cfg.Verification.MinAttributionCoverage,
			PlannerOutput:          result.PlannerOutput,
			ControllerOutput:       result.ControllerOutput,
			Claims:                 claims,
			Report:                 result.Report,
			Outcome:                result.Outcome,
		})
		path, err := artifact.Write(a, p.cfg.Artifacts.RunsDir)
		if err != nil {
			// Persistence failures never alter the release decision
			result.ArtifactError = err
		} else {
			result.ArtifactPath = path
		}
	}

	return result, nil
}
