package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/praxislabs/praxis/internal/model"
	"github.com/praxislabs/praxis/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	datasetRoot string
	minCoverage float64
	absTol      float64
	relTol      float64
	runsDir     string
	noArtifact  bool
	runTimeout  time.Duration
	llmEnabled  bool
	llmProvider string
	llmModel    string
	planFile    string
	goalText    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the verification pipeline once and gate release",
	Long: `Run executes one full pipeline pass:
- Generate dataset-grounded claims (or the deterministic fallback batch)
- Check every claim for evidence presence
- Gate on attribution coverage and decide release
- Write an immutable run artifact for audit

Example:
  praxis run --dataset data/synthetic
  praxis run --dataset data/synthetic --min-coverage 0.5
  praxis run --llm openai --llm-model gpt-4o-mini --plan-file docs/plan.md`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&datasetRoot, "dataset", "", "dataset run directory (default: PRAXIS_DATASET_ROOT)")
	runCmd.Flags().Float64Var(&minCoverage, "min-coverage", 1.0, "minimum attribution coverage to pass the gate")
	runCmd.Flags().Float64Var(&absTol, "abs-tol", 0.01, "absolute tolerance for numeric agreement diagnostics")
	runCmd.Flags().Float64Var(&relTol, "rel-tol", 0.01, "relative tolerance for numeric agreement diagnostics")
	runCmd.Flags().StringVar(&runsDir, "runs-dir", "", "run artifact directory (default: PRAXIS_RUNS_DIR or praxis_runs)")
	runCmd.Flags().BoolVar(&noArtifact, "no-artifact", false, "skip run artifact persistence")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Minute, "overall run timeout")

	// Agent layer flags
	runCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the agent layer (planner/controller text in the artifact)")
	runCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	runCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
	runCmd.Flags().StringVar(&planFile, "plan-file", "", "plan context file for the planner agent")
	runCmd.Flags().StringVar(&goalText, "goal", "Select the next best small, reversible implementation step.", "controller goal")
}

// buildConfig assembles the run configuration from flags and environment
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.Dataset.Root = datasetRoot
	if cfg.Dataset.Root == "" {
		cfg.Dataset.Root = viper.GetString("dataset_root")
	}

	cfg.Verification.MinAttributionCoverage = minCoverage
	cfg.Verification.AbsTolerance = absTol
	cfg.Verification.RelTolerance = relTol

	if runsDir != "" {
		cfg.Artifacts.RunsDir = runsDir
	} else if v := viper.GetString("runs_dir"); v != "" {
		cfg.Artifacts.RunsDir = v
	}
	cfg.Artifacts.Enabled = !noArtifact
	cfg.Output.Verbose = verbose

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Dataset: %s\n", orNone(cfg.Dataset.Root))
		fmt.Fprintf(os.Stderr, "Coverage threshold: %v\n", cfg.Verification.MinAttributionCoverage)
		fmt.Fprintf(os.Stderr, "Runs dir: %s\n", cfg.Artifacts.RunsDir)
		fmt.Fprintln(os.Stderr)
	}

	planContext := ""
	if planFile != "" {
		data, err := os.ReadFile(planFile)
		if err != nil {
			return fmt.Errorf("read plan file: %w", err)
		}
		planContext = string(data)
	}

	p := pipeline.New(cfg)
	result, err := p.Run(ctx, pipeline.RunParams{
		RunSource:   "cli",
		PlanContext: planContext,
		Goal:        goalText,
	})
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	fmt.Printf("Verification status: %s\n", result.Report.Status)
	fmt.Printf("Release decision: %s\n", result.Outcome.Decision)
	fmt.Printf("Reason: %s\n", result.Outcome.Reason)
	fmt.Printf("Summary: %s\n", result.Report.Summary)
	for _, c := range result.Report.Checks {
		fmt.Printf("- %s: %s (%s)\n", c.ClaimID, c.Status, c.Reason)
	}

	if verbose {
		for _, nc := range result.NumericChecks {
			if nc.Skipped {
				fmt.Fprintf(os.Stderr, "numeric %s: skipped (%s)\n", nc.ClaimID, nc.Reason)
			} else {
				fmt.Fprintf(os.Stderr, "numeric %s: ok=%v (%s)\n", nc.ClaimID, nc.Result.OK, nc.Result.Reason)
			}
		}
	}

	if result.ArtifactError != nil {
		fmt.Fprintf(os.Stderr, "Warning: run artifact not written: %v\n", result.ArtifactError)
	} else if result.ArtifactPath != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote artifact: %s\n", result.ArtifactPath)
		}
	}

	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
