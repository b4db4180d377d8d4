package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/praxislabs/praxis/internal/eval"
	"github.com/praxislabs/praxis/internal/model"
	"github.com/praxislabs/praxis/internal/pipeline"
	"github.com/praxislabs/praxis/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	evalConcurrency int
	evalTimeout     time.Duration
	evalDataset     string
	evalMinCoverage float64
	evalJSON        string
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [case files...]",
	Short: "Run evaluation cases against the verification engine",
	Long: `Eval runs the pipeline once per case file and checks the outputs
against the case's recorded expectations:
- evidence_coverage_min / evidence_coverage_max
- verification_status_in / release_decision_in

Cases are YAML (or JSON) files. With no case files, a single default case
runs and reports outputs without a verdict.

Example:
  praxis eval cases/gate_pass.yaml
  praxis eval cases/*.yaml --concurrency 8 --dataset data/synthetic
  praxis eval --json results.json cases/*.yaml`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().IntVar(&evalConcurrency, "concurrency", 4, "number of concurrent case workers")
	evalCmd.Flags().DurationVar(&evalTimeout, "timeout", 5*time.Minute, "total timeout for the eval run")
	evalCmd.Flags().StringVar(&evalDataset, "dataset", "", "dataset run directory (default: PRAXIS_DATASET_ROOT)")
	evalCmd.Flags().Float64Var(&evalMinCoverage, "min-coverage", 1.0, "minimum attribution coverage to pass the gate")
	evalCmd.Flags().StringVar(&evalJSON, "json", "", "write full results to a JSON file")
}

func runEval(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Dataset.Root = evalDataset
	if cfg.Dataset.Root == "" {
		cfg.Dataset.Root = viper.GetString("dataset_root")
	}
	cfg.Verification.MinAttributionCoverage = evalMinCoverage
	cfg.Artifacts.Enabled = false // eval runs are not release runs
	cfg.Output.Verbose = verbose

	p := pipeline.New(cfg)
	harness := eval.NewHarness(cfg, p.Loader())

	var results []*worker.CaseResult
	if len(args) == 0 {
		r, err := harness.RunCaseFile(ctx, "")
		if err != nil {
			return fmt.Errorf("run default case: %w", err)
		}
		results = []*worker.CaseResult{{Path: "", Result: r}}
	} else {
		batch := worker.NewBatchProcessor(harness, evalConcurrency)
		results = batch.ProcessPaths(ctx, args)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	passed, failed, errored, noVerdict := 0, 0, 0, 0
	for _, r := range results {
		switch {
		case r.Error != nil:
			errored++
			fmt.Printf("ERROR  %s: %v\n", r.Path, r.Error)
		case r.Result.Pass == nil:
			noVerdict++
			fmt.Printf("-      %s: status=%s decision=%s (no expectations)\n",
				r.Result.Case.Name, r.Result.Outputs.VerificationStatus, r.Result.Outputs.ReleaseDecision)
		case *r.Result.Pass:
			passed++
			fmt.Printf("PASS   %s\n", r.Result.Case.Name)
		default:
			failed++
			fmt.Printf("FAIL   %s\n", r.Result.Case.Name)
			for name, ok := range r.Result.Verdicts {
				if !ok {
					fmt.Printf("       %s failed (status=%s, coverage=%s, decision=%s)\n",
						name, r.Result.Outputs.VerificationStatus,
						formatCoverage(r.Result.Outputs.EvidenceCoverage),
						r.Result.Outputs.ReleaseDecision)
				}
			}
		}
	}

	fmt.Printf("\n%d passed, %d failed, %d errored, %d without verdict (%d total)\n",
		passed, failed, errored, noVerdict, len(results))

	if evalJSON != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		if err := os.WriteFile(evalJSON, data, 0644); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote results: %s\n", evalJSON)
		}
	}

	if failed > 0 || errored > 0 {
		return fmt.Errorf("%d of %d cases did not pass", failed+errored, len(results))
	}
	return nil
}

func formatCoverage(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", *v)
}
