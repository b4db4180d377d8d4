package worker

import (
	"context"

	"github.com/praxislabs/praxis/internal/eval"
)

// CaseRunner runs one eval case file
type CaseRunner interface {
	RunCaseFile(ctx context.Context, path string) (*eval.Result, error)
}

// CaseJob runs a single case file on the pool
type CaseJob struct {
	Path   string
	Runner CaseRunner
}

// CaseResult pairs a case path with its harness result
type CaseResult struct {
	Path   string       `json:"path"`
	Result *eval.Result `json:"result"`
	Error  error        `json:"-"`
}

// Err returns the job error
func (r *CaseResult) Err() error {
	return r.Error
}

// Execute runs the case
func (j *CaseJob) Execute(ctx context.Context) Result {
	result, err := j.Runner.RunCaseFile(ctx, j.Path)
	return &CaseResult{Path: j.Path, Result: result, Error: err}
}

// BatchProcessor runs many case files concurrently
type BatchProcessor struct {
	runner      CaseRunner
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(runner CaseRunner, concurrency int) *BatchProcessor {
	return &BatchProcessor{runner: runner, concurrency: concurrency}
}

// ProcessPaths runs all case files and returns their results. Result
// order is completion order, not submission order; callers index by Path.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*CaseResult {
	if len(paths) == 0 {
		return []*CaseResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		<-ctx.Done()
		pool.Shutdown()
	}()

	for _, path := range paths {
		pool.Submit(&CaseJob{Path: path, Runner: b.runner})
	}

	results := pool.Wait()
	caseResults := make([]*CaseResult, 0, len(results))
	for _, r := range results {
		caseResults = append(caseResults, r.(*CaseResult))
	}
	return caseResults
}
