package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *atomic.Int64
	err     error
}

type countResult struct {
	err error
}

func (r *countResult) Err() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &countResult{err: j.err}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(4)
	pool.Start()

	const n = 20
	for i := 0; i < n; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != n {
		t.Errorf("expected %d results, got %d", n, len(results))
	}
	if counter.Load() != n {
		t.Errorf("expected %d executions, got %d", n, counter.Load())
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(2)
	pool.Start()

	boom := errors.New("boom")
	pool.Submit(&countJob{counter: &counter})
	pool.Submit(&countJob{counter: &counter, err: boom})

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	failed := 0
	for _, r := range results {
		if r.Err() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed result, got %d", failed)
	}
}

func TestPool_MinimumOneWorker(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})

	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestPool_SubmitAfterShutdownDropped(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(1)
	pool.Start()
	pool.Shutdown()

	// Must not block or execute
	pool.Submit(&countJob{counter: &counter})
	if counter.Load() != 0 {
		t.Errorf("expected no executions after shutdown, got %d", counter.Load())
	}
}
