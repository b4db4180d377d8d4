package agent

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/internal/llm"
)

// Runner executes agent turns against one provider
type Runner struct {
	provider  llm.Provider
	specsDir  string
	maxTokens int
}

// NewRunner creates a runner. Specs are loaded from specsDir, with
// built-in defaults for missing role files.
func NewRunner(provider llm.Provider, specsDir string, maxTokens int) *Runner {
	return &Runner{provider: provider, specsDir: specsDir, maxTokens: maxTokens}
}

// Run executes one role with the given input and returns its text output
func (r *Runner) Run(ctx context.Context, role, input string) (string, error) {
	spec, err := LoadSpecOrDefault(r.specsDir, role)
	if err != nil {
		return "", err
	}

	resp, err := r.provider.Complete(ctx, llm.CompletionRequest{
		System:    spec.Instructions,
		Prompt:    input,
		Model:     spec.Model,
		MaxTokens: r.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", spec.Name, err)
	}
	return resp.Text, nil
}

// Plan runs the planner over the plan context
func (r *Runner) Plan(ctx context.Context, planContext string) (string, error) {
	input := "Using the following plan context, produce the roadmap.\n\n" +
		"=== PLAN CONTEXT ===\n" + planContext + "\n=== END CONTEXT ===\n"
	return r.Run(ctx, RolePlanner, input)
}

// Decide runs the controller over a roadmap and goal
func (r *Runner) Decide(ctx context.Context, roadmap, goal string) (string, error) {
	input := "You are given a roadmap produced by the planner.\n" + goal + "\n\n" +
		"=== ROADMAP ===\n" + roadmap + "\n=== END ROADMAP ===\n"
	return r.Run(ctx, RoleController, input)
}
