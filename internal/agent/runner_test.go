package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/praxislabs/praxis/internal/llm"
)

type fakeProvider struct {
	lastReq llm.CompletionRequest
	text    string
}

func (f *fakeProvider) Name() string                            { return "fake" }
func (f *fakeProvider) IsAvailable(ctx context.Context) bool    { return true }
func (f *fakeProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.lastReq = req
	return &llm.CompletionResponse{Text: f.text, Model: req.Model}, nil
}

func TestRunner_Run(t *testing.T) {
	provider := &fakeProvider{text: "1. Build the harness"}
	r := NewRunner(provider, t.TempDir(), 512)

	out, err := r.Run(context.Background(), RolePlanner, "plan this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1. Build the harness" {
		t.Errorf("unexpected output: %q", out)
	}
	if provider.lastReq.System == "" {
		t.Error("role instructions should flow into the system prompt")
	}
	if provider.lastReq.MaxTokens != 512 {
		t.Errorf("unexpected max tokens: %d", provider.lastReq.MaxTokens)
	}
}

func TestRunner_UnknownRole(t *testing.T) {
	r := NewRunner(&fakeProvider{}, t.TempDir(), 512)
	if _, err := r.Run(context.Background(), "oracle", "input"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestRunner_PlanWrapsContext(t *testing.T) {
	provider := &fakeProvider{text: "roadmap"}
	r := NewRunner(provider, t.TempDir(), 256)

	if _, err := r.Plan(context.Background(), "repo overview here"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(provider.lastReq.Prompt, "repo overview here") {
		t.Errorf("plan context should flow into the prompt: %q", provider.lastReq.Prompt)
	}
	if !strings.Contains(provider.lastReq.Prompt, "=== PLAN CONTEXT ===") {
		t.Errorf("prompt should carry the context delimiters: %q", provider.lastReq.Prompt)
	}
}

func TestRunner_DecideWrapsRoadmap(t *testing.T) {
	provider := &fakeProvider{text: "next step"}
	r := NewRunner(provider, t.TempDir(), 256)

	if _, err := r.Decide(context.Background(), "the roadmap", "ship it"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(provider.lastReq.Prompt, "the roadmap") || !strings.Contains(provider.lastReq.Prompt, "ship it") {
		t.Errorf("roadmap and goal should flow into the prompt: %q", provider.lastReq.Prompt)
	}
}
