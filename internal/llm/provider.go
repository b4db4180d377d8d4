// Package llm wraps the model providers behind one Provider interface.
// The agent layer built on top of it is strictly optional: nothing a
// provider returns ever feeds into verification or release gating.
package llm

import (
	"context"

	"github.com/praxislabs/praxis/internal/model"
)

// Provider is one LLM backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete generates a completion for the request
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks whether the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is one prompt for an agent turn
type CompletionRequest struct {
	// System frames the agent role (instructions from its spec)
	System string

	// Prompt is the user-turn content
	Prompt string

	// Model overrides the configured model when non-empty
	Model string

	// MaxTokens limits the response length; 0 uses the configured default
	MaxTokens int
}

// CompletionResponse is the provider's output
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	Provider          string // "openai", "ollama", ""
	Model             string
	APIKey            string
	BaseURL           string
	Timeout           int // seconds
	MaxTokens         int
	RequestsPerSecond float64
	HTTPProxy         string
	HTTPSProxy        string
}

// DefaultConfig returns sensible defaults with the provider disabled
func DefaultConfig() Config {
	return Config{
		Provider:          "",
		Timeout:           30,
		MaxTokens:         1000,
		RequestsPerSecond: 1,
	}
}

// ConfigFromModel converts the pipeline configuration section
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:          c.Provider,
		Model:             c.Model,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		Timeout:           c.Timeout,
		MaxTokens:         c.MaxTokens,
		RequestsPerSecond: c.RequestsPerSecond,
		HTTPProxy:         c.HTTPProxy,
		HTTPSProxy:        c.HTTPSProxy,
	}
}
