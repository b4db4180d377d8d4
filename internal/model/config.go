package model

import "time"

// Config is the single configuration structure passed into the pipeline.
// Core packages receive values from here as parameters; they never read
// environment variables or globals themselves.
type Config struct {
	Dataset      DatasetConfig      `yaml:"dataset"`
	Verification VerificationConfig `yaml:"verification"`
	Artifacts    ArtifactConfig     `yaml:"artifacts"`
	LLM          LLMConfig          `yaml:"llm"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	Cache        CacheConfig        `yaml:"cache"`
	Output       OutputConfig       `yaml:"output"`
}

// DatasetConfig locates the tabular evidence sources
type DatasetConfig struct {
	Root string `yaml:"root"` // Dataset run directory (transactions.csv, journal_entries.csv, trial_balance.csv)
}

// VerificationConfig holds gate thresholds and numeric tolerances
type VerificationConfig struct {
	MinAttributionCoverage float64 `yaml:"min_attribution_coverage"`
	AbsTolerance           float64 `yaml:"abs_tolerance"`
	RelTolerance           float64 `yaml:"rel_tolerance"`
}

// ArtifactConfig controls run artifact persistence
type ArtifactConfig struct {
	RunsDir string `yaml:"runs_dir"`
	Enabled bool   `yaml:"enabled"`
}

// LLMConfig configures the optional agent layer.
// Agent output never affects verification or release.
type LLMConfig struct {
	Provider          string  `yaml:"provider"` // "openai", "ollama", "" (disabled)
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"api_key,omitempty"`
	BaseURL           string  `yaml:"base_url,omitempty"`
	Timeout           int     `yaml:"timeout"` // seconds
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	HTTPProxy         string  `yaml:"http_proxy,omitempty"`
	HTTPSProxy        string  `yaml:"https_proxy,omitempty"`
	AgentsDir         string  `yaml:"agents_dir"`
}

// ConcurrencyConfig sizes the eval worker pool
type ConcurrencyConfig struct {
	EvalWorkers int `yaml:"eval_workers"`
}

// CacheConfig controls dataset/table caching for batch eval
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	Dir             string        `yaml:"dir,omitempty"` // Disk cache for LLM completions, empty disables
}

// OutputConfig controls operator-facing output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Root: "",
		},
		Verification: VerificationConfig{
			MinAttributionCoverage: 1.0,
			AbsTolerance:           0.01,
			RelTolerance:           0.01,
		},
		Artifacts: ArtifactConfig{
			RunsDir: "praxis_runs",
			Enabled: true,
		},
		LLM: LLMConfig{
			Provider:          "",
			Timeout:           30,
			MaxTokens:         1000,
			RequestsPerSecond: 1,
			AgentsDir:         "agents",
		},
		Concurrency: ConcurrencyConfig{
			EvalWorkers: 4,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			CleanupInterval: 15 * time.Minute,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
