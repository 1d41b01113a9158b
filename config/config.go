package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/llmrouter/catalog"
)

// Config is the full router configuration: routing behavior plus the
// model catalog. An empty Models list falls back to the built-in
// catalog.
type Config struct {
	Router RouterConfig  `json:"router" yaml:"router" toml:"router"`
	Models []ModelConfig `json:"models" yaml:"models" toml:"models"`
}

// RouterConfig tunes routing behavior.
type RouterConfig struct {
	// DefaultModel is the model used when no rule matches. Must resolve
	// in the catalog; an unresolvable default is a startup error.
	DefaultModel string `json:"default_model" yaml:"default_model" toml:"default_model"`

	// DisableStickySessions turns off sticky-model reuse, so every
	// query is routed from scratch.
	DisableStickySessions bool `json:"disable_sticky_sessions" yaml:"disable_sticky_sessions" toml:"disable_sticky_sessions"`

	// ClassifierThreshold is the rule-confidence floor below which the
	// LLM classifier is consulted, when one is configured. 0 uses the
	// router default.
	ClassifierThreshold float64 `json:"classifier_threshold" yaml:"classifier_threshold" toml:"classifier_threshold"`

	// SessionIdleTimeout is how long a session may sit idle before
	// eviction. 0 uses the session store default.
	SessionIdleTimeout time.Duration `json:"session_idle_timeout" yaml:"session_idle_timeout" toml:"session_idle_timeout"`
}

// ModelConfig describes one catalog entry.
type ModelConfig struct {
	ID               string   `json:"id" yaml:"id" toml:"id"`
	Provider         string   `json:"provider" yaml:"provider" toml:"provider"`
	Description      string   `json:"description" yaml:"description" toml:"description"`
	InputPer1K       float64  `json:"input_per_1k" yaml:"input_per_1k" toml:"input_per_1k"`
	OutputPer1K      float64  `json:"output_per_1k" yaml:"output_per_1k" toml:"output_per_1k"`
	Capabilities     []string `json:"capabilities" yaml:"capabilities" toml:"capabilities"`
	Free             bool     `json:"free" yaml:"free" toml:"free"`
	MaxContextTokens int      `json:"max_context_tokens" yaml:"max_context_tokens" toml:"max_context_tokens"`
	Aliases          []string `json:"aliases" yaml:"aliases" toml:"aliases"`
}

// Default returns a Config using the built-in catalog and its default
// model.
func Default() Config {
	return Config{
		Router: RouterConfig{
			DefaultModel: catalog.DefaultModelID,
		},
	}
}

// Load reads a configuration file, choosing the codec by extension:
// .yaml/.yml or .toml. Environment overrides are not applied; call
// LoadFromEnv afterwards for that.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config: unsupported extension %q (want .yaml, .yml, or .toml)", ext)
	}

	if cfg.Router.DefaultModel == "" {
		cfg.Router.DefaultModel = catalog.DefaultModelID
	}
	return cfg, cfg.Validate()
}

// LoadFromEnv overrides config fields from environment variables.
// Variables use the LLMROUTER_ prefix and take precedence over
// existing values.
//
// Supported variables:
//   - LLMROUTER_DEFAULT_MODEL: default model ID
//   - LLMROUTER_DISABLE_STICKY: "true" disables sticky sessions
//   - LLMROUTER_CLASSIFIER_THRESHOLD: rule-confidence floor
//   - LLMROUTER_SESSION_IDLE_TIMEOUT: duration (e.g., "30m")
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("LLMROUTER_DEFAULT_MODEL"); v != "" {
		c.Router.DefaultModel = v
	}
	if v := os.Getenv("LLMROUTER_DISABLE_STICKY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Router.DisableStickySessions = b
		}
	}
	if v := os.Getenv("LLMROUTER_CLASSIFIER_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Router.ClassifierThreshold = f
		}
	}
	if v := os.Getenv("LLMROUTER_SESSION_IDLE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Router.SessionIdleTimeout = d
		}
	}
}

// FromEnv creates a Config from defaults plus environment overrides.
func FromEnv() Config {
	cfg := Default()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks the configuration. The default model must resolve in
// the configured catalog; a router with no usable default cannot start.
func (c *Config) Validate() error {
	if c.Router.DefaultModel == "" {
		return fmt.Errorf("config: default_model is required")
	}
	if t := c.Router.ClassifierThreshold; t < 0 || t > 1 {
		return fmt.Errorf("config: classifier_threshold must be in [0,1], got %v", t)
	}
	if c.Router.SessionIdleTimeout < 0 {
		return fmt.Errorf("config: session_idle_timeout must be >= 0, got %v", c.Router.SessionIdleTimeout)
	}

	cat, err := c.Catalog()
	if err != nil {
		return err
	}
	if !cat.Contains(c.Router.DefaultModel) {
		return fmt.Errorf("config: default_model %q is not in the catalog", c.Router.DefaultModel)
	}
	return nil
}

// Catalog builds the model catalog from the config. An empty Models
// list returns the built-in catalog.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if len(c.Models) == 0 {
		return catalog.Default(), nil
	}

	models := make([]catalog.Model, len(c.Models))
	for i, mc := range c.Models {
		models[i] = catalog.Model{
			ID:               mc.ID,
			Provider:         mc.Provider,
			Description:      mc.Description,
			InputPer1K:       mc.InputPer1K,
			OutputPer1K:      mc.OutputPer1K,
			Capabilities:     mc.Capabilities,
			Free:             mc.Free,
			MaxContextTokens: mc.MaxContextTokens,
			Aliases:          mc.Aliases,
		}
	}

	cat, err := catalog.New(models...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cat, nil
}
