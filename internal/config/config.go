// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/readability-analyzer/internal/types"
)

// DefaultPort is the default HTTP server port.
const DefaultPort = 8080

// Config represents the analyzer configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	Port        int                 `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string              `json:"database_url,omitempty"` // PostgreSQL connection URL for session persistence
	Targets     *types.TargetConfig `json:"targets,omitempty"`      // Per-category target grades
	UseBrowser  bool                `json:"use_browser,omitempty"`  // Use headless browser for SPA pages during extraction
	Verbose     bool                `json:"verbose,omitempty"`      // Print detailed zone output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv fills unset fields from environment variables
// (PORT, DATABASE_URL) and applies TARGET_* grade overrides.
func (c *Config) ApplyEnv() error {
	if c.Port == 0 {
		if v := os.Getenv("PORT"); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config error: invalid PORT %q", v)
			}
			c.Port = port
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	targets := c.TargetsOrDefault()
	overrides := map[string]*int{
		"TARGET_DIALOGUE":     &targets.Dialogue,
		"TARGET_MATH_PROBLEM": &targets.MathProblem,
		"TARGET_NARRATION":    &targets.Narration,
	}
	for name, field := range overrides {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		grade, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid %s %q", name, v)
		}
		*field = grade
	}
	c.Targets = &targets
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Targets != nil {
		if err := c.Targets.Validate(); err != nil {
			return fmt.Errorf("config error: invalid targets: %w", err)
		}
	}
	return nil
}

// PortOrDefault returns the configured port, or the default when unset.
func (c *Config) PortOrDefault() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}

// TargetsOrDefault returns the configured targets, or the conventional
// defaults when unset.
func (c *Config) TargetsOrDefault() types.TargetConfig {
	if c.Targets == nil {
		return types.DefaultTargets()
	}
	return *c.Targets
}
