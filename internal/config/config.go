// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/careza/matchengine/internal/ranking"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	CV          string `json:"cv,omitempty"`          // Path to CVProfile JSON file
	Jobs        string `json:"jobs,omitempty"`        // Path to JobPosting array JSON file
	Preferences string `json:"preferences,omitempty"` // Path to MatchPreferences JSON file
	Output      string `json:"output,omitempty"`      // Path to write results to

	// Behavior
	Industry   string `json:"industry,omitempty"`    // Override industry classification
	MaxMatches int    `json:"max_matches,omitempty"` // Cap on ranked matches
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.MaxMatches < 0 {
		return fmt.Errorf("config error: 'max_matches' must be non-negative")
	}
	if c.MaxMatches > ranking.MaxMatches {
		return fmt.Errorf("config error: 'max_matches' cannot exceed %d", ranking.MaxMatches)
	}

	for name, path := range map[string]string{
		"cv":          c.CV,
		"jobs":        c.Jobs,
		"preferences": c.Preferences,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.Preferences == "" {
		result.Preferences = defaults.Preferences
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.MaxMatches == 0 {
		result.MaxMatches = defaults.MaxMatches
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
