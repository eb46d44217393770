// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-studio/internal/rendering"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Service
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for narrative analysis

	// Rendering
	Template string `json:"template,omitempty"` // Template ID for render/export
	Dark     bool   `json:"dark,omitempty"`     // Render with the dark theme

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Chrome/Chromium binary for PDF export
	Output     string `json:"output,omitempty"`      // Output directory for exported files

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	if c.Template != "" && !rendering.Known(c.Template) {
		return fmt.Errorf("config error: unknown template: %s", c.Template)
	}

	if c.Output != "" {
		if info, err := os.Stat(c.Output); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output path is not a directory: %s", c.Output)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
