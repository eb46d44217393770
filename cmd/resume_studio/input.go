package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

// loadResume reads a resume document from a JSON file, validates it against
// the resume schema, and unmarshals it. An empty path returns the built-in
// sample resume so commands can be tried without any input file.
func loadResume(path string) (*types.Resume, error) {
	if path == "" {
		return store.Seed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		return nil, fmt.Errorf("resume document is invalid: %w", err)
	}

	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}

	return &r, nil
}

// loadConfigDefaults loads and validates an optional config file. An empty
// path yields a zero config so callers can merge unconditionally.
func loadConfigDefaults(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return *cfg, nil
}
