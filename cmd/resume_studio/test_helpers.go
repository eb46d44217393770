package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-studio/internal/store"
)

// getBinaryPath returns the path to the resume_studio binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_studio"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeResumeFixture writes a valid resume document to a temp file and
// returns its path.
func writeResumeFixture(t *testing.T) string {
	t.Helper()

	data, err := json.Marshal(store.Seed())
	if err != nil {
		t.Fatalf("failed to marshal sample resume: %v", err)
	}

	path := filepath.Join(t.TempDir(), "resume.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write resume fixture: %v", err)
	}

	return path
}
