package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand_ValidDocument(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	resumeFile := writeResumeFixture(t)
	outputFile := filepath.Join(t.TempDir(), "normalized.json")

	cmd := exec.Command(binaryPath, "import", "--input", resumeFile, "--out", outputFile)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "import failed: %s", string(output))
	assert.Contains(t, string(output), "Document is valid")

	normalized, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var r types.Resume
	require.NoError(t, json.Unmarshal(normalized, &r))
	assert.Equal(t, "Jordan Avery", r.PersonalInfo.Name)
}

func TestImportCommand_NormalizedToStdout(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	resumeFile := writeResumeFixture(t)

	cmd := exec.Command(binaryPath, "import", "--input", resumeFile)
	output, err := cmd.Output()

	require.NoError(t, err)

	var r types.Resume
	require.NoError(t, json.Unmarshal(output, &r))
	assert.NotEmpty(t, r.Sections)
}

func TestImportCommand_InvalidDocument(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	badFile := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badFile, []byte(`{"personal_info": {"name": "A"}}`), 0644))

	cmd := exec.Command(binaryPath, "import", "--input", badFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "Document is invalid")
}

func TestImportCommand_MissingInputFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "import")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"input\" not set")
}
