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

func TestScoreCommand_SampleResume(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "score failed: %s", string(output))
	assert.Contains(t, string(output), "RESUME SCORES")
	assert.Contains(t, string(output), "ATS Compatibility")
}

func TestScoreCommand_JSONOutput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	resumeFile := writeResumeFixture(t)

	cmd := exec.Command(binaryPath, "score", "--input", resumeFile, "--json")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "score failed: %s", string(output))

	var scores types.Scores
	require.NoError(t, json.Unmarshal(output, &scores))
	assert.Greater(t, scores.Overall, 0)
	assert.NotEmpty(t, scores.FormatGrade)
}

func TestScoreCommand_MissingInputFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score", "--input", filepath.Join(t.TempDir(), "nope.json"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read resume file")
}

func TestScoreCommand_InvalidDocument(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	badFile := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(badFile, []byte(`{"sections": []}`), 0644))

	cmd := exec.Command(binaryPath, "score", "--input", badFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "resume document is invalid")
}
