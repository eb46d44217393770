package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCommand_FullCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "templates")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "templates failed: %s", string(output))
	assert.Contains(t, string(output), "TEMPLATE CATALOG")
	assert.Contains(t, string(output), "classic")
}

func TestTemplatesCommand_CategoryFilter(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "templates", "--category", "technical", "--json")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "templates failed: %s", string(output))

	var descriptors []types.TemplateDescriptor
	require.NoError(t, json.Unmarshal(output, &descriptors))
	require.NotEmpty(t, descriptors)
	for _, d := range descriptors {
		assert.Equal(t, types.CategoryTechnical, d.Category)
	}
}

func TestTemplatesCommand_UnknownCategory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "templates", "--category", "baroque")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown template category")
}
