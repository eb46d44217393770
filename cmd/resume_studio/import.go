package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate and normalize a resume JSON document",
	Long:  "Checks that a resume JSON file conforms to the resume document schema, reports every violation, and on success emits the normalized document. Exits non-zero when the document is invalid.",
	RunE:  runImport,
}

var (
	importInputFile  string
	importOutputFile string
)

func init() {
	importCmd.Flags().StringVarP(&importInputFile, "input", "i", "", "Path to resume JSON file (required)")
	importCmd.Flags().StringVarP(&importOutputFile, "out", "o", "", "Path to write the normalized document (default: stdout)")

	if err := importCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(importInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Document is invalid (%d violations):\n", len(validationErr.Errors))
			for _, fieldErr := range validationErr.Errors {
				_, _ = fmt.Fprintf(os.Stderr, "  - %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("validation failed")
		}
		return err
	}

	// Round-trip through the data model so the output carries canonical
	// field ordering and formatting.
	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}

	normalized, err := json.MarshalIndent(&r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal normalized document: %w", err)
	}

	if importOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(normalized))
		return nil
	}

	if err := os.WriteFile(importOutputFile, normalized, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Document is valid, normalized copy written to %s\n", importOutputFile)

	return nil
}
