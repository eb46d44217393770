package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/scoring"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute quality signals for a resume",
	Long:  "Computes ATS compatibility, completeness, format grade, and an overall score for a resume JSON document. Without --input the built-in sample resume is scored.",
	RunE:  runScore,
}

var (
	scoreInputFile string
	scoreJSON      bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "input", "i", "", "Path to resume JSON file (default: sample resume)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print scores as JSON instead of a formatted box")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(scoreInputFile)
	if err != nil {
		return err
	}

	scores := scoring.Signals(resume)

	if scoreJSON {
		out, err := json.MarshalIndent(scores, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal scores: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScores(scores)

	return nil
}
