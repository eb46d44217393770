package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/analysis"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the resume review",
	Long:  "Runs the rule-based review and, when GEMINI_API_KEY is set, a model-written narrative assessment of the resume. Without the key only the rule-based review is produced.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile string
	analyzeAPIKey    string
	analyzeJSON      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "input", "i", "", "Path to resume JSON file (default: sample resume)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for the narrative assessment (default: GEMINI_API_KEY)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the review as JSON instead of formatted boxes")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	resume, err := loadResume(analyzeInputFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// The narrative branch is optional: no API key means rule-based review only.
	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		geminiClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = geminiClient.Close() }()
		client = geminiClient
	}

	analyzer := analysis.New(client)
	result, err := analyzer.Analyze(ctx, resume)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis result: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReview(result.Review)
	printer.PrintNarrative(result.Narrative)

	return nil
}
