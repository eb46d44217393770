package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available resume templates",
	Long:  "Lists the template catalog, optionally filtered by category (professional, modern, minimal, creative, technical, academic, executive).",
	RunE:  runTemplates,
}

var (
	templatesCategory string
	templatesJSON     bool
)

func init() {
	templatesCmd.Flags().StringVar(&templatesCategory, "category", "", "Filter by template category")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print the catalog as JSON instead of a formatted box")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	category := types.TemplateCategory(templatesCategory)
	descriptors := rendering.Catalog(category)

	if templatesCategory != "" && len(descriptors) == 0 {
		return fmt.Errorf("unknown template category: %s", templatesCategory)
	}

	if templatesJSON {
		out, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal template catalog: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTemplates(descriptors)

	return nil
}
