package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to standalone HTML",
	Long:  "Renders a resume JSON document to a self-contained HTML page using one of the built-in templates. The output includes all styling inline so the file can be opened directly in a browser.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderTemplateID string
	renderDark       bool
	renderOutputFile string
	renderConfigFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "input", "i", "", "Path to resume JSON file (default: sample resume)")
	renderCmd.Flags().StringVarP(&renderTemplateID, "template", "t", "", "Template ID (default: classic)")
	renderCmd.Flags().BoolVar(&renderDark, "dark", false, "Render with the dark theme")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output HTML file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderConfigFile, "config", "c", "", "Path to JSON config file providing flag defaults")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	defaults, err := loadConfigDefaults(renderConfigFile)
	if err != nil {
		return err
	}

	flags := config.Config{Template: renderTemplateID}
	merged := flags.MergeWithDefaults(defaults)

	// Empty and unknown IDs both resolve to the default template; the
	// resolved id names the output file.
	templateID := merged.Template
	if !rendering.Known(templateID) {
		templateID = rendering.DefaultTemplateID
	}

	resume, err := loadResume(renderInputFile)
	if err != nil {
		return err
	}

	html, err := rendering.Render(resume, templateID, renderDark)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	// The config file supplies an output directory; the flag supplies the
	// exact file path and wins when both are present.
	outputPath := renderOutputFile
	if outputPath == "" && merged.Output != "" {
		outputPath = filepath.Join(merged.Output, fmt.Sprintf("resume_%s.html", templateID))
	}

	if outputPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, html)
		return nil
	}

	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully rendered resume with template %q\n", templateID)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)

	return nil
}
