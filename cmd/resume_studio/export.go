package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume to PDF",
	Long:  "Renders a resume JSON document with the selected template and prints it to PDF via headless Chrome. Chrome or Chromium must be installed; set --chrome-path or CHROME_PATH if it is not on the default lookup path.",
	RunE:  runExport,
}

var (
	exportInputFile  string
	exportTemplateID string
	exportDark       bool
	exportOutputFile string
	exportChromePath string
	exportTimeout    time.Duration
	exportConfigFile string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "input", "i", "", "Path to resume JSON file (default: sample resume)")
	exportCmd.Flags().StringVarP(&exportTemplateID, "template", "t", "", "Template ID (default: classic)")
	exportCmd.Flags().BoolVar(&exportDark, "dark", false, "Render with the dark theme")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to output PDF file (default: derived from candidate name)")
	exportCmd.Flags().StringVar(&exportChromePath, "chrome-path", "", "Path to the Chrome/Chromium binary")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 60*time.Second, "Timeout for the PDF print job")
	exportCmd.Flags().StringVarP(&exportConfigFile, "config", "c", "", "Path to JSON config file providing flag defaults")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	defaults, err := loadConfigDefaults(exportConfigFile)
	if err != nil {
		return err
	}

	flags := config.Config{Template: exportTemplateID, ChromePath: exportChromePath}
	merged := flags.MergeWithDefaults(defaults)

	// Empty and unknown IDs both resolve to the default template; the
	// resolved id names the output file.
	templateID := merged.Template
	if !rendering.Known(templateID) {
		templateID = rendering.DefaultTemplateID
	}

	chromePath := merged.ChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}

	resume, err := loadResume(exportInputFile)
	if err != nil {
		return err
	}

	html, err := rendering.Render(resume, templateID, exportDark)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	opts := []export.Option{export.WithTimeout(exportTimeout)}
	if chromePath != "" {
		opts = append(opts, export.WithChromePath(chromePath))
	}
	exporter := export.New(opts...)

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	pdf, err := exporter.ExportPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("failed to export PDF: %w", err)
	}

	outputPath := exportOutputFile
	if outputPath == "" {
		filename := export.Filename(resume.PersonalInfo.Name, templateID)
		if merged.Output != "" {
			outputPath = filepath.Join(merged.Output, filename)
		} else {
			outputPath = filename
		}
	}

	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully exported PDF (%d bytes)\n", len(pdf))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)

	return nil
}
