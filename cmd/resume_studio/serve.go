package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, scoring, rendering, and exporting resumes, with account, persistence, and billing support.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file providing flag defaults")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	defaults, err := loadConfigDefaults(serveConfigFile)
	if err != nil {
		return err
	}

	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = defaults.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Narrative analysis is optional; without a key the server falls back to
	// the rule-based review.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = defaults.APIKey
	}

	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		chromePath = defaults.ChromePath
	}

	port := servePort
	if port == 8080 && defaults.Port != 0 {
		port = defaults.Port
	}

	cfg := server.Config{
		Port:        port,
		DatabaseURL: databaseURL,
		APIKey:      apiKey,
		ChromePath:  chromePath,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
