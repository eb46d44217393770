// Package main provides the entry point for the Resume Studio CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume Studio CLI and API Server",
	Long:  "Resume Studio scores, reviews, renders, and exports resumes from structured JSON documents, and serves the same capabilities over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
