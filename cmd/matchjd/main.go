// Package main provides the entry point for the MatchMyJD scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchjd",
	Short: "Hybrid JD/resume matching and scoring engine",
	Long:  "matchjd scores a structured job description against a structured resume using exact, token-overlap, and embedding-similarity signals, and explains the result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
