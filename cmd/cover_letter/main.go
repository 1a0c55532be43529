// Package main provides the entry point for the cover letter generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cover_letter",
	Short: "Personalized cover letter generator",
	Long:  "cover_letter merges your profile, a job posting's structured metadata, and toggleable lego sections into a tailored cover letter.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// envOr returns the environment value for key, or fallback when unset.
// Env vars provide flag defaults so repeated runs do not need full flag sets.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
