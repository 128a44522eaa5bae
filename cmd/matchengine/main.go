// Package main provides the matchengine CLI: CV/job matching, single-posting
// analysis and ATS audits over JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "CV and job posting matching engine",
	Long:  "matchengine scores candidate CVs against job postings: ranked batch matching, single-posting analysis with skill gaps, and ATS readiness audits.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
