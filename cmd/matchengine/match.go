package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careza/matchengine"
	"github.com/careza/matchengine/internal/config"
	"github.com/careza/matchengine/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank job postings against a CV",
	Long:  "Scores every posting in the jobs file against the CV, applies the optional preference filters, and writes the ranked matches as JSON.",
	RunE:  runMatch,
}

var (
	matchCV          string
	matchJobs        string
	matchPreferences string
	matchOutput      string
	matchConfigPath  string
	matchMax         int
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCV, "cv", "c", "", "Path to input CVProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobs, "jobs", "j", "", "Path to input JobPosting array JSON file (required)")
	matchCmd.Flags().StringVarP(&matchPreferences, "preferences", "p", "", "Path to MatchPreferences JSON file")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output ranked matches JSON file (required)")
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to CLI config JSON file")
	matchCmd.Flags().IntVar(&matchMax, "max", 0, "Cap on ranked matches (default engine cap)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a summary of the ranked matches")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		CV:          matchCV,
		Jobs:        matchJobs,
		Preferences: matchPreferences,
		Output:      matchOutput,
		MaxMatches:  matchMax,
		Verbose:     matchVerbose,
	}
	if matchConfigPath != "" {
		fileCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.CV == "" || cfg.Jobs == "" || cfg.Output == "" {
		return fmt.Errorf("cv, jobs and out are required (via flags or config)")
	}

	if err := validateInput("cv.schema.json", cfg.CV); err != nil {
		return err
	}
	if err := validateInput("jobs.schema.json", cfg.Jobs); err != nil {
		return err
	}

	var cv matchengine.CVProfile
	if err := loadJSONFile(cfg.CV, &cv); err != nil {
		return err
	}
	var postings []matchengine.JobPosting
	if err := loadJSONFile(cfg.Jobs, &postings); err != nil {
		return err
	}

	var prefs *matchengine.MatchPreferences
	if cfg.Preferences != "" {
		if err := validateInput("preferences.schema.json", cfg.Preferences); err != nil {
			return err
		}
		prefs = &matchengine.MatchPreferences{}
		if err := loadJSONFile(cfg.Preferences, prefs); err != nil {
			return err
		}
	}

	engine, err := matchengine.New()
	if err != nil {
		return fmt.Errorf("failed to initialise engine: %w", err)
	}

	matches, err := engine.FindMatches(context.Background(), &cv, postings, prefs)
	if err != nil {
		return fmt.Errorf("failed to rank postings: %w", err)
	}
	if cfg.MaxMatches > 0 && len(matches) > cfg.MaxMatches {
		matches = matches[:cfg.MaxMatches]
	}

	output := struct {
		envelope
		Matches []matchengine.JobMatch `json:"matches"`
	}{newEnvelope(), matches}

	if err := writeJSONFile(cfg.Output, output); err != nil {
		return err
	}
	validateOutput("matches.schema.json", cfg.Output)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRankedMatches(matches)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d postings to %s\n", len(matches), cfg.Output)

	return nil
}
