package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careza/matchengine"
	"github.com/careza/matchengine/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one CV against one job posting",
	Long:  "Scores the CV against a single posting across every dimension and writes the full match result, including reasons, suggestions and skill gaps.",
	RunE:  runAnalyze,
}

var (
	analyzeCV      string
	analyzeJob     string
	analyzeOutput  string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeCV, "cv", "c", "", "Path to input CVProfile JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output match result JSON file (required)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the match result summary")

	if err := analyzeCmd.MarkFlagRequired("cv"); err != nil {
		panic(fmt.Sprintf("failed to mark cv flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := analyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if err := validateInput("cv.schema.json", analyzeCV); err != nil {
		return err
	}
	if err := validateInput("job.schema.json", analyzeJob); err != nil {
		return err
	}

	var cv matchengine.CVProfile
	if err := loadJSONFile(analyzeCV, &cv); err != nil {
		return err
	}
	var job matchengine.JobPosting
	if err := loadJSONFile(analyzeJob, &job); err != nil {
		return err
	}

	engine, err := matchengine.New()
	if err != nil {
		return fmt.Errorf("failed to initialise engine: %w", err)
	}

	result, err := engine.AnalyzeJobMatch(&cv, &job)
	if err != nil {
		return fmt.Errorf("failed to analyze match: %w", err)
	}
	gaps := engine.AnalyzeSkillGaps(&cv, &job)

	output := struct {
		envelope
		Result *matchengine.MatchResult `json:"result"`
		Gaps   []matchengine.SkillGap   `json:"gaps,omitempty"`
	}{newEnvelope(), result, gaps}

	if err := writeJSONFile(analyzeOutput, output); err != nil {
		return err
	}
	validateOutput("match_result.schema.json", analyzeOutput)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResult(result)
		printer.PrintSkillGaps(gaps)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed match (overall %d) to %s\n", result.OverallScore, analyzeOutput)

	return nil
}
