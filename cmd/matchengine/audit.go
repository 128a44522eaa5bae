package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careza/matchengine"
	"github.com/careza/matchengine/internal/observability"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a CV's ATS readiness",
	Long:  "Runs the section-by-section ATS audit of a CV under the given industry's rules, or the industry classified from the CV text when none is given.",
	RunE:  runAudit,
}

var (
	auditCV       string
	auditIndustry string
	auditOutput   string
	auditVerbose  bool
)

func init() {
	auditCmd.Flags().StringVarP(&auditCV, "cv", "c", "", "Path to input CVProfile JSON file (required)")
	auditCmd.Flags().StringVar(&auditIndustry, "industry", "", "Industry to audit under (default: classified from CV)")
	auditCmd.Flags().StringVarP(&auditOutput, "out", "o", "", "Path to output ATS audit JSON file (required)")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Print the audit summary")

	if err := auditCmd.MarkFlagRequired("cv"); err != nil {
		panic(fmt.Sprintf("failed to mark cv flag as required: %v", err))
	}
	if err := auditCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(auditCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
	if err := validateInput("cv.schema.json", auditCV); err != nil {
		return err
	}

	var cv matchengine.CVProfile
	if err := loadJSONFile(auditCV, &cv); err != nil {
		return err
	}

	engine, err := matchengine.New()
	if err != nil {
		return fmt.Errorf("failed to initialise engine: %w", err)
	}

	audit := engine.AnalyzeCV(&cv, auditIndustry)

	output := struct {
		envelope
		Audit *matchengine.DetailedATSScore `json:"audit"`
	}{newEnvelope(), audit}

	if err := writeJSONFile(auditOutput, output); err != nil {
		return err
	}
	validateOutput("ats_score.schema.json", auditOutput)

	if auditVerbose {
		observability.NewPrinter(os.Stdout).PrintATSScore(audit)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Successfully audited CV (overall %d, industry %s) to %s\n",
		audit.Overall, audit.Industry, auditOutput)

	return nil
}
