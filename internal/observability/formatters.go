// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/careza/matchengine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of one match analysis.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %d\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Skills:      %d\n", result.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Experience:  %d\n", result.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Location:    %d\n", result.LocationMatch))
	sb.WriteString(fmt.Sprintf("Salary:      %d\n", result.SalaryMatch))
	sb.WriteString(fmt.Sprintf("ATS:         %d\n", result.ATSCompatibility))
	sb.WriteString(fmt.Sprintf("Predicted:   %d\n", result.PredictedApplicationSuccess))

	if len(result.MatchReasons) > 0 {
		sb.WriteString("\nWhy:\n")
		count := min(len(result.MatchReasons), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MatchReasons[i]))
		}
		if len(result.MatchReasons) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MatchReasons)-maxItemsToShow))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedMatches outputs the top ranked postings with their scores.
func (p *Printer) PrintRankedMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		p.printBox("RANKED MATCHES", "No postings matched your preferences")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		title := m.Job.Title
		if m.Job.Company != "" {
			title = fmt.Sprintf("%s — %s", title, m.Job.Company)
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Overall: %d  Predicted: %d\n",
			m.Result.OverallScore, m.Result.PredictedApplicationSuccess))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", sb.String())
}

// PrintATSScore outputs the section-by-section ATS audit summary.
func (p *Printer) PrintATSScore(score *types.DetailedATSScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:    %s\n", score.Industry))
	sb.WriteString(fmt.Sprintf("Overall:     %d\n", score.Overall))
	sb.WriteString(fmt.Sprintf("Compliance:  %d\n", score.IndustryCompliance))
	sb.WriteString("\nSections:\n")

	names := make([]string, 0, len(score.Sections))
	for name := range score.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		section := score.Sections[name]
		sb.WriteString(fmt.Sprintf("  %-15s %3d/%d (%s)\n",
			name, section.Score, section.MaxScore, section.Priority))
	}

	if len(score.SystemScores) > 0 {
		sb.WriteString("\nATS systems:\n")
		for _, sys := range score.SystemScores {
			sb.WriteString(fmt.Sprintf("  %-20s %3d\n", sys.System, sys.Score))
		}
	}

	p.printBox("ATS AUDIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGaps outputs the gap report with priorities.
func (p *Printer) PrintSkillGaps(gapList []types.SkillGap) {
	if len(gapList) == 0 {
		p.printBox("SKILL GAPS", "No gaps found")
		return
	}

	var sb strings.Builder
	count := min(len(gapList), maxItemsToShow)
	for i := 0; i < count; i++ {
		g := gapList[i]
		sb.WriteString(fmt.Sprintf("⚠ %s (%s, %s)\n", g.Skill, g.Category, g.Priority))
		sb.WriteString(fmt.Sprintf("  learn in %s\n", g.EstimatedTimeToLearn))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(gapList) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps", len(gapList)-maxItemsToShow))
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}
