// Package observability provides formatted report output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/jonathan/resume-ats/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output of analysis reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad left-aligns s in a field of n runes
func pad(s string, n int) string {
	if gap := n - utf8.RuneCountInString(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(title, inner), inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// moreLine reports how many list items were not shown
func moreLine(sb *strings.Builder, total int, noun string) {
	if total > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more %s\n", total-maxItemsToShow, noun))
	}
}

// PrintReport outputs every section of a report
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}
	p.PrintSummary(report)
	p.PrintBreakdown(report.DetailedScoring)
	p.PrintStrengths(report.Strengths)
	p.PrintWeaknesses(report.Weaknesses)
	if report.JobAnalysis != nil {
		p.PrintRoleMatches(report.JobAnalysis)
		p.PrintReadiness(report.JobAnalysis.OverallReadiness)
	}
}

// PrintSummary outputs the headline score and profile.
func (p *Printer) PrintSummary(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	overall := report.Score.Breakdown.OverallAssessment
	interp := report.Interpretation
	profile := report.ExecutiveSummary.Profile

	sb.WriteString(fmt.Sprintf("Score:       %d/%d (%.1f%%)  Grade %s\n",
		report.Score.Total, report.Score.Max, report.Score.Percentage, interp.Grade))
	sb.WriteString(fmt.Sprintf("Assessment:  %s %s\n", overall.Color, overall.Level))
	sb.WriteString(fmt.Sprintf("ATS:         %s\n", interp.ATSLikelihood))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Level:       %s\n", profile.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Skills:      %d   Projects: %d   Metrics: %d\n",
		profile.TechnicalSkillsCount, profile.ProjectPortfolioSize, profile.AchievementMetrics))
	sb.WriteString(fmt.Sprintf("Words:       %s\n", humanize.Comma(int64(report.Metadata.WordCount))))
	if report.TargetRole != "" {
		sb.WriteString(fmt.Sprintf("Target role: %s\n", report.TargetRole))
	}
	sb.WriteString("\n")
	sb.WriteString(overall.Recommendation)

	p.printBox("ATS SCORE", sb.String())
}

// PrintBreakdown outputs one line per scoring category with its first details.
func (p *Printer) PrintBreakdown(scores []types.DetailedScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range scores {
		sb.WriteString(fmt.Sprintf("%s  %d/%d (%.0f%%)\n", pad(s.Label, 26), s.Score, s.MaxScore, s.Percentage))
		count := min(len(s.Details), 3)
		for _, d := range s.Details[:count] {
			sb.WriteString(fmt.Sprintf("  %s\n", d))
		}
		if i < len(scores)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCORE BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStrengths outputs the top strengths with their evidence.
func (p *Printer) PrintStrengths(strengths []types.Strength) {
	if len(strengths) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(strengths), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := strengths[i]
		sb.WriteString(fmt.Sprintf("✓ %s\n", s.Title))
		if s.Evidence != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", s.Evidence))
		}
	}
	moreLine(&sb, len(strengths), "strengths")

	p.printBox("STRENGTHS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeaknesses outputs every weakness with its priority and fix.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWeaknesses(weaknesses []types.Weakness) {
	if len(weaknesses) == 0 {
		border := strings.Repeat("─", boxWidth-2)
		fmt.Fprintf(p.out, "┌%s┐\n", border)
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ NO WEAKNESSES FOUND", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", border)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d weaknesses:\n\n", len(weaknesses)))
	for i, w := range weaknesses {
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", w.FixPriority, w.Title))
		sb.WriteString(fmt.Sprintf("  Fix: %s\n", w.SpecificFix))
		sb.WriteString(fmt.Sprintf("  Timeline: %s\n", w.Timeline))
		if i < len(weaknesses)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WEAKNESSES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoleMatches outputs the role suggestions with fit and gaps.
func (p *Printer) PrintRoleMatches(jobs *types.JobAnalysis) {
	if jobs == nil || len(jobs.RoleSuggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(jobs.RoleSuggestions), maxItemsToShow+1)
	for i := 0; i < count; i++ {
		s := jobs.RoleSuggestions[i]
		marker := ""
		if s.IsTarget {
			marker = "  ← target"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s  %.1f%%  %s%s\n", i+1, s.Role, s.CompatibilityScore, s.FitLevel, marker))
		sb.WriteString(fmt.Sprintf("    Level:  %s\n", s.Seniority.SuggestedLevel))
		if gaps := s.TechnicalAlignment.SkillGaps.Critical; len(gaps) > 0 {
			sb.WriteString(fmt.Sprintf("    Gaps:   %s\n", strings.Join(gaps, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(jobs.RoleSuggestions) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(jobs.RoleSuggestions)-count))
	}

	if jobs.MarketInsights != nil && jobs.MarketInsights.Salary.CurrentLevelRange != "" {
		sb.WriteString(fmt.Sprintf("\nSalary range: %s", jobs.MarketInsights.Salary.CurrentLevelRange))
	}

	p.printBox("ROLE MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReadiness outputs the overall job-market readiness.
func (p *Printer) PrintReadiness(r types.Readiness) {
	if r.Level == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%d/%d)\n", r.Level, r.Score, r.MaxScore))
	for _, f := range r.KeyFactors {
		sb.WriteString(fmt.Sprintf("  • %s\n", f))
	}
	sb.WriteString("\n")
	sb.WriteString(r.Recommendation)
	if len(r.NextSteps) > 0 {
		sb.WriteString("\n\nNext steps:\n")
		for i, step := range r.NextSteps {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	p.printBox("JOB MARKET READINESS", strings.TrimSuffix(sb.String(), "\n"))
}
