// Package pipeline provides the high-level orchestration for résumé analysis:
// extract facts once, fan out scoring, findings and role matching, and
// assemble the report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/extraction"
	"github.com/jonathan/resume-ats/internal/findings"
	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/matching"
	"github.com/jonathan/resume-ats/internal/pipeline/steps"
	"github.com/jonathan/resume-ats/internal/scoring"
	"github.com/jonathan/resume-ats/internal/types"
)

// reportNamespace scopes report IDs so that they never collide with other
// name-based UUIDs.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jonathan/resume-ats/report"))

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	ReportID string `json:"report_id,omitempty"`
	Content  any    `json:"content,omitempty"`

	// Available lists the steps whose dependencies are now met, Blocked the
	// steps still waiting on one.
	Available []string `json:"available,omitempty"`
	Blocked   []string `json:"blocked,omitempty"`
	// SkippedOptional lists optional dependencies of Step that did not run.
	SkippedOptional []string `json:"skipped_optional,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Analysis steps run
// concurrently, so the callback must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for one analysis
type Options struct {
	TargetRole     string
	CurrentYear    int              // 0 uses the current wall-clock year
	Catalog        *catalog.Catalog // nil uses the embedded default catalog
	Suggestions    int              // 0 uses the catalog limit
	SkipValidation bool
	OnProgress     ProgressCallback
}

// run carries the per-analysis state shared by the steps
type run struct {
	opts     Options
	reportID string
	tracker  *steps.Tracker
}

// emitProgress calls the progress callback if configured
func (r *run) emitProgress(step, message string, content any) {
	if r.opts.OnProgress == nil {
		return
	}
	available, blocked := r.tracker.Pending()
	r.opts.OnProgress(ProgressEvent{
		Step:            step,
		Category:        steps.Category(step),
		Message:         message,
		ReportID:        r.reportID,
		Content:         content,
		Available:       available,
		Blocked:         blocked,
		SkippedOptional: steps.MissingOptional(r.tracker.Completed(), step),
	})
}

// begin checks the step's dependencies and the context before a step runs
func (r *run) begin(ctx context.Context, step string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.tracker.Begin(step); err != nil {
		return fmt.Errorf("step %s: %w", step, err)
	}
	return nil
}

// finish marks a step complete and reports it
func (r *run) finish(step, message string, content any) {
	r.tracker.Complete(step)
	r.emitProgress(step, message, content)
}

// ReportID derives the content-addressed report identifier for a cleaned
// text, target role and reference year.
func ReportID(cleanedText, targetRole string, year int) string {
	name := strings.Join([]string{cleanedText, catalog.RoleKey(targetRole), strconv.Itoa(year)}, "\x00")
	return uuid.NewSHA1(reportNamespace, []byte(name)).String()
}

// Analyze runs the full analysis of a résumé text and assembles the report.
// Text that fails content validation is rejected with an
// *ingestion.ContentError unless SkipValidation is set.
func Analyze(ctx context.Context, text string, opts Options) (*types.Report, error) {
	cat := opts.Catalog
	if cat == nil {
		var err error
		cat, err = catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load default catalog: %w", err)
		}
	}
	year := opts.CurrentYear
	if year == 0 {
		year = time.Now().Year()
	}

	r := &run{opts: opts, tracker: steps.NewTracker()}

	// Step 1: Clean text
	if err := r.begin(ctx, steps.StepCleanText); err != nil {
		return nil, err
	}
	cleaned := ingestion.CleanText(text)
	r.reportID = ReportID(cleaned, opts.TargetRole, year)
	r.finish(steps.StepCleanText, fmt.Sprintf("Cleaned résumé text (%d characters)", len(cleaned)), nil)

	// Step 2: Validate content
	var validation ingestion.ValidationResult
	if !opts.SkipValidation {
		if err := r.begin(ctx, steps.StepValidateContent); err != nil {
			return nil, err
		}
		validation = ingestion.ValidateResumeContent(cleaned)
		if err := validation.Err(); err != nil {
			return nil, fmt.Errorf("invalid resume content: %w", err)
		}
		r.finish(steps.StepValidateContent, validation.Message, nil)
	} else {
		r.tracker.Skip(steps.StepValidateContent)
	}

	// Step 3: Extract facts once
	if err := r.begin(ctx, steps.StepExtractFacts); err != nil {
		return nil, err
	}
	extractor := extraction.New(cat, extraction.WithCurrentYear(year))
	facts, err := extractor.Extract(cleaned)
	if err != nil {
		return nil, fmt.Errorf("fact extraction failed: %w", err)
	}
	r.finish(steps.StepExtractFacts,
		fmt.Sprintf("Extracted %d data points", facts.AnalysisSummary.TotalDataPoints), facts)

	// Steps 4-6: fan out the independent consumers of the fact model
	var (
		score      *types.ScoreResult
		strengths  []types.Strength
		weaknesses []types.Weakness
		jobs       *types.JobAnalysis
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := r.begin(gCtx, steps.StepScore); err != nil {
			return err
		}
		score = scoring.NewEngine(cat).Score(cleaned, facts, opts.TargetRole)
		r.finish(steps.StepScore, fmt.Sprintf("Scored %d/%d", score.Total, score.Max), nil)
		return nil
	})

	g.Go(func() error {
		if err := r.begin(gCtx, steps.StepFindings); err != nil {
			return err
		}
		strengths, weaknesses = findings.NewAnalyzer(cat).Analyze(cleaned, facts, opts.TargetRole)
		r.finish(steps.StepFindings,
			fmt.Sprintf("Found %d strengths and %d weaknesses", len(strengths), len(weaknesses)), nil)
		return nil
	})

	g.Go(func() error {
		if err := r.begin(gCtx, steps.StepMatchRoles); err != nil {
			return err
		}
		jobs = matching.NewMatcher(cat, matching.WithSuggestions(opts.Suggestions)).Match(cleaned, facts, opts.TargetRole)
		r.finish(steps.StepMatchRoles,
			fmt.Sprintf("Ranked %d roles", len(jobs.Compatibility)), nil)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Step 7: Assemble report
	if err := r.begin(ctx, steps.StepAssembleReport); err != nil {
		return nil, err
	}
	report := &types.Report{
		ID:          r.reportID,
		TargetRole:  strings.TrimSpace(opts.TargetRole),
		CurrentYear: year,
		Metadata: types.ResumeMetadata{
			WordCount:         facts.WordCount,
			ValidationMessage: validation.Message,
			ExperienceLevel:   facts.ExperienceLevel,
			SkillsCount:       facts.SkillsCount,
			ProjectCount:      facts.ProjectCount,
		},
		ExecutiveSummary: executiveSummary(facts, score),
		Score:            *score,
		Interpretation:   scoring.Interpret(score.Total, score.Max),
		DetailedScoring:  detailedScoring(score.Breakdown),
		Strengths:        strengths,
		Weaknesses:       weaknesses,
		ImprovementPlan:  findings.BuildImprovementPlan(weaknesses),
		JobAnalysis:      jobs,
		Facts:            facts,
	}
	r.finish(steps.StepAssembleReport, "Assembled analysis report", nil)

	return report, nil
}

// IsContentError reports whether err is a résumé content rejection
func IsContentError(err error) bool {
	return errors.Is(err, ingestion.ErrNotResume)
}

func presence(ok bool, present string) string {
	if ok {
		return present
	}
	return "Missing"
}

func executiveSummary(facts *types.FactModel, score *types.ScoreResult) types.ExecutiveSummary {
	assessment := score.Breakdown.OverallAssessment
	return types.ExecutiveSummary{
		Profile: types.ProfessionalProfile{
			ExperienceLevel:         facts.ExperienceLevel,
			TechnicalSkillsCount:    facts.SkillsCount,
			ProjectPortfolioSize:    facts.ProjectCount,
			AchievementMetrics:      facts.QuantifiedAchievements,
			TechnicalSophistication: facts.TechnicalSophistication,
		},
		Presentation: types.ContactPresentation{
			EmailAddress: presence(facts.Email != nil, "Present"),
			PhoneNumber:  presence(facts.Phone != nil, "Present"),
			Education:    presence(facts.HasEducation, "Documented"),
			ResumeLength: facts.WordCount,
			ActionVerbs:  facts.ActionVerbCount,
		},
		Overall: types.OverallSummary{
			ScorePercentage: score.Percentage,
			Level:           assessment.Level,
			Description:     assessment.Description,
			Recommendation:  assessment.Recommendation,
		},
	}
}

func detailedScoring(breakdown types.ScoreBreakdown) []types.DetailedScore {
	title := cases.Title(language.English)
	out := make([]types.DetailedScore, 0, len(breakdown.Categories))
	for _, c := range breakdown.Categories {
		pct := 0.0
		if c.Max > 0 {
			pct = float64(c.Score) / float64(c.Max) * 100
		}
		out = append(out, types.DetailedScore{
			Category:   c.Name,
			Label:      title.String(strings.ReplaceAll(c.Name, "_", " ")),
			Score:      c.Score,
			MaxScore:   c.Max,
			Percentage: pct,
			Details:    c.Details,
		})
	}
	return out
}
