package scoring

import (
	"github.com/jonathan/resume-ats/internal/narrative"
	"github.com/jonathan/resume-ats/internal/types"
)

// Assessment colors.
const (
	ColorSuccess = "success"
	ColorWarning = "warning"
	ColorError   = "error"
)

type band struct {
	min   float64
	value string
	color string
}

var assessmentBands = []band{
	{85, "outstanding", ColorSuccess},
	{75, "excellent", ColorSuccess},
	{65, "good", ColorWarning},
	{50, "fair", ColorWarning},
	{0, "needs_improvement", ColorError},
}

var gradeBands = []band{
	{90, "A+", ""},
	{85, "A", ""},
	{80, "A-", ""},
	{75, "B+", ""},
	{70, "B", ""},
	{65, "B-", ""},
	{60, "C+", ""},
	{55, "C", ""},
	{50, "C-", ""},
	{0, "D", ""},
}

var atsBands = []band{
	{80, "interpretation.ats.very_high", ""},
	{70, "interpretation.ats.high", ""},
	{60, "interpretation.ats.moderate", ""},
	{50, "interpretation.ats.low", ""},
	{0, "interpretation.ats.very_low", ""},
}

var competitiveBands = []band{
	{85, "interpretation.competitive.top10", ""},
	{75, "interpretation.competitive.top25", ""},
	{65, "interpretation.competitive.above_average", ""},
	{55, "interpretation.competitive.average", ""},
	{0, "interpretation.competitive.below_average", ""},
}

var urgencyBands = []band{
	{80, "interpretation.urgency.low", ""},
	{70, "interpretation.urgency.medium", ""},
	{60, "interpretation.urgency.high", ""},
	{0, "interpretation.urgency.critical", ""},
}

// lookup returns the first band whose minimum pct reaches. The last band of
// every table starts at zero, so negative input falls through to it.
func lookup(bands []band, pct float64) band {
	for _, b := range bands {
		if pct >= b.min {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Assess maps an overall percentage onto the five assessment levels.
func Assess(pct float64) types.OverallAssessment {
	b := lookup(assessmentBands, pct)
	prefix := "assessment." + b.value + "."
	return types.OverallAssessment{
		Level:          narrative.MustGet(narrative.ScoringFile, prefix+"level"),
		Description:    narrative.MustGet(narrative.ScoringFile, prefix+"description"),
		Recommendation: narrative.MustGet(narrative.ScoringFile, prefix+"recommendation"),
		Color:          b.color,
	}
}

// Interpret translates a score into grade, ATS pass likelihood, competitive
// standing, and improvement urgency.
func Interpret(total, maximum int) types.ScoreInterpretation {
	pct := percentage(total, maximum)
	return types.ScoreInterpretation{
		Percentage:         pct,
		Grade:              Grade(pct),
		ATSLikelihood:      narrative.MustGet(narrative.ScoringFile, lookup(atsBands, pct).value),
		CompetitiveLevel:   narrative.MustGet(narrative.ScoringFile, lookup(competitiveBands, pct).value),
		ImprovementUrgency: narrative.MustGet(narrative.ScoringFile, lookup(urgencyBands, pct).value),
	}
}

// Grade returns the letter grade for a percentage.
func Grade(pct float64) string {
	return lookup(gradeBands, pct).value
}
