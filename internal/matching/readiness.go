package matching

import (
	"github.com/jonathan/resume-ats/internal/narrative"
	"github.com/jonathan/resume-ats/internal/types"
)

// ReadinessMax is the top of the readiness scale.
const ReadinessMax = 100

type readinessFactor struct {
	name   string
	strong int
	some   int
	points [2]int
}

// readinessFactors lists each factor with its strong and partial thresholds
// and the points they award.
var readinessFactors = []readinessFactor{
	{"experience", 3, 1, [2]int{30, 20}},
	{"skills", 12, 6, [2]int{25, 15}},
	{"projects", 3, 1, [2]int{25, 15}},
	{"achievements", 2, 1, [2]int{20, 10}},
}

var readinessTiers = []struct {
	min int
	key string
}{
	{80, "highly_ready"},
	{60, "ready"},
	{40, "moderate"},
	{0, "needs_development"},
}

// Readiness scores overall job-market readiness from experience, skills,
// projects and achievements.
func Readiness(f *types.FactModel) types.Readiness {
	values := map[string]int{
		"experience":   f.ExperienceYears,
		"skills":       f.SkillsCount,
		"projects":     f.ProjectCount,
		"achievements": f.QuantifiedAchievements,
	}

	score := 0
	factors := make([]string, 0, len(readinessFactors))
	for _, rf := range readinessFactors {
		v := values[rf.name]
		switch {
		case v >= rf.strong:
			score += rf.points[0]
			factors = append(factors, phrase("readiness.factor."+rf.name+"_strong"))
		case v >= rf.some:
			score += rf.points[1]
			factors = append(factors, phrase("readiness.factor."+rf.name+"_some"))
		default:
			factors = append(factors, phrase("readiness.factor."+rf.name+"_none"))
		}
	}

	tier := readinessTiers[len(readinessTiers)-1].key
	for _, t := range readinessTiers {
		if score >= t.min {
			tier = t.key
			break
		}
	}

	prefix := "readiness." + tier + "."
	return types.Readiness{
		Level:          phrase(prefix + "level"),
		Score:          score,
		MaxScore:       ReadinessMax,
		KeyFactors:     factors,
		Recommendation: phrase(prefix + "recommendation"),
		NextSteps:      narrative.Lines(narrative.MatchingFile, prefix+"steps."),
	}
}
