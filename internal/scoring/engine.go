// Package scoring converts a fact model into a weighted 0-100 ATS score with
// itemized justifications for every category.
package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/narrative"
	"github.com/jonathan/resume-ats/internal/types"
)

type categorySpec struct {
	name   string
	max    int
	weight float64
}

// categorySpecs fixes the breakdown order and the per-category caps.
var categorySpecs = []categorySpec{
	{types.CategoryContactInfo, 15, 0.15},
	{types.CategoryTechnicalSkills, 30, 0.30},
	{types.CategoryExperienceQuality, 25, 0.25},
	{types.CategoryQuantifiedAchievements, 20, 0.20},
	{types.CategoryContentOptimization, 10, 0.10},
}

// MaxScore is the sum of all category caps.
const MaxScore = 100

// Engine scores fact models against a catalog. It is safe for concurrent use.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine creates a scoring engine over cat.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// tally accumulates one category. Points are kept as float so fractional
// framework bonuses are floored once, at the clamp.
type tally struct {
	points  float64
	details []string
}

func (t *tally) add(points float64, key string, data narrative.Vars) {
	t.points += points
	t.details = append(t.details, narrative.Render(narrative.ScoringFile, key, data))
}

func (t *tally) note(key string, data narrative.Vars) {
	t.add(0, key, data)
}

// Score computes the category breakdown for facts. text is the cleaned résumé
// text used for keyword matching; targetRole may be empty.
func (e *Engine) Score(text string, facts *types.FactModel, targetRole string) *types.ScoreResult {
	lower := strings.ToLower(text)

	tallies := []*tally{
		e.scoreContact(facts),
		e.scoreTechnical(lower, facts, targetRole),
		e.scoreExperience(facts),
		e.scoreAchievements(facts),
		e.scoreContent(facts),
	}

	result := &types.ScoreResult{Max: MaxScore}
	for i, spec := range categorySpecs {
		t := tallies[i]
		score := int(math.Floor(math.Min(t.points, float64(spec.max))))
		details := t.details
		if details == nil {
			details = []string{}
		}
		result.Breakdown.Categories = append(result.Breakdown.Categories, types.CategoryScore{
			Name:    spec.name,
			Score:   score,
			Max:     spec.max,
			Weight:  spec.weight,
			Details: details,
		})
		result.Total += score
	}

	result.Percentage = percentage(result.Total, result.Max)
	result.Breakdown.OverallAssessment = Assess(result.Percentage)
	return result
}

func (e *Engine) scoreContact(f *types.FactModel) *tally {
	t := &tally{}

	if f.HasEmail() {
		t.add(8, "contact.email_present", nil)
		if catalog.ContainsAny(strings.ToLower(*f.Email), e.cat.Keywords.EmailProviders) {
			t.note("contact.email_provider", nil)
		}
	} else {
		t.note("contact.email_missing", nil)
	}

	if f.HasPhone() {
		t.add(7, "contact.phone_present", nil)
		if f.PhoneCount > 1 {
			t.note("contact.phone_multiple", nil)
		}
	} else {
		t.note("contact.phone_missing", nil)
	}

	if f.HasEmail() && f.HasPhone() {
		t.note("contact.complete", nil)
	}
	return t
}

func (e *Engine) scoreTechnical(lower string, f *types.FactModel, targetRole string) *tally {
	t := &tally{}

	if f.SkillsText != "" {
		t.add(5, "skills.section_present", nil)
		count := narrative.Vars{"Count": strconv.Itoa(f.SkillsCount)}
		switch {
		case f.SkillsCount >= 12:
			t.add(5, "skills.count_comprehensive", count)
		case f.SkillsCount >= 6:
			t.add(3, "skills.count_good", count)
		case f.SkillsCount > 0:
			t.add(1, "skills.count_limited", count)
		}
	} else {
		t.note("skills.section_missing", nil)
	}

	if role, ok := e.cat.Role(targetRole); ok {
		e.roleBonus(t, lower, role)
	} else {
		e.generalBonus(t, lower)
	}

	if len(f.SkillCategories) > 0 {
		switch n := len(f.NonEmptySkillCategories()); {
		case n >= 4:
			t.add(3, "skills.diversity_excellent", nil)
		case n >= 3:
			t.add(2, "skills.diversity_good", nil)
		case n >= 2:
			t.add(1, "skills.diversity_moderate", nil)
		}
	}
	return t
}

func (e *Engine) roleBonus(t *tally, lower string, role types.RoleProfile) {
	limits := e.cat.Limits
	name := e.cat.DisplayName(role.Key)

	core := catalog.Matched(lower, role.CoreSkills)
	frameworks := catalog.Matched(lower, role.Frameworks)
	methods := catalog.Matched(lower, role.Methodologies)

	t.points += math.Min(15, float64(len(core))*2)
	if len(core) > 0 {
		t.note("skills.role_core", narrative.Vars{"Role": name, "Skills": catalog.JoinFirst(core, limits.MatchedCoreDetail)})
	}

	t.points += math.Min(8, float64(len(frameworks))*1.5)
	if len(frameworks) > 0 {
		t.note("skills.role_frameworks", narrative.Vars{"Skills": catalog.JoinFirst(frameworks, limits.MatchedFrameworkDetail)})
	}

	t.points += math.Min(5, float64(len(methods)))
	if len(methods) > 0 {
		t.note("skills.role_methodologies", narrative.Vars{"Skills": catalog.JoinFirst(methods, limits.MatchedMethodDetail)})
	}

	if missing := catalog.Missing(lower, catalog.First(role.CoreSkills, limits.MissingCoreScan)); len(missing) > 0 {
		t.note("skills.role_missing", narrative.Vars{"Role": name, "Skills": catalog.JoinFirst(missing, limits.MissingCoreDetail)})
	}
}

func (e *Engine) generalBonus(t *tally, lower string) {
	programming := catalog.Matched(lower, e.cat.Keywords.GeneralProgramming)
	switch {
	case len(programming) >= 4:
		t.add(12, "skills.general_programming_strong", narrative.Vars{"Skills": catalog.JoinFirst(programming, 5)})
	case len(programming) >= 2:
		t.add(8, "skills.general_programming_basic", narrative.Vars{"Skills": strings.Join(programming, ", ")})
	}

	tools := catalog.Matched(lower, e.cat.Keywords.GeneralTools)
	switch {
	case len(tools) >= 3:
		t.add(8, "skills.general_tools_modern", narrative.Vars{"Skills": catalog.JoinFirst(tools, 4)})
	case len(tools) >= 1:
		t.add(4, "skills.general_tools_basic", narrative.Vars{"Skills": strings.Join(tools, ", ")})
	}
}

func (e *Engine) scoreExperience(f *types.FactModel) *tally {
	t := &tally{}

	years := narrative.Vars{"Years": strconv.Itoa(f.ExperienceYears)}
	switch {
	case f.ExperienceYears >= 5:
		t.add(10, "experience.years_extensive", years)
	case f.ExperienceYears >= 3:
		t.add(8, "experience.years_solid", years)
	case f.ExperienceYears >= 1:
		t.add(5, "experience.years_professional", years)
	case f.ExperienceYears > 0:
		t.add(2, "experience.years_limited", years)
	default:
		t.note("experience.years_missing", nil)
	}

	positions := narrative.Vars{"Count": strconv.Itoa(f.PositionCount)}
	switch {
	case f.PositionCount >= 3:
		t.add(4, "experience.positions_diverse", positions)
	case f.PositionCount >= 2:
		t.add(2, "experience.positions_multiple", positions)
	case f.PositionCount == 1:
		t.add(1, "experience.positions_single", nil)
	}

	switch {
	case f.ExperienceQuality >= 70:
		t.add(6, "experience.quality_high", nil)
	case f.ExperienceQuality >= 50:
		t.add(4, "experience.quality_good", nil)
	case f.ExperienceQuality >= 30:
		t.add(2, "experience.quality_basic", nil)
	default:
		t.note("experience.quality_poor", nil)
	}

	if f.HasLeadership {
		t.add(3, "experience.leadership", nil)
	}
	if f.ExperienceYears <= 2 && f.HasInternship {
		t.add(2, "experience.internship", nil)
	}
	return t
}

func (e *Engine) scoreAchievements(f *types.FactModel) *tally {
	t := &tally{}

	count := narrative.Vars{"Count": strconv.Itoa(f.QuantifiedAchievements)}
	switch {
	case f.QuantifiedAchievements >= 5:
		t.add(15, "achievements.count_excellent", count)
	case f.QuantifiedAchievements >= 3:
		t.add(10, "achievements.count_good", count)
	case f.QuantifiedAchievements >= 1:
		t.add(5, "achievements.count_some", count)
	default:
		t.note("achievements.count_none", nil)
	}

	switch {
	case f.AchievementDiversity >= 3:
		t.add(3, "achievements.diversity_high", nil)
	case f.AchievementDiversity >= 2:
		t.add(2, "achievements.diversity_multiple", nil)
	}

	strong := 0
	for _, ex := range catalog.First(f.AchievementExamples, 3) {
		if catalog.ContainsAny(strings.ToLower(ex), e.cat.Keywords.AchievementQualityMarkers) {
			strong++
		}
	}
	if strong >= 2 {
		t.add(2, "achievements.examples_quality", nil)
	}
	return t
}

func (e *Engine) scoreContent(f *types.FactModel) *tally {
	t := &tally{}

	words := narrative.Vars{"Count": strconv.Itoa(f.WordCount)}
	switch {
	case f.WordCount >= 400 && f.WordCount <= 800:
		t.add(4, "content.length_optimal", words)
	case f.WordCount >= 300 && f.WordCount <= 1000:
		t.add(3, "content.length_good", words)
	case f.WordCount < 300:
		t.note("content.length_short", words)
	default:
		t.note("content.length_long", words)
	}

	verbs := narrative.Vars{"Count": strconv.Itoa(f.ActionVerbCount)}
	switch {
	case f.ActionVerbCount >= 10:
		t.add(3, "content.verbs_excellent", verbs)
	case f.ActionVerbCount >= 6:
		t.add(2, "content.verbs_good", verbs)
	case f.ActionVerbCount >= 3:
		t.add(1, "content.verbs_limited", verbs)
	default:
		t.note("content.verbs_few", nil)
	}

	switch {
	case f.SectionHeaders >= 4:
		t.add(2, "content.structure_good", nil)
	case f.SectionHeaders >= 2:
		t.add(1, "content.structure_basic", nil)
	}

	if f.HasEducation {
		t.add(1, "content.education", nil)
	}
	return t
}

func percentage(score, maximum int) float64 {
	if maximum == 0 {
		return 0
	}
	return float64(score) / float64(maximum) * 100
}
