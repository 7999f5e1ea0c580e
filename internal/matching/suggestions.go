package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/narrative"
	"github.com/jonathan/resume-ats/internal/types"
)

// List cuts used by the development plan and keyword guidance.
const (
	actionSkills       = 2
	planSkills         = 2
	enhancementFrom    = 2
	enhancementTo      = 4
	strengthenKeywords = 5
	stageArrow         = " → "
)

type fitBand struct {
	min   float64
	level types.FitLevel
	key   string
}

var fitBands = []fitBand{
	{80, types.FitExcellent, "excellent"},
	{65, types.FitVeryGood, "very_good"},
	{50, types.FitGood, "good"},
	{35, types.FitPotential, "potential"},
	{0, types.FitLimited, "limited"},
}

func render(key string, data narrative.Vars) string {
	return narrative.Render(narrative.MatchingFile, key, data)
}

func phrase(key string) string {
	return narrative.MustGet(narrative.MatchingFile, key)
}

// FitLevel bands a compatibility percentage.
func FitLevel(score float64) types.FitLevel {
	return fitFor(score).level
}

func fitFor(score float64) fitBand {
	for _, b := range fitBands {
		if score >= b.min {
			return b
		}
	}
	return fitBands[len(fitBands)-1]
}

// roundScore rounds a percentage to one decimal place.
func roundScore(score float64) float64 {
	return math.Round(score*10) / 10
}

func (m *Matcher) suggest(c types.RoleCompatibility, f *types.FactModel) types.RoleSuggestion {
	fit := fitFor(c.Score)
	n := m.cat.Narrative(c.RoleKey)
	r, _ := m.cat.Role(c.RoleKey)
	limits := m.cat.Limits

	return types.RoleSuggestion{
		RoleKey:            c.RoleKey,
		Role:               c.Role,
		CompatibilityScore: roundScore(c.Score),
		FitLevel:           fit.level,
		FitExplanation:     phrase("fit." + fit.key + ".explanation"),
		ReadinessTimeline:  phrase("fit." + fit.key + ".timeline"),
		TechnicalAlignment: types.TechnicalAlignment{
			CoreSkillsMatched:    c.MatchedCoreSkills,
			FrameworksMatched:    c.MatchedFrameworks,
			MethodologiesMatched: c.MatchedMethodologies,
			PlatformsMatched:     c.MatchedPlatforms,
			SkillGaps: types.SkillGaps{
				Critical:   catalog.First(c.MissingCoreSkills, limits.CriticalGaps),
				Important:  catalog.First(c.MissingFrameworks, limits.ImportantGaps),
				Beneficial: catalog.Slice(c.MissingCoreSkills, limits.BeneficialGapsFrom, limits.BeneficialGapsTo),
			},
		},
		RoleDetails: types.RoleDetails{
			DailyResponsibilities: nonNil(r.DailyTasks),
			RequiredTechStack:     m.cat.TechStack(c.RoleKey),
			TypicalProjects:       nonNil(n.TypicalProjects),
			CareerProgression:     progression(n, f.ExperienceYears),
		},
		Seniority:      Seniority(f.ExperienceYears, c.Score),
		MarketInsights: marketInsights(n, c.Score),
		DevelopmentPlan: types.DevelopmentPlan{
			ImmediateActions:   immediateActions(c),
			SkillPriority:      skillPlan(c),
			LearningResources:  nonNil(n.LearningResources),
			NetworkingStrategy: n.NetworkingStrategy,
		},
		ApplicationStrategy: types.ApplicationStrategy{
			KeywordOptimization:      keywordStrategy(c, limits.CriticalGaps),
			ResumeCustomization:      customization(c.Role),
			PortfolioRecommendations: n.PortfolioTip,
			InterviewPreparation:     n.InterviewTip,
		},
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// CareerStage picks the ladder rung for a number of experience years.
func CareerStage(years int, stages []string) string {
	var i int
	switch {
	case years <= 0:
		i = 0
	case years <= 2:
		i = 1
	case years <= 5:
		i = 2
	case years <= 8:
		i = 3
	default:
		i = 4
	}
	if i >= len(stages) {
		return ""
	}
	return stages[i]
}

func progression(n types.RoleNarrative, years int) types.CareerProgression {
	if n.CareerLadder == nil {
		return types.CareerProgression{}
	}
	ladder := n.CareerLadder
	return types.CareerProgression{
		Path:          strings.Join(ladder.Stages, stageArrow),
		CurrentStage:  ladder.StagePrefix + CareerStage(years, ladder.Stages),
		NextMilestone: ladder.NextMilestone,
	}
}

// Seniority estimates the level a candidate can target from experience years,
// with a competency note driven by the compatibility score.
func Seniority(years int, score float64) types.SeniorityAnalysis {
	var (
		level      string
		multiplier float64
	)
	switch {
	case years >= 8:
		level, multiplier = "senior_lead", 1.3
	case years >= 5:
		level, multiplier = "senior", 1.2
	case years >= 3:
		level, multiplier = "mid", 1.0
	case years >= 1:
		level, multiplier = "junior", 0.8
	default:
		level, multiplier = "entry", 0.7
	}

	var competency string
	switch {
	case score >= 80:
		competency = "high"
	case score >= 65:
		competency = "good"
	case score < 50:
		competency = "limited"
	default:
		competency = "appropriate"
	}

	return types.SeniorityAnalysis{
		SuggestedLevel:       phrase("seniority.level." + level),
		CompetencyAssessment: phrase("seniority.competency." + competency),
		SalaryMultiplier:     multiplier,
		SalaryExpectation:    render("seniority.salary", narrative.Vars{"Multiplier": fmt.Sprintf("%.1f", multiplier)}),
		AdvancementPotential: advancement(years, score),
	}
}

func advancement(years int, score float64) string {
	switch {
	case years >= 8 && score >= 80:
		return phrase("advancement.excellent")
	case years >= 5 && score >= 70:
		return phrase("advancement.strong")
	case years >= 3 && score >= 60:
		return phrase("advancement.good")
	case years >= 1 && score >= 50:
		return phrase("advancement.moderate")
	default:
		return phrase("advancement.limited")
	}
}

func marketInsights(n types.RoleNarrative, score float64) types.RoleMarketInsights {
	out := types.RoleMarketInsights{
		KeyEmployers:         []string{},
		TrendingTechnologies: []string{},
	}
	if n.Insights != nil {
		out.GrowthOutlook = n.Insights.GrowthOutlook
		out.SalaryRange = n.Insights.SalaryRange
		out.KeyEmployers = nonNil(n.Insights.KeyCompanies)
		out.TrendingTechnologies = nonNil(n.Insights.TrendingSkills)
	}

	var key string
	switch {
	case score >= 70:
		key = "availability.strong"
	case score >= 50:
		key = "availability.good"
	default:
		key = "availability.limited"
	}
	out.JobAvailability = render(key, narrative.Vars{"Conditions": n.MarketConditions})
	return out
}

func immediateActions(c types.RoleCompatibility) []string {
	var actions []string
	role := narrative.Vars{"Role": c.Role}

	if missing := catalog.First(c.MissingCoreSkills, actionSkills); len(missing) > 0 {
		actions = append(actions, render("actions.priority", narrative.Vars{
			"Skills": strings.Join(missing, ", "),
			"Role":   c.Role,
		}))
	}
	if n := len(c.MatchedCoreSkills); n > 0 {
		actions = append(actions, render("actions.leverage", narrative.Vars{"Count": strconv.Itoa(n)}))
	}
	if missing := catalog.First(c.MissingFrameworks, actionSkills); len(missing) > 0 {
		actions = append(actions, render("actions.expand", narrative.Vars{"Skills": strings.Join(missing, ", ")}))
	}
	actions = append(actions, render("actions.optimize", role), phrase("actions.network"))
	return actions
}

func skillPlan(c types.RoleCompatibility) types.SkillPlan {
	item := func(tier string, skills []string) types.SkillPlanItem {
		return types.SkillPlanItem{
			Skills:   skills,
			Timeline: phrase("plan." + tier + ".timeline"),
			Reason:   phrase("plan." + tier + ".reason"),
		}
	}
	return types.SkillPlan{
		Critical:    item("critical", catalog.First(c.MissingCoreSkills, planSkills)),
		Important:   item("important", catalog.First(c.MissingFrameworks, planSkills)),
		Enhancement: item("enhancement", catalog.Slice(c.MissingCoreSkills, enhancementFrom, enhancementTo)),
	}
}

func keywordStrategy(c types.RoleCompatibility, missingCount int) types.KeywordStrategy {
	matched := make([]string, 0, len(c.MatchedCoreSkills)+len(c.MatchedFrameworks))
	matched = append(matched, c.MatchedCoreSkills...)
	matched = append(matched, c.MatchedFrameworks...)
	role := narrative.Vars{"Role": c.Role}

	return types.KeywordStrategy{
		StrengthenExisting: render("keywords.strengthen", narrative.Vars{"Skills": catalog.JoinFirst(matched, strengthenKeywords)}),
		AddMissing:         render("keywords.add", narrative.Vars{"Skills": catalog.JoinFirst(c.MissingCoreSkills, missingCount)}),
		ContextUsage:       render("keywords.context", role),
		DensityTarget:      render("keywords.density", role),
	}
}

func customization(role string) types.CustomizationTips {
	data := narrative.Vars{"Role": role}
	return types.CustomizationTips{
		TitleOptimization: render("customization.title", data),
		SkillsSection:     render("customization.skills", data),
		ExperienceFraming: render("customization.experience", data),
		ProjectSelection:  render("customization.projects", data),
	}
}
