// Package findings derives qualitative strengths and prioritized weaknesses
// from a fact model.
package findings

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/narrative"
	"github.com/jonathan/resume-ats/internal/types"
)

// priorities maps each weakness indicator to its fix priority.
var priorities = map[string]types.Priority{
	"contact.email_missing":     types.PriorityCritical,
	"contact.phone_missing":     types.PriorityHigh,
	"technical.skills_limited":  types.PriorityHigh,
	"technical.section_missing": types.PriorityCritical,
	"technical.role_gaps":       types.PriorityHigh,
	"technical.depth_low":       types.PriorityMedium,
	"experience.none":           types.PriorityHigh,
	"experience.quality_poor":   types.PriorityHigh,
	"experience.projects":       types.PriorityMedium,
	"achievements.none":         types.PriorityHigh,
	"achievements.single":       types.PriorityMedium,
	"structure.too_short":       types.PriorityMedium,
	"structure.too_long":        types.PriorityMedium,
	"structure.verbs":           types.PriorityMedium,
}

// Thresholds shared by several rules.
const (
	roleAlignmentRatio   = 0.7
	roleGapScan          = 6
	minRoleGaps          = 3
	roleEvidenceSkills   = 5
	diversityCategories  = 4
	optimalMinWords      = 400
	optimalMaxWords      = 800
	shortResumeWords     = 300
	longResumeWords      = 1200
	strongActionVerbs    = 8
	weakActionVerbs      = 4
	limitedSkills        = 6
	shallowTechnicalTerm = 3
)

// Analyzer produces findings against a catalog. It is safe for concurrent use.
type Analyzer struct {
	cat *catalog.Catalog
}

// NewAnalyzer creates an analyzer over cat.
func NewAnalyzer(cat *catalog.Catalog) *Analyzer {
	return &Analyzer{cat: cat}
}

// Analyze returns strengths in experience, technical, achievements, content,
// presentation order and weaknesses in contact, technical, experience,
// achievements, structure order. Both slices are non-nil.
func (a *Analyzer) Analyze(text string, facts *types.FactModel, targetRole string) ([]types.Strength, []types.Weakness) {
	lower := strings.ToLower(text)
	role, hasRole := a.resolveRole(targetRole)

	strengths := []types.Strength{}
	strengths = append(strengths, experienceStrengths(facts)...)
	strengths = append(strengths, a.technicalStrengths(lower, facts, role, hasRole)...)
	strengths = append(strengths, achievementStrengths(facts)...)
	strengths = append(strengths, contentStrengths(facts)...)
	strengths = append(strengths, presentationStrengths(facts)...)

	weaknesses := []types.Weakness{}
	weaknesses = append(weaknesses, contactWeaknesses(facts)...)
	weaknesses = append(weaknesses, a.technicalWeaknesses(lower, facts, role, hasRole)...)
	weaknesses = append(weaknesses, experienceWeaknesses(facts)...)
	weaknesses = append(weaknesses, achievementWeaknesses(facts)...)
	weaknesses = append(weaknesses, structureWeaknesses(facts)...)

	return strengths, weaknesses
}

func (a *Analyzer) resolveRole(targetRole string) (types.RoleProfile, bool) {
	if strings.TrimSpace(targetRole) == "" {
		return types.RoleProfile{}, false
	}
	return a.cat.Role(targetRole)
}

func newStrength(category, id string, data narrative.Vars) types.Strength {
	prefix := category + "." + id + "."
	get := func(field string) string {
		return narrative.Render(narrative.StrengthsFile, prefix+field, data)
	}
	return types.Strength{
		Category:             category,
		Title:                get("strength"),
		WhyItMatters:         get("why"),
		ATSBenefit:           get("ats_benefit"),
		CompetitiveAdvantage: get("advantage"),
		Evidence:             get("evidence"),
	}
}

func newWeakness(category, id string, data narrative.Vars) types.Weakness {
	key := category + "." + id
	get := func(field string) string {
		return narrative.Render(narrative.WeaknessesFile, key+"."+field, data)
	}
	return types.Weakness{
		Category:       category,
		Title:          get("weakness"),
		WhyProblematic: get("why"),
		ATSImpact:      get("ats_impact"),
		HowItHurts:     get("how_it_hurts"),
		FixPriority:    priorities[key],
		PriorityNote:   get("priority_note"),
		SpecificFix:    get("fix"),
		Timeline:       get("timeline"),
	}
}

func count(n int) narrative.Vars {
	return narrative.Vars{"Count": strconv.Itoa(n)}
}

func experienceStrengths(f *types.FactModel) []types.Strength {
	var out []types.Strength
	years := narrative.Vars{"Years": strconv.Itoa(f.ExperienceYears)}

	switch {
	case f.ExperienceYears >= 5:
		out = append(out, newStrength(types.FindingExperience, "years_extensive", years))
	case f.ExperienceYears >= 3:
		out = append(out, newStrength(types.FindingExperience, "years_solid", years))
	case f.ExperienceYears >= 1:
		out = append(out, newStrength(types.FindingExperience, "years_relevant", years))
	}

	quality := narrative.Vars{"Quality": strconv.Itoa(f.ExperienceQuality)}
	switch {
	case f.ExperienceQuality >= 70:
		out = append(out, newStrength(types.FindingExperience, "quality_exceptional", quality))
	case f.ExperienceQuality >= 50:
		out = append(out, newStrength(types.FindingExperience, "quality_good", quality))
	}

	if f.HasLeadership {
		out = append(out, newStrength(types.FindingExperience, "leadership", nil))
	}
	if f.PositionCount >= 3 {
		out = append(out, newStrength(types.FindingExperience, "positions", count(f.PositionCount)))
	}
	return out
}

func (a *Analyzer) technicalStrengths(lower string, f *types.FactModel, role types.RoleProfile, hasRole bool) []types.Strength {
	var out []types.Strength

	switch {
	case f.SkillsCount >= 15:
		out = append(out, newStrength(types.FindingTechnical, "skills_extensive", count(f.SkillsCount)))
	case f.SkillsCount >= 10:
		out = append(out, newStrength(types.FindingTechnical, "skills_strong", count(f.SkillsCount)))
	}

	switch {
	case f.TechnicalDepthScore >= 10:
		out = append(out, newStrength(types.FindingTechnical, "depth_advanced", count(f.TechnicalDepthScore)))
	case f.TechnicalDepthScore >= 5:
		out = append(out, newStrength(types.FindingTechnical, "depth_good", count(f.TechnicalDepthScore)))
	}

	if hasRole {
		matched := catalog.Matched(lower, role.CoreSkills)
		if float64(len(matched)) >= float64(len(role.CoreSkills))*roleAlignmentRatio {
			out = append(out, newStrength(types.FindingTechnical, "role_alignment", narrative.Vars{
				"Role":    a.cat.DisplayName(role.Key),
				"Matched": strconv.Itoa(len(matched)),
				"Total":   strconv.Itoa(len(role.CoreSkills)),
				"Skills":  catalog.JoinFirst(matched, roleEvidenceSkills),
			}))
		}
	}

	if cats := f.NonEmptySkillCategories(); len(cats) >= diversityCategories {
		out = append(out, newStrength(types.FindingTechnical, "diversity", narrative.Vars{
			"Count":      strconv.Itoa(len(cats)),
			"Categories": catalog.JoinFirst(cats, diversityCategories),
		}))
	}
	return out
}

func achievementStrengths(f *types.FactModel) []types.Strength {
	var out []types.Strength

	switch {
	case f.QuantifiedAchievements >= 4:
		out = append(out, newStrength(types.FindingAchievements, "count_exceptional", count(f.QuantifiedAchievements)))
	case f.QuantifiedAchievements >= 2:
		out = append(out, newStrength(types.FindingAchievements, "count_good", count(f.QuantifiedAchievements)))
	}

	if f.AchievementDiversity >= 3 {
		out = append(out, newStrength(types.FindingAchievements, "diversity", count(f.AchievementDiversity)))
	}
	return out
}

func contentStrengths(f *types.FactModel) []types.Strength {
	var out []types.Strength
	if f.WordCount >= optimalMinWords && f.WordCount <= optimalMaxWords {
		out = append(out, newStrength(types.FindingContent, "length_optimal", count(f.WordCount)))
	}
	if f.ActionVerbCount >= strongActionVerbs {
		out = append(out, newStrength(types.FindingContent, "action_verbs", count(f.ActionVerbCount)))
	}
	return out
}

func presentationStrengths(f *types.FactModel) []types.Strength {
	var out []types.Strength
	if f.HasEmail() && f.HasPhone() {
		out = append(out, newStrength(types.FindingPresentation, "contact", nil))
	}
	if f.HasEducation && f.EducationMentionCount >= 3 {
		out = append(out, newStrength(types.FindingPresentation, "education", count(f.EducationMentionCount)))
	}
	return out
}

func contactWeaknesses(f *types.FactModel) []types.Weakness {
	var out []types.Weakness
	if !f.HasEmail() {
		out = append(out, newWeakness(types.FindingContact, "email_missing", nil))
	}
	if !f.HasPhone() {
		out = append(out, newWeakness(types.FindingContact, "phone_missing", nil))
	}
	return out
}

func (a *Analyzer) technicalWeaknesses(lower string, f *types.FactModel, role types.RoleProfile, hasRole bool) []types.Weakness {
	var out []types.Weakness

	if f.SkillsCount < limitedSkills {
		out = append(out, newWeakness(types.FindingTechnical, "skills_limited", count(f.SkillsCount)))
	}
	if f.SkillsText == "" {
		out = append(out, newWeakness(types.FindingTechnical, "section_missing", nil))
	}

	if hasRole {
		missing := catalog.Missing(lower, catalog.First(role.CoreSkills, roleGapScan))
		if len(missing) >= minRoleGaps {
			out = append(out, newWeakness(types.FindingTechnical, "role_gaps", narrative.Vars{
				"Role":   a.cat.DisplayName(role.Key),
				"Skills": catalog.JoinFirst(missing, a.cat.Limits.MissingCoreDetail),
			}))
		}
	}

	if f.TechnicalDepthScore < shallowTechnicalTerm {
		out = append(out, newWeakness(types.FindingTechnical, "depth_low", nil))
	}
	return out
}

func experienceWeaknesses(f *types.FactModel) []types.Weakness {
	var out []types.Weakness
	if f.ExperienceYears == 0 {
		out = append(out, newWeakness(types.FindingExperience, "none", nil))
	}
	if f.ExperienceQuality < 30 {
		out = append(out, newWeakness(types.FindingExperience, "quality_poor", nil))
	}
	if f.ProjectCount < 2 {
		out = append(out, newWeakness(types.FindingExperience, "projects", count(f.ProjectCount)))
	}
	return out
}

func achievementWeaknesses(f *types.FactModel) []types.Weakness {
	switch f.QuantifiedAchievements {
	case 0:
		return []types.Weakness{newWeakness(types.FindingAchievements, "none", nil)}
	case 1:
		return []types.Weakness{newWeakness(types.FindingAchievements, "single", nil)}
	}
	return nil
}

func structureWeaknesses(f *types.FactModel) []types.Weakness {
	var out []types.Weakness
	switch {
	case f.WordCount < shortResumeWords:
		out = append(out, newWeakness(types.FindingStructure, "too_short", count(f.WordCount)))
	case f.WordCount > longResumeWords:
		out = append(out, newWeakness(types.FindingStructure, "too_long", count(f.WordCount)))
	}
	if f.ActionVerbCount < weakActionVerbs {
		out = append(out, newWeakness(types.FindingStructure, "verbs", count(f.ActionVerbCount)))
	}
	return out
}
