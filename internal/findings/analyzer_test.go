package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/types"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return NewAnalyzer(catalog.MustDefault())
}

func strPtr(s string) *string {
	return &s
}

func strongFacts() *types.FactModel {
	f := types.NewFactModel()
	f.Email = strPtr("jane@example.com")
	f.Phone = strPtr("5551234567")
	f.SkillsText = "Python, Java, React, MySQL, Docker"
	f.SkillsCount = 15
	f.SkillCategories = map[string][]string{
		types.SkillProgrammingLanguages: {"Python", "Java"},
		types.SkillFrameworksLibraries:  {"React"},
		types.SkillDatabases:            {"Mysql"},
		types.SkillToolsPlatforms:       {"Docker"},
		types.SkillMethodologies:        {},
	}
	f.ExperienceYears = 6
	f.ExperienceQuality = 75
	f.HasLeadership = true
	f.PositionCount = 3
	f.ProjectCount = 3
	f.TechnicalDepthScore = 12
	f.QuantifiedAchievements = 6
	f.AchievementDiversity = 3
	f.WordCount = 500
	f.ActionVerbCount = 10
	f.HasEducation = true
	f.EducationMentionCount = 3
	return f
}

func titles[T any](items []T, title func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, title(it))
	}
	return out
}

func strengthTitles(s []types.Strength) []string {
	return titles(s, func(x types.Strength) string { return x.Title })
}

func weaknessTitles(w []types.Weakness) []string {
	return titles(w, func(x types.Weakness) string { return x.Title })
}

func TestAnalyze_EmptyFacts(t *testing.T) {
	a := newTestAnalyzer(t)

	strengths, weaknesses := a.Analyze("", types.NewFactModel(), "")
	require.NotNil(t, strengths)
	assert.Empty(t, strengths)

	require.Len(t, weaknesses, 11)
	first := weaknesses[0]
	assert.Equal(t, types.FindingContact, first.Category)
	assert.Equal(t, "Missing Professional Email Address", first.Title)
	assert.Equal(t, types.PriorityCritical, first.FixPriority)
	assert.Equal(t, "Must be fixed immediately before any job applications", first.PriorityNote)

	assert.Equal(t, types.PriorityHigh, weaknesses[1].FixPriority)

	var categories []string
	for _, w := range weaknesses {
		if len(categories) == 0 || categories[len(categories)-1] != w.Category {
			categories = append(categories, w.Category)
		}
	}
	assert.Equal(t, []string{
		types.FindingContact,
		types.FindingTechnical,
		types.FindingExperience,
		types.FindingAchievements,
		types.FindingStructure,
	}, categories)

	assert.Contains(t, weaknessTitles(weaknesses), "Resume Too Brief (0 words)")
	assert.Contains(t, weaknessTitles(weaknesses), "No Dedicated Technical Skills Section")
}

func TestAnalyze_StrongFacts(t *testing.T) {
	a := newTestAnalyzer(t)

	strengths, weaknesses := a.Analyze("", strongFacts(), "")
	assert.Empty(t, weaknesses)

	assert.Equal(t, []string{
		"Extensive Professional Experience (6 years)",
		"Exceptionally Well-Crafted Experience Descriptions",
		"Demonstrated Leadership Experience",
		"Diverse Professional Background (3 positions)",
		"Extensive Technical Skill Portfolio (15 skills)",
		"Advanced Technical Communication and Depth",
		"Excellent Technical Skill Diversity",
		"Exceptional Quantified Impact Documentation (6 metrics)",
		"Diverse Impact Across Multiple Business Areas",
		"Optimal Resume Length and Detail (500 words)",
		"Dynamic Professional Language (10 action verbs)",
		"Complete Professional Contact Information",
		"Strong Educational Foundation and Presentation",
	}, strengthTitles(strengths))

	diversity := strengths[6]
	assert.Equal(t, types.FindingTechnical, diversity.Category)
	assert.Equal(t,
		"Technical skills cover 4 major categories: programming_languages, frameworks_libraries, databases, tools_platforms",
		diversity.Evidence)
	assert.Equal(t,
		"Experience descriptions score 75/100 for quality, showing strong professional writing",
		strengths[1].Evidence)
}

func TestAnalyze_ExperienceTiers(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		years int
		want  string
	}{
		{10, "Extensive Professional Experience (10 years)"},
		{5, "Extensive Professional Experience (5 years)"},
		{4, "Solid Professional Background (4 years)"},
		{3, "Solid Professional Background (3 years)"},
		{1, "Relevant Professional Experience (1 years)"},
	}

	for _, tt := range tests {
		f := types.NewFactModel()
		f.ExperienceYears = tt.years
		strengths, _ := a.Analyze("", f, "")
		require.NotEmpty(t, strengths, "years=%d", tt.years)
		assert.Equal(t, tt.want, strengths[0].Title, "years=%d", tt.years)
	}
}

func TestAnalyze_RoleAlignment(t *testing.T) {
	a := newTestAnalyzer(t)

	strengths, weaknesses := a.Analyze("python java javascript c++ sql git", types.NewFactModel(), "software_developer")

	var aligned *types.Strength
	for i := range strengths {
		if strengths[i].Title == "Strong Software Developer Technical Alignment" {
			aligned = &strengths[i]
		}
	}
	require.NotNil(t, aligned)
	assert.Equal(t,
		"Resume matches 6 out of 8 core Software Developer skills: Python, Java, JavaScript, C++, SQL",
		aligned.Evidence)
	assert.NotContains(t, weaknessTitles(weaknesses), "Missing Critical Software Developer Technical Skills")
}

func TestAnalyze_RoleGaps(t *testing.T) {
	a := newTestAnalyzer(t)

	_, weaknesses := a.Analyze("python", types.NewFactModel(), "Software Developer")

	var gap *types.Weakness
	for i := range weaknesses {
		if weaknesses[i].Title == "Missing Critical Software Developer Technical Skills" {
			gap = &weaknesses[i]
		}
	}
	require.NotNil(t, gap)
	assert.Equal(t, types.PriorityHigh, gap.FixPriority)
	assert.Equal(t, "Add these critical Software Developer skills: Java, JavaScript, C++, SQL", gap.SpecificFix)
	assert.Equal(t, "Essential for Software Developer role targeting", gap.PriorityNote)
}

func TestAnalyze_UnknownRoleHasNoRoleFindings(t *testing.T) {
	a := newTestAnalyzer(t)

	strengths, weaknesses := a.Analyze("python", types.NewFactModel(), "astronaut")
	for _, s := range strengths {
		assert.NotContains(t, s.Title, "Alignment")
	}
	for _, w := range weaknesses {
		assert.NotContains(t, w.Title, "Missing Critical")
	}
}

func TestAnalyze_AchievementAndLengthBoundaries(t *testing.T) {
	a := newTestAnalyzer(t)

	f := types.NewFactModel()
	f.QuantifiedAchievements = 1
	f.WordCount = 1300
	_, weaknesses := a.Analyze("", f, "")
	got := weaknessTitles(weaknesses)
	assert.Contains(t, got, "Insufficient Quantified Achievement Documentation")
	assert.Contains(t, got, "Resume Excessively Long (1300 words)")
	assert.NotContains(t, got, "No Quantified Achievements or Impact Metrics")

	f.WordCount = 1000
	_, weaknesses = a.Analyze("", f, "")
	for _, w := range weaknesses {
		assert.NotContains(t, w.Title, "words)")
	}
}

func TestAnalyze_EveryWeaknessHasPriority(t *testing.T) {
	a := newTestAnalyzer(t)

	_, weaknesses := a.Analyze("python", types.NewFactModel(), "software_developer")
	for _, w := range weaknesses {
		assert.NotEmpty(t, w.FixPriority, w.Title)
		assert.NotEmpty(t, w.SpecificFix, w.Title)
		assert.NotEmpty(t, w.Timeline, w.Title)
		assert.NotContains(t, w.Title, "{{")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)

	s1, w1 := a.Analyze("python java", strongFacts(), "data_scientist")
	s2, w2 := a.Analyze("python java", strongFacts(), "data_scientist")
	assert.Equal(t, s1, s2)
	assert.Equal(t, w1, w2)
}
