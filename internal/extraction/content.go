package extraction

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

func (e *Extractor) extractContentQuality(text string, f *types.FactModel) {
	f.WordCount = len(strings.Fields(text))
	f.SentenceCount = len(e.re.SentenceSplit.Split(text, -1))
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			f.ParagraphCount++
		}
	}
	if f.SentenceCount > 0 {
		f.AvgWordsPerSentence = float64(f.WordCount) / float64(f.SentenceCount)
	}

	f.ActionVerbCount = countContained(strings.ToLower(text), e.cat.Keywords.ActionVerbs)
	if f.WordCount > 0 {
		f.ActionVerbDensity = float64(f.ActionVerbCount) / float64(f.WordCount)
	}

	f.SectionHeaders = len(e.re.SectionHeader.FindAllStringIndex(text, -1))
	f.StructureScore = min(f.SectionHeaders*2, 10)
}

func summarize(f *types.FactModel) types.AnalysisSummary {
	return types.AnalysisSummary{
		TotalDataPoints: countTrue(
			f.HasEmail(),
			f.HasPhone(),
			f.SkillsText != "",
			f.SkillsCount > 0,
			f.ExperienceYears > 0,
			f.PositionCount > 0,
			f.ExperienceQuality > 0,
			f.ProjectCount > 0,
			f.GitHubMentions > 0,
			f.LiveDemoMentions > 0,
			f.HasEducation,
			f.HasGPA,
			f.QuantifiedAchievements > 0,
			f.TechnicalDepthScore > 0,
			f.WordCount > 0,
			f.ActionVerbCount > 0,
			f.SectionHeaders > 0,
		),
		CompletenessScore: percentMet(
			f.HasEmail(),
			f.SkillsText != "",
			f.ExperienceYears > 0,
			f.ProjectCount > 0,
		),
		TechnicalReadiness: percentMet(
			f.SkillsCount >= 8,
			f.TechnicalDepthScore >= 5,
			f.ProjectCount >= 2,
			f.QuantifiedAchievements >= 1,
		),
		ProfessionalMaturity: percentMet(
			f.ExperienceYears >= 1,
			f.ActionVerbCount >= 5,
			f.HasEducation,
			f.QuantifiedAchievements >= 2,
		),
	}
}

func countTrue(checks ...bool) int {
	n := 0
	for _, ok := range checks {
		if ok {
			n++
		}
	}
	return n
}

func percentMet(checks ...bool) float64 {
	if len(checks) == 0 {
		return 0
	}
	return float64(countTrue(checks...)) / float64(len(checks)) * 100
}
