package extraction

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/types"
)

func (e *Extractor) extractAchievements(text string, f *types.FactModel) {
	classes := e.cat.Keywords.AchievementClasses
	for _, cls := range classes {
		f.AchievementCategories[cls.Name] = []string{}
	}

	var all []string
	for _, re := range e.re.Achievements {
		for _, m := range re.FindAllString(text, -1) {
			all = append(all, m)
			if name, ok := classifyAchievement(m, classes); ok {
				f.AchievementCategories[name] = append(f.AchievementCategories[name], m)
			}
		}
	}

	f.QuantifiedAchievements = len(all)
	f.AchievementExamples = append([]string{}, catalog.First(all, e.cat.Limits.MaxAchievementExamples)...)
	for _, cls := range classes {
		if len(f.AchievementCategories[cls.Name]) > 0 {
			f.AchievementDiversity++
		}
	}
}

// classifyAchievement returns the first class, in catalog order, with a
// keyword contained in the lowercased match.
func classifyAchievement(match string, classes []catalog.KeywordGroup) (string, bool) {
	lower := strings.ToLower(match)
	for _, cls := range classes {
		if catalog.ContainsAny(lower, cls.Keywords) {
			return cls.Name, true
		}
	}
	return "", false
}

func (e *Extractor) extractTechnicalDepth(text string, f *types.FactModel) {
	for _, fam := range e.re.TechnicalFamilies {
		n := len(fam.Re.FindAllStringIndex(text, -1))
		f.TechnicalCategories[fam.Name] = n
		f.TechnicalDepthScore += n
	}
	f.TechnicalSophistication = ClassifySophistication(f.TechnicalDepthScore)
}

// ClassifySophistication maps a technical depth total onto its band.
func ClassifySophistication(depth int) types.TechnicalSophistication {
	switch {
	case depth >= 15:
		return types.SophisticationAdvanced
	case depth >= 8:
		return types.SophisticationGood
	case depth >= 3:
		return types.SophisticationBasic
	default:
		return types.SophisticationLimited
	}
}
