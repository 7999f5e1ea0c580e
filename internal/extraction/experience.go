package extraction

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

const minSpanYear = 2000

// Experience quality sub-score weights and caps.
const (
	qualityVerbWeight        = 2
	qualityVerbCap           = 20
	qualityAchievementWeight = 5
	qualityAchievementCap    = 30
	qualityConceptWeight     = 3
	qualityConceptCap        = 25
	qualityLeadershipWeight  = 3
	qualityLeadershipCap     = 15
	qualityMax               = 100
)

func (e *Extractor) extractExperience(text string, f *types.FactModel) {
	section, ok := captureSection(e.re.Experience, text)
	if !ok {
		section = text
	}

	f.ExperienceYears = maxEstimate(
		e.yearRangeEstimate(section),
		e.statedEstimate(text),
		e.yearSpanEstimate(section),
	)
	f.ExperienceLevel = ClassifyLevel(f.ExperienceYears)

	for _, re := range e.re.Positions {
		f.PositionCount += len(re.FindAllStringIndex(section, -1))
	}
	f.HasInternship = e.re.Internship.MatchString(section)
	f.HasLeadership = e.re.Leadership.MatchString(section)
	f.ExperienceQuality = e.experienceQuality(section)
}

// maxEstimate returns the largest of the estimates, never below zero.
func maxEstimate(estimates ...int) int {
	best := 0
	for _, v := range estimates {
		if v > best {
			best = v
		}
	}
	return best
}

// yearRangeEstimate is the longest "YYYY - YYYY|present|current" range.
func (e *Extractor) yearRangeEstimate(section string) int {
	best := 0
	for _, m := range e.re.YearRange.FindAllStringSubmatch(strings.ToLower(section), -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := e.currentYear
		if m[2] != "present" && m[2] != "current" {
			if end, err = strconv.Atoi(m[2]); err != nil {
				continue
			}
		}
		if span := end - start; span >= 0 && span > best {
			best = span
		}
	}
	return best
}

// statedEstimate reads an explicit "N years of experience" statement.
func (e *Extractor) statedEstimate(text string) int {
	m := e.re.StatedYears.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// yearSpanEstimate is the distance between the earliest and latest plausible
// years mentioned. It needs at least two year tokens.
func (e *Extractor) yearSpanEstimate(section string) int {
	matches := e.re.SpanYear.FindAllStringSubmatch(section, -1)
	if len(matches) < 2 {
		return 0
	}

	lo, hi := 0, 0
	for _, m := range matches {
		y, err := strconv.Atoi(group(m))
		if err != nil || y < minSpanYear || y > e.currentYear {
			continue
		}
		if lo == 0 || y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if lo == 0 {
		return 0
	}
	return hi - lo
}

// ClassifyLevel maps experience years onto the five experience bands.
func ClassifyLevel(years int) types.ExperienceLevel {
	switch {
	case years <= 0:
		return types.LevelEntry
	case years <= 2:
		return types.LevelJunior
	case years <= 5:
		return types.LevelMid
	case years <= 10:
		return types.LevelSenior
	default:
		return types.LevelExpert
	}
}

func (e *Extractor) experienceQuality(section string) int {
	if strings.TrimSpace(section) == "" {
		return 0
	}
	lower := strings.ToLower(section)

	verbs := countContained(lower, e.cat.Keywords.ActionVerbs) * qualityVerbWeight

	achievements := 0
	for _, re := range e.re.Achievements {
		achievements += len(re.FindAllStringIndex(section, -1))
	}

	concepts := 0
	for _, re := range e.re.ExperienceConcepts {
		concepts += len(re.FindAllStringIndex(section, -1))
	}

	leadership := countContained(lower, e.cat.Keywords.LeadershipVerbs) * qualityLeadershipWeight

	total := min(verbs, qualityVerbCap) +
		min(achievements*qualityAchievementWeight, qualityAchievementCap) +
		min(concepts*qualityConceptWeight, qualityConceptCap) +
		min(leadership, qualityLeadershipCap)
	return min(total, qualityMax)
}
