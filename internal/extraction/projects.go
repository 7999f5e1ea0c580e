package extraction

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/types"
)

const minProjectDescriptionLen = 10

func (e *Extractor) extractProjects(text string, f *types.FactModel) {
	f.GitHubMentions = len(e.re.GitHub.FindAllStringIndex(text, -1))
	for _, re := range e.re.Demos {
		f.LiveDemoMentions += len(re.FindAllStringIndex(text, -1))
	}

	section, ok := captureSection(e.re.Projects, text)
	if !ok {
		return
	}

	var (
		unique []string
		seen   = make(map[string]bool)
		total  int
		scored int
	)
	for _, re := range e.re.ProjectLines {
		for _, m := range re.FindAllStringSubmatch(section, -1) {
			desc := strings.TrimSpace(group(m))
			if utf8.RuneCountInString(desc) <= minProjectDescriptionLen {
				continue
			}
			// duplicates still count toward the quality average
			total += e.projectQuality(desc)
			scored++
			if !seen[desc] {
				seen[desc] = true
				unique = append(unique, desc)
			}
		}
	}

	f.ProjectCount = len(unique)
	f.ProjectDescriptions = append([]string{}, catalog.First(unique, e.cat.Limits.MaxProjects)...)
	if scored > 0 {
		f.AverageProjectQuality = float64(total) / float64(scored)
	}
}

func (e *Extractor) projectQuality(desc string) int {
	score := 0
	switch n := utf8.RuneCountInString(desc); {
	case n > 100:
		score += 20
	case n > 50:
		score += 10
	}

	lower := strings.ToLower(desc)
	kw := e.cat.Keywords.Project

	score += min(countContained(lower, kw.DetailVerbs)*5, 30)
	if catalog.ContainsAny(lower, kw.Technologies) {
		score += 20
	}
	if catalog.ContainsAny(lower, kw.Outcomes) {
		score += 15
	}
	if catalog.ContainsAny(lower, kw.Links) {
		score += 15
	}
	return min(score, 100)
}
