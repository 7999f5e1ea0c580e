package extraction

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/types"
)

func (e *Extractor) extractSkills(text string, f *types.FactModel) {
	var blocks []string
	for _, h := range e.re.SkillsHeadings {
		blocks = append(blocks, e.skillBlocks(h, text)...)
	}

	f.SkillsText = strings.Join(blocks, " ")
	f.SkillsWordCount = len(strings.Fields(f.SkillsText))
	if f.SkillsText == "" {
		return
	}

	var skills []string
	for _, token := range e.re.SkillsSplit.Split(f.SkillsText, -1) {
		if token = strings.TrimSpace(token); token != "" {
			skills = append(skills, token)
		}
	}
	f.SkillsCount = len(skills)
	f.IndividualSkills = append([]string{}, catalog.First(skills, e.cat.Limits.MaxSkills)...)
	f.SkillCategories = e.categorizeSkills(strings.ToLower(f.SkillsText))
}

// skillBlocks returns the captured text of every match of one heading. For
// block headings the capture extends over following non-blank lines until a
// line that opens another labelled list.
func (e *Extractor) skillBlocks(h catalog.HeadingRegex, text string) []string {
	var blocks []string
	for pos := 0; pos < len(text); {
		loc := h.Heading.FindStringSubmatchIndex(text[pos:])
		if loc == nil || loc[2] < 0 {
			break
		}
		start, end := pos+loc[2], pos+loc[3]
		if h.Continues {
			end += e.continuation(text[end:])
		}
		blocks = append(blocks, text[start:end])
		if end <= pos {
			end = pos + 1
		}
		pos = end
	}
	return blocks
}

// continuation returns the byte length of the block lines that follow a
// heading line. rest starts right after the heading's captured first line.
func (e *Extractor) continuation(rest string) int {
	n := 0
	for strings.HasPrefix(rest[n:], "\n") {
		line := rest[n+1:]
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if line == "" || e.re.SkillsBlockStop.MatchString(line) {
			break
		}
		n += 1 + len(line)
	}
	return n
}

// categorizeSkills buckets the catalog's category keywords found in the
// lowered skills text. Every category is present, possibly empty.
func (e *Extractor) categorizeSkills(lower string) map[string][]string {
	title := cases.Title(language.English)
	categories := make(map[string][]string, len(e.cat.Keywords.SkillCategories))
	for _, group := range e.cat.Keywords.SkillCategories {
		found := []string{}
		for _, kw := range group.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found = append(found, title.String(kw))
			}
		}
		categories[group.Name] = found
	}
	return categories
}
