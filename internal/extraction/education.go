package extraction

import (
	"github.com/jonathan/resume-ats/internal/types"
)

func (e *Extractor) extractEducation(text string, f *types.FactModel) {
	seen := make(map[string]bool)
	for _, re := range e.re.Education {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			f.EducationMentionCount++
			kw := group(m)
			if seen[kw] {
				continue
			}
			seen[kw] = true
			if len(f.EducationKeywords) < e.cat.Limits.MaxEducationKeywords {
				f.EducationKeywords = append(f.EducationKeywords, kw)
			}
		}
	}
	f.HasEducation = f.EducationMentionCount > 0

	if m := e.re.GPA.FindStringSubmatch(text); m != nil {
		gpa := group(m)
		f.HasGPA = true
		f.GPAValue = &gpa
	}
}
