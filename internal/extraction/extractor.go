// Package extraction turns raw résumé text into a FactModel using the regex
// tables and keyword lists of a catalog.
package extraction

import (
	"errors"
	"strings"
	"time"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/types"
)

// ErrEmptyInput is returned when the text has no extractable content.
// The accompanying FactModel is empty rather than nil.
var ErrEmptyInput = errors.New("no text provided for extraction")

// Extractor builds fact models. It holds only immutable state and is safe for
// concurrent use.
type Extractor struct {
	cat         *catalog.Catalog
	re          *catalog.Regexes
	currentYear int
}

// Option configures an Extractor
type Option func(*Extractor)

// WithCurrentYear fixes the year used for "present" ranges and the year-span
// estimator. Without it the wall-clock year at construction is used.
func WithCurrentYear(year int) Option {
	return func(e *Extractor) {
		e.currentYear = year
	}
}

// New creates an Extractor over cat.
func New(cat *catalog.Catalog, opts ...Option) *Extractor {
	e := &Extractor{
		cat:         cat,
		re:          cat.Regexes,
		currentYear: time.Now().Year(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CurrentYear returns the reference year used by the extractor.
func (e *Extractor) CurrentYear() int {
	return e.currentYear
}

// Extract parses text into a FactModel. Empty or whitespace-only text yields
// an empty model together with ErrEmptyInput; nothing else is an error.
func (e *Extractor) Extract(text string) (*types.FactModel, error) {
	if strings.TrimSpace(text) == "" {
		return types.NewFactModel(), ErrEmptyInput
	}

	f := types.NewFactModel()
	e.extractContact(text, f)
	e.extractSkills(text, f)
	e.extractExperience(text, f)
	e.extractProjects(text, f)
	e.extractEducation(text, f)
	e.extractAchievements(text, f)
	e.extractTechnicalDepth(text, f)
	e.extractContentQuality(text, f)
	f.AnalysisSummary = summarize(f)

	return f, nil
}

// captureSection returns the text between the first heading match and the
// first stop match after it, or the rest of the text when no stop follows.
func captureSection(s catalog.SectionRegex, text string) (string, bool) {
	loc := s.Heading.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	rest := text[loc[1]:]
	if stop := s.Stop.FindStringIndex(rest); stop != nil {
		rest = rest[:stop[0]]
	}
	return rest, true
}

// countContained counts the keywords that occur at least once in lower.
func countContained(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}

// group returns the first capture group of a submatch, or the whole match
// when the pattern has no groups.
func group(m []string) string {
	if len(m) > 1 {
		return m[1]
	}
	return m[0]
}
