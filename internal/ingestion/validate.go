package ingestion

import (
	"errors"
	"fmt"
	"strings"
)

// Content thresholds for a plausible résumé.
const (
	MinResumeChars      = 100
	MinResumeWords      = 100
	MaxResumeWords      = 2000
	MinResumeIndicators = 2
)

// resumeIndicators are words that suggest the text is a résumé.
var resumeIndicators = []string{
	"experience", "education", "skills", "work", "employment",
	"university", "college", "degree", "project", "internship",
	"software", "technical", "programming", "development",
}

// ErrNotResume is wrapped by ContentError for every rejected text
var ErrNotResume = errors.New("content rejected as a resume")

// ContentError reports why a text was rejected
type ContentError struct {
	Reason string
}

func (e *ContentError) Error() string {
	return e.Reason
}

func (e *ContentError) Unwrap() error {
	return ErrNotResume
}

// ValidationResult is the outcome of ValidateResumeContent. A valid result may
// still carry a warning message.
type ValidationResult struct {
	Valid      bool
	Message    string
	WordCount  int
	Indicators []string
}

// Err returns a *ContentError for invalid results and nil otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ContentError{Reason: r.Message}
}

// ValidateResumeContent checks length, résumé vocabulary and word count
func ValidateResumeContent(text string) ValidationResult {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < MinResumeChars {
		return ValidationResult{Message: "Document too short to be a comprehensive resume", Indicators: []string{}}
	}

	lower := strings.ToLower(text)
	found := []string{}
	for _, indicator := range resumeIndicators {
		if strings.Contains(lower, indicator) {
			found = append(found, indicator)
		}
	}

	words := len(strings.Fields(text))
	result := ValidationResult{WordCount: words, Indicators: found}

	switch {
	case len(found) < MinResumeIndicators:
		result.Message = fmt.Sprintf("Content may not be a resume. Found only %d resume indicators.", len(found))
	case words < MinResumeWords:
		result.Message = fmt.Sprintf("Resume too short (%d words). Professional resumes typically contain 200-1000 words.", words)
	case words > MaxResumeWords:
		result.Valid = true
		result.Message = fmt.Sprintf("Resume is quite long (%d words). Consider condensing for better ATS performance.", words)
	default:
		result.Valid = true
		result.Message = fmt.Sprintf("Resume validation successful. Document contains %d words.", words)
	}
	return result
}
