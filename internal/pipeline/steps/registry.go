// Package steps provides step definitions and dependency validation for the
// résumé analysis pipeline.
package steps

import (
	"fmt"
	"sort"
	"sync"
)

// Step categories
const (
	CategoryIngestion  = "ingestion"
	CategoryExtraction = "extraction"
	CategoryAnalysis   = "analysis"
	CategoryReport     = "report"
)

// Step names
const (
	StepCleanText       = "clean_text"
	StepValidateContent = "validate_content"
	StepExtractFacts    = "extract_facts"
	StepScore           = "score"
	StepFindings        = "analyze_findings"
	StepMatchRoles      = "match_roles"
	StepAssembleReport  = "assemble_report"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
	Optional     []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepCleanText: {
		Name:         StepCleanText,
		Category:     CategoryIngestion,
		Dependencies: []string{},
		Optional:     []string{},
	},
	StepValidateContent: {
		Name:         StepValidateContent,
		Category:     CategoryIngestion,
		Dependencies: []string{StepCleanText},
		Optional:     []string{},
	},
	StepExtractFacts: {
		Name:         StepExtractFacts,
		Category:     CategoryExtraction,
		Dependencies: []string{StepCleanText},
		Optional:     []string{StepValidateContent},
	},
	StepScore: {
		Name:         StepScore,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractFacts},
		Optional:     []string{},
	},
	StepFindings: {
		Name:         StepFindings,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractFacts},
		Optional:     []string{},
	},
	StepMatchRoles: {
		Name:         StepMatchRoles,
		Category:     CategoryAnalysis,
		Dependencies: []string{StepExtractFacts},
		Optional:     []string{},
	},
	StepAssembleReport: {
		Name:         StepAssembleReport,
		Category:     CategoryReport,
		Dependencies: []string{StepScore, StepFindings, StepMatchRoles},
		Optional:     []string{},
	},
}

// Category returns the category of a registered step, or "" if unknown
func Category(stepName string) string {
	return StepRegistry[stepName].Category
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependencies: %v", e.MissingDependencies)
}

// ValidateDependencies checks if all required dependencies for a step are completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}

// MissingOptional returns the optional dependencies of a step that have not
// completed, in registry order
func MissingOptional(completed map[string]bool, stepName string) []string {
	var missing []string
	for _, dep := range StepRegistry[stepName].Optional {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}
	return missing
}

// GetAvailableSteps returns steps that can be executed (dependencies met), sorted by name
func GetAvailableSteps(completed map[string]bool) []string {
	available := []string{}
	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if err := ValidateDependencies(completed, stepName); err != nil {
			continue
		}
		available = append(available, stepName)
	}
	sort.Strings(available)
	return available
}

// GetBlockedSteps returns steps that are blocked (dependencies not met), sorted by name
func GetBlockedSteps(completed map[string]bool) []string {
	blocked := []string{}
	for stepName := range StepRegistry {
		if completed[stepName] {
			continue
		}
		if err := ValidateDependencies(completed, stepName); err != nil {
			blocked = append(blocked, stepName)
		}
	}
	sort.Strings(blocked)
	return blocked
}

// Tracker records the completed and skipped steps of one run. It is safe for
// concurrent use.
type Tracker struct {
	mu        sync.Mutex
	completed map[string]bool
	skipped   map[string]bool
}

// NewTracker creates an empty Tracker
func NewTracker() *Tracker {
	return &Tracker{
		completed: make(map[string]bool),
		skipped:   make(map[string]bool),
	}
}

// Begin returns an error if stepName cannot run yet
func (t *Tracker) Begin(stepName string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ValidateDependencies(t.completed, stepName)
}

// Complete marks stepName as done
func (t *Tracker) Complete(stepName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed[stepName] = true
}

// Skip marks stepName as deliberately not run. A skipped step satisfies
// nothing that requires it and is no longer reported as pending.
func (t *Tracker) Skip(stepName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.skipped[stepName] = true
}

// Completed returns a snapshot of the completed steps
func (t *Tracker) Completed() map[string]bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	snapshot := make(map[string]bool, len(t.completed))
	for k, v := range t.completed {
		snapshot[k] = v
	}
	return snapshot
}

// Pending returns the steps that could run next and the steps still waiting
// on a dependency. Skipped steps appear in neither list.
func (t *Tracker) Pending() (available, blocked []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.without(GetAvailableSteps(t.completed)), t.without(GetBlockedSteps(t.completed))
}

func (t *Tracker) without(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if !t.skipped[n] {
			out = append(out, n)
		}
	}
	return out
}
