package steps

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	expectedSteps := []string{
		StepCleanText, StepValidateContent, StepExtractFacts,
		StepScore, StepFindings, StepMatchRoles,
		StepAssembleReport,
	}

	assert.Len(t, StepRegistry, len(expectedSteps))
	for _, stepName := range expectedSteps {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
	}
}

func TestStepRegistryCategories(t *testing.T) {
	categories := map[string][]string{
		CategoryIngestion:  {StepCleanText, StepValidateContent},
		CategoryExtraction: {StepExtractFacts},
		CategoryAnalysis:   {StepScore, StepFindings, StepMatchRoles},
		CategoryReport:     {StepAssembleReport},
	}

	for category, stepNames := range categories {
		for _, stepName := range stepNames {
			assert.Equal(t, category, Category(stepName), "Step %s should be in category %s", stepName, category)
		}
	}
	assert.Empty(t, Category("unknown_step"))
}

func TestStepRegistry_DependenciesAreRegistered(t *testing.T) {
	for name, def := range StepRegistry {
		for _, dep := range append(append([]string{}, def.Dependencies...), def.Optional...) {
			_, ok := StepRegistry[dep]
			assert.True(t, ok, "dependency %s of %s should be registered", dep, name)
		}
	}
}

func TestDependencyError(t *testing.T) {
	err := &DependencyError{
		Step:                "test_step",
		MissingDependencies: []string{"dep1", "dep2"},
	}

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing dependencies")
	assert.Equal(t, "test_step", err.Step)
	assert.Equal(t, []string{"dep1", "dep2"}, err.MissingDependencies)
}

func TestValidateDependencies_UnknownStep(t *testing.T) {
	err := ValidateDependencies(nil, "unknown_step")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestValidateDependencies_Missing(t *testing.T) {
	err := ValidateDependencies(map[string]bool{StepScore: true}, StepAssembleReport)

	var depErr *DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, StepAssembleReport, depErr.Step)
	assert.Equal(t, []string{StepFindings, StepMatchRoles}, depErr.MissingDependencies)
}

func TestValidateDependencies_OptionalNotRequired(t *testing.T) {
	assert.NoError(t, ValidateDependencies(map[string]bool{StepCleanText: true}, StepExtractFacts))
}

func TestGetAvailableAndBlockedSteps(t *testing.T) {
	completed := map[string]bool{StepCleanText: true, StepExtractFacts: true}

	assert.Equal(t,
		[]string{StepFindings, StepMatchRoles, StepScore, StepValidateContent},
		GetAvailableSteps(completed))
	assert.Equal(t, []string{StepAssembleReport}, GetBlockedSteps(completed))

	assert.Equal(t, []string{StepCleanText}, GetAvailableSteps(nil))
}

func TestTracker_ConcurrentCompletion(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Begin(StepCleanText))
	tracker.Complete(StepCleanText)
	require.NoError(t, tracker.Begin(StepExtractFacts))
	tracker.Complete(StepExtractFacts)

	assert.Error(t, tracker.Begin(StepAssembleReport))

	var wg sync.WaitGroup
	for _, step := range []string{StepScore, StepFindings, StepMatchRoles} {
		wg.Add(1)
		go func(step string) {
			defer wg.Done()
			if tracker.Begin(step) == nil {
				tracker.Complete(step)
			}
		}(step)
	}
	wg.Wait()

	assert.NoError(t, tracker.Begin(StepAssembleReport))
	assert.Len(t, tracker.Completed(), 5)
}

func TestMissingOptional(t *testing.T) {
	completed := map[string]bool{StepCleanText: true}
	assert.Equal(t, []string{StepValidateContent}, MissingOptional(completed, StepExtractFacts))

	completed[StepValidateContent] = true
	assert.Empty(t, MissingOptional(completed, StepExtractFacts))
	assert.Empty(t, MissingOptional(completed, StepScore))
	assert.Empty(t, MissingOptional(completed, "no_such_step"))
}

func TestTracker_Pending(t *testing.T) {
	tracker := NewTracker()

	available, blocked := tracker.Pending()
	assert.Equal(t, []string{StepCleanText}, available)
	assert.Len(t, blocked, len(StepRegistry)-1)

	tracker.Complete(StepCleanText)
	tracker.Skip(StepValidateContent)
	tracker.Complete(StepExtractFacts)

	available, blocked = tracker.Pending()
	assert.Equal(t, []string{StepFindings, StepMatchRoles, StepScore}, available)
	assert.Equal(t, []string{StepAssembleReport}, blocked)
	assert.False(t, tracker.Completed()[StepValidateContent])

	for _, step := range []string{StepScore, StepFindings, StepMatchRoles, StepAssembleReport} {
		tracker.Complete(step)
	}
	available, blocked = tracker.Pending()
	assert.Empty(t, available)
	assert.Empty(t, blocked)
}
