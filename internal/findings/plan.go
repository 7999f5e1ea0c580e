package findings

import (
	"github.com/jonathan/resume-ats/internal/narrative"
	"github.com/jonathan/resume-ats/internal/types"
)

var timeline = []struct {
	period string
	key    string
	marker string
}{
	{"Week 1-2", "plan.week_1_2", "🔴"},
	{"Month 1-2", "plan.month_1_2", "🟡"},
	{"Month 2-3", "plan.month_2_3", "🟠"},
	{"Month 3-6", "plan.month_3_6", "🟢"},
}

// BuildImprovementPlan groups weaknesses by fix priority, preserving their
// order, and attaches the fixed implementation timeline.
func BuildImprovementPlan(weaknesses []types.Weakness) types.ImprovementPlan {
	plan := types.ImprovementPlan{
		CriticalFixes:       []types.Weakness{},
		HighPriority:        []types.Weakness{},
		MediumPriority:      []types.Weakness{},
		ImplementationSteps: make([]types.TimelineStep, 0, len(timeline)),
	}

	for _, w := range weaknesses {
		switch w.FixPriority {
		case types.PriorityCritical:
			plan.CriticalFixes = append(plan.CriticalFixes, w)
		case types.PriorityHigh:
			plan.HighPriority = append(plan.HighPriority, w)
		case types.PriorityMedium:
			plan.MediumPriority = append(plan.MediumPriority, w)
		}
	}

	for _, step := range timeline {
		plan.ImplementationSteps = append(plan.ImplementationSteps, types.TimelineStep{
			Period: step.period,
			Task:   narrative.MustGet(narrative.WeaknessesFile, step.key),
			Marker: step.marker,
		})
	}
	return plan
}
