// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority ranks how urgently a weakness should be fixed
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
)

// Finding categories, used to group strengths and weaknesses.
const (
	FindingExperience   = "experience"
	FindingTechnical    = "technical"
	FindingAchievements = "achievements"
	FindingContent      = "content"
	FindingPresentation = "presentation"
	FindingContact      = "contact"
	FindingStructure    = "structure"
)

// Strength is a positive finding with its explanation quartet
type Strength struct {
	Category             string `json:"category"`
	Title                string `json:"strength"`
	WhyItMatters         string `json:"why_its_strong"`
	ATSBenefit           string `json:"ats_benefit"`
	CompetitiveAdvantage string `json:"competitive_advantage"`
	Evidence             string `json:"evidence"`
}

// Weakness is a negative finding with remediation guidance
type Weakness struct {
	Category       string   `json:"category"`
	Title          string   `json:"weakness"`
	WhyProblematic string   `json:"why_problematic"`
	ATSImpact      string   `json:"ats_impact"`
	HowItHurts     string   `json:"how_it_hurts"`
	FixPriority    Priority `json:"fix_priority"`
	PriorityNote   string   `json:"priority_note"`
	SpecificFix    string   `json:"specific_fix"`
	Timeline       string   `json:"timeline"`
}

// ImprovementPlan groups weaknesses by priority with a fixed implementation timeline
type ImprovementPlan struct {
	CriticalFixes       []Weakness     `json:"critical_fixes"`
	HighPriority        []Weakness     `json:"high_priority_improvements"`
	MediumPriority      []Weakness     `json:"medium_priority_enhancements"`
	ImplementationSteps []TimelineStep `json:"implementation_timeline"`
}

// TimelineStep is one period of the improvement timeline
type TimelineStep struct {
	Period string `json:"period"`
	Task   string `json:"task"`
	Marker string `json:"priority"`
}
