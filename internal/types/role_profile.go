// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// RoleProfile is a catalog entry describing the keyword universe and career
// narrative for one job role. Profiles are read-only once loaded.
type RoleProfile struct {
	Key           string   `json:"key" validate:"required,lowercase"`
	DisplayName   string   `json:"display_name,omitempty"`
	CoreSkills    []string `json:"core_skills" validate:"required,min=1,dive,required"`
	Frameworks    []string `json:"frameworks" validate:"dive,required"`
	Methodologies []string `json:"methodologies" validate:"dive,required"`
	Platforms     []string `json:"platforms" validate:"dive,required"`
	DailyTasks    []string `json:"daily_tasks,omitempty"`
	TechStack     string   `json:"tech_stack,omitempty"`

	RoleNarrative
}

// RoleNarrative carries the descriptive guidance attached to a role. Any field
// left empty falls back to the catalog's default narrative.
type RoleNarrative struct {
	TypicalProjects    []string          `json:"typical_projects,omitempty"`
	CareerLadder       *CareerLadder     `json:"career_ladder,omitempty"`
	LearningResources  []string          `json:"learning_resources,omitempty"`
	NetworkingStrategy string            `json:"networking_strategy,omitempty"`
	PortfolioTip       string            `json:"portfolio_tip,omitempty"`
	InterviewTip       string            `json:"interview_tip,omitempty"`
	MarketConditions   string            `json:"market_conditions,omitempty"`
	Insights           *IndustryInsights `json:"insights,omitempty"`
}

// CareerLadder is a five-rung progression for a role
type CareerLadder struct {
	Stages        []string `json:"stages" validate:"len=5,dive,required"`
	NextMilestone string   `json:"next_milestone"`
	// StagePrefix is prepended to the resolved stage, e.g. "Estimated at ".
	StagePrefix string `json:"stage_prefix,omitempty"`
}

// IndustryInsights holds market information for a role
type IndustryInsights struct {
	GrowthOutlook  string   `json:"growth_outlook"`
	SalaryRange    string   `json:"salary_range"`
	KeyCompanies   []string `json:"key_companies,omitempty"`
	TrendingSkills []string `json:"trending_skills,omitempty"`
}

// KeywordCount returns the size of the role's full keyword universe
func (r *RoleProfile) KeywordCount() int {
	return len(r.CoreSkills) + len(r.Frameworks) + len(r.Methodologies) + len(r.Platforms)
}

// Validate validates the RoleProfile using the validator.
func (r *RoleProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
