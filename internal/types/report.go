// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Report is the assembled analysis of one résumé
type Report struct {
	ID               string              `json:"report_id"`
	TargetRole       string              `json:"target_role,omitempty"`
	CurrentYear      int                 `json:"current_year"`
	Metadata         ResumeMetadata      `json:"resume_metadata"`
	ExecutiveSummary ExecutiveSummary    `json:"executive_summary"`
	Score            ScoreResult         `json:"score"`
	Interpretation   ScoreInterpretation `json:"score_interpretation"`
	DetailedScoring  []DetailedScore     `json:"detailed_scoring"`
	Strengths        []Strength          `json:"strengths_analysis"`
	Weaknesses       []Weakness          `json:"weaknesses_analysis"`
	ImprovementPlan  ImprovementPlan     `json:"improvement_plan"`
	JobAnalysis      *JobAnalysis        `json:"job_market_analysis"`
	Facts            *FactModel          `json:"facts"`
}

// ResumeMetadata is the headline information about the analysed text
type ResumeMetadata struct {
	WordCount         int             `json:"word_count"`
	ValidationMessage string          `json:"validation_message,omitempty"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	SkillsCount       int             `json:"skills_count"`
	ProjectCount      int             `json:"project_count"`
}

// ExecutiveSummary condenses the fact model and overall assessment
type ExecutiveSummary struct {
	Profile      ProfessionalProfile `json:"professional_profile"`
	Presentation ContactPresentation `json:"contact_presentation"`
	Overall      OverallSummary      `json:"overall_assessment"`
}

// ProfessionalProfile is the candidate's headline profile
type ProfessionalProfile struct {
	ExperienceLevel         ExperienceLevel         `json:"experience_level"`
	TechnicalSkillsCount    int                     `json:"technical_skills_count"`
	ProjectPortfolioSize    int                     `json:"project_portfolio_size"`
	AchievementMetrics      int                     `json:"achievement_metrics"`
	TechnicalSophistication TechnicalSophistication `json:"technical_sophistication"`
}

// ContactPresentation reports presence of contact and presentation elements
type ContactPresentation struct {
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
	Education    string `json:"education"`
	ResumeLength int    `json:"resume_length"`
	ActionVerbs  int    `json:"action_verbs"`
}

// OverallSummary restates the overall assessment alongside the percentage
type OverallSummary struct {
	ScorePercentage float64 `json:"score_percentage"`
	Level           string  `json:"level"`
	Description     string  `json:"description"`
	Recommendation  string  `json:"recommendation"`
}

// DetailedScore is one category of the breakdown with its percentage
type DetailedScore struct {
	Category   string   `json:"category"`
	Label      string   `json:"label"`
	Score      int      `json:"score"`
	MaxScore   int      `json:"max_score"`
	Percentage float64  `json:"percentage"`
	Details    []string `json:"details"`
}
