// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FitLevel is the qualitative band of a role-compatibility percentage
type FitLevel string

const (
	FitExcellent FitLevel = "Excellent Fit"
	FitVeryGood  FitLevel = "Very Good Fit"
	FitGood      FitLevel = "Good Fit"
	FitPotential FitLevel = "Potential Fit"
	FitLimited   FitLevel = "Limited Fit"
)

// RoleCompatibility is the weighted keyword coverage of one catalog role
type RoleCompatibility struct {
	RoleKey              string   `json:"role_key"`
	Role                 string   `json:"role"`
	Score                float64  `json:"score"`
	MatchedCoreSkills    []string `json:"matched_core_skills"`
	MatchedFrameworks    []string `json:"matched_frameworks"`
	MatchedMethodologies []string `json:"matched_methodologies"`
	MatchedPlatforms     []string `json:"matched_platforms"`
	MissingCoreSkills    []string `json:"missing_core_skills"`
	MissingFrameworks    []string `json:"missing_frameworks"`
}

// SkillGaps buckets missing skills by importance
type SkillGaps struct {
	Critical   []string `json:"critical"`
	Important  []string `json:"important"`
	Beneficial []string `json:"beneficial"`
}

// TechnicalAlignment lists matched skills per tier and the remaining gaps
type TechnicalAlignment struct {
	CoreSkillsMatched    []string  `json:"core_skills_matched"`
	FrameworksMatched    []string  `json:"frameworks_matched"`
	MethodologiesMatched []string  `json:"methodologies_matched"`
	PlatformsMatched     []string  `json:"platforms_matched"`
	SkillGaps            SkillGaps `json:"skill_gaps"`
}

// CareerProgression places the candidate on a role's career ladder
type CareerProgression struct {
	Path          string `json:"path"`
	CurrentStage  string `json:"current_stage"`
	NextMilestone string `json:"next_milestone"`
}

// RoleDetails describes the day-to-day shape of a role
type RoleDetails struct {
	DailyResponsibilities []string          `json:"daily_responsibilities"`
	RequiredTechStack     string            `json:"required_tech_stack"`
	TypicalProjects       []string          `json:"typical_projects"`
	CareerProgression     CareerProgression `json:"career_progression"`
}

// SeniorityAnalysis estimates the level a candidate can target
type SeniorityAnalysis struct {
	SuggestedLevel       string  `json:"suggested_level"`
	CompetencyAssessment string  `json:"competency_assessment"`
	SalaryMultiplier     float64 `json:"salary_multiplier"`
	SalaryExpectation    string  `json:"salary_expectation"`
	AdvancementPotential string  `json:"advancement_potential"`
}

// RoleMarketInsights summarizes the job market for a role
type RoleMarketInsights struct {
	GrowthOutlook        string   `json:"growth_outlook"`
	SalaryRange          string   `json:"salary_range"`
	KeyEmployers         []string `json:"key_employers"`
	TrendingTechnologies []string `json:"trending_technologies"`
	JobAvailability      string   `json:"job_availability"`
}

// SkillPlanItem is one tier of a skill development plan
type SkillPlanItem struct {
	Skills   []string `json:"skills"`
	Timeline string   `json:"timeline"`
	Reason   string   `json:"reason"`
}

// SkillPlan prioritizes missing skills into three tiers
type SkillPlan struct {
	Critical    SkillPlanItem `json:"critical_skills"`
	Important   SkillPlanItem `json:"important_skills"`
	Enhancement SkillPlanItem `json:"enhancement_skills"`
}

// DevelopmentPlan is the per-role action plan
type DevelopmentPlan struct {
	ImmediateActions   []string  `json:"immediate_actions"`
	SkillPriority      SkillPlan `json:"skill_development_priority"`
	LearningResources  []string  `json:"learning_resources"`
	NetworkingStrategy string    `json:"networking_strategy"`
}

// KeywordStrategy is ATS keyword guidance for a role
type KeywordStrategy struct {
	StrengthenExisting string `json:"strengthen_existing"`
	AddMissing         string `json:"add_missing"`
	ContextUsage       string `json:"context_usage"`
	DensityTarget      string `json:"density_target"`
}

// CustomizationTips is résumé tailoring guidance for a role
type CustomizationTips struct {
	TitleOptimization string `json:"title_optimization"`
	SkillsSection     string `json:"skills_section"`
	ExperienceFraming string `json:"experience_framing"`
	ProjectSelection  string `json:"project_selection"`
}

// ApplicationStrategy bundles keyword, tailoring, portfolio and interview guidance
type ApplicationStrategy struct {
	KeywordOptimization      KeywordStrategy   `json:"keyword_optimization"`
	ResumeCustomization      CustomizationTips `json:"resume_customization"`
	PortfolioRecommendations string            `json:"portfolio_recommendations"`
	InterviewPreparation     string            `json:"interview_preparation"`
}

// RoleSuggestion is the detailed analysis of one highly ranked role
type RoleSuggestion struct {
	RoleKey             string              `json:"role_key"`
	Role                string              `json:"role"`
	CompatibilityScore  float64             `json:"compatibility_score"`
	IsTarget            bool                `json:"is_target,omitempty"`
	FitLevel            FitLevel            `json:"fit_level"`
	FitExplanation      string              `json:"fit_explanation"`
	ReadinessTimeline   string              `json:"readiness_timeline"`
	TechnicalAlignment  TechnicalAlignment  `json:"technical_alignment"`
	RoleDetails         RoleDetails         `json:"role_details"`
	Seniority           SeniorityAnalysis   `json:"seniority_analysis"`
	MarketInsights      RoleMarketInsights  `json:"market_insights"`
	DevelopmentPlan     DevelopmentPlan     `json:"development_plan"`
	ApplicationStrategy ApplicationStrategy `json:"application_strategy"`
}

// Milestone is one fixed window of the career roadmap
type Milestone struct {
	Days int    `json:"days"`
	Goal string `json:"goal"`
}

// CareerRoadmap is derived from the top-ranked role
type CareerRoadmap struct {
	CurrentPosition      string      `json:"current_position"`
	RecommendedTarget    string      `json:"recommended_target"`
	DevelopmentTimeline  string      `json:"development_timeline"`
	SkillDevelopmentPlan SkillPlan   `json:"skill_development_plan"`
	Milestones           []Milestone `json:"milestones"`
	SuccessMetrics       []string    `json:"success_metrics"`
}

// MarketOpportunities partitions the top roles into non-exclusive buckets
type MarketOpportunities struct {
	HighCompatibility []string `json:"high_compatibility_roles"`
	Emerging          []string `json:"emerging_opportunities"`
	Stable            []string `json:"stable_career_paths"`
}

// SalaryExpectations is the estimated salary band for the top role
type SalaryExpectations struct {
	CurrentLevelRange string `json:"current_level_range"`
	Low               int    `json:"low"`
	High              int    `json:"high"`
	GrowthPotential   string `json:"growth_potential"`
	PremiumPositions  string `json:"premium_positions"`
}

// IndustryTrends lists market-wide skill trends
type IndustryTrends struct {
	HotSkills         []string `json:"hot_skills"`
	DecliningDemand   []string `json:"declining_demand"`
	FutureGrowthAreas []string `json:"future_growth_areas"`
}

// GeographicConsiderations lists location guidance
type GeographicConsiderations struct {
	TechHubs             []string `json:"tech_hubs"`
	RemoteOpportunities  string   `json:"remote_opportunities"`
	InternationalMarkets string   `json:"international_markets"`
}

// MarketAnalysis is the market view over the top-ranked roles
type MarketAnalysis struct {
	Opportunities MarketOpportunities      `json:"market_opportunities"`
	Salary        SalaryExpectations       `json:"salary_expectations"`
	Trends        IndustryTrends           `json:"industry_trends"`
	Geography     GeographicConsiderations `json:"geographic_considerations"`
}

// Readiness is the overall job-market readiness assessment
type Readiness struct {
	Level          string   `json:"readiness_level"`
	Score          int      `json:"readiness_score"`
	MaxScore       int      `json:"max_score"`
	KeyFactors     []string `json:"key_factors"`
	Recommendation string   `json:"overall_recommendation"`
	NextSteps      []string `json:"next_steps"`
}

// JobAnalysis is the output of the job role matcher
type JobAnalysis struct {
	Compatibility    []RoleCompatibility `json:"compatibility"`
	RoleSuggestions  []RoleSuggestion    `json:"role_suggestions"`
	CareerRoadmap    *CareerRoadmap      `json:"career_roadmap,omitempty"`
	MarketInsights   *MarketAnalysis     `json:"market_insights,omitempty"`
	OverallReadiness Readiness           `json:"overall_readiness"`
}
