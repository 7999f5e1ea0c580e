// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExperienceLevel is the five-tier band derived from experience years
type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "Entry Level / New Graduate"
	LevelJunior ExperienceLevel = "Junior Level"
	LevelMid    ExperienceLevel = "Mid Level"
	LevelSenior ExperienceLevel = "Senior Level"
	LevelExpert ExperienceLevel = "Expert / Leadership Level"
)

// TechnicalSophistication classifies the total count of technical concept mentions
type TechnicalSophistication string

const (
	SophisticationAdvanced TechnicalSophistication = "Advanced Technical Depth"
	SophisticationGood     TechnicalSophistication = "Good Technical Understanding"
	SophisticationBasic    TechnicalSophistication = "Basic Technical Awareness"
	SophisticationLimited  TechnicalSophistication = "Limited Technical Depth"
)

// Skill category names, in reporting order.
const (
	SkillProgrammingLanguages = "programming_languages"
	SkillFrameworksLibraries  = "frameworks_libraries"
	SkillDatabases            = "databases"
	SkillToolsPlatforms       = "tools_platforms"
	SkillMethodologies        = "methodologies"
)

// SkillCategoryNames lists the skill categories in reporting order.
var SkillCategoryNames = []string{
	SkillProgrammingLanguages,
	SkillFrameworksLibraries,
	SkillDatabases,
	SkillToolsPlatforms,
	SkillMethodologies,
}

// Achievement category names, in classification priority order.
const (
	AchievementPerformance = "performance_metrics"
	AchievementFinancial   = "financial_impact"
	AchievementScale       = "scale_metrics"
	AchievementTime        = "time_improvements"
	AchievementQuality     = "quality_metrics"
)

// AchievementCategoryNames lists the achievement categories in classification priority order.
var AchievementCategoryNames = []string{
	AchievementPerformance,
	AchievementFinancial,
	AchievementScale,
	AchievementTime,
	AchievementQuality,
}

// Technical concept family names.
const (
	TechArchitectureDesign      = "architecture_design"
	TechPerformanceOptimization = "performance_optimization"
	TechAPIIntegration          = "api_integration"
	TechAIMLConcepts            = "ai_ml_concepts"
	TechCloudConcepts           = "cloud_concepts"
	TechTestingPractices        = "testing_practices"
)

// TechnicalCategoryNames lists the technical concept families in reporting order.
var TechnicalCategoryNames = []string{
	TechArchitectureDesign,
	TechPerformanceOptimization,
	TechAPIIntegration,
	TechAIMLConcepts,
	TechCloudConcepts,
	TechTestingPractices,
}

// FactModel is the structured extraction result produced once per résumé.
// Downstream components read it and never modify it.
type FactModel struct {
	// Contact
	Email        *string  `json:"email"`
	EmailCount   int      `json:"email_count"`
	Phone        *string  `json:"phone"`
	PhoneCount   int      `json:"phone_count"`
	PhoneNumbers []string `json:"phone_numbers"`

	// Skills
	SkillsText       string              `json:"skills_text"`
	SkillsWordCount  int                 `json:"skills_word_count"`
	IndividualSkills []string            `json:"individual_skills"`
	SkillsCount      int                 `json:"skills_count"`
	SkillCategories  map[string][]string `json:"skill_categories"`

	// Experience
	ExperienceYears   int             `json:"experience_years"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	PositionCount     int             `json:"position_count"`
	HasInternship     bool            `json:"has_internship"`
	HasLeadership     bool            `json:"has_leadership"`
	ExperienceQuality int             `json:"experience_quality"`

	// Projects
	ProjectCount          int      `json:"project_count"`
	ProjectDescriptions   []string `json:"project_descriptions"`
	AverageProjectQuality float64  `json:"average_project_quality"`
	GitHubMentions        int      `json:"has_github_links"`
	LiveDemoMentions      int      `json:"has_live_demos"`

	// Education
	HasEducation          bool     `json:"has_education"`
	EducationMentionCount int      `json:"education_mention_count"`
	EducationKeywords     []string `json:"education_keywords"`
	HasGPA                bool     `json:"has_gpa"`
	GPAValue              *string  `json:"gpa_value"`

	// Achievements
	QuantifiedAchievements int                 `json:"quantified_achievements"`
	AchievementExamples    []string            `json:"achievement_examples"`
	AchievementCategories  map[string][]string `json:"achievement_categories"`
	AchievementDiversity   int                 `json:"achievement_diversity"`

	// Technical depth
	TechnicalDepthScore     int                     `json:"technical_depth_score"`
	TechnicalCategories     map[string]int          `json:"technical_categories"`
	TechnicalSophistication TechnicalSophistication `json:"technical_sophistication"`

	// Content quality
	WordCount           int     `json:"word_count"`
	SentenceCount       int     `json:"sentence_count"`
	ParagraphCount      int     `json:"paragraph_count"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	ActionVerbCount     int     `json:"action_verb_count"`
	ActionVerbDensity   float64 `json:"action_verb_density"`
	SectionHeaders      int     `json:"section_headers"`
	StructureScore      int     `json:"structure_score"`

	AnalysisSummary AnalysisSummary `json:"analysis_summary"`
}

// AnalysisSummary is the roll-up of indicator checklists over the fact model
type AnalysisSummary struct {
	TotalDataPoints      int     `json:"total_data_points"`
	CompletenessScore    float64 `json:"completeness_score"`
	TechnicalReadiness   float64 `json:"technical_readiness"`
	ProfessionalMaturity float64 `json:"professional_maturity"`
}

// NewFactModel returns a zero-valued fact model whose collections are
// allocated, so that an empty extraction serializes with [] and {} rather than null.
func NewFactModel() *FactModel {
	return &FactModel{
		PhoneNumbers:          []string{},
		IndividualSkills:      []string{},
		SkillCategories:       map[string][]string{},
		ProjectDescriptions:   []string{},
		EducationKeywords:     []string{},
		AchievementExamples:   []string{},
		AchievementCategories: map[string][]string{},
		TechnicalCategories:   map[string]int{},
	}
}

// HasEmail reports whether a valid email address was found
func (f *FactModel) HasEmail() bool {
	return f.Email != nil && *f.Email != ""
}

// HasPhone reports whether a valid phone number was found
func (f *FactModel) HasPhone() bool {
	return f.Phone != nil && *f.Phone != ""
}

// NonEmptySkillCategories returns the names of skill categories with at least
// one recognized skill, in reporting order.
func (f *FactModel) NonEmptySkillCategories() []string {
	var names []string
	for _, name := range SkillCategoryNames {
		if len(f.SkillCategories[name]) > 0 {
			names = append(names, name)
		}
	}
	return names
}
