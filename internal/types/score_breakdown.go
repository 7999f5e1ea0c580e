// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Score category names, in breakdown order.
const (
	CategoryContactInfo            = "contact_info"
	CategoryTechnicalSkills        = "technical_skills"
	CategoryExperienceQuality      = "experience_quality"
	CategoryQuantifiedAchievements = "quantified_achievements"
	CategoryContentOptimization    = "content_optimization"
)

// CategoryScore is one independently capped scoring category
type CategoryScore struct {
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Max     int      `json:"max"`
	Weight  float64  `json:"weight"`
	Details []string `json:"details"`
}

// OverallAssessment is the qualitative band for the overall percentage
type OverallAssessment struct {
	Level          string `json:"level"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Color          string `json:"color"`
}

// ScoreBreakdown holds the per-category scores in a fixed order plus the overall assessment
type ScoreBreakdown struct {
	Categories        []CategoryScore   `json:"categories"`
	OverallAssessment OverallAssessment `json:"overall_assessment"`
}

// Category looks up a category score by name
func (b *ScoreBreakdown) Category(name string) (CategoryScore, bool) {
	for _, c := range b.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryScore{}, false
}

// ScoreResult is the output of the scoring engine
type ScoreResult struct {
	Total      int            `json:"total"`
	Max        int            `json:"max"`
	Percentage float64        `json:"percentage"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// ScoreInterpretation translates a percentage into grade and outlook labels
type ScoreInterpretation struct {
	Percentage         float64 `json:"percentage"`
	Grade              string  `json:"grade"`
	ATSLikelihood      string  `json:"ats_likelihood"`
	CompetitiveLevel   string  `json:"competitive_level"`
	ImprovementUrgency string  `json:"improvement_urgency"`
}
