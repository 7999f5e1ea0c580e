// Package catalog provides the read-only configuration consumed by the analysis
// components: role profiles, keyword lists, regex tables, truncation limits and
// market reference data. Defaults are embedded at compile time and can be
// overridden from a JSON or YAML file.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-ats/internal/schemas"
	"github.com/jonathan/resume-ats/internal/types"
	rootschemas "github.com/jonathan/resume-ats/schemas"
)

//go:embed *.json
var catalogFiles embed.FS

// DefaultTechStack is reported for roles that do not describe their stack.
const DefaultTechStack = "Not specified"

// Document is the serialized form of a catalog
type Document struct {
	Roles            []types.RoleProfile `json:"roles" validate:"required,min=1,unique=Key,dive"`
	Keywords         Keywords            `json:"keywords"`
	Patterns         Patterns            `json:"patterns"`
	Limits           Limits              `json:"limits"`
	Market           Market              `json:"market"`
	DefaultNarrative types.RoleNarrative `json:"default_narrative"`
}

// KeywordGroup is a named, ordered keyword list
type KeywordGroup struct {
	Name     string   `json:"name" validate:"required"`
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required"`
}

// ProjectKeywords drive the per-description project quality score
type ProjectKeywords struct {
	DetailVerbs  []string `json:"detail_verbs" validate:"required,min=1"`
	Technologies []string `json:"technologies" validate:"required,min=1"`
	Outcomes     []string `json:"outcomes" validate:"required,min=1"`
	Links        []string `json:"links" validate:"required,min=1"`
}

// Keywords holds the curated keyword lists
type Keywords struct {
	ActionVerbs     []string       `json:"action_verbs" validate:"required,min=1,dive,required"`
	LeadershipVerbs []string       `json:"leadership_verbs" validate:"required,min=1"`
	SkillCategories []KeywordGroup `json:"skill_categories" validate:"required,min=1,unique=Name,dive"`
	// AchievementClasses is evaluated in order; a match lands in the first
	// class whose keywords it contains.
	AchievementClasses        []KeywordGroup  `json:"achievement_classes" validate:"required,min=1,unique=Name,dive"`
	AchievementQualityMarkers []string        `json:"achievement_quality_markers" validate:"required,min=1"`
	Project                   ProjectKeywords `json:"project"`
	GeneralProgramming        []string        `json:"general_programming" validate:"required,min=1"`
	GeneralTools              []string        `json:"general_tools" validate:"required,min=1"`
	EmailProviders            []string        `json:"email_providers"`
}

// HeadingPattern captures the first line after a skills heading. Continues
// marks headings whose block extends over the following non-heading lines.
type HeadingPattern struct {
	Heading   string `json:"heading" validate:"required"`
	Continues bool   `json:"continues,omitempty"`
}

// SectionPattern isolates a section from its heading up to the first stop word
type SectionPattern struct {
	Heading string `json:"heading" validate:"required"`
	Stop    string `json:"stop" validate:"required"`
}

// NamedPattern is a regex with a reporting name
type NamedPattern struct {
	Name    string `json:"name" validate:"required"`
	Pattern string `json:"pattern" validate:"required"`
}

// Patterns holds the uncompiled regex tables
type Patterns struct {
	Email              string           `json:"email" validate:"required"`
	Phones             []string         `json:"phones" validate:"required,min=1,dive,required"`
	SkillsHeadings     []HeadingPattern `json:"skills_headings" validate:"required,min=1,dive"`
	SkillsBlockStop    string           `json:"skills_block_stop" validate:"required"`
	SkillsSplit        string           `json:"skills_split" validate:"required"`
	ExperienceSection  SectionPattern   `json:"experience_section"`
	ProjectsSection    SectionPattern   `json:"projects_section"`
	YearRange          string           `json:"year_range" validate:"required"`
	StatedYears        string           `json:"stated_years" validate:"required"`
	SpanYear           string           `json:"span_year" validate:"required"`
	Positions          []string         `json:"positions" validate:"required,min=1,dive,required"`
	Internship         string           `json:"internship" validate:"required"`
	Leadership         string           `json:"leadership" validate:"required"`
	ProjectLines       []string         `json:"project_lines" validate:"required,min=1,dive,required"`
	GitHub             string           `json:"github" validate:"required"`
	Demos              []string         `json:"demos" validate:"required,min=1,dive,required"`
	Education          []string         `json:"education" validate:"required,min=1,dive,required"`
	GPA                string           `json:"gpa" validate:"required"`
	Achievements       []string         `json:"achievements" validate:"required,min=1,dive,required"`
	ExperienceConcepts []string         `json:"experience_concepts" validate:"required,min=1,dive,required"`
	TechnicalFamilies  []NamedPattern   `json:"technical_families" validate:"required,min=1,unique=Name,dive"`
	SentenceSplit      string           `json:"sentence_split" validate:"required"`
	SectionHeader      string           `json:"section_header" validate:"required"`
}

// Limits are the truncation counts applied to capped lists
type Limits struct {
	MaxSkills              int `json:"max_skills" validate:"min=1"`
	MaxProjects            int `json:"max_projects" validate:"min=1"`
	MaxEducationKeywords   int `json:"max_education_keywords" validate:"min=1"`
	MaxAchievementExamples int `json:"max_achievement_examples" validate:"min=1"`
	CriticalGaps           int `json:"critical_gaps" validate:"min=0"`
	ImportantGaps          int `json:"important_gaps" validate:"min=0"`
	BeneficialGapsFrom     int `json:"beneficial_gaps_from" validate:"min=0"`
	BeneficialGapsTo       int `json:"beneficial_gaps_to" validate:"gtefield=BeneficialGapsFrom"`
	RoleSuggestions        int `json:"role_suggestions" validate:"min=1"`
	MarketRoles            int `json:"market_roles" validate:"min=1"`
	MatchedCoreDetail      int `json:"matched_core_detail" validate:"min=1"`
	MatchedFrameworkDetail int `json:"matched_framework_detail" validate:"min=1"`
	MatchedMethodDetail    int `json:"matched_methodology_detail" validate:"min=1"`
	MissingCoreScan        int `json:"missing_core_scan" validate:"min=1"`
	MissingCoreDetail      int `json:"missing_core_detail" validate:"min=1"`
}

// SalaryBracket is the base salary band from a minimum number of experience years
type SalaryBracket struct {
	MinYears int `json:"min_years" validate:"min=0"`
	Low      int `json:"low" validate:"min=0"`
	High     int `json:"high" validate:"gtefield=Low"`
}

// Multiplier scales salary bands from a minimum compatibility score
type Multiplier struct {
	MinScore float64 `json:"min_score" validate:"min=0,max=100"`
	Factor   float64 `json:"factor" validate:"gt=0"`
}

// Market is the reference data for the market analysis
type Market struct {
	SalaryBrackets             []SalaryBracket `json:"salary_brackets" validate:"required,min=1,dive"`
	CompatibilityMultipliers   []Multiplier    `json:"compatibility_multipliers" validate:"required,min=1,dive"`
	HighCompatibilityThreshold float64         `json:"high_compatibility_threshold" validate:"min=0,max=100"`
	EmergingMarkers            []string        `json:"emerging_markers"`
	StableRoles                []string        `json:"stable_roles"`
	GrowthPotential            string          `json:"growth_potential"`
	HotSkills                  []string        `json:"hot_skills"`
	DecliningDemand            []string        `json:"declining_demand"`
	FutureGrowthAreas          []string        `json:"future_growth_areas"`
	TechHubs                   []string        `json:"tech_hubs"`
	RemoteOpportunities        string          `json:"remote_opportunities"`
	InternationalMarkets       string          `json:"international_markets"`
}

// Catalog is an immutable, validated catalog with its regexes compiled.
// It is safe for concurrent use; callers must not modify anything it returns.
type Catalog struct {
	Keywords Keywords
	Limits   Limits
	Market   Market
	Regexes  *Regexes

	roles    []types.RoleProfile
	index    map[string]int
	defaults types.RoleNarrative
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded defaults. It is built once.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		doc, err := DefaultDocument()
		if err != nil {
			defaultErr = err
			return
		}
		defaultCatalog, defaultErr = New(doc)
	})
	return defaultCatalog, defaultErr
}

// MustDefault returns the embedded catalog, panicking if it is invalid.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load default catalog: %v", err))
	}
	return c
}

// DefaultDocument decodes the embedded catalog files into a fresh Document.
func DefaultDocument() (*Document, error) {
	doc := &Document{}
	parts := []struct {
		file   string
		target interface{}
	}{
		{"roles.json", &doc.Roles},
		{"keywords.json", &doc.Keywords},
		{"patterns.json", &doc.Patterns},
		{"market.json", &doc.Market},
		{"defaults.json", doc},
	}

	for _, p := range parts {
		data, err := catalogFiles.ReadFile(p.file)
		if err != nil {
			return nil, &LoadError{Source: p.file, Message: "failed to read embedded file", Cause: err}
		}
		if err := json.Unmarshal(data, p.target); err != nil {
			return nil, &LoadError{Source: p.file, Message: "failed to parse embedded file", Cause: err}
		}
	}
	return doc, nil
}

// LoadFile builds a catalog from the embedded defaults overlaid with the
// document at path. Each top-level section present in the file (roles,
// keywords, patterns, limits, market, default_narrative) replaces the default
// section as a whole. Files ending in .yaml or .yml are read as YAML.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return nil, &LoadError{Source: path, Message: "catalog path is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Message: "failed to read catalog file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, &LoadError{Source: path, Message: "failed to parse catalog YAML", Cause: err}
		}
	}

	doc, err := DefaultDocument()
	if err != nil {
		return nil, err
	}
	if err := overlay(doc, data); err != nil {
		return nil, &LoadError{Source: path, Message: "failed to parse catalog JSON", Cause: err}
	}

	c, err := New(doc)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = path
			return nil, le
		}
		return nil, err
	}
	return c, nil
}

// overlay replaces the sections of doc that are present in data.
func overlay(doc *Document, data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return err
	}

	for name, raw := range sections {
		var err error
		switch name {
		case "roles":
			var v []types.RoleProfile
			err = json.Unmarshal(raw, &v)
			doc.Roles = v
		case "keywords":
			var v Keywords
			err = json.Unmarshal(raw, &v)
			doc.Keywords = v
		case "patterns":
			var v Patterns
			err = json.Unmarshal(raw, &v)
			doc.Patterns = v
		case "limits":
			var v Limits
			err = json.Unmarshal(raw, &v)
			doc.Limits = v
		case "market":
			var v Market
			err = json.Unmarshal(raw, &v)
			doc.Market = v
		case "default_narrative":
			var v types.RoleNarrative
			err = json.Unmarshal(raw, &v)
			doc.DefaultNarrative = v
		default:
			err = fmt.Errorf("unknown catalog section %q", name)
		}
		if err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// New validates a document and compiles it into a Catalog.
func New(doc *Document) (*Catalog, error) {
	if doc == nil {
		return nil, &LoadError{Source: "(document)", Message: "catalog document is nil"}
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	regexes, err := compile(&doc.Patterns)
	if err != nil {
		return nil, &LoadError{Source: "(document)", Message: "invalid pattern", Cause: err}
	}

	c := &Catalog{
		Keywords: doc.Keywords,
		Limits:   doc.Limits,
		Market:   doc.Market,
		Regexes:  regexes,
		roles:    make([]types.RoleProfile, len(doc.Roles)),
		index:    make(map[string]int, len(doc.Roles)),
		defaults: doc.DefaultNarrative,
	}
	copy(c.roles, doc.Roles)
	for i, r := range c.roles {
		c.index[r.Key] = i
	}
	return c, nil
}

func validateDocument(doc *Document) error {
	validate := validator.New()
	if err := validate.Struct(doc); err != nil {
		return &LoadError{Source: "(document)", Message: "catalog validation failed", Cause: err}
	}

	for _, r := range doc.Roles {
		if RoleKey(r.Key) != r.Key {
			return &LoadError{Source: "(document)", Message: fmt.Sprintf("role key %q must be snake_case", r.Key)}
		}
	}

	schema, err := rootschemas.Load(rootschemas.CatalogSchema)
	if err != nil {
		return err
	}
	if err := schemas.ValidateDocument(schema, doc); err != nil {
		return &LoadError{Source: "(document)", Message: "catalog does not match schema", Cause: err}
	}
	return nil
}

// RoleKey normalizes a role name to its catalog key: lower case with spaces
// replaced by underscores.
func RoleKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Role looks up a role profile by key or free-form name.
func (c *Catalog) Role(name string) (types.RoleProfile, bool) {
	i, ok := c.index[RoleKey(name)]
	if !ok {
		return types.RoleProfile{}, false
	}
	return c.roles[i], true
}

// Roles returns all role profiles in catalog order.
func (c *Catalog) Roles() []types.RoleProfile {
	out := make([]types.RoleProfile, len(c.roles))
	copy(out, c.roles)
	return out
}

// DisplayName returns the human-readable name of a role. Roles without an
// explicit display name get their key title-cased.
func (c *Catalog) DisplayName(key string) string {
	if r, ok := c.Role(key); ok && r.DisplayName != "" {
		return r.DisplayName
	}
	return cases.Title(language.English).String(strings.ReplaceAll(RoleKey(key), "_", " "))
}

// TechStack returns the role's tech stack description.
func (c *Catalog) TechStack(key string) string {
	if r, ok := c.Role(key); ok && r.TechStack != "" {
		return r.TechStack
	}
	return DefaultTechStack
}

// Narrative returns the role's narrative with every empty field filled from
// the catalog default narrative.
func (c *Catalog) Narrative(key string) types.RoleNarrative {
	n := c.defaults
	r, ok := c.Role(key)
	if !ok {
		return n
	}

	own := r.RoleNarrative
	if len(own.TypicalProjects) > 0 {
		n.TypicalProjects = own.TypicalProjects
	}
	if own.CareerLadder != nil {
		n.CareerLadder = own.CareerLadder
	}
	if len(own.LearningResources) > 0 {
		n.LearningResources = own.LearningResources
	}
	if own.NetworkingStrategy != "" {
		n.NetworkingStrategy = own.NetworkingStrategy
	}
	if own.PortfolioTip != "" {
		n.PortfolioTip = own.PortfolioTip
	}
	if own.InterviewTip != "" {
		n.InterviewTip = own.InterviewTip
	}
	if own.MarketConditions != "" {
		n.MarketConditions = own.MarketConditions
	}
	if own.Insights != nil {
		n.Insights = own.Insights
	}
	return n
}
