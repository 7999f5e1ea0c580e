// Package matching scores a résumé against every catalog role profile and
// derives role suggestions, a career roadmap, a market view and an overall
// readiness assessment.
package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-ats/internal/catalog"
	"github.com/jonathan/resume-ats/internal/types"
)

// Keyword tier weights.
const (
	weightCore        = 3.0
	weightFramework   = 2.0
	weightMethodology = 1.5
	weightPlatform    = 1.0
)

// Matcher matches résumés against a catalog. It is safe for concurrent use.
type Matcher struct {
	cat         *catalog.Catalog
	suggestions int
	marketRoles int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithSuggestions overrides the number of detailed role suggestions.
func WithSuggestions(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.suggestions = n
		}
	}
}

// NewMatcher creates a matcher over cat.
func NewMatcher(cat *catalog.Catalog, opts ...Option) *Matcher {
	m := &Matcher{
		cat:         cat,
		suggestions: cat.Limits.RoleSuggestions,
		marketRoles: cat.Limits.MarketRoles,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match builds the job analysis for text. A target role that is in the
// catalog but ranked below the suggestion cut is appended to the
// suggestions; the target suggestion is always flagged.
func (m *Matcher) Match(text string, facts *types.FactModel, targetRole string) *types.JobAnalysis {
	ranked := m.Compatibility(text)

	top := ranked[:min(m.suggestions, len(ranked))]
	suggestions := make([]types.RoleSuggestion, 0, len(top)+1)
	targetKey := ""
	if r, ok := m.cat.Role(targetRole); ok {
		targetKey = r.Key
	}

	targetSeen := false
	for _, c := range top {
		s := m.suggest(c, facts)
		if c.RoleKey == targetKey {
			s.IsTarget = true
			targetSeen = true
		}
		suggestions = append(suggestions, s)
	}
	if targetKey != "" && !targetSeen {
		for _, c := range ranked {
			if c.RoleKey == targetKey {
				s := m.suggest(c, facts)
				s.IsTarget = true
				suggestions = append(suggestions, s)
				break
			}
		}
	}

	analysis := &types.JobAnalysis{
		Compatibility:    ranked,
		RoleSuggestions:  suggestions,
		OverallReadiness: Readiness(facts),
	}
	if len(suggestions) > 0 {
		analysis.CareerRoadmap = roadmap(facts, suggestions[0])
		analysis.MarketInsights = m.market(facts, suggestions[:min(m.marketRoles, len(suggestions))])
	}
	return analysis
}

// Compatibility scores every catalog role and ranks them by descending score.
// Ties keep catalog order.
func (m *Matcher) Compatibility(text string) []types.RoleCompatibility {
	lower := strings.ToLower(text)

	roles := m.cat.Roles()
	out := make([]types.RoleCompatibility, 0, len(roles))
	for _, r := range roles {
		out = append(out, m.score(lower, r))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func (m *Matcher) score(lower string, r types.RoleProfile) types.RoleCompatibility {
	c := types.RoleCompatibility{
		RoleKey:              r.Key,
		Role:                 m.cat.DisplayName(r.Key),
		MatchedCoreSkills:    catalog.Matched(lower, r.CoreSkills),
		MatchedFrameworks:    catalog.Matched(lower, r.Frameworks),
		MatchedMethodologies: catalog.Matched(lower, r.Methodologies),
		MatchedPlatforms:     catalog.Matched(lower, r.Platforms),
		MissingCoreSkills:    catalog.Missing(lower, r.CoreSkills),
		MissingFrameworks:    catalog.Missing(lower, r.Frameworks),
	}

	total := float64(len(c.MatchedCoreSkills))*weightCore +
		float64(len(c.MatchedFrameworks))*weightFramework +
		float64(len(c.MatchedMethodologies))*weightMethodology +
		float64(len(c.MatchedPlatforms))*weightPlatform
	possible := float64(len(r.CoreSkills))*weightCore +
		float64(len(r.Frameworks))*weightFramework +
		float64(len(r.Methodologies))*weightMethodology +
		float64(len(r.Platforms))*weightPlatform

	if possible > 0 {
		c.Score = total / possible * 100
	}
	return c
}
