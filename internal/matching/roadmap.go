package matching

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jonathan/resume-ats/internal/narrative"
	"github.com/jonathan/resume-ats/internal/types"
)

var milestoneDays = []int{30, 90, 180, 365}

func roadmap(f *types.FactModel, top types.RoleSuggestion) *types.CareerRoadmap {
	milestones := make([]types.Milestone, 0, len(milestoneDays))
	for _, d := range milestoneDays {
		milestones = append(milestones, types.Milestone{
			Days: d,
			Goal: phrase("roadmap.milestone." + strconv.Itoa(d)),
		})
	}

	return &types.CareerRoadmap{
		CurrentPosition: render("roadmap.current", narrative.Vars{"Years": strconv.Itoa(f.ExperienceYears)}),
		RecommendedTarget: render("roadmap.target", narrative.Vars{
			"Role": top.Role,
			"Fit":  string(top.FitLevel),
		}),
		DevelopmentTimeline:  top.ReadinessTimeline,
		SkillDevelopmentPlan: top.DevelopmentPlan.SkillPriority,
		Milestones:           milestones,
		SuccessMetrics:       narrative.Lines(narrative.MatchingFile, "roadmap.metrics."),
	}
}

func (m *Matcher) market(f *types.FactModel, top []types.RoleSuggestion) *types.MarketAnalysis {
	mk := m.cat.Market
	opp := types.MarketOpportunities{
		HighCompatibility: []string{},
		Emerging:          []string{},
		Stable:            []string{},
	}

	for _, s := range top {
		if s.CompatibilityScore >= mk.HighCompatibilityThreshold {
			opp.HighCompatibility = append(opp.HighCompatibility, s.Role)
		}
		for _, marker := range mk.EmergingMarkers {
			if strings.Contains(s.Role, marker) {
				opp.Emerging = append(opp.Emerging, s.Role)
				break
			}
		}
		for _, key := range mk.StableRoles {
			if s.RoleKey == key {
				opp.Stable = append(opp.Stable, s.Role)
				break
			}
		}
	}

	low, high := m.SalaryRange(f.ExperienceYears, top[0].CompatibilityScore)
	return &types.MarketAnalysis{
		Opportunities: opp,
		Salary: types.SalaryExpectations{
			CurrentLevelRange: render("market.salary_range", narrative.Vars{
				"Low":  humanize.Comma(int64(low)),
				"High": humanize.Comma(int64(high)),
			}),
			Low:              low,
			High:             high,
			GrowthPotential:  mk.GrowthPotential,
			PremiumPositions: render("market.premium", narrative.Vars{"Role": top[0].Role}),
		},
		Trends: types.IndustryTrends{
			HotSkills:         nonNil(mk.HotSkills),
			DecliningDemand:   nonNil(mk.DecliningDemand),
			FutureGrowthAreas: nonNil(mk.FutureGrowthAreas),
		},
		Geography: types.GeographicConsiderations{
			TechHubs:             nonNil(mk.TechHubs),
			RemoteOpportunities:  mk.RemoteOpportunities,
			InternationalMarkets: mk.InternationalMarkets,
		},
	}
}

// SalaryRange returns the base salary band for the highest bracket the
// experience years reach, scaled by the first multiplier whose minimum the
// compatibility score meets. Scaled figures are truncated to whole dollars.
func (m *Matcher) SalaryRange(years int, score float64) (int, int) {
	mk := m.cat.Market

	bracket := mk.SalaryBrackets[0]
	for _, b := range mk.SalaryBrackets {
		if years >= b.MinYears {
			bracket = b
		}
	}

	factor := 1.0
	for _, mult := range mk.CompatibilityMultipliers {
		if score >= mult.MinScore {
			factor = mult.Factor
			break
		}
	}
	return int(float64(bracket.Low) * factor), int(float64(bracket.High) * factor)
}
