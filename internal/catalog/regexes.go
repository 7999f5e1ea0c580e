package catalog

import (
	"fmt"
	"regexp"
)

// HeadingRegex is a compiled skills heading
type HeadingRegex struct {
	Heading   *regexp.Regexp
	Continues bool
}

// SectionRegex is a compiled heading/stop pair
type SectionRegex struct {
	Heading *regexp.Regexp
	Stop    *regexp.Regexp
}

// NamedRegex is a compiled regex with its reporting name
type NamedRegex struct {
	Name string
	Re   *regexp.Regexp
}

// Regexes holds every pattern of a catalog, compiled once
type Regexes struct {
	Email              *regexp.Regexp
	Phones             []*regexp.Regexp
	SkillsHeadings     []HeadingRegex
	SkillsBlockStop    *regexp.Regexp
	SkillsSplit        *regexp.Regexp
	Experience         SectionRegex
	Projects           SectionRegex
	YearRange          *regexp.Regexp
	StatedYears        *regexp.Regexp
	SpanYear           *regexp.Regexp
	Positions          []*regexp.Regexp
	Internship         *regexp.Regexp
	Leadership         *regexp.Regexp
	ProjectLines       []*regexp.Regexp
	GitHub             *regexp.Regexp
	Demos              []*regexp.Regexp
	Education          []*regexp.Regexp
	GPA                *regexp.Regexp
	Achievements       []*regexp.Regexp
	ExperienceConcepts []*regexp.Regexp
	TechnicalFamilies  []NamedRegex
	SentenceSplit      *regexp.Regexp
	SectionHeader      *regexp.Regexp
}

// compiler records the first compilation error so the table below reads flat
type compiler struct {
	err error
}

func (c *compiler) one(field, expr string) *regexp.Regexp {
	if c.err != nil {
		return nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		c.err = fmt.Errorf("%s: %w", field, err)
		return nil
	}
	return re
}

func (c *compiler) many(field string, exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for i, expr := range exprs {
		out = append(out, c.one(fmt.Sprintf("%s[%d]", field, i), expr))
	}
	return out
}

func (c *compiler) section(field string, p SectionPattern) SectionRegex {
	return SectionRegex{
		Heading: c.one(field+".heading", p.Heading),
		Stop:    c.one(field+".stop", p.Stop),
	}
}

func compile(p *Patterns) (*Regexes, error) {
	c := &compiler{}

	r := &Regexes{
		Email:              c.one("email", p.Email),
		Phones:             c.many("phones", p.Phones),
		SkillsBlockStop:    c.one("skills_block_stop", p.SkillsBlockStop),
		SkillsSplit:        c.one("skills_split", p.SkillsSplit),
		Experience:         c.section("experience_section", p.ExperienceSection),
		Projects:           c.section("projects_section", p.ProjectsSection),
		YearRange:          c.one("year_range", p.YearRange),
		StatedYears:        c.one("stated_years", p.StatedYears),
		SpanYear:           c.one("span_year", p.SpanYear),
		Positions:          c.many("positions", p.Positions),
		Internship:         c.one("internship", p.Internship),
		Leadership:         c.one("leadership", p.Leadership),
		ProjectLines:       c.many("project_lines", p.ProjectLines),
		GitHub:             c.one("github", p.GitHub),
		Demos:              c.many("demos", p.Demos),
		Education:          c.many("education", p.Education),
		GPA:                c.one("gpa", p.GPA),
		Achievements:       c.many("achievements", p.Achievements),
		ExperienceConcepts: c.many("experience_concepts", p.ExperienceConcepts),
		SentenceSplit:      c.one("sentence_split", p.SentenceSplit),
		SectionHeader:      c.one("section_header", p.SectionHeader),
	}

	for i, h := range p.SkillsHeadings {
		r.SkillsHeadings = append(r.SkillsHeadings, HeadingRegex{
			Heading:   c.one(fmt.Sprintf("skills_headings[%d]", i), h.Heading),
			Continues: h.Continues,
		})
	}
	for _, f := range p.TechnicalFamilies {
		r.TechnicalFamilies = append(r.TechnicalFamilies, NamedRegex{
			Name: f.Name,
			Re:   c.one("technical_families."+f.Name, f.Pattern),
		})
	}

	if c.err != nil {
		return nil, c.err
	}
	return r, nil
}
