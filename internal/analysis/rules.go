// Package analysis implements the document analysis pipeline: domain
// classification, extractive summarization, obligation detection with
// date normalization, risk scoring, and batch aggregation into a
// checklist with stable identifiers.
package analysis

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DomainOther is the sentinel label when no domain keyword occurs.
const DomainOther = "Other"

// DomainRule maps one domain label to its lowercase keywords. Taxonomy
// order is list order; classification tie-breaks pick the first label.
type DomainRule struct {
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// RiskRules holds the risk keyword tiers. High is checked before Medium.
type RiskRules struct {
	High   []string `yaml:"high" json:"high"`
	Medium []string `yaml:"medium" json:"medium"`
}

// RuleSet is the pipeline's rule tables: the domain taxonomy, the
// obligation-signaling patterns, and the risk keyword tiers. A RuleSet is
// loaded once and read-only afterwards.
type RuleSet struct {
	Domains            []DomainRule `yaml:"domains" json:"domains"`
	ObligationPatterns []string     `yaml:"obligation_patterns" json:"obligation_patterns"`
	Risk               RiskRules    `yaml:"risk" json:"risk"`

	compiled []*regexp.Regexp
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() *RuleSet {
	rs := &RuleSet{
		Domains: []DomainRule{
			{Label: "Data Privacy", Keywords: []string{"gdpr", "personal data", "data protection", "privacy", "ccpa", "personal information"}},
			{Label: "Finance", Keywords: []string{"invoice", "tax", "financial statement", "balance sheet", "auditor", "sox", "audit"}},
			{Label: "HR / Labour", Keywords: []string{"employee", "employee handbook", "termination", "leave", "hr policy", "wage"}},
			{Label: "Safety / Environmental", Keywords: []string{"safety", "haccp", "environment", "osha", "hazard", "safety manual"}},
		},
		ObligationPatterns: []string{
			`\bmust\b`,
			`\bshall\b`,
			`\bis required to\b`,
			`\bare required to\b`,
			`\bshould\b`,
			`\bdeadline\b`,
			`\bdue by\b`,
			`\bby\s+\w+\s+\d{4}\b`,
			`\bdue\s+on\b`,
		},
		Risk: RiskRules{
			High:   []string{"penalty", "fine", "criminal", "suspend", "terminate"},
			Medium: []string{"required", "must", "shall", "deadline"},
		},
	}
	if err := rs.compile(); err != nil {
		// Built-in patterns are fixed literals; a compile failure here is a
		// programming error.
		panic(err)
	}
	return rs
}

// LoadRules reads a YAML rules file.
func LoadRules(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRules(f)
}

// ParseRules parses and validates rule tables from YAML.
func ParseRules(r io.Reader) (*RuleSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	if err := rs.validate(); err != nil {
		return nil, err
	}
	if err := rs.compile(); err != nil {
		return nil, err
	}

	return &rs, nil
}

func (rs *RuleSet) validate() error {
	if len(rs.Domains) == 0 {
		return fmt.Errorf("rules must define at least one domain")
	}
	for _, d := range rs.Domains {
		if d.Label == "" {
			return fmt.Errorf("domain with empty label")
		}
		if len(d.Keywords) == 0 {
			return fmt.Errorf("domain %q has no keywords", d.Label)
		}
		for _, kw := range d.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("domain %q has an empty keyword", d.Label)
			}
		}
	}
	if len(rs.ObligationPatterns) == 0 {
		return fmt.Errorf("rules must define at least one obligation pattern")
	}
	for _, p := range rs.ObligationPatterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("empty obligation pattern")
		}
	}
	// An empty risk keyword would match every sentence via Contains.
	for _, kw := range rs.Risk.High {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("empty high risk keyword")
		}
	}
	for _, kw := range rs.Risk.Medium {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("empty medium risk keyword")
		}
	}
	return nil
}

func (rs *RuleSet) compile() error {
	rs.compiled = make([]*regexp.Regexp, 0, len(rs.ObligationPatterns))
	for _, p := range rs.ObligationPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("obligation pattern %q: %w", p, err)
		}
		rs.compiled = append(rs.compiled, re)
	}
	return nil
}

// MatchesObligation reports whether a lowercased sentence contains any
// obligation-signaling pattern.
func (rs *RuleSet) MatchesObligation(lowered string) bool {
	for _, re := range rs.compiled {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}
