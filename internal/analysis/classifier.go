package analysis

import "strings"

// Classifier assigns a document a coarse subject-matter domain by
// keyword frequency over the fixed taxonomy.
type Classifier struct {
	rules *RuleSet
}

func NewClassifier(rules *RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify scores every domain by summing keyword occurrence counts in
// the lowercased text and returns the highest scorer. An all-zero score
// vector yields DomainOther; ties keep the first domain in taxonomy
// order, since a later domain only wins with a strictly higher score.
func (c *Classifier) Classify(text string) string {
	t := strings.ToLower(text)

	best := DomainOther
	bestScore := 0
	for _, d := range c.rules.Domains {
		score := 0
		for _, kw := range d.Keywords {
			score += strings.Count(t, kw)
		}
		if score > bestScore {
			best = d.Label
			bestScore = score
		}
	}

	return best
}
