package analysis

import "testing"

func TestClassifier(t *testing.T) {
	c := NewClassifier(DefaultRules())

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "finance document",
			text: "The invoice must be reconciled against the balance sheet before the audit.",
			want: "Finance",
		},
		{
			name: "data privacy document",
			text: "Under GDPR, personal data processing requires consent. Privacy notices are mandatory.",
			want: "Data Privacy",
		},
		{
			name: "safety document",
			text: "The safety manual describes every hazard and the OSHA reporting duties.",
			want: "Safety / Environmental",
		},
		{
			name: "no keywords",
			text: "A quiet afternoon with nothing notable in it.",
			want: DomainOther,
		},
		{
			name: "empty text",
			text: "",
			want: DomainOther,
		},
		{
			name: "case insensitive matching",
			text: "INVOICE INVOICE TAX",
			want: "Finance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifierTieBreakIsTaxonomyOrder(t *testing.T) {
	c := NewClassifier(DefaultRules())

	// One keyword hit each for Data Privacy and Finance. Data Privacy is
	// first in taxonomy order and keeps the tie.
	got := c.Classify("privacy invoice")
	if got != "Data Privacy" {
		t.Errorf("Classify() = %q, want tie broken to first domain %q", got, "Data Privacy")
	}
}

func TestClassifierCountsNonOverlapping(t *testing.T) {
	// Keyword hits are counted without overlap, the way Python's
	// str.count does it: "aa" occurs twice in "aaaa", not three times.
	// With overlapping counts the second domain would score 3 and win;
	// non-overlapping counting leaves a 2-2 tie, kept by the first.
	rules := &RuleSet{Domains: []DomainRule{
		{Label: "Bravo", Keywords: []string{"bb"}},
		{Label: "Alpha", Keywords: []string{"aa"}},
	}}
	c := NewClassifier(rules)

	if got := c.Classify("aaaa bb bb"); got != "Bravo" {
		t.Errorf("Classify() = %q, want %q from non-overlapping counts", got, "Bravo")
	}
}

func TestClassifierIsIdempotent(t *testing.T) {
	c := NewClassifier(DefaultRules())
	text := "employee handbook and hr policy for wage adjustments"

	first := c.Classify(text)
	second := c.Classify(text)
	if first != second {
		t.Errorf("Classify() not idempotent: %q then %q", first, second)
	}
	if first != "HR / Labour" {
		t.Errorf("Classify() = %q, want %q", first, "HR / Labour")
	}
}
