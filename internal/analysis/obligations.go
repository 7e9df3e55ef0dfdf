package analysis

import (
	"sort"
	"strings"

	"github.com/compliance-checklist/backend/internal/models"
	"github.com/compliance-checklist/backend/internal/nlp"
)

// Detector finds obligation-bearing sentences and normalizes the dates
// they mention.
type Detector struct {
	rules    *RuleSet
	engine   nlp.Engine
	parser   nlp.DateParser
	searcher nlp.Searcher // optional; nil degrades to entity dates only
}

func NewDetector(rules *RuleSet, engine nlp.Engine, searcher nlp.Searcher) *Detector {
	return &Detector{rules: rules, engine: engine, searcher: searcher}
}

// Detect returns one Obligation per obligation-bearing sentence, in the
// order the sentences appear in the text. Date candidates come from the
// engine's DATE entities plus the free-text searcher when present; every
// parse failure silently drops that candidate. Dates are deduplicated by
// ISO representation and sorted ascending. A qualifying sentence with no
// parseable dates still yields an Obligation with an empty date set.
func (d *Detector) Detect(text string) []models.Obligation {
	out := make([]models.Obligation, 0)
	for _, sentence := range d.engine.Sentences(text) {
		if !d.rules.MatchesObligation(strings.ToLower(sentence)) {
			continue
		}
		out = append(out, models.Obligation{
			Sentence: sentence,
			Dates:    d.sentenceDates(sentence),
		})
	}
	return out
}

func (d *Detector) sentenceDates(sentence string) []string {
	seen := make(map[string]struct{})

	for _, ent := range d.engine.Entities(sentence) {
		if ent.Label != nlp.LabelDate {
			continue
		}
		if t, ok := d.parser.Parse(ent.Text); ok {
			seen[nlp.ISODate(t)] = struct{}{}
		}
	}

	if d.searcher != nil {
		for _, m := range d.searcher.Search(sentence) {
			seen[nlp.ISODate(m.Date)] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for iso := range seen {
		dates = append(dates, iso)
	}
	sort.Strings(dates)
	return dates
}
