// Package nlp provides the language collaborators the analysis pipeline
// depends on: sentence segmentation, date entity tagging, date parsing,
// and an optional free-text date search capability.
package nlp

import (
	"regexp"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// LabelDate is the entity label for date-like spans.
const LabelDate = "DATE"

// Entity is one tagged span of text.
type Entity struct {
	Text  string
	Label string
}

// Engine segments text into sentences and tags entities.
type Engine interface {
	// Sentences returns the trimmed, non-empty sentences of text in order.
	Sentences(text string) []string
	// Entities returns tagged spans found in text.
	Entities(text string) []Entity
}

// monthNames matches full and abbreviated English month names.
const monthNames = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t|tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// dateEntityRegex recognizes the date shapes the tagger emits as DATE
// entities. Longer alternatives come first so "June 5, 2024" wins over
// the bare month-year form.
var dateEntityRegex = regexp.MustCompile(`(?i)\b(?:` +
	monthNames + `\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}` + `|` +
	`\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthNames + `\.?,?\s+\d{4}` + `|` +
	monthNames + `\.?,?\s+\d{4}` + `|` +
	`\d{4}-\d{1,2}-\d{1,2}` + `|` +
	`\d{1,2}[/.]\d{1,2}[/.]\d{2,4}` +
	`)\b`)

// PunktEngine is the default Engine: punkt sentence segmentation with
// pattern-based date entity tagging.
type PunktEngine struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewEngine creates a PunktEngine backed by the English punkt model.
func NewEngine() (*PunktEngine, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &PunktEngine{tokenizer: tok}, nil
}

func (e *PunktEngine) Sentences(text string) []string {
	out := make([]string, 0)
	for _, s := range e.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (e *PunktEngine) Entities(text string) []Entity {
	matches := dateEntityRegex.FindAllString(text, -1)
	out := make([]Entity, 0, len(matches))
	for _, m := range matches {
		out = append(out, Entity{Text: m, Label: LabelDate})
	}
	return out
}
