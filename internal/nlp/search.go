package nlp

import (
	"regexp"
	"strings"
	"time"
)

// DateMatch is one date hit found in free text.
type DateMatch struct {
	Text string
	Date time.Time
}

// Searcher scans free text for date mentions beyond what the entity
// tagger finds. It is an optional capability: a nil Searcher degrades the
// obligation detector to entity dates only.
type Searcher interface {
	Search(text string) []DateMatch
}

// dateishRegex gates candidate windows: a window must carry a four-digit
// year or a full numeric date before the parser is ever consulted.
var dateishRegex = regexp.MustCompile(`\b\d{4}\b|\b\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}\b`)

// bareNumberRegex rejects windows that are nothing but digits. A lone
// "2024" (or an amount like "5000") is not a date mention.
var bareNumberRegex = regexp.MustCompile(`^\d+$`)

// maxWindow is the largest token window tried, enough for "June 5, 2024".
const maxWindow = 4

// WindowSearcher slides shrinking token windows over the text and keeps
// the windows the date parser accepts. Larger windows win: tokens already
// claimed by a match are not retried at smaller sizes, so "June 2024"
// does not also surface a bare "2024".
type WindowSearcher struct {
	parser DateParser
}

func NewWindowSearcher() *WindowSearcher {
	return &WindowSearcher{}
}

func (w *WindowSearcher) Search(text string) []DateMatch {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	claimed := make([]bool, len(tokens))
	var out []DateMatch

	for size := maxWindow; size >= 1; size-- {
		for start := 0; start+size <= len(tokens); start++ {
			if anyClaimed(claimed[start : start+size]) {
				continue
			}
			window := strings.Trim(strings.Join(tokens[start:start+size], " "), ".,;:()")
			if !dateishRegex.MatchString(window) || bareNumberRegex.MatchString(window) {
				continue
			}
			t, ok := w.parser.Parse(window)
			if !ok {
				continue
			}
			for i := start; i < start+size; i++ {
				claimed[i] = true
			}
			out = append(out, DateMatch{Text: window, Date: t})
		}
	}

	return out
}

func anyClaimed(window []bool) bool {
	for _, c := range window {
		if c {
			return true
		}
	}
	return false
}
