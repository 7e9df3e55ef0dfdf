package nlp

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ordinalRegex strips day ordinals ("5th" -> "5") before parsing.
var ordinalRegex = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)

// monthYearLayouts cover month-year mentions dateparse does not accept.
// A bare month-year resolves to the first of that month.
var monthYearLayouts = []string{
	"January 2006",
	"January, 2006",
	"Jan 2006",
	"Jan, 2006",
}

// DateParser normalizes free-form date strings to calendar dates.
// Failures are reported, never raised: a false return means the caller
// should drop the candidate.
type DateParser struct{}

// Parse converts a date mention into a calendar date.
func (DateParser) Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	cleaned := ordinalRegex.ReplaceAllString(s, "$1")
	if t, err := dateparse.ParseAny(cleaned); err == nil {
		return t, true
	}

	titled := titleWords(cleaned)
	for _, layout := range monthYearLayouts {
		if t, err := time.Parse(layout, titled); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ISODate renders a calendar date in ISO-8601 form. Lexicographic order
// of these strings is chronological order.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// titleWords upper-cases the first letter of each word so month names
// match the case-sensitive time.Parse layouts.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
