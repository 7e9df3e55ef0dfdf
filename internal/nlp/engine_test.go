package nlp

import (
	"reflect"
	"testing"
)

func newTestEngine(t *testing.T) *PunktEngine {
	t.Helper()
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

func TestSentences(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two sentences",
			text: "Hello world. This is fine.",
			want: []string{"Hello world.", "This is fine."},
		},
		{
			name: "single sentence without terminator",
			text: "All invoices must be archived",
			want: []string{"All invoices must be archived"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: []string{},
		},
		{
			name: "leading and trailing whitespace trimmed",
			text: "  First sentence.   Second sentence.  ",
			want: []string{"First sentence.", "Second sentence."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentencesHandlesAbbreviations(t *testing.T) {
	e := newTestEngine(t)

	got := e.Sentences("Dr. Smith signed the form. The audit begins Monday.")
	if len(got) != 2 {
		t.Fatalf("Sentences() = %v, want 2 sentences", got)
	}
}

func TestEntitiesFindsDateShapes(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "month day year",
			text: "Reports are due by June 5, 2024 at the latest.",
			want: []string{"June 5, 2024"},
		},
		{
			name: "month year",
			text: "Renewal happens in June 2024.",
			want: []string{"June 2024"},
		},
		{
			name: "iso date",
			text: "Effective 2024-06-01 the policy changes.",
			want: []string{"2024-06-01"},
		},
		{
			name: "slash date",
			text: "Filed on 06/01/2024 with the registrar.",
			want: []string{"06/01/2024"},
		},
		{
			name: "day of month year",
			text: "Due on the 5th of June 2024.",
			want: []string{"5th of June 2024"},
		},
		{
			name: "multiple dates",
			text: "Starts June 2024 and ends 2025-01-31.",
			want: []string{"June 2024", "2025-01-31"},
		},
		{
			name: "no dates",
			text: "Nothing scheduled here.",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ents := e.Entities(tt.text)
			got := make([]string, 0, len(ents))
			for _, ent := range ents {
				if ent.Label != LabelDate {
					t.Errorf("Entities(%q) returned label %q, want %q", tt.text, ent.Label, LabelDate)
				}
				got = append(got, ent.Text)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Entities(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
