package analysis

import (
	"reflect"
	"testing"

	"github.com/compliance-checklist/backend/internal/nlp"
)

func newTestEngine(t *testing.T) *nlp.PunktEngine {
	t.Helper()
	e, err := nlp.NewEngine()
	if err != nil {
		t.Fatalf("nlp.NewEngine() error: %v", err)
	}
	return e
}

func TestDetectorFindsObligations(t *testing.T) {
	d := NewDetector(DefaultRules(), newTestEngine(t), nlp.NewWindowSearcher())

	text := "Tenants must pay rent by June 2024. The garden looks lovely. Landlords shall provide notice before entry."
	got := d.Detect(text)
	if len(got) != 2 {
		t.Fatalf("Detect() returned %d obligations, want 2: %+v", len(got), got)
	}
	if got[0].Sentence != "Tenants must pay rent by June 2024." {
		t.Errorf("first obligation = %q", got[0].Sentence)
	}
	if got[1].Sentence != "Landlords shall provide notice before entry." {
		t.Errorf("second obligation = %q", got[1].Sentence)
	}

	if !reflect.DeepEqual(got[0].Dates, []string{"2024-06-01"}) {
		t.Errorf("first obligation dates = %v, want [2024-06-01]", got[0].Dates)
	}
	if len(got[1].Dates) != 0 || got[1].Dates == nil {
		t.Errorf("second obligation dates = %v, want empty non-nil slice", got[1].Dates)
	}
}

func TestDetectorReturnsEmptySliceNotNil(t *testing.T) {
	d := NewDetector(DefaultRules(), newTestEngine(t), nil)

	got := d.Detect("The weather was pleasant all week.")
	if got == nil {
		t.Fatal("Detect() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Detect() = %+v, want no obligations", got)
	}
}

func TestDetectorDeduplicatesDates(t *testing.T) {
	d := NewDetector(DefaultRules(), newTestEngine(t), nlp.NewWindowSearcher())

	// Two surface forms of the same calendar date collapse to one entry.
	got := d.Detect("The filing must arrive by 2024-06-01, also written June 1, 2024 in the cover letter.")
	if len(got) != 1 {
		t.Fatalf("Detect() returned %d obligations, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Dates, []string{"2024-06-01"}) {
		t.Errorf("dates = %v, want exactly [2024-06-01]", got[0].Dates)
	}
}

func TestDetectorSortsDatesAscending(t *testing.T) {
	d := NewDetector(DefaultRules(), newTestEngine(t), nil)

	got := d.Detect("Reviews must run on December 1, 2024 and again on January 15, 2024 and March 3, 2024.")
	if len(got) != 1 {
		t.Fatalf("Detect() returned %d obligations, want 1", len(got))
	}
	want := []string{"2024-01-15", "2024-03-03", "2024-12-01"}
	if !reflect.DeepEqual(got[0].Dates, want) {
		t.Errorf("dates = %v, want %v", got[0].Dates, want)
	}
}

func TestDetectorWithoutSearcherSkipsProseDates(t *testing.T) {
	withSearcher := NewDetector(DefaultRules(), newTestEngine(t), nlp.NewWindowSearcher())
	withoutSearcher := NewDetector(DefaultRules(), newTestEngine(t), nil)

	text := "Renewal paperwork must be submitted by June 2024."
	a := withSearcher.Detect(text)
	b := withoutSearcher.Detect(text)
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("Detect() counts = %d and %d, want 1 and 1", len(a), len(b))
	}

	// The entity tagger already recognizes the month-year form, so both
	// configurations agree here; the searcher must not add duplicates.
	if !reflect.DeepEqual(a[0].Dates, b[0].Dates) {
		t.Errorf("searcher changed dates: %v vs %v", a[0].Dates, b[0].Dates)
	}
	if !reflect.DeepEqual(a[0].Dates, []string{"2024-06-01"}) {
		t.Errorf("dates = %v, want [2024-06-01]", a[0].Dates)
	}
}

func TestDetectorCaseInsensitivePatterns(t *testing.T) {
	d := NewDetector(DefaultRules(), newTestEngine(t), nil)

	got := d.Detect("EMPLOYEES MUST WEAR BADGES AT ALL TIMES.")
	if len(got) != 1 {
		t.Errorf("Detect() = %+v, want 1 obligation from uppercase text", got)
	}
}
