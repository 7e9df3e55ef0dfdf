package nlp

import "testing"

func TestDateParserParse(t *testing.T) {
	var p DateParser

	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "iso date", in: "2024-06-01", want: "2024-06-01", ok: true},
		{name: "month day year", in: "June 5, 2024", want: "2024-06-05", ok: true},
		{name: "ordinal day stripped", in: "June 5th, 2024", want: "2024-06-05", ok: true},
		{name: "month year resolves to first", in: "June 2024", want: "2024-06-01", ok: true},
		{name: "month year with comma", in: "June, 2024", want: "2024-06-01", ok: true},
		{name: "abbreviated month year", in: "Jun 2024", want: "2024-06-01", ok: true},
		{name: "lowercase month year", in: "june 2024", want: "2024-06-01", ok: true},
		{name: "slash date", in: "06/01/2024", want: "2024-06-01", ok: true},
		{name: "surrounding whitespace", in: "  2024-06-01  ", want: "2024-06-01", ok: true},
		{name: "garbage", in: "sometime soon", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "whitespace only", in: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Parse(tt.in)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if iso := ISODate(got); iso != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, iso, tt.want)
			}
		})
	}
}

func TestISODateOrderIsChronological(t *testing.T) {
	var p DateParser

	early, ok := p.Parse("January 2, 2024")
	if !ok {
		t.Fatal("Parse(January 2, 2024) failed")
	}
	late, ok := p.Parse("December 24, 2024")
	if !ok {
		t.Fatal("Parse(December 24, 2024) failed")
	}
	if !(ISODate(early) < ISODate(late)) {
		t.Errorf("ISODate ordering broken: %s >= %s", ISODate(early), ISODate(late))
	}
}
