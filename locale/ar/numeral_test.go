package ar

import (
	"testing"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/internal/tracing"
	schuko "github.com/npillmayer/schuko/tracing"
)

func TestFold(t *testing.T) {
	tracing.SetTestingLog(t, schuko.LevelDebug)
	//
	var cases = []struct{ in, out string }{
		{"أربعة", "اربعه"},
		{"أَرْبَعَة", "اربعه"},
		{"إحدى", "احدي"},
		{"آلاف", "الاف"},
		{"مائة", "مايه"},
		{"خمســة", "خمسه"},
		{"اثنا   عشر", "اثنا عشر"},
	}
	for _, c := range cases {
		if f := Fold(c.in); f != c.out {
			t.Errorf("Fold(%q) = %q, expected %q", c.in, f, c.out)
		}
	}
}

func TestWordPattern(t *testing.T) {
	tracing.SetTestingLog(t, schuko.LevelDebug)
	//
	it := dimex.Regex(wordsPattern([]string{"أربع", "أربعة"}))
	for _, s := range []string{"أربعة", "اربعه", "أَرْبَعَة", "إربع"} {
		end, _, ok := it.MatchText(s, 0)
		if !ok || end != len(s) {
			t.Errorf("pattern should match all of %q, matches %d bytes", s, end)
		}
	}
}

func TestNumeralRuleSet(t *testing.T) {
	tracing.SetTestingLog(t, schuko.LevelInfo)
	//
	rs, err := NumeralRuleSet()
	if err != nil {
		t.Fatal(err)
	}
	if rs.Locale() != Locale || rs.Dimension() != dimex.Numeral {
		t.Errorf("rule set has wrong locale or dimension: %s/%s", rs.Locale(), rs.Dimension())
	}
	rule := LexiconRule("test", map[string]dimex.Value{"مائة": dimex.NumeralValue{Value: 100}})
	tok := dimex.NewToken(dimex.Range{Start: 0, End: 6}, "مئة", dimex.RegexValue{})
	if _, ok := rule.Produce([]dimex.Token{tok}); ok {
		t.Errorf("'مئة' is not a spelling of 'مائة' in the lexicon")
	}
	tok.Body = "مائه"
	if v, ok := rule.Produce([]dimex.Token{tok}); !ok || v.String() != "100" {
		t.Errorf("'مائه' should be found as 100, is %v", v)
	}
}
