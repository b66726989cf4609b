package dimex

import (
	"testing"
)

func TestLexiconPattern(t *testing.T) {
	lx := NewLexicon(nil, map[string]Value{
		"ten":        NumeralValue{Value: 10},
		"tenth":      OrdinalValue{Value: 10},
		"twenty one": NumeralValue{Value: 21},
	})
	if lx.Len() != 3 {
		t.Fatalf("expected 3 entries, have %d", lx.Len())
	}
	if lx.Pattern() != `twenty\s+one|tenth|ten` {
		t.Errorf("unexpected pattern %s", lx.Pattern())
	}
	v, ok := lx.Lookup("Twenty   One")
	if !ok || v.(NumeralValue).Value != 21 {
		t.Errorf("lookup of folded text failed: %v", v)
	}
	it := Regex(lx.Pattern())
	end, _, ok := it.MatchText("tenth of", 0)
	if !ok || end != 5 {
		t.Errorf("longer words should be tried first, match ends at %d", end)
	}
}

func TestLexiconRule(t *testing.T) {
	lx := NewLexicon(nil, map[string]Value{"dozen": NumeralValue{Value: 12}})
	r := lx.Rule("dozen")
	rs, err := NewRuleSet(testLocale, Numeral, r)
	if err != nil {
		t.Fatal(err)
	}
	tok := NewToken(Range{0, 5}, "Dozen", RegexValue{Groups: []string{"Dozen"}})
	v, ok := rs.Rule(0).Produce([]Token{tok})
	if !ok || v.(NumeralValue).Value != 12 {
		t.Errorf("production should look up the folded body, have %v", v)
	}
}
