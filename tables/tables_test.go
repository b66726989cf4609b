package tables

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/language"
)

func TestDefaultTables(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := Default()
	if reg != Default() {
		t.Errorf("default registry should be created once")
	}
	locales := Locales()
	if len(locales) != 2 || locales[0] != language.Arabic || locales[1] != language.Estonian {
		t.Errorf("expected locales [ar et], have %v", locales)
	}
	rs, err := reg.RulesFor(language.Arabic, dimex.Numeral)
	if err != nil || rs.Dimension() != dimex.Numeral {
		t.Fatalf("expected Arabic numeral rules, have %v", err)
	}
	if _, err = reg.RulesFor(language.Arabic, dimex.Ordinal); !errors.Is(err, ErrNoRules) {
		t.Errorf("expected no Arabic ordinal rules, have %v", err)
	}
	if dims := reg.Dimensions(language.Estonian); len(dims) != 1 || dims[0] != dimex.Ordinal {
		t.Errorf("expected Estonian ordinal rules only, have %v", dims)
	}
}

func TestLocaleFallback(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := Default()
	for _, tag := range []string{"ar-EG", "ar-SA", "ar-Arab-MA"} {
		rs, err := reg.RulesFor(language.MustParse(tag), dimex.Numeral)
		if err != nil {
			t.Errorf("%s: expected fallback to ar, have %v", tag, err)
			continue
		}
		if rs.Locale() != language.Arabic {
			t.Errorf("%s: expected fallback to ar, have %s", tag, rs.Locale())
		}
	}
	if _, err := reg.RulesFor(language.MustParse("et-EE"), dimex.Ordinal); err != nil {
		t.Errorf("et-EE should fall back to et, have %v", err)
	}
	if _, err := reg.RulesFor(language.Finnish, dimex.Ordinal); !errors.Is(err, ErrNoRules) {
		t.Errorf("Finnish should not fall back to Estonian, have %v", err)
	}
}

func TestRegister(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := New()
	rule := dimex.NewLexicon(nil, map[string]dimex.Value{"one": dimex.NumeralValue{Value: 1}}).Rule("one")
	rs, _ := dimex.NewRuleSet(language.English, dimex.Numeral, rule)
	if err := reg.Register(rs); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(rs); !errors.Is(err, dimex.ErrMalformedRuleTable) {
		t.Errorf("expected duplicate registration to fail, have %v", err)
	}
	if _, err := reg.RulesFor(language.English, dimex.Ordinal); !errors.Is(err, ErrNoRules) {
		t.Errorf("expected ErrNoRules, have %v", err)
	}
	two := dimex.NewLexicon(nil, map[string]dimex.Value{"two": dimex.NumeralValue{Value: 2}}).Rule("two")
	if err := reg.Extend(language.English, dimex.Numeral, two); err != nil {
		t.Fatal(err)
	}
	ext, _ := reg.RulesFor(language.English, dimex.Numeral)
	if ext.Len() != 2 || rs.Len() != 1 {
		t.Errorf("extension should replace the registered set, have %d rules", ext.Len())
	}
	if err := reg.Extend(language.English, dimex.Numeral, two); !errors.Is(err, dimex.ErrMalformedRuleTable) {
		t.Errorf("duplicate rule names should be rejected, have %v", err)
	}
}

const dozen = `
locale: ar
dimension: numeral
rules:
  - name: dozen
    values:
      دزينة: 12
  - name: gross
    values:
      غروس: 144
    grain: 2
`

func TestLoadLexicon(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := New()
	builtin, _ := Default().RulesFor(language.Arabic, dimex.Numeral)
	if err := reg.Register(builtin); err != nil {
		t.Fatal(err)
	}
	if err := reg.LoadLexicon(strings.NewReader(dozen)); err != nil {
		t.Fatal(err)
	}
	rs, _ := reg.RulesFor(language.Arabic, dimex.Numeral)
	if rs.Len() != builtin.Len()+2 {
		t.Errorf("expected 2 additional rules, have %d", rs.Len()-builtin.Len())
	}
	last := rs.Rule(rs.Len() - 1)
	if last.Name != "gross" {
		t.Errorf("lexicon rules should be appended, last rule is %q", last.Name)
	}
	tok := dimex.NewToken(dimex.Range{Start: 0, End: 8}, "غروس", dimex.RegexValue{Groups: []string{"غروس"}})
	v, ok := last.Produce([]dimex.Token{tok})
	n, _ := v.(dimex.NumeralValue)
	if !ok || n.Value != 144 || n.Grain == nil || *n.Grain != 2 {
		t.Errorf("expected 144 with grain 2, have %v", v)
	}
}

func TestLoadRegionalLexicon(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg := New()
	builtin, _ := Default().RulesFor(language.Arabic, dimex.Numeral)
	if err := reg.Register(builtin); err != nil {
		t.Fatal(err)
	}
	egyptian := language.MustParse("ar-EG")
	doc := strings.Replace(dozen, "locale: ar\n", "locale: ar-EG\n", 1)
	if err := reg.LoadLexicon(strings.NewReader(doc)); err != nil {
		t.Fatal(err)
	}
	rs, err := reg.RulesFor(egyptian, dimex.Numeral)
	if err != nil {
		t.Fatal(err)
	}
	if rs.Locale() != egyptian || rs.Len() != builtin.Len()+2 {
		t.Errorf("expected %d rules for ar-EG, have %d for %s", builtin.Len()+2, rs.Len(), rs.Locale())
	}
	if rs.Rule(0).Name != builtin.Rule(0).Name {
		t.Errorf("built-in rules should come first, first rule is %q", rs.Rule(0).Name)
	}
	if ar, _ := reg.RulesFor(language.Arabic, dimex.Numeral); ar.Len() != builtin.Len() {
		t.Errorf("rules for ar should be unchanged, have %d", ar.Len())
	}
}

func TestMalformedLexicon(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var docs = []string{
		"locale: ar\ndimension: time\nrules:\n  - name: x\n    values: {x: 1}\n",
		"locale: ar\ndimension: numeral\nrules: []\n",
		"locale: ar\ndimension: numeral\nrules:\n  - name: x\n",
		"locale: et\ndimension: ordinal\nrules:\n  - name: x\n    values: {pool: 0.5}\n",
		"locale: ar\ndimension: numeral\nrules:\n  - name: x\n    values: {x: 1}\n    grain: -1\n",
		"locale: ar\ndimension: numeral\nrules:\n  - values: {x: 1}\n",
		"locale: ar\ndimension: numeral\ncolor: blue\n",
		"dimension: numeral\nrules:\n  - name: x\n    values: {x: 1}\n",
		"rules: [",
	}
	for i, doc := range docs {
		err := New().LoadLexicon(strings.NewReader(doc))
		if !errors.Is(err, dimex.ErrMalformedRuleTable) {
			t.Errorf("document %d: expected malformed rule table, have %v", i, err)
		}
	}
}

func TestFromEnvironment(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tag := FromEnvironment()
	if tag == language.Und {
		t.Errorf("environment locale should never be undefined")
	}
	t.Logf("user locale is %s", tag)
}
