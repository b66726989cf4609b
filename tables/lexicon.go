package tables

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/locale/ar"
	"github.com/npillmayer/dimex/numeral"
	"github.com/npillmayer/dimex/ordinal"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LexiconFile is the format of lexicon extensions:
//
//    locale: ar
//    dimension: numeral
//    rules:
//      - name: dozen
//        values:
//          دزينة: 12
//        grain: 1
//
// Every rule matches the words listed in values. Grain and multipliable
// apply to numerals only.
type LexiconFile struct {
	Locale    string         `yaml:"locale"`
	Dimension string         `yaml:"dimension"`
	Rules     []LexiconEntry `yaml:"rules"`
}

// LexiconEntry is a single rule of a lexicon file.
type LexiconEntry struct {
	Name         string             `yaml:"name"`
	Values       map[string]float64 `yaml:"values"`
	Grain        *int               `yaml:"grain,omitempty"`
	Multipliable bool               `yaml:"multipliable,omitempty"`
}

// LoadLexicon reads a lexicon file and appends its rules to the registry's
// rule set for the file's locale and dimension. Errors in the file are
// reported as errors matching dimex.ErrMalformedRuleTable.
func (reg *Registry) LoadLexicon(r io.Reader) error {
	var lf LexiconFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil {
		return &dimex.RuleTableError{Reason: "cannot read lexicon", Err: err}
	}
	locale, dim, rules, err := lf.rules()
	if err != nil {
		return err
	}
	return reg.Extend(locale, dim, rules...)
}

// LoadLexiconFile reads a lexicon file from disk (see LoadLexicon).
func (reg *Registry) LoadLexiconFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	CT().Infof("loading lexicon %s", path)
	if err = reg.LoadLexicon(f); err != nil {
		return fmt.Errorf("lexicon %s: %w", path, err)
	}
	return nil
}

func (lf LexiconFile) rules() (language.Tag, dimex.Dimension, []dimex.Rule, error) {
	fail := func(tag language.Tag, dim dimex.Dimension, rule, reason string, err error) (language.Tag, dimex.Dimension, []dimex.Rule, error) {
		return tag, dim, nil, &dimex.RuleTableError{Locale: tag, Dim: dim, Rule: rule, Reason: reason, Err: err}
	}
	tag, err := language.Parse(lf.Locale)
	if err != nil || lf.Locale == "" {
		return fail(language.Und, dimex.AnyDimension, "", "invalid locale "+lf.Locale, err)
	}
	dim, err := dimex.ParseDimension(lf.Dimension)
	if err != nil || dim == dimex.AnyDimension || dim == dimex.RegexMatch {
		return fail(tag, dim, "", "invalid dimension "+lf.Dimension, err)
	}
	if len(lf.Rules) == 0 {
		return fail(tag, dim, "", "no rules", nil)
	}
	rules := make([]dimex.Rule, 0, len(lf.Rules))
	for _, e := range lf.Rules {
		if len(e.Values) == 0 {
			return fail(tag, dim, e.Name, "no values", nil)
		}
		words := make(map[string]dimex.Value, len(e.Values))
		for _, w := range sortedWords(e.Values) {
			v := e.Values[w]
			switch dim {
			case dimex.Numeral:
				entry := numeral.Plain(v)
				if e.Grain != nil {
					if *e.Grain < 0 {
						return fail(tag, dim, e.Name, "negative grain", nil)
					}
					entry.Grain = *e.Grain
				}
				entry.Multipliable = e.Multipliable
				words[w] = entry.NumeralValue()
			case dimex.Ordinal:
				if v != math.Trunc(v) || v < 1 || e.Grain != nil || e.Multipliable {
					return fail(tag, dim, e.Name, fmt.Sprintf("invalid ordinal %q: %v", w, v), nil)
				}
				words[w] = ordinal.Ordinal(int(v))
			}
		}
		rules = append(rules, lexiconRule(tag, e.Name, words))
	}
	return tag, dim, rules, nil
}

// lexiconRule creates a lexicon rule with the folding appropriate for a
// locale.
func lexiconRule(tag language.Tag, name string, words map[string]dimex.Value) dimex.Rule {
	if base, _ := tag.Base(); base.String() == "ar" {
		return ar.LexiconRule(name, words)
	}
	return dimex.NewLexicon(nil, words).Rule(name)
}

func sortedWords(m map[string]float64) []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
