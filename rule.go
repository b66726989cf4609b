package dimex

import (
	"strings"

	"golang.org/x/text/language"
)

// Production computes the payload for a rule match. It receives the tokens
// bound to the rule's pattern items, in pattern order; regex items are
// represented by RegexMatch tokens.
//
// Returning false rejects the match. This is not an error: the token
// window may be structurally fine but semantically impossible, e.g. "two
// hundred hundred".
type Production func(tokens []Token) (Value, bool)

// Rule is a named sequence of pattern items together with a production.
type Rule struct {
	Name    string
	Pattern []Item
	Produce Production
}

func (r Rule) String() string {
	items := make([]string, len(r.Pattern))
	for i, it := range r.Pattern {
		items[i] = it.String()
	}
	return r.Name + " ← " + strings.Join(items, " ")
}

// RuleSet is the ordered list of rules for a combination of locale and
// dimension. Rule sets are immutable after construction and safe for
// concurrent use.
type RuleSet struct {
	locale language.Tag
	dim    Dimension
	rules  []Rule
}

// NewRuleSet creates a validated rule set. Rules keep the order in which
// they are given; earlier rules win over later ones in case of ties.
//
// An error matching ErrMalformedRuleTable is returned if the set is
// unusable: a rule without name, duplicate names, an empty pattern, a
// missing production, a regex which does not compile or a dimension not
// registered with the engine.
func NewRuleSet(locale language.Tag, dim Dimension, rules ...Rule) (*RuleSet, error) {
	fail := func(rule, reason string, err error) (*RuleSet, error) {
		e := &RuleTableError{Locale: locale, Dim: dim, Rule: rule, Reason: reason, Err: err}
		CT().Errorf("%s", e.Error())
		return nil, e
	}
	if !Registered(dim) || dim == RegexMatch {
		return fail("", "dimension not registered", ErrUnknownDimension)
	}
	names := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return fail("", "rule without name", nil)
		}
		if names[r.Name] {
			return fail(r.Name, "duplicate rule name", nil)
		}
		names[r.Name] = true
		if len(r.Pattern) == 0 {
			return fail(r.Name, "empty pattern", nil)
		}
		if r.Produce == nil {
			return fail(r.Name, "no production", nil)
		}
		for _, it := range r.Pattern {
			if err := it.validate(); err != nil {
				return fail(r.Name, "invalid pattern item", err)
			}
		}
	}
	rs := &RuleSet{
		locale: locale,
		dim:    dim,
		rules:  append([]Rule(nil), rules...),
	}
	CT().Debugf("rule set %s/%s with %d rules", locale, dim, len(rules))
	return rs, nil
}

// Extend creates a new rule set with additional rules appended. The receiver
// is left untouched.
func (rs *RuleSet) Extend(rules ...Rule) (*RuleSet, error) {
	all := make([]Rule, 0, len(rs.rules)+len(rules))
	all = append(all, rs.rules...)
	all = append(all, rules...)
	return NewRuleSet(rs.locale, rs.dim, all...)
}

// Locale returns the language tag the rules are written for.
func (rs *RuleSet) Locale() language.Tag {
	return rs.locale
}

// Dimension returns the dimension the rule set belongs to.
func (rs *RuleSet) Dimension() Dimension {
	return rs.dim
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Rule returns rule number i.
func (rs *RuleSet) Rule(i int) Rule {
	return rs.rules[i]
}

// Rules returns a copy of the rules.
func (rs *RuleSet) Rules() []Rule {
	return append([]Rule(nil), rs.rules...)
}
