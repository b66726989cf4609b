package engine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/dimex"
	"golang.org/x/text/language"
)

// Provider hands out rule sets for combinations of locale and dimension.
// Package tables implements a Provider.
type Provider interface {
	RulesFor(locale language.Tag, dim dimex.Dimension) (*dimex.RuleSet, error)
}

// Engine extracts tokens from text, using rule sets from a Provider.
// Engines hold no state of their own apart from the provider and may be
// shared between goroutines.
type Engine struct {
	provider Provider
}

// New creates an engine for a rule set provider.
func New(p Provider) *Engine {
	return &Engine{provider: p}
}

// Parse finds tokens of dimension dim in text. Rules are taken from the
// engine's provider: the rule sets of the dimensions dim depends on come
// first, followed by the rule set for dim itself. If dim is AnyDimension,
// every dimension the provider has rules for is activated.
//
// Resolved tokens are returned sorted by position. Parse returns an error
// if the provider fails or if no fixpoint is reached within the iteration
// ceiling (see MaxIterations).
func (e *Engine) Parse(text string, locale language.Tag, dim dimex.Dimension, opts ...Option) ([]dimex.Token, error) {
	if e.provider == nil {
		return nil, errors.New("engine has no rule provider")
	}
	var sets []*dimex.RuleSet
	if dim == dimex.AnyDimension {
		var lastErr error
		for d := dimex.RegexMatch + 1; dimex.Registered(d); d++ {
			rs, err := e.provider.RulesFor(locale, d)
			if err != nil {
				lastErr = err
				continue
			}
			sets = append(sets, rs)
		}
		if len(sets) == 0 && lastErr != nil {
			return nil, lastErr
		}
	} else {
		if err := checkDimension(dim); err != nil {
			return nil, err
		}
		for _, d := range append(dimex.Dependencies(dim), dim) {
			rs, err := e.provider.RulesFor(locale, d)
			if err != nil {
				return nil, fmt.Errorf("rules for %s/%s: %w", locale, d, err)
			}
			sets = append(sets, rs)
		}
	}
	return e.ParseWith(text, sets, dim, opts...)
}

// ParseWith finds tokens of dimension dim in text, using the given rule
// sets. Rules of earlier sets take precedence over rules of later sets.
// If dim is AnyDimension, tokens of all dimensions produced are returned.
func (e *Engine) ParseWith(text string, sets []*dimex.RuleSet, dim dimex.Dimension, opts ...Option) ([]dimex.Token, error) {
	if dim != dimex.AnyDimension {
		if err := checkDimension(dim); err != nil {
			return nil, err
		}
	}
	cfg := makeConfig(text, opts)
	rules := activate(sets)
	CT().P("dim", dim).Debugf("parse %q with %d rules, reference time %s",
		text, len(rules), cfg.refTime.Format("2006-01-02T15:04:05"))
	ps := borrowState()
	defer ps.releaseIntoPool()
	ps.init(text, rules)
	ps.seed(cfg.seeds)
	if err := ps.fixpoint(cfg.maxIterations); err != nil {
		return nil, err
	}
	// stash.tokens copies, so nothing returned aliases pooled memory
	result := Resolve(ps.stash.tokens(dim))
	CT().Debugf("found %d tokens", len(result))
	return result, nil
}

// activate flattens rule sets into a list of rules. A rule's priority is
// its position in this list. Rule sets given more than once are activated
// once.
func activate(sets []*dimex.RuleSet) []activeRule {
	var rules []activeRule
	seen := make(map[*dimex.RuleSet]bool, len(sets))
	for _, rs := range sets {
		if rs == nil || seen[rs] {
			continue
		}
		seen[rs] = true
		for _, r := range rs.Rules() {
			rules = append(rules, activeRule{rule: r, dim: rs.Dimension(), prio: len(rules)})
		}
	}
	return rules
}

func checkDimension(dim dimex.Dimension) error {
	if !dimex.Registered(dim) || dim == dimex.RegexMatch {
		return fmt.Errorf("cannot parse for %s: %w", dim, dimex.ErrUnknownDimension)
	}
	return nil
}
