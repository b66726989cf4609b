/*
Package tables is a registry of rule sets, keyed by locale and dimension.

A Registry implements engine.Provider. Lookups for a locale without rules
of its own fall back to the closest registered locale, e.g. "ar-EG" uses
the rules for "ar".

The built-in rule tables are available from Default(). Clients may extend
them with lexicon files (see LoadLexicon).

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the License file in the root directory for details.
*/
package tables

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/locale/ar"
	"github.com/npillmayer/dimex/locale/et"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNoRules is returned if no rule set is registered for a combination of
// locale and dimension, not even for a related locale.
var ErrNoRules = errors.New("no rules for locale and dimension")

type tableKey struct {
	locale language.Tag
	dim    dimex.Dimension
}

// Registry holds rule sets. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sets     map[tableKey]*dimex.RuleSet
	matchers map[dimex.Dimension]*localeMatcher // built lazily
}

type localeMatcher struct {
	tags    []language.Tag
	matcher language.Matcher
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		sets:     make(map[tableKey]*dimex.RuleSet),
		matchers: make(map[dimex.Dimension]*localeMatcher),
	}
}

// Register adds a rule set. Registering a second set for the same locale and
// dimension is an error matching dimex.ErrMalformedRuleTable.
func (reg *Registry) Register(rs *dimex.RuleSet) error {
	if rs == nil {
		return errors.New("cannot register nil rule set")
	}
	k := tableKey{locale: rs.Locale(), dim: rs.Dimension()}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.sets[k]; exists {
		return &dimex.RuleTableError{Locale: k.locale, Dim: k.dim, Reason: "rule set already registered"}
	}
	reg.sets[k] = rs
	delete(reg.matchers, k.dim)
	CT().Infof("registered %d rules for %s/%s", rs.Len(), k.locale, k.dim)
	return nil
}

// Extend appends rules to the rule set for locale and dimension, replacing
// it by the extended set. If no set is registered for the locale itself, the
// rules are appended to a copy of the set RulesFor falls back to, and the
// result is registered for locale. Without any such set a new one is created.
func (reg *Registry) Extend(locale language.Tag, dim dimex.Dimension, rules ...dimex.Rule) error {
	base, err := reg.RulesFor(locale, dim)
	if err != nil && !errors.Is(err, ErrNoRules) {
		return err
	}
	var all []dimex.Rule
	if base != nil {
		all = base.Rules()
	}
	rs, err := dimex.NewRuleSet(locale, dim, append(all, rules...)...)
	if err != nil {
		return err
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.sets[tableKey{locale: locale, dim: dim}] = rs
	delete(reg.matchers, dim)
	CT().Infof("rules for %s/%s extended to %d rules", locale, dim, rs.Len())
	return nil
}

// RulesFor returns the rule set for a locale and a dimension. If no set is
// registered for the locale itself, the closest matching registered locale
// is used. If there is none, an error matching ErrNoRules is returned.
func (reg *Registry) RulesFor(locale language.Tag, dim dimex.Dimension) (*dimex.RuleSet, error) {
	reg.mu.RLock()
	rs, ok := reg.sets[tableKey{locale: locale, dim: dim}]
	reg.mu.RUnlock()
	if ok {
		return rs, nil
	}
	m := reg.matcherFor(dim)
	if m == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoRules, locale, dim)
	}
	_, index, confidence := m.matcher.Match(locale)
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoRules, locale, dim)
	}
	fallback := m.tags[index]
	CT().Debugf("using rules of %s for %s/%s", fallback, locale, dim)
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	if rs, ok = reg.sets[tableKey{locale: fallback, dim: dim}]; !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoRules, locale, dim)
	}
	return rs, nil
}

func (reg *Registry) matcherFor(dim dimex.Dimension) *localeMatcher {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if m, ok := reg.matchers[dim]; ok {
		return m
	}
	var tags []language.Tag
	for k := range reg.sets {
		if k.dim == dim {
			tags = append(tags, k.locale)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	sortTags(tags)
	m := &localeMatcher{tags: tags, matcher: language.NewMatcher(tags)}
	reg.matchers[dim] = m
	return m
}

// Locales lists the locales with registered rule sets.
func (reg *Registry) Locales() []language.Tag {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	seen := make(map[language.Tag]bool)
	var tags []language.Tag
	for k := range reg.sets {
		if !seen[k.locale] {
			seen[k.locale] = true
			tags = append(tags, k.locale)
		}
	}
	sortTags(tags)
	return tags
}

// Dimensions lists the dimensions with rule sets for locale, without
// falling back to other locales.
func (reg *Registry) Dimensions(locale language.Tag) []dimex.Dimension {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	var dims []dimex.Dimension
	for k := range reg.sets {
		if k.locale == locale {
			dims = append(dims, k.dim)
		}
	}
	sort.Slice(dims, func(i, j int) bool { return dims[i] < dims[j] })
	return dims
}

func sortTags(tags []language.Tag) {
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
}

// --- Built-in tables --------------------------------------------------

var defaultRegistry *Registry
var defaultOnce sync.Once

// Default returns the registry holding the built-in rule tables. It is
// created on first use. Default panics if a built-in table is malformed.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg := New()
		for _, build := range []func() (*dimex.RuleSet, error){
			ar.NumeralRuleSet,
			et.OrdinalRuleSet,
		} {
			rs, err := build()
			if err != nil {
				panic(err)
			}
			if err = reg.Register(rs); err != nil {
				panic(err)
			}
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Locales lists the locales of the built-in rule tables.
func Locales() []language.Tag {
	return Default().Locales()
}

// FromEnvironment returns the user's locale as set in the environment. If
// it cannot be detected, "en-US" is returned.
func FromEnvironment() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		CT().Errorf("cannot detect user locale: %v", err)
		userLocale = "en-US"
		CT().Infof("setting default user locale %v", userLocale)
	} else {
		CT().Infof("detected user locale %v", userLocale)
	}
	tag, err := language.Parse(userLocale)
	if err != nil || tag == language.Und {
		CT().Errorf("cannot use locale %q: %v", userLocale, err)
		return language.AmericanEnglish
	}
	return tag
}
