package dimex

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Folding maps text to a canonical form before lexicon lookup, e.g. by
// lower-casing it or by removing diacritics.
type Folding func(string) string

// DefaultFolding lower-cases s, normalizes it to NFC and collapses runs of
// white space to a single blank.
func DefaultFolding(s string) string {
	return strings.Join(strings.FieldsFunc(norm.NFC.String(strings.ToLower(s)), unicode.IsSpace), " ")
}

// Lexicon maps words (or fixed phrases) to payloads. Lexicons are immutable.
type Lexicon struct {
	fold    Folding
	entries map[string]Value
	pattern string
}

// NewLexicon creates a lexicon from a map of words. Keys are folded with
// fold (DefaultFolding if fold is nil). Blanks within a key match any
// non-empty run of white space.
func NewLexicon(fold Folding, words map[string]Value) *Lexicon {
	if fold == nil {
		fold = DefaultFolding
	}
	lx := &Lexicon{fold: fold, entries: make(map[string]Value, len(words))}
	keys := make([]string, 0, len(words))
	for w, v := range words {
		lx.entries[fold(w)] = v
		keys = append(keys, w)
	}
	// Regex alternation is leftmost-first, so we try longer words first.
	// Sorting makes the pattern independent of map iteration order.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	alts := make([]string, len(keys))
	for i, k := range keys {
		parts := strings.Fields(norm.NFC.String(k))
		for j := range parts {
			parts[j] = regexp.QuoteMeta(parts[j])
		}
		alts[i] = strings.Join(parts, `\s+`)
	}
	lx.pattern = strings.Join(alts, "|")
	return lx
}

// Pattern returns a regular expression matching every word of the lexicon.
func (lx *Lexicon) Pattern() string {
	return lx.pattern
}

// Len returns the number of entries.
func (lx *Lexicon) Len() int {
	return len(lx.entries)
}

// Lookup finds the payload for a piece of text, after folding it.
func (lx *Lexicon) Lookup(s string) (Value, bool) {
	v, ok := lx.entries[lx.fold(s)]
	return v, ok
}

// Rule creates a rule matching the words of the lexicon.
func (lx *Lexicon) Rule(name string) Rule {
	return lx.RuleWithPattern(name, lx.pattern)
}

// RuleWithPattern creates a rule matching a custom regular expression. The
// complete match is looked up in the lexicon after folding; this way a
// single lexicon entry may cover spelling variants expressed in the
// pattern.
func (lx *Lexicon) RuleWithPattern(name string, pattern string) Rule {
	return Rule{
		Name:    name,
		Pattern: []Item{Regex(pattern)},
		Produce: func(toks []Token) (Value, bool) {
			return lx.Lookup(toks[0].Body)
		},
	}
}
