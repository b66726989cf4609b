// Package ordinal provides helpers to write rule tables for dimension
// Ordinal.
package ordinal

import (
	"strings"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/numeral"
)

// Ordinal creates an ordinal payload.
func Ordinal(v int) dimex.OrdinalValue {
	return dimex.OrdinalValue{Value: v}
}

// Of extracts the ordinal payload of a token.
func Of(t dimex.Token) (dimex.OrdinalValue, bool) {
	return t.Ordinal()
}

// Between holds for ordinals with lo ≤ value ≤ hi.
func Between(lo, hi int) dimex.Predicate {
	return func(v dimex.Value) bool {
		o, ok := v.(dimex.OrdinalValue)
		return ok && o.Value >= lo && o.Value <= hi
	}
}

// ParseDigits parses the digits of an ordinal like "007." (the dot not
// included). Leading zeros are stripped; digits of any script are accepted.
func ParseDigits(s string) (dimex.OrdinalValue, bool) {
	s = strings.TrimLeft(numeral.ASCIIDigits(s), "0")
	if s == "" {
		return dimex.OrdinalValue{}, false
	}
	n, ok := numeral.ParseInteger(s)
	if !ok || n > 1<<31-1 {
		return dimex.OrdinalValue{}, false
	}
	return Ordinal(int(n)), true
}

// Words creates a lexicon of ordinal words.
func Words(fold dimex.Folding, words map[string]int) *dimex.Lexicon {
	m := make(map[string]dimex.Value, len(words))
	for w, v := range words {
		m[w] = Ordinal(v)
	}
	return dimex.NewLexicon(fold, m)
}
