package numeral

import (
	"github.com/npillmayer/dimex"
)

// Entry describes a numeral word.
type Entry struct {
	Value        float64
	Grain        int // < 0 for no grain
	Multipliable bool
}

// Plain is a lexicon entry without grain.
func Plain(v float64) Entry {
	return Entry{Value: v, Grain: -1}
}

// Grained is a lexicon entry with grain g.
func Grained(v float64, g int) Entry {
	return Entry{Value: v, Grain: g}
}

// Multiplier is a lexicon entry for 10^g with grain g, usable as a
// multiplier.
func Multiplier(g int) Entry {
	p := Power(g)
	return Entry{Value: p.Value, Grain: g, Multipliable: true}
}

// NumeralValue converts an entry to a payload.
func (e Entry) NumeralValue() dimex.NumeralValue {
	v := WithGrain(Double(e.Value), e.Grain)
	v.Multipliable = e.Multipliable
	return v
}

// Words creates a lexicon of numeral words.
func Words(fold dimex.Folding, words map[string]Entry) *dimex.Lexicon {
	m := make(map[string]dimex.Value, len(words))
	for w, e := range words {
		m[w] = e.NumeralValue()
	}
	return dimex.NewLexicon(fold, m)
}
