// Package et holds the rule table for Estonian ordinals.
//
// Ordinals are recognized in nominative ("kolmas") and genitive
// ("kolmanda") case, composed from a cardinal tens word and a unit ordinal
// ("kahekümne kolmas"), or written with digits and a trailing dot ("3.").
package et

import (
	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/numeral"
	"github.com/npillmayer/dimex/ordinal"
	"golang.org/x/text/language"
)

// Locale is the locale of the rule table.
var Locale = language.Estonian

var nominative = map[string]int{
	"esimene":            1,
	"teine":              2,
	"kolmas":             3,
	"neljas":             4,
	"viies":              5,
	"kuues":              6,
	"seitsmes":           7,
	"kaheksas":           8,
	"üheksas":            9,
	"kümnes":             10,
	"üheteistkümnes":     11,
	"kaheteistkümnes":    12,
	"kolmeteistkümnes":   13,
	"neljateistkümnes":   14,
	"viieteistkümnes":    15,
	"kuueteistkümnes":    16,
	"seitsmeteistkümnes": 17,
	"kaheksateistkümnes": 18,
	"üheksateistkümnes":  19,
	"kahekümnes":         20,
	"kolmekümnes":        30,
	"neljakümnes":        40,
	"viiekümnes":         50,
	"kuuekümnes":         60,
	"seitsmekümnes":      70,
	"kaheksakümnes":      80,
	"üheksakümnes":       90,
	"sajas":              100,
	"tuhandes":           1000,
}

var genitive = map[string]int{
	"esimese":              1,
	"teise":                2,
	"kolmanda":             3,
	"neljanda":             4,
	"viienda":              5,
	"kuuenda":              6,
	"seitsmenda":           7,
	"kaheksanda":           8,
	"üheksanda":            9,
	"kümnenda":             10,
	"üheteistkümnenda":     11,
	"kaheteistkümnenda":    12,
	"kolmeteistkümnenda":   13,
	"neljateistkümnenda":   14,
	"viieteistkümnenda":    15,
	"kuueteistkümnenda":    16,
	"seitsmeteistkümnenda": 17,
	"kaheksateistkümnenda": 18,
	"üheksateistkümnenda":  19,
	"kahekümnenda":         20,
	"kolmekümnenda":        30,
	"neljakümnenda":        40,
	"viiekümnenda":         50,
	"kuuekümnenda":         60,
	"seitsmekümnenda":      70,
	"kaheksakümnenda":      80,
	"üheksakümnenda":       90,
	"sajanda":              100,
	"tuhandenda":           1000,
}

// tensGenitive are cardinal tens in genitive case, as used in composed
// ordinals.
var tensGenitive = map[string]numeral.Entry{
	"kahekümne":    numeral.Grained(20, 1),
	"kolmekümne":   numeral.Grained(30, 1),
	"neljakümne":   numeral.Grained(40, 1),
	"viiekümne":    numeral.Grained(50, 1),
	"kuuekümne":    numeral.Grained(60, 1),
	"seitsmekümne": numeral.Grained(70, 1),
	"kaheksakümne": numeral.Grained(80, 1),
	"üheksakümne":  numeral.Grained(90, 1),
}

// OrdinalRules returns the rules for Estonian ordinals, ordered by
// precedence.
func OrdinalRules() []dimex.Rule {
	tens := numeral.Words(nil, tensGenitive)
	return []dimex.Rule{
		ordinal.Words(nil, nominative).Rule("ordinals (first..twentieth, thirtieth, ...)"),
		ordinal.Words(nil, genitive).Rule("ordinals, genitive (first..twentieth, thirtieth, ...)"),
		{
			Name: "ordinals (composite, e.g., eighty-seven)",
			Pattern: []dimex.Item{
				dimex.Regex(tens.Pattern()),
				dimex.Pred(dimex.Ordinal, ordinal.Between(1, 9)),
			},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				v, ok := tens.Lookup(toks[0].Body)
				if !ok {
					return nil, false
				}
				t, _ := dimex.NumericValue(v)
				u, _ := toks[1].Ordinal()
				return ordinal.Ordinal(int(t) + u.Value), true
			},
		},
		{
			Name:    "ordinal (digits)",
			Pattern: []dimex.Item{dimex.Regex(`0*(\p{Nd}+)\.`)},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				o, ok := ordinal.ParseDigits(toks[0].Groups()[1])
				if !ok {
					return nil, false
				}
				return o, true
			},
		},
	}
}

// OrdinalRuleSet returns the validated rule set for Estonian ordinals.
func OrdinalRuleSet() (*dimex.RuleSet, error) {
	return dimex.NewRuleSet(Locale, dimex.Ordinal, OrdinalRules()...)
}
