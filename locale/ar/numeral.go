/*
Package ar holds the rule table for Arabic numerals.

Numbers may be written with words or with digits (ASCII or Arabic-Indic).
Words are recognized with or without tashkeel and with the common spelling
variants of alef, ta marbuta and alef maqsura.

Compositions follow the grain of numerals (see package numeral): tens
follow units with "و" (خمسة و عشرون = 25), multipliers follow a number
(ثلاثة آلاف = 3000), and a number with grain ≥ 2 may be followed by "و" and a
smaller number (مائة و خمسة = 105). "و" may be written detached or attached
to the following word.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Please refer to the License file in the root directory for details.
*/
package ar

import (
	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/numeral"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Locale is the locale of the rule table.
var Locale = language.Arabic

var units = map[string]numeral.Entry{
	"صفر":    numeral.Plain(0),
	"واحد":   numeral.Plain(1),
	"واحدة":  numeral.Plain(1),
	"اثنان":  numeral.Plain(2),
	"اثنين":  numeral.Plain(2),
	"اثنتان": numeral.Plain(2),
	"اثنتين": numeral.Plain(2),
	"ثلاثة":  numeral.Plain(3),
	"ثلاث":   numeral.Plain(3),
	"أربعة":  numeral.Plain(4),
	"أربع":   numeral.Plain(4),
	"خمسة":   numeral.Plain(5),
	"خمس":    numeral.Plain(5),
	"ستة":    numeral.Plain(6),
	"ست":     numeral.Plain(6),
	"سبعة":   numeral.Plain(7),
	"سبع":    numeral.Plain(7),
	"ثمانية": numeral.Plain(8),
	"ثماني":  numeral.Plain(8),
	"ثمان":   numeral.Plain(8),
	"تسعة":   numeral.Plain(9),
	"تسع":    numeral.Plain(9),
	"عشرة":   numeral.Plain(10),
	"عشر":    numeral.Plain(10),
}

var elevenTwelve = map[string]numeral.Entry{
	"أحد عشر":    numeral.Plain(11),
	"إحدى عشرة":  numeral.Plain(11),
	"اثنا عشر":   numeral.Plain(12),
	"اثني عشر":   numeral.Plain(12),
	"اثنتا عشرة": numeral.Plain(12),
	"اثنتي عشرة": numeral.Plain(12),
}

// teenStems are the unit stems of 13…19, written before عشر.
var teenStems = map[string]numeral.Entry{
	"ثلاث":   numeral.Plain(3),
	"ثلاثة":  numeral.Plain(3),
	"أربع":   numeral.Plain(4),
	"أربعة":  numeral.Plain(4),
	"خمس":    numeral.Plain(5),
	"خمسة":   numeral.Plain(5),
	"ست":     numeral.Plain(6),
	"ستة":    numeral.Plain(6),
	"سبع":    numeral.Plain(7),
	"سبعة":   numeral.Plain(7),
	"ثماني":  numeral.Plain(8),
	"ثمانية": numeral.Plain(8),
	"تسع":    numeral.Plain(9),
	"تسعة":   numeral.Plain(9),
}

var tens = map[string]numeral.Entry{
	"عشرون":  numeral.Grained(20, 1),
	"عشرين":  numeral.Grained(20, 1),
	"ثلاثون": numeral.Grained(30, 1),
	"ثلاثين": numeral.Grained(30, 1),
	"أربعون": numeral.Grained(40, 1),
	"أربعين": numeral.Grained(40, 1),
	"خمسون":  numeral.Grained(50, 1),
	"خمسين":  numeral.Grained(50, 1),
	"ستون":   numeral.Grained(60, 1),
	"ستين":   numeral.Grained(60, 1),
	"سبعون":  numeral.Grained(70, 1),
	"سبعين":  numeral.Grained(70, 1),
	"ثمانون": numeral.Grained(80, 1),
	"ثمانين": numeral.Grained(80, 1),
	"تسعون":  numeral.Grained(90, 1),
	"تسعين":  numeral.Grained(90, 1),
}

var hundreds = map[string]numeral.Entry{
	"مائة":     numeral.Multiplier(2),
	"مئة":      numeral.Multiplier(2),
	"مائتان":   numeral.Grained(200, 2),
	"مائتين":   numeral.Grained(200, 2),
	"مئتان":    numeral.Grained(200, 2),
	"مئتين":    numeral.Grained(200, 2),
	"ثلاثمائة": numeral.Grained(300, 2),
	"ثلاثمئة":  numeral.Grained(300, 2),
	"أربعمائة": numeral.Grained(400, 2),
	"أربعمئة":  numeral.Grained(400, 2),
	"خمسمائة":  numeral.Grained(500, 2),
	"خمسمئة":   numeral.Grained(500, 2),
	"ستمائة":   numeral.Grained(600, 2),
	"ستمئة":    numeral.Grained(600, 2),
	"سبعمائة":  numeral.Grained(700, 2),
	"سبعمئة":   numeral.Grained(700, 2),
	"ثمانمائة": numeral.Grained(800, 2),
	"ثمانمئة":  numeral.Grained(800, 2),
	"تسعمائة":  numeral.Grained(900, 2),
	"تسعمئة":   numeral.Grained(900, 2),
}

var powers = map[string]numeral.Entry{
	"ألف":     numeral.Multiplier(3),
	"آلاف":    numeral.Multiplier(3),
	"ألفان":   numeral.Grained(2000, 3),
	"ألفين":   numeral.Grained(2000, 3),
	"مليون":   numeral.Multiplier(6),
	"ملايين":  numeral.Multiplier(6),
	"مليونان": numeral.Grained(2e6, 6),
	"مليونين": numeral.Grained(2e6, 6),
	"مليار":   numeral.Multiplier(9),
	"مليارات": numeral.Multiplier(9),
	"ملياران": numeral.Grained(2e9, 9),
	"مليارين": numeral.Grained(2e9, 9),
}

var fractions = map[string]numeral.Entry{
	"نصف": numeral.Plain(0.5),
	"ربع": numeral.Plain(0.25),
	"ثلث": numeral.Plain(1.0 / 3.0),
}

// Thousands and decimal separators for digit numerals.
const (
	ThousandsSeparators = ",٬"
	DecimalSeparators   = ".٫"
)

const digitsPattern = `\p{Nd}{1,3}(?:[,٬]\p{Nd}{3})+(?:[.٫]\p{Nd}+)?|\p{Nd}+(?:[.٫]\p{Nd}+)?`

func wordRule(name string, entries map[string]numeral.Entry) dimex.Rule {
	words := make(map[string]dimex.Value, len(entries))
	for w, e := range entries {
		words[w] = e.NumeralValue()
	}
	return LexiconRule(name, words)
}

func lookupPattern(entries map[string]numeral.Entry) (string, *dimex.Lexicon) {
	words := make(map[string]dimex.Value, len(entries))
	keys := make([]string, 0, len(entries))
	for w, e := range entries {
		words[w] = e.NumeralValue()
		keys = append(keys, w)
	}
	return wordsPattern(keys), dimex.NewLexicon(Fold, words)
}

func mergeEntries(tables ...map[string]numeral.Entry) map[string]numeral.Entry {
	all := make(map[string]numeral.Entry)
	for _, t := range tables {
		for w, e := range t {
			all[w] = e
		}
	}
	return all
}

func numeralAt(toks []dimex.Token, i int) dimex.NumeralValue {
	n, _ := toks[i].Numeral()
	return n
}

// NumeralRules returns the rules for Arabic numerals, ordered by
// precedence.
func NumeralRules() []dimex.Rule {
	stemPattern, stems := lookupPattern(teenStems)
	tensPattern, tensLexicon := lookupPattern(tens)
	smallPattern, smallLexicon := lookupPattern(mergeEntries(units, elevenTwelve, tens, hundreds))
	and := wordPattern("و")
	return []dimex.Rule{
		wordRule("integer (0..10)", units),
		wordRule("integer (11..12)", elevenTwelve),
		{
			Name:    "integer (13..19)",
			Pattern: []dimex.Item{dimex.Regex(`(` + stemPattern + `)\s*` + wordPattern("عشر") + `(?:[هة]` + marks + `)?`)},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				v, ok := stems.Lookup(toks[0].Groups()[1])
				if !ok {
					return nil, false
				}
				n := v.(dimex.NumeralValue)
				return numeral.Double(n.Value + 10), true
			},
		},
		wordRule("integer (20..90)", tens),
		wordRule("integer (100..900)", hundreds),
		wordRule("powers of ten", powers),
		wordRule("fractions", fractions),
		{
			Name:    "integer (digits)",
			Pattern: []dimex.Item{dimex.Regex(digitsPattern)},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				f, ok := numeral.ParseNumber(toks[0].Body, ThousandsSeparators, DecimalSeparators)
				if !ok {
					return nil, false
				}
				return numeral.Double(f), true
			},
		},
		{
			Name: "integer 21..99",
			Pattern: []dimex.Item{
				dimex.Pred(dimex.Numeral, numeral.And(numeral.IsNatural, numeral.Between(1, 9), numeral.Not(numeral.HasGrain))),
				dimex.Regex(and),
				dimex.OneOf(dimex.Numeral, 20, 30, 40, 50, 60, 70, 80, 90),
			},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				return numeral.Double(numeralAt(toks, 0).Value + numeralAt(toks, 2).Value), true
			},
		},
		{
			Name: "integer 21..99 (attached conjunction)",
			Pattern: []dimex.Item{
				dimex.Pred(dimex.Numeral, numeral.And(numeral.IsNatural, numeral.Between(1, 9), numeral.Not(numeral.HasGrain))),
				dimex.Regex(and + `(` + tensPattern + `)`),
			},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				v, ok := tensLexicon.Lookup(toks[1].Groups()[1])
				if !ok {
					return nil, false
				}
				return numeral.Double(numeralAt(toks, 0).Value + v.(dimex.NumeralValue).Value), true
			},
		},
		{
			Name: "compose by multiplication",
			Pattern: []dimex.Item{
				dimex.Pred(dimex.Numeral, numeral.IsPositive),
				dimex.Pred(dimex.Numeral, numeral.IsMultipliable),
			},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				v, ok := numeral.Multiply(numeralAt(toks, 0), numeralAt(toks, 1))
				return v, ok
			},
		},
		{
			Name: "intersect 2 numbers",
			Pattern: []dimex.Item{
				dimex.Pred(dimex.Numeral, numeral.GrainAtLeast(2)),
				dimex.Regex(and),
				dimex.Pred(dimex.Numeral, numeral.IsPositive),
			},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				v, ok := numeral.Sum(numeralAt(toks, 0), numeralAt(toks, 2))
				return v, ok
			},
		},
		{
			Name: "intersect 2 numbers (attached conjunction)",
			Pattern: []dimex.Item{
				dimex.Pred(dimex.Numeral, numeral.GrainAtLeast(2)),
				dimex.Regex(and + `(` + smallPattern + `)`),
			},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				v, ok := smallLexicon.Lookup(toks[1].Groups()[1])
				if !ok {
					return nil, false
				}
				sum, ok := numeral.Sum(numeralAt(toks, 0), v.(dimex.NumeralValue))
				return sum, ok
			},
		},
		{
			Name: "negative numbers",
			Pattern: []dimex.Item{
				dimex.Regex(`-|` + wordPattern("سالب") + `|` + wordPattern("ناقص")),
				dimex.Pred(dimex.Numeral, numeral.IsPositive),
			},
			Produce: func(toks []dimex.Token) (dimex.Value, bool) {
				v, ok := numeral.Negate(numeralAt(toks, 1))
				return v, ok
			},
		},
	}
}

// NumeralRuleSet returns the validated rule set for Arabic numerals.
func NumeralRuleSet() (*dimex.RuleSet, error) {
	return dimex.NewRuleSet(Locale, dimex.Numeral, NumeralRules()...)
}
