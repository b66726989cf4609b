/*
Package numeral provides helpers to write rule tables for dimension Numeral.

Numerals carry a value, an optional grain and a flag telling if they may be
used as a multiplier. The grain is the order of magnitude a number may be
multiplied up to; it keeps compositions like "two hundred thousand" apart
from nonsense like "hundred two hundred":

   two      (no grain)  × hundred  (grain 2, multipliable) = 200 (grain 2)
   200      (grain 2)   × thousand (grain 3, multipliable) = 200000 (grain 3)
   200000   (grain 3)   × hundred  (grain 2)               → rejected

Sums work the other way round: a number with grain g may be followed by a
number smaller than 10^g ("hundred and five").
*/
package numeral

import (
	"math"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Double creates a numeral without grain.
func Double(v float64) dimex.NumeralValue {
	return dimex.NumeralValue{Value: v}
}

// Integer creates a numeral without grain from an integer.
func Integer(v int64) dimex.NumeralValue {
	return dimex.NumeralValue{Value: float64(v)}
}

// WithGrain returns a copy of v with grain g. Negative grains are ignored.
func WithGrain(v dimex.NumeralValue, g int) dimex.NumeralValue {
	if g < 0 {
		return v
	}
	gg := g
	v.Grain = &gg
	return v
}

// WithMultipliable returns a copy of v flagged as multipliable.
func WithMultipliable(v dimex.NumeralValue) dimex.NumeralValue {
	v.Multipliable = true
	return v
}

// Power creates a multipliable numeral 10^g with grain g, e.g. "thousand".
func Power(g int) dimex.NumeralValue {
	return WithMultipliable(WithGrain(Double(math.Pow10(g)), g))
}

// Of extracts the numeral payload of a token.
func Of(t dimex.Token) (dimex.NumeralValue, bool) {
	return t.Numeral()
}

// --- Predicates -------------------------------------------------------

func numeral(v dimex.Value) (dimex.NumeralValue, bool) {
	n, ok := v.(dimex.NumeralValue)
	return n, ok
}

// IsPositive holds for numerals > 0.
func IsPositive(v dimex.Value) bool {
	n, ok := numeral(v)
	return ok && n.Value > 0
}

// IsNatural holds for positive integers.
func IsNatural(v dimex.Value) bool {
	n, ok := numeral(v)
	return ok && n.Value > 0 && n.Value == math.Trunc(n.Value)
}

// IsMultipliable holds for numerals which may act as multipliers.
func IsMultipliable(v dimex.Value) bool {
	n, ok := numeral(v)
	return ok && n.Multipliable
}

// HasGrain holds for numerals with a grain.
func HasGrain(v dimex.Value) bool {
	n, ok := numeral(v)
	return ok && n.Grain != nil
}

// GrainAtLeast holds for numerals with a grain ≥ g.
func GrainAtLeast(g int) dimex.Predicate {
	return func(v dimex.Value) bool {
		n, ok := numeral(v)
		return ok && n.Grain != nil && *n.Grain >= g
	}
}

// Between holds for numerals with lo ≤ value ≤ hi.
func Between(lo, hi float64) dimex.Predicate {
	return func(v dimex.Value) bool {
		n, ok := numeral(v)
		return ok && n.Value >= lo && n.Value <= hi
	}
}

// And combines predicates.
func And(preds ...dimex.Predicate) dimex.Predicate {
	return func(v dimex.Value) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Not negates a predicate.
func Not(p dimex.Predicate) dimex.Predicate {
	return func(v dimex.Value) bool {
		return !p(v)
	}
}

// --- Composition ------------------------------------------------------

// Multiply computes a × b, where b usually is a multipliable numeral.
// The product takes b's grain. Multiplication is rejected if a's grain is
// not smaller than b's grain ("thousand hundred").
func Multiply(a, b dimex.NumeralValue) (dimex.NumeralValue, bool) {
	if b.Grain == nil {
		return Double(a.Value * b.Value), true
	}
	if a.Grain != nil && *a.Grain >= *b.Grain {
		return dimex.NumeralValue{}, false
	}
	return WithGrain(Double(a.Value*b.Value), *b.Grain), true
}

// Sum computes a + b for a followed by b, as in "hundred and five". a must
// have a grain g and b must be a positive number smaller than 10^g.
func Sum(a, b dimex.NumeralValue) (dimex.NumeralValue, bool) {
	if a.Grain == nil || b.Value <= 0 || b.Value >= math.Pow10(*a.Grain) {
		return dimex.NumeralValue{}, false
	}
	return Double(a.Value + b.Value), true
}

// Negate returns -v. Only positive numbers may be negated.
func Negate(v dimex.NumeralValue) (dimex.NumeralValue, bool) {
	if v.Value <= 0 {
		return dimex.NumeralValue{}, false
	}
	return Double(-v.Value), true
}
