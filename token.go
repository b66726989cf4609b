package dimex

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Range is a span of input text, given as byte offsets. End is exclusive.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the length of r in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// Overlaps is true if r and other share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains is true if other lies completely within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d…%d)", r.Start, r.End)
}

// Value is the payload of a token. The set of payload types is closed; every
// dimension has exactly one payload type:
//
//    RegexMatch → RegexValue
//    Numeral    → NumeralValue
//    Ordinal    → OrdinalValue
//
type Value interface {
	Dimension() Dimension
	String() string
	isValue()
}

// NumeralValue is the payload of Numeral tokens.
//
// Grain is the order of magnitude (log10) a number may be multiplied up to,
// e.g. 2 for "hundred". It is nil for numbers without a grain. Multipliable
// marks numbers which may be the right operand of a multiplication, e.g.
// "thousand" in "three thousand".
type NumeralValue struct {
	Value        float64 `json:"value"`
	Grain        *int    `json:"grain,omitempty"`
	Multipliable bool    `json:"multipliable,omitempty"`
}

// Dimension is part of interface Value.
func (v NumeralValue) Dimension() Dimension { return Numeral }

func (v NumeralValue) isValue() {}

func (v NumeralValue) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	if v.Grain != nil {
		b.WriteString(fmt.Sprintf(" g=%d", *v.Grain))
	}
	if v.Multipliable {
		b.WriteString(" ×")
	}
	return b.String()
}

// HasGrain is true if v carries a grain.
func (v NumeralValue) HasGrain() bool {
	return v.Grain != nil
}

// OrdinalValue is the payload of Ordinal tokens.
type OrdinalValue struct {
	Value int `json:"value"`
}

// Dimension is part of interface Value.
func (v OrdinalValue) Dimension() Dimension { return Ordinal }

func (v OrdinalValue) isValue() {}

func (v OrdinalValue) String() string {
	return strconv.Itoa(v.Value) + "."
}

// RegexValue is the payload of tokens produced by regular expression items.
// Groups[0] is the complete match, followed by the capture groups. Groups
// which did not participate in the match are empty strings.
type RegexValue struct {
	Groups []string `json:"groups"`
}

// Dimension is part of interface Value.
func (v RegexValue) Dimension() Dimension { return RegexMatch }

func (v RegexValue) isValue() {}

func (v RegexValue) String() string {
	return fmt.Sprintf("%q", v.Groups)
}

// Group returns capture group i or an empty string, if i is out of range.
func (v RegexValue) Group(i int) string {
	if i < 0 || i >= len(v.Groups) {
		return ""
	}
	return v.Groups[i]
}

// NumericValue extracts a number from numeral and ordinal payloads.
func NumericValue(v Value) (float64, bool) {
	switch x := v.(type) {
	case NumeralValue:
		return x.Value, true
	case OrdinalValue:
		return float64(x.Value), true
	}
	return 0, false
}

// Token is a typed value found in a span of input text.
//
// Tokens are created by the engine (either from a regular expression match
// or by a rule's production) and never change afterwards. Rule is the name
// of the rule which produced the token, Priority its position in the list
// of active rules.
type Token struct {
	Dim      Dimension
	Range    Range
	Body     string // input text covered by Range
	Value    Value
	Rule     string
	Priority int
}

// NewToken creates a token not produced by any rule, e.g. as a seed for the
// engine. It gets the lowest possible priority.
func NewToken(rng Range, body string, value Value) Token {
	return Token{
		Dim:      value.Dimension(),
		Range:    rng,
		Body:     body,
		Value:    value,
		Priority: LowestPriority,
	}
}

// Numeral returns the numeral payload of t, if t is a Numeral token.
func (t Token) Numeral() (NumeralValue, bool) {
	v, ok := t.Value.(NumeralValue)
	return v, ok
}

// Ordinal returns the ordinal payload of t, if t is an Ordinal token.
func (t Token) Ordinal() (OrdinalValue, bool) {
	v, ok := t.Value.(OrdinalValue)
	return v, ok
}

// Groups returns the capture groups of a RegexMatch token.
func (t Token) Groups() []string {
	if v, ok := t.Value.(RegexValue); ok {
		return v.Groups
	}
	return nil
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %s %q = %v>", t.Dim, t.Range, t.Body, t.Value)
}

type tokenJSON struct {
	Dim   Dimension `json:"dim"`
	Start int       `json:"start"`
	End   int       `json:"end"`
	Body  string    `json:"body"`
	Value Value     `json:"value"`
	Rule  string    `json:"rule,omitempty"`
}

// MarshalJSON writes a token as a flat record.
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenJSON{
		Dim:   t.Dim,
		Start: t.Range.Start,
		End:   t.Range.End,
		Body:  t.Body,
		Value: t.Value,
		Rule:  t.Rule,
	})
}
