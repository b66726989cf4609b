package dimex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ItemKind is the kind of a pattern item.
type ItemKind int8

// Pattern items either match raw text or tokens of a dimension.
const (
	RegexItem     ItemKind = iota // regular expression over raw text
	DimensionItem                 // token of a dimension, optionally satisfying a predicate
	OneOfItem                     // token of a dimension with a numeric value from a set
)

// Predicate is a pure function over a token's payload.
type Predicate func(Value) bool

// Item is a single step of a rule's pattern. Items are immutable and may be
// shared between rules and goroutines.
type Item struct {
	kind    ItemKind
	source  string         // regex source as given by the rule author
	re      *regexp.Regexp // anchored regex
	err     error          // regex compile error, reported at rule set construction
	dim     Dimension
	pred    Predicate
	values  []float64
	display string
}

// Regex creates an item matching a regular expression at the current scan
// position. Matching is case-insensitive and the pattern is normalized to
// NFC. Patterns which cannot be compiled make the rule set invalid.
func Regex(pattern string) Item {
	pattern = norm.NFC.String(pattern)
	it := Item{kind: RegexItem, source: pattern, dim: RegexMatch}
	it.re, it.err = regexp.Compile(`\A(?i:` + pattern + `)`)
	it.display = "/" + pattern + "/"
	return it
}

// Dim creates an item matching any token of dimension d.
func Dim(d Dimension) Item {
	return Item{kind: DimensionItem, dim: d, display: d.String()}
}

// Pred creates an item matching tokens of dimension d for which p holds.
func Pred(d Dimension, p Predicate) Item {
	return Item{kind: DimensionItem, dim: d, pred: p, display: d.String() + "?"}
}

// OneOf creates an item matching tokens of dimension d whose numeric value
// is one of values.
func OneOf(d Dimension, values ...float64) Item {
	vals := append([]float64(nil), values...)
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return Item{
		kind:    OneOfItem,
		dim:     d,
		values:  vals,
		display: d.String() + "{" + strings.Join(strs, ",") + "}",
	}
}

// Kind returns the kind of the item.
func (it Item) Kind() ItemKind {
	return it.kind
}

// Dimension returns the dimension of tokens the item matches. Regex items
// match RegexMatch tokens.
func (it Item) Dimension() Dimension {
	return it.dim
}

func (it Item) String() string {
	return it.display
}

// MatchText tries to match a regex item at position pos of text. It returns
// the end of the match and the capture groups (group 0 being the complete
// match). Empty matches do not count.
func (it Item) MatchText(text string, pos int) (int, []string, bool) {
	if it.kind != RegexItem || it.re == nil || pos > len(text) {
		return 0, nil, false
	}
	loc := it.re.FindStringSubmatchIndex(text[pos:])
	if loc == nil || loc[1] == 0 {
		return 0, nil, false
	}
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = text[pos+loc[2*i] : pos+loc[2*i+1]]
		}
	}
	return pos + loc[1], groups, true
}

// Accepts checks if a token satisfies a dimension or one-of item.
// Regex items never accept tokens.
func (it Item) Accepts(t Token) bool {
	if t.Dim != it.dim {
		return false
	}
	switch it.kind {
	case DimensionItem:
		return it.pred == nil || it.pred(t.Value)
	case OneOfItem:
		x, ok := NumericValue(t.Value)
		if !ok {
			return false
		}
		for _, v := range it.values {
			if v == x {
				return true
			}
		}
		return false
	}
	return false
}

func (it Item) validate() error {
	switch it.kind {
	case RegexItem:
		if it.err != nil {
			return fmt.Errorf("regex %s: %w", it.display, it.err)
		}
		if it.source == "" {
			return fmt.Errorf("empty regex")
		}
	case DimensionItem, OneOfItem:
		if !Registered(it.dim) || it.dim == RegexMatch {
			return fmt.Errorf("item %s: %w", it.display, ErrUnknownDimension)
		}
		if it.kind == OneOfItem && len(it.values) == 0 {
			return fmt.Errorf("item %s: empty value set", it.display)
		}
	default:
		return fmt.Errorf("unknown item kind %d", it.kind)
	}
	return nil
}
