package engine

import (
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/dimex"
)

// better orders candidates for resolution: longer spans first, then
// earlier rules, then rule names, start positions and values.
func better(a, b dimex.Token) bool {
	la, lb := utf8.RuneCountInString(a.Body), utf8.RuneCountInString(b.Body)
	if la != lb {
		return la > lb
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Rule != b.Rule {
		return a.Rule < b.Rule
	}
	if a.Range.Start != b.Range.Start {
		return a.Range.Start < b.Range.Start
	}
	return a.Value.String() < b.Value.String()
}

// Resolve selects non-overlapping tokens from a set of candidates. Tokens
// of different dimensions never compete. The candidates are visited from
// best to worst, and every candidate not overlapping a token already
// selected is selected as well. The result is sorted by position.
//
// cands is re-ordered in place.
func Resolve(cands []dimex.Token) []dimex.Token {
	sort.SliceStable(cands, func(i, j int) bool {
		return better(cands[i], cands[j])
	})
	accepted := make([]dimex.Token, 0, len(cands))
	for _, c := range cands {
		if !overlapsAny(c, accepted) {
			accepted = append(accepted, c)
		}
	}
	sort.Slice(accepted, func(i, j int) bool {
		a, b := accepted[i], accepted[j]
		if a.Range.Start != b.Range.Start {
			return a.Range.Start < b.Range.Start
		}
		if a.Range.End != b.Range.End {
			return a.Range.End < b.Range.End
		}
		return a.Dim < b.Dim
	})
	return accepted
}

func overlapsAny(t dimex.Token, accepted []dimex.Token) bool {
	for _, a := range accepted {
		if a.Dim == t.Dim && a.Range.Overlaps(t.Range) {
			return true
		}
	}
	return false
}
