package engine

import (
	"testing"

	"github.com/npillmayer/dimex"
	"github.com/npillmayer/dimex/internal/tracing"
	schuko "github.com/npillmayer/schuko/tracing"
)

func stashToken(v dimex.Value, prio int) dimex.Token {
	tok := dimex.NewToken(dimex.Range{Start: 2, End: 7}, "xxxxx", v)
	tok.Priority = prio
	return tok
}

func TestStashMerge(t *testing.T) {
	tracing.SetTestingLog(t, schuko.LevelDebug)
	//
	st := newStash()
	five := dimex.NumeralValue{Value: 5}
	if !st.add(stashToken(five, 10), 1) {
		t.Fatalf("first token for a range should be added")
	}
	var cases = []struct {
		v     dimex.Value
		prio  int
		added bool
	}{
		{five, 10, false},                         // equal priority
		{dimex.NumeralValue{Value: 6}, 12, false}, // worse priority
		{dimex.NumeralValue{Value: 6}, 3, true},   // better priority
		{dimex.NumeralValue{Value: 7}, 3, false},  // equal to the new best
		{dimex.OrdinalValue{Value: 5}, 20, true},  // other dimension, same range
	}
	for i, c := range cases {
		if added := st.add(stashToken(c.v, c.prio), 2); added != c.added {
			t.Errorf("case %d: add(%v, prio %d) = %v, expected %v", i, c.v, c.prio, added, c.added)
		}
	}
	if st.size != 3 {
		t.Errorf("expected 3 tokens in stash, have %d", st.size)
	}
	if n := len(st.tokens(dimex.Numeral)); n != 2 {
		t.Errorf("better token should be kept alongside the old one, have %d numerals", n)
	}
	if n := len(st.tokens(dimex.Ordinal)); n != 1 {
		t.Errorf("expected 1 ordinal, have %d", n)
	}
	count := 0
	st.startingAt(2, func(n *node) {
		count++
		if n.tok.Range.Start != 2 {
			t.Errorf("token %v does not start at 2", n.tok)
		}
	})
	if count != 3 {
		t.Errorf("expected 3 tokens starting at 2, have %d", count)
	}
	st.clear()
	if st.size != 0 || !st.add(stashToken(five, 10), 1) {
		t.Errorf("cleared stash should accept tokens again")
	}
}
