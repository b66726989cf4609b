package scanner

import (
	"testing"

	lr "github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScanner(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	sc := NewScanner("1,234.5 kolmas خمسة")
	var lexemes []string
	var classes []int
	for {
		tokval, token, pos, l := sc.NextToken(lr.AnyToken)
		if tokval == lr.EOF {
			break
		}
		t.Logf("chunk '%s' at %d+%d = %s", token, pos, l, ClassString(tokval))
		lexemes = append(lexemes, token.(string))
		classes = append(classes, tokval)
	}
	expected := []string{"1", ",", "234", ".", "5", " ", "kolmas", " ", "خمسة"}
	if len(lexemes) != len(expected) {
		t.Fatalf("expected %d chunks, have %d: %q", len(expected), len(lexemes), lexemes)
	}
	for i, e := range expected {
		if lexemes[i] != e {
			t.Errorf("chunk #%d: expected '%s', have '%s'", i, e, lexemes[i])
		}
	}
	if classes[0] != Digits || classes[1] != Symbol || classes[6] != Letters || classes[7] != Space {
		t.Errorf("unexpected chunk classes %v", classes)
	}
}

func TestScannerSymbolsAreSingle(t *testing.T) {
	sc := NewScanner("--5")
	n := 0
	for {
		tokval, _, _, _ := sc.NextToken(lr.AnyToken)
		if tokval == lr.EOF {
			break
		}
		n++
	}
	if n != 3 {
		t.Errorf("expected 3 chunks for '--5', have %d", n)
	}
}

func TestBoundaries(t *testing.T) {
	text := "007. tender"
	b := Boundaries(text)
	for _, pos := range []int{0, 3, 4, 5, 11} {
		if !b[pos] {
			t.Errorf("expected boundary at %d", pos)
		}
	}
	for _, pos := range []int{1, 2, 6, 8} {
		if b[pos] {
			t.Errorf("expected no boundary at %d", pos)
		}
	}
	arabic := "٣٤ مائة"
	b = Boundaries(arabic)
	if !b[len("٣٤")] || b[2] {
		t.Errorf("Arabic-Indic digits should form a single chunk")
	}
}

func TestSkipSpace(t *testing.T) {
	if p := SkipSpace("a  \tb", 1); p != 4 {
		t.Errorf("expected position 4, have %d", p)
	}
	if p := SkipSpace("ab", 2); p != 2 {
		t.Errorf("expected end of text, have %d", p)
	}
}

func TestInvalidUTF8(t *testing.T) {
	sc := NewScanner("a\xffb")
	var errs []error
	sc.SetErrorHandler(func(err error) { errs = append(errs, err) })
	var total uint64
	for {
		tokval, _, _, l := sc.NextToken(lr.AnyToken)
		if tokval == lr.EOF {
			break
		}
		total += l
	}
	if total != 3 {
		t.Errorf("chunks should cover all 3 bytes, cover %d", total)
	}
	if len(errs) != 1 {
		t.Errorf("expected exactly one encoding error, have %v", errs)
	}
}
