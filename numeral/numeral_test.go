package numeral

import (
	"testing"

	"github.com/npillmayer/dimex"
)

func TestMultiply(t *testing.T) {
	three := Integer(3)
	hundred := Power(2)
	thousand := Power(3)
	v, ok := Multiply(three, hundred)
	if !ok || v.Value != 300 || v.Grain == nil || *v.Grain != 2 || v.Multipliable {
		t.Errorf("3 × 100 should be 300 with grain 2, is %v", v)
	}
	v, ok = Multiply(v, thousand)
	if !ok || v.Value != 300000 || *v.Grain != 3 {
		t.Errorf("300 × 1000 should be 300000 with grain 3, is %v", v)
	}
	if _, ok = Multiply(thousand, hundred); ok {
		t.Errorf("1000 × 100 should be rejected")
	}
	if _, ok = Multiply(thousand, thousand); ok {
		t.Errorf("1000 × 1000 should be rejected")
	}
}

func TestSum(t *testing.T) {
	hundred := WithGrain(Integer(100), 2)
	if v, ok := Sum(hundred, Integer(25)); !ok || v.Value != 125 {
		t.Errorf("100 + 25 should be 125, is %v", v)
	}
	if _, ok := Sum(hundred, Integer(100)); ok {
		t.Errorf("100 + 100 should be rejected")
	}
	if _, ok := Sum(Integer(20), Integer(5)); ok {
		t.Errorf("sum without grain should be rejected")
	}
	if v, ok := Negate(Integer(5)); !ok || v.Value != -5 {
		t.Errorf("negation of 5 failed: %v", v)
	}
}

func TestPredicates(t *testing.T) {
	var v dimex.Value = Power(3)
	if !IsMultipliable(v) || !HasGrain(v) || !GrainAtLeast(2)(v) || GrainAtLeast(4)(v) {
		t.Errorf("predicates on 1000 are wrong")
	}
	if !And(IsPositive, Between(1, 9))(Integer(4)) || Not(IsNatural)(Integer(4)) {
		t.Errorf("combined predicates on 4 are wrong")
	}
	if IsNatural(Double(2.5)) || IsPositive(dimex.OrdinalValue{Value: 3}) {
		t.Errorf("predicates must hold only for natural numerals")
	}
}

func TestParseNumber(t *testing.T) {
	var cases = []struct {
		in  string
		out float64
		ok  bool
	}{
		{"1,234.5", 1234.5, true},
		{"٣٤٥", 345, true},
		{"١٬٢٣٤٫٥", 1234.5, true},
		{"۱۲", 12, true},
		{"1.2.3", 0, false},
		{"1.234,5", 0, false},
		{",", 0, false},
		{"12a", 0, false},
	}
	for _, c := range cases {
		f, ok := ParseNumber(c.in, ",٬", ".٫")
		if ok != c.ok || (ok && f != c.out) {
			t.Errorf("ParseNumber(%q) = %v/%v, expected %v/%v", c.in, f, ok, c.out, c.ok)
		}
	}
	if d, ok := DigitValue('٧'); !ok || d != 7 {
		t.Errorf("Arabic-Indic seven should have value 7, has %d", d)
	}
	if s := ASCIIDigits("x٠١٢"); s != "x012" {
		t.Errorf("ASCIIDigits failed: %s", s)
	}
}

func TestWords(t *testing.T) {
	lx := Words(nil, map[string]Entry{
		"hundred": Multiplier(2),
		"five":    Plain(5),
		"twenty":  Grained(20, 1),
	})
	v, ok := lx.Lookup("Hundred")
	n := v.(dimex.NumeralValue)
	if !ok || n.Value != 100 || !n.Multipliable || *n.Grain != 2 {
		t.Errorf("hundred should be a multiplier with grain 2, is %v", v)
	}
	v, _ = lx.Lookup("five")
	if v.(dimex.NumeralValue).Grain != nil {
		t.Errorf("plain entries have no grain")
	}
}
