package numeral

import (
	"strconv"
	"strings"
	"unicode"
)

// DigitValue returns the value of a decimal digit of any script, e.g. 3 for
// '3', '٣' (Arabic-Indic) and '۳' (Extended Arabic-Indic).
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	// Digits of a script are encoded as a contiguous run starting with zero.
	// Some blocks place several runs next to each other.
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10, true
}

// ASCIIDigits replaces decimal digits of any script by ASCII digits.
// Other runes are left untouched.
func ASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := DigitValue(r); ok {
			return rune('0' + d)
		}
		return r
	}, s)
}

// ParseNumber parses a number written with digits. Thousands separators
// are removed, the decimal separator may be any of decimalSeps. Digits of
// any script are accepted.
func ParseNumber(s string, thousandsSeps string, decimalSeps string) (float64, bool) {
	var b strings.Builder
	seenDecimal := false
	digits := 0
	for _, r := range strings.TrimSpace(s) {
		switch {
		case strings.ContainsRune(thousandsSeps, r):
			if seenDecimal {
				return 0, false
			}
		case strings.ContainsRune(decimalSeps, r):
			if seenDecimal {
				return 0, false
			}
			seenDecimal = true
			b.WriteByte('.')
		default:
			d, ok := DigitValue(r)
			if !ok {
				return 0, false
			}
			digits++
			b.WriteByte(byte('0' + d))
		}
	}
	if digits == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		CT().Debugf("cannot parse number %q: %v", s, err)
		return 0, false
	}
	return f, true
}

// ParseInteger parses a plain sequence of digits of any script.
func ParseInteger(s string) (int64, bool) {
	f, ok := ParseNumber(s, "", "")
	if !ok || f > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
