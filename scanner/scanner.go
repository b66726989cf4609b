/*
Package scanner splits input text into chunks of runes of the same class.

Rule items matching raw text may only start and end at chunk boundaries.
This keeps a regular expression for "ten" from matching inside of
"tender", and a digit pattern from matching a part of a longer number.
Marks (e.g. Arabic tashkeel) are part of the letter run they follow.

The scanner implements the scanner.Tokenizer interface of package gorgo, so
it may as well serve as a front end to parsers of that package.
*/
package scanner

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	lr "github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Chunk classes, returned as token values by NextToken.
// Values are chosen to not collide with the token values reserved by gorgo.
const (
	Letters = 1000 + iota // run of letters and combining marks
	Digits                // run of decimal digits of any script
	Space                 // run of white space
	Symbol                // a single rune of any other class
)

// ClassString returns a readable name for a chunk class.
func ClassString(c int) string {
	switch c {
	case Letters:
		return "Letters"
	case Digits:
		return "Digits"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	case lr.EOF:
		return "EOF"
	}
	return "?"
}

// Scanner reads runs of input text as a unit, as long as all runes therein
// have the same class.
type Scanner struct {
	input   string
	pos     int // start of the current chunk
	ahead   int // position ahead of current chunk
	onError func(error)
}

var _ lr.Tokenizer = (*Scanner)(nil)

// NewScanner creates a scanner for input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// ClassOf returns the chunk class of a rune.
func ClassOf(r rune) int {
	switch {
	case unicode.IsDigit(r):
		return Digits
	case unicode.IsLetter(r) || unicode.IsMark(r):
		return Letters
	case unicode.IsSpace(r):
		return Space
	}
	return Symbol
}

// NextToken reads the next chunk of input text. It returns the chunk class,
// the chunk's lexeme as a string, its byte position and its length in bytes.
// After the last chunk, gorgo's scanner.EOF is returned.
//
// Part of interface scanner.Tokenizer. Argument expected is ignored.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	sc.pos = sc.ahead
	if sc.pos >= len(sc.input) {
		return lr.EOF, "", uint64(len(sc.input)), 0
	}
	r, sz := utf8.DecodeRuneInString(sc.input[sc.pos:])
	if r == utf8.RuneError && sz == 1 && sc.onError != nil {
		sc.onError(errInvalidUTF8{pos: sc.pos})
	}
	clz := ClassOf(r)
	sc.ahead += sz
	for clz != Symbol && sc.ahead < len(sc.input) {
		r, sz = utf8.DecodeRuneInString(sc.input[sc.ahead:])
		if ClassOf(r) != clz {
			break
		}
		sc.ahead += sz
	}
	lexeme := sc.input[sc.pos:sc.ahead]
	return clz, lexeme, uint64(sc.pos), uint64(len(lexeme))
}

// SetErrorHandler sets an error handler function, which is called for
// invalid UTF-8 input.
//
// Part of interface scanner.Tokenizer.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.onError = h
}

type errInvalidUTF8 struct {
	pos int
}

func (e errInvalidUTF8) Error() string {
	return "invalid UTF-8 encoding at byte position " + strconv.Itoa(e.pos)
}

// Boundaries returns for every byte position 0…len(text) of text whether a
// chunk starts or ends there. Positions 0 and len(text) are always
// boundaries.
func Boundaries(text string) []bool {
	b := make([]bool, len(text)+1)
	b[0], b[len(text)] = true, true
	sc := NewScanner(text)
	sc.SetErrorHandler(func(err error) {
		CT().Debugf("boundary scanner: %v", err)
	})
	for {
		tokval, _, pos, _ := sc.NextToken(lr.AnyToken)
		if tokval == lr.EOF {
			break
		}
		b[pos] = true
	}
	return b
}

// SkipSpace returns the first position at or after pos which does not hold
// white space.
func SkipSpace(text string, pos int) int {
	for pos < len(text) {
		r, sz := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += sz
	}
	return pos
}
