package ar

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/dimex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold maps Arabic text to a canonical form for lexicon lookup: tashkeel
// (short vowel marks) and tatweel are removed, hamza and madda forms of
// alef collapse to bare alef, ta marbuta becomes ha and alef maqsura
// becomes ya.
func Fold(s string) string {
	// transformer chains keep state, so every call gets its own
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		CT().Debugf("cannot fold %q: %v", s, err)
		folded = s
	}
	folded = strings.Map(func(r rune) rune {
		switch r {
		case 'أ', 'إ', 'آ', 'ٱ':
			return 'ا'
		case 'ة':
			return 'ه'
		case 'ى':
			return 'ي'
		case 'ـ': // tatweel
			return -1
		}
		return r
	}, folded)
	return dimex.DefaultFolding(folded)
}

// variants lists for folded letters the spellings they stand for.
var variants = map[rune]string{
	'ا': "اأإآٱ",
	'ه': "هة",
	'ي': "يىئ",
	'و': "وؤ",
}

// marks matches optional tashkeel and tatweel after a letter.
const marks = `[\p{Mn}ـ]*`

// wordPattern creates a regular expression matching w in any spelling
// which folds to the same canonical form.
func wordPattern(w string) string {
	var b strings.Builder
	space := false
	for _, r := range Fold(w) {
		if r == ' ' {
			space = true
			continue
		}
		if space {
			b.WriteString(`\s+`)
			space = false
		}
		if v, ok := variants[r]; ok {
			b.WriteString("[" + v + "]")
		} else {
			b.WriteString(regexpQuote(r))
		}
		b.WriteString(marks)
	}
	return b.String()
}

func regexpQuote(r rune) string {
	if r < utf8.RuneSelf && strings.ContainsRune(`\.+*?()|[]{}^$`, r) {
		return `\` + string(r)
	}
	return string(r)
}

// wordsPattern creates an alternation of word patterns, longest words
// first.
func wordsPattern(words []string) string {
	folded := make([]string, 0, len(words))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		f := Fold(w)
		if !seen[f] {
			seen[f] = true
			folded = append(folded, f)
		}
	}
	sort.Slice(folded, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(folded[i]), utf8.RuneCountInString(folded[j])
		if li != lj {
			return li > lj
		}
		return folded[i] < folded[j]
	})
	alts := make([]string, len(folded))
	for i, f := range folded {
		alts[i] = wordPattern(f)
	}
	return strings.Join(alts, "|")
}

// LexiconRule creates a rule for a list of Arabic words. Words match in
// every spelling Fold maps to the same form.
func LexiconRule(name string, words map[string]dimex.Value) dimex.Rule {
	lx := dimex.NewLexicon(Fold, words)
	keys := make([]string, 0, len(words))
	for w := range words {
		keys = append(keys, w)
	}
	return lx.RuleWithPattern(name, wordsPattern(keys))
}
