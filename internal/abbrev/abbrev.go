// Package abbrev speaks Latin abbreviations: either as a word («json» →
// «джейсон») or letter by letter («API» → «эй пи ай»), with embedded
// digits read individually.
package abbrev

import (
	"strings"
	"unicode"

	"github.com/riverfjs/speakify-go/internal/runum"
)

// LetterMap is the English alphabet spoken in Russian.
var LetterMap = map[rune]string{
	'a': "эй", 'b': "би", 'c': "си", 'd': "ди", 'e': "и",
	'f': "эф", 'g': "джи", 'h': "эйч", 'i': "ай", 'j': "джей",
	'k': "кей", 'l': "эл", 'm': "эм", 'n': "эн", 'o': "о",
	'p': "пи", 'q': "кью", 'r': "ар", 's': "эс", 't': "ти",
	'u': "ю", 'v': "ви", 'w': "дабл ю", 'x': "экс", 'y': "уай",
	'z': "зед",
}

// asWord lists acronyms that are pronounced as words rather than
// spelled out.
var asWord = map[string]string{
	"json": "джейсон",
	"yaml": "ямл",
	"toml": "томл",

	"rest":  "рест",
	"ajax":  "эйджакс",
	"crud":  "крад",
	"cors":  "корс",
	"oauth": "о ауз",

	"gif":  "гиф",
	"jpeg": "джейпег",

	"ram": "рам",
	"rom": "ром",
	"lan": "лан",
	"wan": "ван",

	"spa": "спа",
	"dom": "дом",
	"gui": "гуи",

	"imap":   "ай мап",
	"pop":    "поп",
	"devops": "девопс",
}

// specialCases are mixed-register names that neither spell out cleanly
// nor read as one word.
var specialCases = map[string]string{
	"ios":     "ай оу эс",
	"macos":   "мак оу эс",
	"graphql": "граф кью эл",
	"iot":     "ай о ти",
}

// Normalizer speaks abbreviations. The zero value is not usable; call
// New, optionally merging user-supplied as-word entries.
type Normalizer struct {
	asWord map[string]string
}

// New builds a Normalizer. Extra entries extend (and may shadow) the
// built-in as-word dictionary; keys are lowercased.
func New(extra map[string]string) *Normalizer {
	merged := make(map[string]string, len(asWord)+len(extra))
	for k, v := range asWord {
		merged[k] = v
	}
	for k, v := range extra {
		merged[strings.ToLower(k)] = v
	}
	return &Normalizer{asWord: merged}
}

// Normalize converts an abbreviation to its spoken form.
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)

	if spoken, ok := specialCases[lower]; ok {
		return spoken
	}
	if spoken, ok := n.asWord[lower]; ok {
		return spoken
	}
	return SpellOut(s)
}

// IsWordLike reports whether the lowercased abbreviation has an as-word
// pronunciation.
func (n *Normalizer) IsWordLike(s string) bool {
	_, ok := n.asWord[strings.ToLower(s)]
	return ok
}

// SpellOut reads an abbreviation character by character: letters via
// the alphabet table, digits individually («H264» → «эйч два шесть
// четыре»).
func SpellOut(s string) string {
	var parts []string
	for _, r := range strings.ToLower(s) {
		switch {
		case LetterMap[r] != "":
			parts = append(parts, LetterMap[r])
		case unicode.IsDigit(r):
			parts = append(parts, runum.SpellDigits(string(r)))
		default:
			parts = append(parts, string(r))
		}
	}
	return strings.Join(parts, " ")
}

// Letter speaks a single Latin letter («w» → «дабл ю»).
func Letter(r rune) string {
	if spoken, ok := LetterMap[unicode.ToLower(r)]; ok {
		return spoken
	}
	return string(r)
}
