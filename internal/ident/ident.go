// Package ident splits code identifiers (camelCase, PascalCase,
// snake_case, kebab-case) into words and speaks each part.
package ident

import (
	"strings"
	"unicode"

	"github.com/riverfjs/speakify-go/internal/abbrev"
	"github.com/riverfjs/speakify-go/internal/runum"
	"github.com/riverfjs/speakify-go/internal/translit"
)

// Normalizer speaks identifiers. Segments resolve through the code-word
// dictionary, ALL-CAPS segments through the abbreviation normalizer,
// digit runs through the number engine, everything else through the
// English normalizer.
type Normalizer struct {
	abbrev  *abbrev.Normalizer
	english *translit.Normalizer
}

// New wires the splitter to its downstream normalizers.
func New(a *abbrev.Normalizer, e *translit.Normalizer) *Normalizer {
	return &Normalizer{abbrev: a, english: e}
}

// SplitCamel splits a camelCase or PascalCase identifier into segments:
// lower→upper boundaries, the end of an uppercase run before a
// capitalized word (XMLHttp → XML, Http), and letter↔digit boundaries.
func SplitCamel(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = true
		case unicode.IsDigit(prev) != unicode.IsDigit(cur):
			boundary = true
		}
		if boundary {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}

// NormalizeCamel speaks a camelCase/PascalCase identifier.
func (n *Normalizer) NormalizeCamel(s string) string {
	return n.speakParts(SplitCamel(s))
}

// NormalizeSnake speaks a snake_case identifier. Leading and trailing
// underscores (dunders) are dropped.
func (n *Normalizer) NormalizeSnake(s string) string {
	stripped := strings.Trim(s, "_")
	if stripped == "" {
		return s
	}
	var parts []string
	for _, p := range strings.Split(stripped, "_") {
		if p != "" {
			parts = append(parts, SplitCamel(p)...)
		}
	}
	return n.speakParts(parts)
}

// NormalizeKebab speaks a kebab-case identifier.
func (n *Normalizer) NormalizeKebab(s string) string {
	var parts []string
	for _, p := range strings.Split(s, "-") {
		if p != "" {
			parts = append(parts, SplitCamel(p)...)
		}
	}
	return n.speakParts(parts)
}

// NormalizeWord speaks a single bare segment the same way identifier
// segments are spoken. Used for inline code spans that are plain words.
func (n *Normalizer) NormalizeWord(s string) string {
	return n.speakParts([]string{s})
}

// Lookup exposes the code-word dictionary.
func Lookup(word string) (string, bool) {
	spoken, ok := codeWords[strings.ToLower(word)]
	return spoken, ok
}

func (n *Normalizer) speakParts(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		switch {
		case isDigits(part):
			out = append(out, runum.CardinalString(part))
		case codeWords[strings.ToLower(part)] != "":
			out = append(out, codeWords[strings.ToLower(part)])
		case isUpperAbbrev(part):
			out = append(out, n.abbrev.Normalize(part))
		case len([]rune(part)) == 1:
			out = append(out, abbrev.Letter([]rune(part)[0]))
		default:
			out = append(out, n.english.Normalize(part))
		}
	}
	return strings.Join(out, " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isUpperAbbrev reports an ALL-CAPS segment of two or more letters.
func isUpperAbbrev(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
