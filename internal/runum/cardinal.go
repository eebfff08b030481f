// Package runum spells numbers, dates, times, versions and measured
// quantities as lowercase Russian words, with the declension a neural
// synthesizer cannot infer from digits.
//
// Cardinal spelling is delegated to moul.io/number-to-words; everything
// case- and gender-related is layered on top, since the library only
// produces nominative masculine forms.
package runum

import (
	"regexp"
	"strconv"
	"strings"

	ntw "moul.io/number-to-words"
)

// Gender of the noun a numeral agrees with.
type Gender int

const (
	Masculine Gender = iota
	Feminine
	Neuter
)

// Digits maps single digit characters to their spoken form, used for
// digit-by-digit reading (fractions, IP digits mode, abbreviations).
var Digits = map[rune]string{
	'0': "ноль",
	'1': "один",
	'2': "два",
	'3': "три",
	'4': "четыре",
	'5': "пять",
	'6': "шесть",
	'7': "семь",
	'8': "восемь",
	'9': "девять",
}

var (
	reOne = regexp.MustCompile(`(^|\s)один($|\s)`)
	reTwo = regexp.MustCompile(`(^|\s)два($|\s)`)
)

// Cardinal spells n as a Russian cardinal (nominative, masculine).
func Cardinal(n int) string {
	if n == 0 {
		return "ноль"
	}
	return ntw.IntegerToRuRu(n)
}

// CardinalGender spells n agreeing with a noun of the given gender:
// один/два become одна/две for feminine and одно/два for neuter.
func CardinalGender(n int, g Gender) string {
	words := Cardinal(n)
	switch g {
	case Feminine:
		words = reOne.ReplaceAllString(words, "${1}одна${2}")
		words = reTwo.ReplaceAllString(words, "${1}две${2}")
	case Neuter:
		words = reOne.ReplaceAllString(words, "${1}одно${2}")
	}
	return words
}

// CardinalString spells a digit string as a cardinal. Non-numeric input
// comes back unchanged — the engine never fails on input.
func CardinalString(s string) string {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return Cardinal(n)
}

// SpellDigits reads a digit string one digit at a time.
func SpellDigits(s string) string {
	var parts []string
	for _, r := range s {
		if word, ok := Digits[r]; ok {
			parts = append(parts, word)
		} else {
			parts = append(parts, string(r))
		}
	}
	return strings.Join(parts, " ")
}

// Plural picks the noun form agreeing with n by the standard Russian
// rule: 11–14 take the genitive plural, otherwise the last digit
// decides (1 — nominative singular, 2–4 — genitive singular, the rest —
// genitive plural).
//
// forms is {nominative singular, genitive singular, genitive plural},
// e.g. {"процент", "процента", "процентов"}.
func Plural(n int, forms [3]string) string {
	if n < 0 {
		n = -n
	}
	lastTwo := n % 100
	if lastTwo >= 11 && lastTwo <= 14 {
		return forms[2]
	}
	switch n % 10 {
	case 1:
		return forms[0]
	case 2, 3, 4:
		return forms[1]
	default:
		return forms[2]
	}
}
