package runum

import (
	"regexp"
	"strings"
)

// genitivePairs rewrites cardinal words into the genitive case, applied
// word by word to the output of Cardinal, in list order. Keys are whole
// words; «тысячи» and «миллиона» are both keys and replacements, so
// their pairs come before the pairs that produce them.
var genitivePairs = []struct{ nom, gen string }{
	{"один", "одного"},
	{"одна", "одной"},
	{"два", "двух"},
	{"две", "двух"},
	{"три", "трёх"},
	{"четыре", "четырёх"},
	{"пять", "пяти"},
	{"шесть", "шести"},
	{"семь", "семи"},
	{"восемь", "восьми"},
	{"девять", "девяти"},
	{"десять", "десяти"},
	{"одиннадцать", "одиннадцати"},
	{"двенадцать", "двенадцати"},
	{"тринадцать", "тринадцати"},
	{"четырнадцать", "четырнадцати"},
	{"пятнадцать", "пятнадцати"},
	{"шестнадцать", "шестнадцати"},
	{"семнадцать", "семнадцати"},
	{"восемнадцать", "восемнадцати"},
	{"девятнадцать", "девятнадцати"},
	{"двадцать", "двадцати"},
	{"тридцать", "тридцати"},
	{"сорок", "сорока"},
	{"пятьдесят", "пятидесяти"},
	{"шестьдесят", "шестидесяти"},
	{"семьдесят", "семидесяти"},
	{"восемьдесят", "восьмидесяти"},
	{"девяносто", "девяноста"},
	{"сто", "ста"},
	{"двести", "двухсот"},
	{"триста", "трёхсот"},
	{"четыреста", "четырёхсот"},
	{"пятьсот", "пятисот"},
	{"шестьсот", "шестисот"},
	{"семьсот", "семисот"},
	{"восемьсот", "восьмисот"},
	{"девятьсот", "девятисот"},
	{"тысячи", "тысяч"},
	{"тысяча", "тысячи"},
	{"миллиона", "миллионов"},
	{"миллион", "миллиона"},
}

var genitiveRe = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(genitivePairs))
	for i, p := range genitivePairs {
		res[i] = regexp.MustCompile(`(^|\s)` + p.nom + `($|\s)`)
	}
	return res
}()

// Genitive spells n as a genitive cardinal («от пяти до десяти»).
// Four-digit numbers read as years and take the ordinal genitive.
func Genitive(n int) string {
	if n >= 1000 && n <= 9999 {
		return YearOrdinalGenitive(n)
	}
	words := Cardinal(n)
	for i, p := range genitivePairs {
		words = genitiveRe[i].ReplaceAllString(words, "${1}"+p.gen+"${2}")
	}
	return words
}

// ordinalGenitiveLast rewrites the final cardinal word into the ordinal
// genitive, turning «две тысячи двадцать четыре» into «две тысячи
// двадцать четвёртого».
var ordinalGenitiveLast = map[string]string{
	"один":         "первого",
	"два":          "второго",
	"три":          "третьего",
	"четыре":       "четвёртого",
	"пять":         "пятого",
	"шесть":        "шестого",
	"семь":         "седьмого",
	"восемь":       "восьмого",
	"девять":       "девятого",
	"десять":       "десятого",
	"одиннадцать":  "одиннадцатого",
	"двенадцать":   "двенадцатого",
	"тринадцать":   "тринадцатого",
	"четырнадцать": "четырнадцатого",
	"пятнадцать":   "пятнадцатого",
	"шестнадцать":  "шестнадцатого",
	"семнадцать":   "семнадцатого",
	"восемнадцать": "восемнадцатого",
	"девятнадцать": "девятнадцатого",
	"двадцать":     "двадцатого",
	"тридцать":     "тридцатого",
	"сорок":        "сорокового",
	"пятьдесят":    "пятидесятого",
	"шестьдесят":   "шестидесятого",
	"семьдесят":    "семидесятого",
	"восемьдесят":  "восьмидесятого",
	"девяносто":    "девяностого",
	"сто":          "сотого",
	"двести":       "двухсотого",
	"триста":       "трёхсотого",
	"четыреста":    "четырёхсотого",
	"пятьсот":      "пятисотого",
	"шестьсот":     "шестисотого",
	"семьсот":      "семисотого",
	"восемьсот":    "восьмисотого",
	"девятьсот":    "девятисотого",
	"тысяча":       "тысячного",
	"тысячи":       "тысячного",
	"тысяч":        "тысячного",
}

// YearOrdinalGenitive spells a year the way Russian dates need it:
// «две тысячи двадцать четвёртого» (… года).
func YearOrdinalGenitive(year int) string {
	if year == 2000 {
		return "двухтысячного"
	}
	words := strings.Fields(Cardinal(year))
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	if gen, ok := ordinalGenitiveLast[last]; ok {
		words[len(words)-1] = gen
	}
	return strings.Join(words, " ")
}

// dayOrdinalUnits spells days of the month: «первое», «двадцать
// третье» — the neuter ordinal Russian dates use.
var dayOrdinalUnits = map[int]string{
	1: "первое", 2: "второе", 3: "третье", 4: "четвёртое", 5: "пятое",
	6: "шестое", 7: "седьмое", 8: "восьмое", 9: "девятое", 10: "десятое",
	11: "одиннадцатое", 12: "двенадцатое", 13: "тринадцатое",
	14: "четырнадцатое", 15: "пятнадцатое", 16: "шестнадцатое",
	17: "семнадцатое", 18: "восемнадцатое", 19: "девятнадцатое",
	20: "двадцатое", 30: "тридцатое",
}

// DayOrdinal spells a day of month 1..31 as a neuter ordinal. Out of
// range days fall back to the cardinal.
func DayOrdinal(day int) string {
	if w, ok := dayOrdinalUnits[day]; ok {
		return w
	}
	if day > 20 && day < 30 {
		return "двадцать " + dayOrdinalUnits[day-20]
	}
	if day == 31 {
		return "тридцать первое"
	}
	return Cardinal(day)
}
