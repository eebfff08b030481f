package runum

import (
	"regexp"
	"strconv"
	"strings"
)

// UnitForms describes one measurement unit: the three declension forms
// and the gender its numeral agrees with.
type UnitForms struct {
	Forms  [3]string
	Gender Gender
}

// SizeUnits maps lowercased unit suffixes to their spoken forms.
var SizeUnits = map[string]UnitForms{
	"kb": {[3]string{"килобайт", "килобайта", "килобайт"}, Masculine},
	"mb": {[3]string{"мегабайт", "мегабайта", "мегабайт"}, Masculine},
	"gb": {[3]string{"гигабайт", "гигабайта", "гигабайт"}, Masculine},
	"tb": {[3]string{"терабайт", "терабайта", "терабайт"}, Masculine},
	"кб": {[3]string{"килобайт", "килобайта", "килобайт"}, Masculine},
	"мб": {[3]string{"мегабайт", "мегабайта", "мегабайт"}, Masculine},
	"гб": {[3]string{"гигабайт", "гигабайта", "гигабайт"}, Masculine},
	"тб": {[3]string{"терабайт", "терабайта", "терабайт"}, Masculine},

	"ms":  {[3]string{"миллисекунда", "миллисекунды", "миллисекунд"}, Feminine},
	"sec": {[3]string{"секунда", "секунды", "секунд"}, Feminine},
	"min": {[3]string{"минута", "минуты", "минут"}, Feminine},
	"hr":  {[3]string{"час", "часа", "часов"}, Masculine},

	"px":  {[3]string{"пиксель", "пикселя", "пикселей"}, Masculine},
	"em":  {[3]string{"эм", "эм", "эм"}, Masculine},
	"rem": {[3]string{"рэм", "рэм", "рэм"}, Masculine},
	"vh":  {[3]string{"ви эйч", "ви эйч", "ви эйч"}, Masculine},
	"vw":  {[3]string{"ви дабл ю", "ви дабл ю", "ви дабл ю"}, Masculine},
}

var percentForms = [3]string{"процент", "процента", "процентов"}

// MonthsGenitive holds the twelve month names in the genitive case,
// indexed 1..12.
var MonthsGenitive = [13]string{
	"", "января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// versionSuffixes maps pre-release tags to their spoken form.
var versionSuffixes = map[string]string{
	"alpha":   "альфа",
	"beta":    "бета",
	"rc":      "эр си",
	"dev":     "дев",
	"stable":  "стейбл",
	"release": "релиз",
}

// Float reads «3.14» as «три точка один четыре»: cardinal integer part,
// the separator word, fractional digits one by one. A comma separator
// is spoken as «запятая».
func Float(s string) string {
	sep := "точка"
	if strings.Contains(s, ",") {
		sep = "запятая"
		s = strings.Replace(s, ",", ".", 1)
	}
	intPart, fracPart, found := strings.Cut(s, ".")
	if !found {
		return CardinalString(s)
	}
	if _, err := strconv.Atoi(intPart); err != nil {
		return s
	}
	return CardinalString(intPart) + " " + sep + " " + SpellDigits(fracPart)
}

// Percentage reads «50%» as «пятьдесят процентов» with the unit
// declined by the numeral. Fractional percentages always take the
// genitive plural.
func Percentage(s string) string {
	num := strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if strings.ContainsAny(num, ".,") {
		return Float(num) + " " + percentForms[2]
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return s
	}
	return Cardinal(n) + " " + Plural(n, percentForms)
}

// Range reads «10-20» as «от десяти до двадцати», both bounds in the
// genitive.
func Range(from, to string) string {
	a, errA := strconv.Atoi(strings.TrimSpace(from))
	b, errB := strconv.Atoi(strings.TrimSpace(to))
	if errA != nil || errB != nil {
		return from + "-" + to
	}
	return "от " + Genitive(a) + " до " + Genitive(b)
}

// Size reads «100MB» as «сто мегабайт»: cardinal agreeing in gender
// with the unit, unit declined by the numeral. A unit not in SizeUnits,
// or a number that does not parse, yields ok=false.
func Size(num, unit string) (string, bool) {
	u, ok := SizeUnits[strings.ToLower(unit)]
	if !ok {
		return "", false
	}
	if strings.ContainsAny(num, ".,") {
		return Float(num) + " " + u.Forms[2], true
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return "", false
	}
	return CardinalGender(n, u.Gender) + " " + Plural(n, u.Forms), true
}

var versionComponentRe = regexp.MustCompile(`^([a-zA-Z]+)(\d*)$`)

// Version reads «v20.10.0» as «двадцать точка десять точка ноль»: the
// leading v is silent, dot-separated components read as cardinals, and
// pre-release tags («-rc1») are spoken by name.
func Version(s string) string {
	s = strings.TrimLeft(s, "vV")
	var out []string
	for i, dotPart := range strings.Split(s, ".") {
		if i > 0 {
			out = append(out, "точка")
		}
		for _, comp := range strings.Split(dotPart, "-") {
			if comp == "" {
				continue
			}
			if n, err := strconv.Atoi(comp); err == nil {
				out = append(out, Cardinal(n))
				continue
			}
			if m := versionComponentRe.FindStringSubmatch(comp); m != nil {
				if spoken, ok := versionSuffixes[strings.ToLower(m[1])]; ok {
					out = append(out, spoken)
					if m[2] != "" {
						out = append(out, CardinalString(m[2]))
					}
					continue
				}
			}
			out = append(out, comp)
		}
	}
	return strings.Join(out, " ")
}

// Date reads ISO «2024-01-15» and European «15.01.2024» dates as
// «пятнадцатое января две тысячи двадцать четвёртого года».
func Date(s string) string {
	parts := regexp.MustCompile(`[-./]`).Split(s, -1)
	if len(parts) != 3 {
		return s
	}

	var day, month, year int
	var err [3]error
	if len(parts[0]) == 4 {
		year, err[0] = strconv.Atoi(parts[0])
		month, err[1] = strconv.Atoi(parts[1])
		day, err[2] = strconv.Atoi(parts[2])
	} else {
		day, err[0] = strconv.Atoi(parts[0])
		month, err[1] = strconv.Atoi(parts[1])
		year, err[2] = strconv.Atoi(parts[2])
	}
	if err[0] != nil || err[1] != nil || err[2] != nil {
		return s
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year <= 0 {
		return s
	}

	return DayOrdinal(day) + " " + MonthsGenitive[month] + " " + YearOrdinalGenitive(year) + " года"
}

var (
	hourForms   = [3]string{"час", "часа", "часов"}
	minuteForms = [3]string{"минута", "минуты", "минут"}
	secondForms = [3]string{"секунда", "секунды", "секунд"}
)

// Time reads «14:30» as «четырнадцать часов тридцать минут», with an
// optional seconds field.
func Time(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return s
	}
	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return s
	}
	seconds := 0
	if len(parts) > 2 {
		var errS error
		seconds, errS = strconv.Atoi(parts[2])
		if errS != nil {
			return s
		}
	}

	out := []string{Cardinal(hours) + " " + Plural(hours, hourForms)}
	if minutes > 0 || seconds > 0 {
		out = append(out, CardinalGender(minutes, Feminine)+" "+Plural(minutes, minuteForms))
	}
	if seconds > 0 {
		out = append(out, CardinalGender(seconds, Feminine)+" "+Plural(seconds, secondForms))
	}
	return strings.Join(out, " ")
}
