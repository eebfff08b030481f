// Package netspeak speaks network-shaped tokens: URLs, email
// addresses, IPv4 addresses and file paths.
package netspeak

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/riverfjs/speakify-go/internal/abbrev"
	"github.com/riverfjs/speakify-go/internal/runum"
)

// DetailLevel controls how much of a URL is spoken.
type DetailLevel string

const (
	DetailFull       DetailLevel = "full"
	DetailDomainOnly DetailLevel = "domain_only"
	DetailMinimal    DetailLevel = "minimal"
)

// IPMode controls how IPv4 octets are read.
type IPMode string

const (
	IPNumbers IPMode = "numbers" // each octet as a cardinal
	IPDigits  IPMode = "digits"  // each octet digit by digit
)

// protocols maps URL schemes to their spoken form.
var protocols = map[string]string{
	"https": "эйч ти ти пи эс",
	"http":  "эйч ти ти пи",
	"ftp":   "эф ти пи",
	"sftp":  "эс эф ти пи",
	"ssh":   "эс эс эйч",
	"git":   "гит",
	"file":  "файл",
	"ws":    "веб сокет",
	"wss":   "веб сокет секьюр",
}

// tlds maps known top-level domains to their spoken form; unknown TLDs
// are spelled letter by letter.
var tlds = map[string]string{
	"com":  "ком",
	"org":  "орг",
	"net":  "нет",
	"ru":   "ру",
	"io":   "ай оу",
	"dev":  "дев",
	"app":  "апп",
	"ai":   "эй ай",
	"co":   "ко",
	"me":   "ми",
	"uk":   "ю кей",
	"edu":  "еду",
	"gov":  "гов",
	"info": "инфо",
	"biz":  "биз",
}

// extensions maps file extensions to their spoken form; unknown
// extensions are spelled letter by letter.
var extensions = map[string]string{
	"py":   "пай",
	"js":   "джей эс",
	"ts":   "ти эс",
	"go":   "го",
	"rs":   "ар эс",
	"md":   "эм ди",
	"txt":  "тэкст",
	"json": "джейсон",
	"yaml": "ямл",
	"yml":  "ямл",
	"html": "эйч ти эм эл",
	"css":  "си эс эс",
	"xml":  "икс эм эл",
	"sql":  "эс кью эл",
	"sh":   "эс эйч",
	"log":  "лог",
	"cfg":  "конфиг",
	"ini":  "ини",
	"toml": "томл",
	"csv":  "си эс ви",
	"pdf":  "пдф",
	"png":  "пнг",
	"jpg":  "джейпег",
	"jpeg": "джейпег",
	"svg":  "эс ви джи",
	"zip":  "зип",
	"tar":  "тар",
	"gz":   "джи зет",
	"exe":  "экзе",
	"dll":  "ди эл эл",
	"lock": "лок",
}

// driveLetters speaks Windows drive letters.
var driveLetters = map[string]string{
	"a": "эй", "b": "би", "c": "си", "d": "ди",
	"e": "и", "f": "эф", "g": "джи", "h": "эйч",
}

// Normalizer speaks network tokens according to the configured URL
// detail level and IP read mode.
type Normalizer struct {
	detail DetailLevel
	ipMode IPMode
}

// New builds a Normalizer for the given settings.
func New(detail DetailLevel, ipMode IPMode) *Normalizer {
	return &Normalizer{detail: detail, ipMode: ipMode}
}

// URL speaks a URL: protocol, «двоеточие слэш слэш», host with dots and
// the TLD translated, then port, path, query and fragment per the
// configured detail level.
func (n *Normalizer) URL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}

	host := parsed.Hostname()
	segments := strings.Split(host, ".")

	if n.detail == DetailMinimal {
		out := []string{segments[0]}
		if len(segments) > 1 {
			out = append(out, spokenTLD(segments[len(segments)-1]))
		}
		return strings.Join(out, " ")
	}

	var parts []string
	scheme := strings.ToLower(parsed.Scheme)
	if spoken, ok := protocols[scheme]; ok {
		parts = append(parts, spoken)
	} else if scheme != "" {
		parts = append(parts, abbrev.SpellOut(scheme))
	}
	parts = append(parts, "двоеточие слэш слэш")
	parts = append(parts, spokenHost(segments))

	if n.detail == DetailDomainOnly {
		return strings.Join(parts, " ")
	}

	if port := parsed.Port(); port != "" {
		parts = append(parts, "двоеточие", runum.CardinalString(port))
	}

	if path := parsed.EscapedPath(); path != "" && path != "/" {
		for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
			if seg == "" {
				continue
			}
			parts = append(parts, "слэш", spokenDotted(seg))
		}
	}

	if parsed.RawQuery != "" {
		parts = append(parts, "вопрос")
		for qi, pair := range strings.Split(parsed.RawQuery, "&") {
			if qi > 0 {
				parts = append(parts, "амперсанд")
			}
			key, value, found := strings.Cut(pair, "=")
			parts = append(parts, key)
			if found {
				parts = append(parts, "равно", value)
			}
		}
	}

	if parsed.Fragment != "" {
		parts = append(parts, "решётка", parsed.Fragment)
	}

	return strings.Join(parts, " ")
}

// Email speaks an address: local part, «собака», domain.
func (n *Normalizer) Email(raw string) string {
	local, domain, found := strings.Cut(raw, "@")
	if !found {
		return raw
	}
	return spokenLocalPart(local) + " собака " + spokenHost(strings.Split(domain, "."))
}

// IP speaks a dotted IPv4 address; octets read as cardinals or digit by
// digit depending on the configured mode.
func (n *Normalizer) IP(raw string) string {
	octets := strings.Split(raw, ".")
	if len(octets) != 4 {
		return raw
	}
	parts := make([]string, len(octets))
	for i, octet := range octets {
		num, err := strconv.Atoi(octet)
		if err != nil {
			parts[i] = octet
			continue
		}
		if n.ipMode == IPDigits {
			parts[i] = runum.SpellDigits(octet)
		} else {
			parts[i] = runum.Cardinal(num)
		}
	}
	return strings.Join(parts, " точка ")
}

// ValidIP reports whether every octet of a dotted quad is 0..255.
func ValidIP(raw string) bool {
	octets := strings.Split(raw, ".")
	if len(octets) != 4 {
		return false
	}
	for _, octet := range octets {
		num, err := strconv.Atoi(octet)
		if err != nil || num < 0 || num > 255 {
			return false
		}
	}
	return true
}

// Path speaks a file path, preserving the separator choice («слэш» or
// «бэкслэш») and translating the final extension.
func (n *Normalizer) Path(raw string) string {
	separator := "слэш"
	sepChar := "/"
	if strings.Contains(raw, "\\") {
		separator = "бэкслэш"
		sepChar = "\\"
	}

	segments := strings.Split(raw, sepChar)
	var parts []string
	for i, seg := range segments {
		if i > 0 {
			parts = append(parts, separator)
		}
		if seg == "" {
			continue
		}
		switch {
		case seg == "~":
			parts = append(parts, "тильда")
		case seg == ".":
			parts = append(parts, "точка")
		case seg == "..":
			parts = append(parts, "две точки")
		case isDriveLetter(seg):
			letter := strings.ToLower(seg[:1])
			if spoken, ok := driveLetters[letter]; ok {
				parts = append(parts, spoken)
			} else {
				parts = append(parts, letter)
			}
			parts = append(parts, "двоеточие")
		default:
			last := i == len(segments)-1
			parts = append(parts, spokenPathSegment(seg, last))
		}
	}
	return strings.Join(parts, " ")
}

func isDriveLetter(seg string) bool {
	return len(seg) == 2 && seg[1] == ':' &&
		unicode.IsLetter(rune(seg[0]))
}

// spokenHost joins domain segments with «точка», translating the final
// TLD.
func spokenHost(segments []string) string {
	words := make([]string, len(segments))
	for i, seg := range segments {
		if i == len(segments)-1 && len(segments) > 1 {
			words[i] = spokenTLD(seg)
		} else if isAllDigits(seg) {
			words[i] = runum.CardinalString(seg)
		} else {
			words[i] = seg
		}
	}
	return strings.Join(words, " точка ")
}

func spokenTLD(seg string) string {
	if spoken, ok := tlds[strings.ToLower(seg)]; ok {
		return spoken
	}
	return abbrev.SpellOut(seg)
}

// spokenDotted speaks a path or domain segment that may contain dots,
// reading numeric parts as cardinals.
func spokenDotted(seg string) string {
	if !strings.Contains(seg, ".") {
		if isAllDigits(seg) {
			return runum.CardinalString(seg)
		}
		return seg
	}
	subs := strings.Split(seg, ".")
	words := make([]string, len(subs))
	for i, sub := range subs {
		if isAllDigits(sub) {
			words[i] = runum.CardinalString(sub)
		} else {
			words[i] = sub
		}
	}
	return strings.Join(words, " точка ")
}

// spokenLocalPart speaks an email local part: words stay as they are,
// separators and digit runs are spoken.
func spokenLocalPart(local string) string {
	var parts []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			parts = append(parts, word.String())
			word.Reset()
		}
	}

	runes := []rune(local)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == '.':
			flush()
			parts = append(parts, "точка")
			i++
		case r == '_':
			flush()
			parts = append(parts, "андерскор")
			i++
		case r == '-':
			flush()
			parts = append(parts, "дефис")
			i++
		case r == '+':
			flush()
			parts = append(parts, "плюс")
			i++
		case unicode.IsDigit(r):
			flush()
			j := i
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				j++
			}
			parts = append(parts, runum.CardinalString(string(runes[i:j])))
			i = j
		default:
			word.WriteRune(r)
			i++
		}
	}
	flush()
	return strings.Join(parts, " ")
}

// spokenPathSegment speaks one path segment. The extension of the final
// segment goes through the extension table.
func spokenPathSegment(seg string, last bool) string {
	var parts []string
	rest := seg
	if strings.HasPrefix(rest, ".") {
		parts = append(parts, "точка")
		rest = rest[1:]
	}

	dotParts := strings.Split(rest, ".")
	for i, dp := range dotParts {
		if i > 0 {
			parts = append(parts, "точка")
		}
		if dp == "" {
			continue
		}
		if last && i == len(dotParts)-1 && len(dotParts) > 1 {
			parts = append(parts, spokenExtension(dp))
			continue
		}
		if isAllDigits(dp) {
			parts = append(parts, runum.CardinalString(dp))
			continue
		}
		parts = append(parts, strings.Join(strings.Split(dp, "-"), " дефис "))
	}
	return strings.Join(parts, " ")
}

func spokenExtension(ext string) string {
	if spoken, ok := extensions[strings.ToLower(ext)]; ok {
		return spoken
	}
	return abbrev.SpellOut(ext)
}

func isAllDigits(s string) bool {
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
