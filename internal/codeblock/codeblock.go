// Package codeblock turns the interior of fenced code blocks into
// spoken text — either a one-sentence summary («далее следует пример
// кода на пайтон») or a token-by-token reading of the code itself.
package codeblock

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/riverfjs/speakify-go/internal/ident"
	"github.com/riverfjs/speakify-go/internal/runum"
	"github.com/riverfjs/speakify-go/internal/symbols"
)

// Mode selects how code blocks are rendered.
type Mode string

const (
	ModeFull  Mode = "full"  // read the contents token by token
	ModeBrief Mode = "brief" // replace with a summary sentence
)

// languageNames maps info-string language tags to their spoken Russian
// names.
var languageNames = map[string]string{
	"python":     "пайтон",
	"py":         "пайтон",
	"javascript": "джаваскрипт",
	"js":         "джаваскрипт",
	"typescript": "тайпскрипт",
	"ts":         "тайпскрипт",
	"bash":       "баш",
	"sh":         "шелл",
	"shell":      "шелл",
	"zsh":        "зи шелл",
	"sql":        "эс кью эл",
	"json":       "джейсон",
	"yaml":       "ямл",
	"yml":        "ямл",
	"html":       "эйч ти эм эл",
	"css":        "си эс эс",
	"go":         "го",
	"golang":     "голанг",
	"rust":       "раст",
	"java":       "джава",
	"kotlin":     "котлин",
	"swift":      "свифт",
	"ruby":       "руби",
	"php":        "пи эйч пи",
	"c":          "си",
	"cpp":        "си плюс плюс",
	"c++":        "си плюс плюс",
	"cs":         "си шарп",
	"csharp":     "си шарп",
	"c#":         "си шарп",
	"markdown":   "маркдаун",
	"md":         "маркдаун",
	"xml":        "икс эм эл",
	"toml":       "томл",
	"dockerfile": "докерфайл",
	"makefile":   "мейкфайл",
	"graphql":    "граф кью эл",
	"scss":       "эс си эс эс",
	"sass":       "сасс",
	"less":       "лесс",
	"vue":        "вью",
	"jsx":        "джей эс икс",
	"tsx":        "ти эс икс",
	"r":          "ар",
	"perl":       "перл",
	"lua":        "луа",
	"elixir":     "эликсир",
	"erlang":     "эрланг",
	"haskell":    "хаскелл",
	"scala":      "скала",
	"clojure":    "кложур",
	"dart":       "дарт",
	"nginx":      "энджинкс",
	"apache":     "апачи",
	"terraform":  "терраформ",
	"powershell": "пауэршелл",
	"mermaid":    "мёрмэйд",
}

// tokenRe tokenizes code for full-mode reading: identifiers, numbers,
// string literals, brackets, operator runs, punctuation, and Cyrillic
// words produced by the symbol pre-pass.
var tokenRe = regexp.MustCompile(
	`[a-zA-Z_][a-zA-Z0-9_]*|\d+|'[^'\n]*'|"[^"\n]*"|[()\[\]{}]|[+\-*/=<>!&|?:;.,]+|[а-яА-ЯёЁ]+`)

// Handler renders code blocks.
type Handler struct {
	mode  Mode
	ident *ident.Normalizer
}

// New builds a Handler in the given mode.
func New(mode Mode, identifiers *ident.Normalizer) *Handler {
	if mode != ModeBrief {
		mode = ModeFull
	}
	return &Handler{mode: mode, ident: identifiers}
}

// Mode returns the active rendering mode.
func (h *Handler) Mode() Mode { return h.mode }

// Process renders a code block's interior for the active mode.
func (h *Handler) Process(code, language string) string {
	if h.mode == ModeBrief {
		return Brief(language)
	}
	return h.Full(code)
}

// Brief builds the one-sentence summary for a block of the given
// language.
func Brief(language string) string {
	if language == "" {
		return "далее следует блок кода"
	}
	name, ok := languageNames[strings.ToLower(language)]
	if !ok {
		name = strings.ToLower(language)
	}
	return "далее следует пример кода на " + name
}

// LanguageName returns the spoken name of a language tag.
func LanguageName(tag string) (string, bool) {
	name, ok := languageNames[strings.ToLower(tag)]
	return name, ok
}

// Full reads code token by token: identifiers through the splitter,
// numbers as cardinals, operators and brackets through the symbol
// table, string literals by their content.
func (h *Handler) Full(code string) string {
	// Greek letters, math symbols and arrows become words before
	// tokenization, so the ASCII-centred token regex can pass them
	// through as Cyrillic tokens.
	code = symbols.ExpandSpoken(code)

	var out []string
	for _, token := range tokenRe.FindAllString(code, -1) {
		if spoken := h.speakToken(token); spoken != "" {
			out = append(out, spoken)
		}
	}
	return strings.Join(out, " ")
}

func (h *Handler) speakToken(token string) string {
	if token == "" {
		return ""
	}

	first := []rune(token)[0]

	// Cyrillic tokens come from the symbol pre-pass; keep them.
	if unicode.Is(unicode.Cyrillic, first) {
		return token
	}

	if isDigits(token) {
		return runum.CardinalString(token)
	}

	// String literals read as their content.
	if len(token) >= 2 && (token[0] == '\'' || token[0] == '"') {
		content := token[1 : len(token)-1]
		if content == "" {
			return ""
		}
		return h.ident.NormalizeWord(content)
	}

	if isIdentifier(token) {
		switch {
		case strings.Contains(token, "_"):
			return h.ident.NormalizeSnake(token)
		case hasInnerUpper(token):
			return h.ident.NormalizeCamel(token)
		default:
			return h.ident.NormalizeWord(token)
		}
	}

	// Operators, brackets and punctuation: longest-match against the
	// symbol table, splitting compound runs greedily.
	return speakOperatorRun(token)
}

// speakOperatorRun resolves an operator run like "==)" by repeatedly
// taking the longest symbol-table match from the front.
func speakOperatorRun(token string) string {
	var out []string
	for len(token) > 0 {
		matched := false
		max := 3
		if len(token) < max {
			max = len(token)
		}
		for l := max; l >= 1; l-- {
			if spoken, ok := symbols.Lookup(token[:l]); ok {
				out = append(out, spoken)
				token = token[l:]
				matched = true
				break
			}
		}
		if !matched {
			token = token[1:]
		}
	}
	return strings.Join(out, " ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}

func hasInnerUpper(s string) bool {
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
