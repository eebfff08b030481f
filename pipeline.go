package speakify

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/riverfjs/speakify-go/internal/abbrev"
	"github.com/riverfjs/speakify-go/internal/codeblock"
	"github.com/riverfjs/speakify-go/internal/ident"
	"github.com/riverfjs/speakify-go/internal/netspeak"
	"github.com/riverfjs/speakify-go/internal/parser"
	"github.com/riverfjs/speakify-go/internal/runum"
	"github.com/riverfjs/speakify-go/internal/symbols"
	"github.com/riverfjs/speakify-go/internal/track"
	"github.com/riverfjs/speakify-go/internal/translit"
)

// Pipeline is the reusable normalizer. Its dictionaries are immutable
// after New; the unknown-word collector, the transliteration cache and
// per-call stats are the only mutable state, so a shared Pipeline must not run concurrent Process
// calls (create one Pipeline per goroutine instead — construction is
// cheap).
type Pipeline struct {
	cfg Config

	english *translit.Normalizer
	abbrevs *abbrev.Normalizer
	idents  *ident.Normalizer
	net     *netspeak.Normalizer
	blocks  *codeblock.Handler

	phraseRe *regexp.Regexp

	stats Stats
}

// New builds a Pipeline, merging user dictionaries into the built-in
// ones. Invalid dictionary entries (empty or non-ASCII keys) are
// rejected and reported once via Logger.
func New(opts ...Option) *Pipeline {
	cfg := DefaultConfig().clone()
	for _, opt := range opts {
		opt(&cfg)
	}

	rejected := 0
	cfg.CustomEnglishTerms = validTerms(cfg.CustomEnglishTerms, &rejected)
	cfg.CustomAbbreviations = validTerms(cfg.CustomAbbreviations, &rejected)
	if rejected > 0 {
		Logger.Printf("rejected %d dictionary entries (keys must be non-empty ASCII)", rejected)
	}

	english := translit.New(cfg.CustomEnglishTerms, cfg.TrackUnknownWords)
	abbrevs := abbrev.New(cfg.CustomAbbreviations)
	idents := ident.New(abbrevs, english)

	p := &Pipeline{
		cfg:     cfg,
		english: english,
		abbrevs: abbrevs,
		idents:  idents,
		net:     netspeak.New(cfg.URLDetailLevel, cfg.IPReadMode),
		blocks:  codeblock.New(cfg.CodeBlockMode, idents),
	}
	p.phraseRe = buildPhraseRe(english.Phrases(), cfg.CustomEnglishTerms)
	p.stats.RejectedDictEntries = rejected
	return p
}

// Process normalizes text and returns the rewritten string.
func (p *Pipeline) Process(text string) string {
	out, _ := p.ProcessWithMap(text)
	return out
}

// ProcessWithMap normalizes text and returns the rewritten string with
// its character map. Offsets in the map are code points.
func (p *Pipeline) ProcessWithMap(text string) (string, *CharMap) {
	rejected := p.stats.RejectedDictEntries
	p.stats = Stats{RejectedDictEntries: rejected}
	p.english.ClearUnknownWords()

	t := track.New(text)
	if text != "" {
		p.run(t)
	}
	p.stats.OverlapDropped = t.Dropped()

	m := t.BuildMapping().TrimSpace()
	return m.Transformed(), m
}

// Stats returns the diagnostic counters of the last Process call.
func (p *Pipeline) Stats() Stats { return p.stats }

// UnknownWords returns the words the last call transliterated via the
// letter-level fallback, mapped to what they became. Empty unless
// unknown-word tracking is enabled.
func (p *Pipeline) UnknownWords() map[string]string {
	return p.english.UnknownWords()
}

// Warnings renders the unknown-word collector as human-readable lines,
// so users know which words to add to the dictionary.
func (p *Pipeline) Warnings() []string {
	unknown := p.UnknownWords()
	if len(unknown) == 0 {
		return nil
	}
	words := make([]string, 0, len(unknown))
	for w := range unknown {
		words = append(words, w)
	}
	sort.Strings(words)

	lines := []string{"Следующие слова были транслитерированы автоматически:"}
	for _, w := range words {
		lines = append(lines, "  "+w+" → "+unknown[w])
	}
	lines = append(lines, "Добавьте их в словарь терминов для точного произношения.")
	return lines
}

// =============================================================================
// Pass order
// =============================================================================

var (
	reBOM        = regexp.MustCompile(`^\x{FEFF}`)
	reNewlineRun = regexp.MustCompile(`\n{3,}`)
	reSpaceRun   = regexp.MustCompile(`[ \t]{2,}`)

	reInlineCode = regexp.MustCompile("`([^`\n]+)`")
	reHeading    = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	reBullet     = regexp.MustCompile(`(?m)^[-*+][ \t]+`)
	reLink       = regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\n]*)\)`)
	reEmphasis   = regexp.MustCompile(`\*{1,3}([^*\s][^*\n]*?)\*{1,3}`)
	reListMarker = regexp.MustCompile(`(?m)^(\d+)\.[ \t]+`)

	reURL   = regexp.MustCompile(`(?i)(?:https?|sftp|ftp|ssh|git|wss|ws|file)://[^\s<>"')]+`)
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	reIP    = regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`)
	rePath  = regexp.MustCompile(`(?:[A-Za-z]:\\|~/|\.\./|\./|/)[A-Za-z0-9_.\\/\-]+`)

	reVersion = regexp.MustCompile(
		`\b[vV]\d+(?:\.\d+)+(?:-(?:alpha|beta|rc|dev|stable|release)\d*)?\b` +
			`|\b\d+(?:\.\d+){2,}(?:-(?:alpha|beta|rc|dev|stable|release)\d*)?\b`)
	reSize = regexp.MustCompile(
		`(?i)\b(\d+(?:[.,]\d+)?)[ \t]?(кб|мб|гб|тб|sec|min|rem|[a-z]{1,3})`)
	rePct   = regexp.MustCompile(`\b(\d+(?:[.,]\d+)?)[ \t]?%`)
	reDate  = regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{2}\.\d{2}\.\d{4})\b`)
	reTime  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?::(\d{2}))?\b`)
	reRange = regexp.MustCompile(`\b(\d+)[ \t]?-[ \t]?(\d+)\b`)

	reAbbrev = regexp.MustCompile(`\b[A-Z][A-Z0-9]+\b`)
	reCamel  = regexp.MustCompile(`\b[a-z]+(?:[A-Z][a-z0-9]*)+\b`)
	rePascal = regexp.MustCompile(`\b[A-Z][a-z]+(?:[A-Z][a-z0-9]*)+\b`)
	reUpCaml = regexp.MustCompile(`\b[A-Z]{2,}[a-z][A-Za-z0-9]*\b`)
	reSnake  = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*_[A-Za-z0-9_]*\b`)
	reKebab  = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9]*(?:-[A-Za-z0-9]+)+\b`)

	reFloat = regexp.MustCompile(`\d+[.,]\d+`)
	reInt   = regexp.MustCompile(`\d+`)
	reWord  = regexp.MustCompile(`\b[A-Za-z]+\b`)

	rePunctSpace  = regexp.MustCompile(`[ \t]+([.,!?;:])`)
	reSpaceAfterN = regexp.MustCompile(`\n[ \t]+`)
	reSpaceBefN   = regexp.MustCompile(`[ \t]+\n`)
)

// specialTerms are literal spellings that no tokenizer survives.
var specialTerms = [][2]string{
	{"C++", "си плюс плюс"},
	{"c++", "си плюс плюс"},
	{"C#", "си шарп"},
	{"c#", "си шарп"},
	{"F#", "эф шарп"},
	{"f#", "эф шарп"},
}

// quoteDashes unify typographic quotes and dashes before scanning.
var quoteDashes = [][2]string{
	{"«", `"`}, // «
	{"»", `"`}, // »
	{"“", `"`}, // “
	{"”", `"`}, // ”
	{"‘", "'"}, // ‘
	{"’", "'"}, // ’
	{"—", "-"}, // —
	{"–", "-"}, // –
}

// run executes the fixed pass order of the pipeline over the buffer.
func (p *Pipeline) run(t *track.TrackedText) {
	// Stage 0-1: preprocess and structure. Code blocks go first so the
	// whitespace passes cannot claim spans inside a fence.
	t.Sub(reBOM, "")
	p.passCodeBlocks(t)
	for _, qd := range quoteDashes {
		t.ReplaceLiteral(qd[0], qd[1], 0)
	}
	t.Sub(reNewlineRun, "\n\n")
	t.Sub(reSpaceRun, " ")

	p.passInlineCode(t)
	p.passMarkdown(t)

	// Stage 2-3: structured formats in priority order. Date and Time
	// run before Range so ISO dates keep their dashes.
	p.passURLs(t)
	p.passEmails(t)
	p.passIPs(t)
	p.passPaths(t)
	p.passVersions(t)
	p.passSizes(t)
	p.passPercentages(t)
	p.passDates(t)
	p.passTimes(t)
	p.passRanges(t)

	// Identifiers.
	p.passAbbreviations(t)
	p.passIdentifiers(t)

	// Numbers, operators, leftover English.
	for _, st := range specialTerms {
		t.ReplaceLiteral(st[0], st[1], 0)
	}
	p.passFloats(t)
	p.passIntegers(t)
	p.passOperators(t)
	p.passSpecialSymbols(t)
	p.passPhrases(t)
	p.passEnglishWords(t)

	// Stage 4: postprocess.
	p.passPostprocess(t)
}

// =============================================================================
// Structure
// =============================================================================

func (p *Pipeline) passCodeBlocks(t *track.TrackedText) {
	src := t.Text()
	blocks := parser.Blocks([]byte(src))
	if len(blocks) == 0 {
		return
	}
	toRune := track.RuneOffsets(src)
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		var repl string
		if b.IsDiagram() {
			repl = p.cfg.DiagramSentinel
		} else {
			repl = p.blocks.Process(strings.TrimSpace(b.Code), b.Language)
		}
		t.ReplaceRange(toRune[b.Start], toRune[b.End], repl)
	}
}

func (p *Pipeline) passInlineCode(t *track.TrackedText) {
	t.SubRegex(reInlineCode, func(m track.Match) (string, bool) {
		code := symbols.ExpandSpoken(m.Group(1))
		code = strings.Join(strings.Fields(code), " ")
		if code == "" {
			return "", true
		}
		switch {
		case strings.Contains(code, "_"):
			return p.idents.NormalizeSnake(code), true
		case strings.Contains(code, "-") && !strings.HasPrefix(code, "-"):
			return p.idents.NormalizeKebab(code), true
		case hasInnerUpper(code) && hasLower(code):
			return p.idents.NormalizeCamel(code), true
		default:
			words := strings.Fields(code)
			out := make([]string, 0, len(words))
			for _, w := range words {
				out = append(out, p.speakCodeWord(w))
			}
			return strings.Join(out, " "), true
		}
	})
}

// speakCodeWord speaks one whitespace-separated token of an inline code
// span.
func (p *Pipeline) speakCodeWord(w string) string {
	if spoken, ok := ident.Lookup(w); ok {
		return spoken
	}
	if spoken, ok := p.english.Lookup(w); ok {
		return spoken
	}
	if isASCIIWithLetter(w) {
		return p.idents.NormalizeWord(w)
	}
	return w
}

func (p *Pipeline) passMarkdown(t *track.TrackedText) {
	t.Sub(reHeading, "")
	t.Sub(reBullet, "")

	// Links and emphasis lose only their markers, so the text between
	// them stays original and keeps normalizing (and mapping) per word.
	p.stripMarkerPair(t, reLink, nil)
	p.stripMarkerPair(t, reEmphasis, hasLetter)

	t.SubRegex(reListMarker, func(m track.Match) (string, bool) {
		n := atoi(m.Group(1))
		if n >= 1 && n <= 10 {
			return runum.DayOrdinal(n) + ": ", true
		}
		return runum.CardinalString(m.Group(1)) + ": ", true
	})
}

// stripMarkerPair removes the marker text around group 1 of re — the
// leading "[" or "*…" and the trailing "](url)" or "…*" — as two
// separate replacements, one per side. keep filters on the inner text
// (nil keeps everything).
func (p *Pipeline) stripMarkerPair(t *track.TrackedText, re *regexp.Regexp, keep func(string) bool) {
	src := t.Text()
	idx := re.FindAllStringSubmatchIndex(src, -1)
	if idx == nil {
		return
	}
	toRune := track.RuneOffsets(src)
	for i := len(idx) - 1; i >= 0; i-- {
		loc := idx[i]
		start, end := loc[0], loc[1]
		g1s, g1e := loc[2], loc[3]
		if keep != nil && !keep(src[g1s:g1e]) {
			continue
		}
		t.ReplaceRange(toRune[g1e], toRune[end], "")
		t.ReplaceRange(toRune[start], toRune[g1s], "")
	}
}

// =============================================================================
// Structured formats
// =============================================================================

func (p *Pipeline) passURLs(t *track.TrackedText) {
	t.SubRegex(reURL, func(m track.Match) (string, bool) {
		// The greedy match swallows sentence punctuation; keep it
		// outside the spoken form.
		url := strings.TrimRight(m.Text(), ".,;:!?")
		suffix := m.Text()[len(url):]
		return p.net.URL(url) + suffix, true
	})
}

func (p *Pipeline) passEmails(t *track.TrackedText) {
	t.SubRegex(reEmail, func(m track.Match) (string, bool) {
		return p.net.Email(m.Text()), true
	})
}

func (p *Pipeline) passIPs(t *track.TrackedText) {
	t.SubRegex(reIP, func(m track.Match) (string, bool) {
		// Octets above 255 are not an address; the dotted quad falls
		// through to the version pass, which reads it as dotted cardinals.
		if !netspeak.ValidIP(m.Text()) {
			return "", false
		}
		return p.net.IP(m.Text()), true
	})
}

func (p *Pipeline) passPaths(t *track.TrackedText) {
	t.SubRegex(rePath, func(m track.Match) (string, bool) {
		switch m.Prev() {
		case 0, ' ', '\t', '\n', '(', '"', '\'', ',', ';':
		default:
			return "", false
		}
		return p.net.Path(m.Text()), true
	})
}

var reDateShaped = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

func (p *Pipeline) passVersions(t *track.TrackedText) {
	t.SubRegex(reVersion, func(m track.Match) (string, bool) {
		// DD.MM.YYYY is a date, not a dotted version; leave it for the
		// date pass.
		if reDateShaped.MatchString(m.Text()) {
			return "", false
		}
		return runum.Version(m.Text()), true
	})
}

func (p *Pipeline) passSizes(t *track.TrackedText) {
	t.SubRegex(reSize, func(m track.Match) (string, bool) {
		if isWordRune(m.Next()) {
			return "", false
		}
		spoken, ok := runum.Size(m.Group(1), m.Group(2))
		if !ok {
			p.stats.UnknownUnits++
			return "", false
		}
		return spoken, true
	})
}

func (p *Pipeline) passPercentages(t *track.TrackedText) {
	t.SubRegex(rePct, func(m track.Match) (string, bool) {
		return runum.Percentage(m.Group(1) + "%"), true
	})
}

func (p *Pipeline) passDates(t *track.TrackedText) {
	t.SubRegex(reDate, func(m track.Match) (string, bool) {
		spoken := runum.Date(m.Text())
		if spoken == m.Text() {
			p.stats.MalformedNumbers++
			return "", false
		}
		return spoken, true
	})
}

func (p *Pipeline) passTimes(t *track.TrackedText) {
	t.SubRegex(reTime, func(m track.Match) (string, bool) {
		if atoi(m.Group(1)) > 23 || atoi(m.Group(2)) > 59 {
			p.stats.MalformedNumbers++
			return "", false
		}
		return runum.Time(m.Text()), true
	})
}

func (p *Pipeline) passRanges(t *track.TrackedText) {
	t.SubRegex(reRange, func(m track.Match) (string, bool) {
		return runum.Range(m.Group(1), m.Group(2)), true
	})
}

// =============================================================================
// Identifiers and words
// =============================================================================

func (p *Pipeline) passAbbreviations(t *track.TrackedText) {
	t.SubRegex(reAbbrev, func(m track.Match) (string, bool) {
		return p.abbrevs.Normalize(m.Text()), true
	})
}

func (p *Pipeline) passIdentifiers(t *track.TrackedText) {
	camel := func(m track.Match) (string, bool) {
		return p.idents.NormalizeCamel(m.Text()), true
	}
	t.SubRegex(reCamel, camel)
	t.SubRegex(rePascal, camel)
	t.SubRegex(reUpCaml, camel)

	t.SubRegex(reSnake, func(m track.Match) (string, bool) {
		if !hasLetter(m.Text()) {
			return "", false
		}
		return p.idents.NormalizeSnake(m.Text()), true
	})

	t.SubRegex(reKebab, func(m track.Match) (string, bool) {
		return p.idents.NormalizeKebab(m.Text()), true
	})
}

func (p *Pipeline) passFloats(t *track.TrackedText) {
	t.SubRegex(reFloat, func(m track.Match) (string, bool) {
		if isDigitDot(m.Prev()) || unicode.IsDigit(m.Next()) {
			return "", false
		}
		return runum.Float(m.Text()), true
	})
}

func (p *Pipeline) passIntegers(t *track.TrackedText) {
	t.SubRegex(reInt, func(m track.Match) (string, bool) {
		if isDigitDot(m.Prev()) || unicode.IsDigit(m.Next()) || unicode.IsLetter(m.Next()) {
			return "", false
		}
		return runum.CardinalString(m.Text()), true
	})
}

// opSingles are the single-character symbols the operator pass speaks.
// Sentence punctuation and the hyphen stay literal: the synthesizer
// needs them for phrasing, and hyphens join Russian words.
var opSingles = []string{"@", "#", "&", "$", "*", "/", "\\", "~", "=", "<", ">", "+", "%", "|", "^"}

func (p *Pipeline) passOperators(t *track.TrackedText) {
	if !p.cfg.ReadOperators {
		for _, op := range symbols.OperatorKeys() {
			t.ReplaceLiteral(op, " ", 0)
		}
		for _, s := range opSingles {
			t.ReplaceLiteral(s, " ", 0)
		}
		return
	}

	// Pad only the sides not already next to whitespace: the postprocess
	// collapse cannot merge spaces that belong to two replacements.
	speak := func(sym, spoken string) {
		t.SubRegex(regexp.MustCompile(regexp.QuoteMeta(sym)), func(m track.Match) (string, bool) {
			out := spoken
			if r := m.Prev(); r != 0 && !unicode.IsSpace(r) {
				out = " " + out
			}
			if r := m.Next(); r != 0 && !unicode.IsSpace(r) {
				out += " "
			}
			return out, true
		})
	}
	for _, op := range symbols.OperatorKeys() {
		speak(op, symbols.Operators[op])
	}
	for bracket, spoken := range symbols.Brackets {
		speak(bracket, spoken)
	}
	for _, s := range opSingles {
		speak(s, symbols.Singles[s])
	}
}

func (p *Pipeline) passSpecialSymbols(t *track.TrackedText) {
	for _, table := range []map[string]string{symbols.Greek, symbols.Math, symbols.Arrows} {
		for sym, spoken := range table {
			t.ReplaceLiteral(sym, " "+spoken+" ", 0)
		}
	}
}

func (p *Pipeline) passPhrases(t *track.TrackedText) {
	if p.phraseRe == nil {
		return
	}
	t.SubRegex(p.phraseRe, func(m track.Match) (string, bool) {
		return p.english.Normalize(m.Text()), true
	})
}

func (p *Pipeline) passEnglishWords(t *track.TrackedText) {
	t.SubRegex(reWord, func(m track.Match) (string, bool) {
		word := m.Text()
		runes := []rune(word)
		if len(runes) == 1 {
			return abbrev.Letter(runes[0]), true
		}
		if spoken, ok := p.english.Lookup(word); ok {
			return spoken, true
		}
		if strings.ToUpper(word) == word {
			return p.abbrevs.Normalize(word), true
		}
		if p.abbrevs.IsWordLike(word) {
			return p.abbrevs.Normalize(word), true
		}
		return p.english.Normalize(word), true
	})
}

// =============================================================================
// Postprocess
// =============================================================================

func (p *Pipeline) passPostprocess(t *track.TrackedText) {
	// Backticks that survived (unpaired inline code) have no spoken
	// form in any mode.
	t.ReplaceLiteral("`", " ", 0)

	t.Sub(reSpaceRun, " ")
	t.SubRegex(rePunctSpace, func(m track.Match) (string, bool) {
		return m.Group(1), true
	})
	t.Sub(reSpaceAfterN, "\n")
	t.Sub(reSpaceBefN, "\n")
}

// =============================================================================
// Helpers
// =============================================================================

func validTerms(terms map[string]string, rejected *int) map[string]string {
	if len(terms) == 0 {
		return nil
	}
	out := make(map[string]string, len(terms))
	for k, v := range terms {
		if k == "" || v == "" || !isASCII(k) {
			*rejected++
			continue
		}
		out[k] = v
	}
	return out
}

func buildPhraseRe(phrases []string, custom map[string]string) *regexp.Regexp {
	var keys []string
	keys = append(keys, phrases...)
	for k := range custom {
		if strings.Contains(k, " ") {
			keys = append(keys, strings.ToLower(k))
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

func isASCIIWithLetter(s string) bool {
	hasLetterRune := false
	for _, r := range s {
		if r > 127 {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetterRune = true
		}
	}
	return hasLetterRune
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func hasInnerUpper(s string) bool {
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isDigitDot(r rune) bool {
	return r == '.' || (r >= '0' && r <= '9')
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
