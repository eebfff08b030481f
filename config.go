package speakify

import (
	"sync"

	"github.com/riverfjs/speakify-go/internal/codeblock"
	"github.com/riverfjs/speakify-go/internal/netspeak"
)

// CodeBlockMode selects how fenced code blocks are rendered.
type CodeBlockMode = codeblock.Mode

const (
	// CodeBlockFull reads code contents token by token.
	CodeBlockFull = codeblock.ModeFull
	// CodeBlockBrief replaces a block with a one-sentence summary.
	CodeBlockBrief = codeblock.ModeBrief
)

// URLDetailLevel selects how much of a URL is spoken.
type URLDetailLevel = netspeak.DetailLevel

const (
	URLDetailFull       = netspeak.DetailFull
	URLDetailDomainOnly = netspeak.DetailDomainOnly
	URLDetailMinimal    = netspeak.DetailMinimal
)

// IPReadMode selects how IPv4 octets are read.
type IPReadMode = netspeak.IPMode

const (
	IPReadNumbers = netspeak.IPNumbers
	IPReadDigits  = netspeak.IPDigits
)

// Config is the value object every pipeline is built from. Dictionaries
// are merged once at construction and frozen afterwards.
type Config struct {
	// CodeBlockMode renders fenced code blocks. Default CodeBlockFull.
	CodeBlockMode CodeBlockMode

	// URLDetailLevel shortens spoken URLs. Default URLDetailFull.
	URLDetailLevel URLDetailLevel

	// IPReadMode reads IPv4 octets. Default IPReadNumbers.
	IPReadMode IPReadMode

	// ReadOperators pronounces operators and symbols; when false,
	// multi-character operators are stripped to a space. Default true.
	ReadOperators bool

	// CustomEnglishTerms extends the English pronunciation dictionary
	// (Latin key, Cyrillic value).
	CustomEnglishTerms map[string]string

	// CustomAbbreviations extends the as-word abbreviation dictionary.
	CustomAbbreviations map[string]string

	// DiagramSentinel replaces diagram blocks. Default «Тут диаграмма».
	DiagramSentinel string

	// TrackUnknownWords collects words that fell through to the
	// transliteration fallback, retrievable via Pipeline.UnknownWords.
	TrackUnknownWords bool
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = &Config{
			CodeBlockMode:   CodeBlockFull,
			URLDetailLevel:  URLDetailFull,
			IPReadMode:      IPReadNumbers,
			ReadOperators:   true,
			DiagramSentinel: "Тут диаграмма",
		}
	})
	return defaultConfig
}

// clone copies cfg so a pipeline never aliases caller-owned maps.
func (c *Config) clone() Config {
	out := *c
	if c.CustomEnglishTerms != nil {
		out.CustomEnglishTerms = make(map[string]string, len(c.CustomEnglishTerms))
		for k, v := range c.CustomEnglishTerms {
			out.CustomEnglishTerms[k] = v
		}
	}
	if c.CustomAbbreviations != nil {
		out.CustomAbbreviations = make(map[string]string, len(c.CustomAbbreviations))
		for k, v := range c.CustomAbbreviations {
			out.CustomAbbreviations[k] = v
		}
	}
	return out
}
