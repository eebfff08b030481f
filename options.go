package speakify

// Option configures a Pipeline at construction.
type Option func(*Config)

// WithCodeBlockMode sets how fenced code blocks are rendered.
func WithCodeBlockMode(mode CodeBlockMode) Option {
	return func(c *Config) {
		c.CodeBlockMode = mode
	}
}

// WithURLDetailLevel sets how much of a URL is spoken.
func WithURLDetailLevel(level URLDetailLevel) Option {
	return func(c *Config) {
		c.URLDetailLevel = level
	}
}

// WithIPReadMode sets how IPv4 octets are read.
func WithIPReadMode(mode IPReadMode) Option {
	return func(c *Config) {
		c.IPReadMode = mode
	}
}

// WithReadOperators toggles operator pronunciation.
func WithReadOperators(enable bool) Option {
	return func(c *Config) {
		c.ReadOperators = enable
	}
}

// WithEnglishTerms merges extra Latin→Cyrillic entries into the English
// dictionary.
func WithEnglishTerms(terms map[string]string) Option {
	return func(c *Config) {
		if c.CustomEnglishTerms == nil {
			c.CustomEnglishTerms = make(map[string]string, len(terms))
		}
		for k, v := range terms {
			c.CustomEnglishTerms[k] = v
		}
	}
}

// WithAbbreviations merges extra entries into the as-word abbreviation
// dictionary.
func WithAbbreviations(terms map[string]string) Option {
	return func(c *Config) {
		if c.CustomAbbreviations == nil {
			c.CustomAbbreviations = make(map[string]string, len(terms))
		}
		for k, v := range terms {
			c.CustomAbbreviations[k] = v
		}
	}
}

// WithDiagramSentinel sets the phrase inserted in place of diagram
// blocks.
func WithDiagramSentinel(sentinel string) Option {
	return func(c *Config) {
		c.DiagramSentinel = sentinel
	}
}

// WithUnknownWordTracking enables the unknown-word diagnostic
// collector.
func WithUnknownWordTracking(enable bool) Option {
	return func(c *Config) {
		c.TrackUnknownWords = enable
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = cfg.clone()
		}
	}
}
