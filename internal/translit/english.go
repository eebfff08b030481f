// Package translit turns English words into Russian phonetic spelling:
// a curated IT dictionary first, then a deterministic letter-level
// fallback with greedy digraph matching.
package translit

import (
	"sort"
	"strings"
)

// translitMap is the letter-level fallback. Digraphs and longer
// combinations are matched greedily before single letters.
var translitMap = map[string]string{
	"sh": "ш", "ch": "ч", "th": "с", "ph": "ф", "wh": "в",
	"ck": "к", "gh": "г", "ng": "нг", "qu": "кв",
	"tion": "шн", "sion": "жн",
	"ee": "и", "oo": "у", "ea": "и", "ou": "ау", "ow": "оу",
	"ai": "эй", "ay": "эй", "ey": "эй", "ei": "эй",
	"ie": "и", "oa": "оу", "oi": "ой", "oy": "ой",
	"au": "о", "aw": "о", "ew": "ью",

	"a": "а", "b": "б", "c": "к", "d": "д", "e": "е",
	"f": "ф", "g": "г", "h": "х", "i": "и", "j": "дж",
	"k": "к", "l": "л", "m": "м", "n": "н", "o": "о",
	"p": "п", "q": "к", "r": "р", "s": "с", "t": "т",
	"u": "у", "v": "в", "w": "в", "x": "кс", "y": "и",
	"z": "з",
}

// translitKeys is translitMap's keys longest first, so digraphs win.
var translitKeys = func() []string {
	keys := make([]string, 0, len(translitMap))
	for k := range translitMap {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// phraseKeys is multiWordPhrases' keys longest first.
var phraseKeys = func() []string {
	keys := make([]string, 0, len(multiWordPhrases))
	for k := range multiWordPhrases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// Normalizer converts English words and phrases to Russian phonetics.
// The dictionaries are frozen at construction; the unknown-word
// collector and the transliteration cache are the only mutable state
// and are not synchronized — callers sharing a Normalizer across
// goroutines must guard it themselves.
type Normalizer struct {
	custom       map[string]string
	trackUnknown bool
	unknown      map[string]string
	cache        map[string]string
}

// New builds a Normalizer. custom entries are merged over the built-in
// dictionary (keys lowercased); trackUnknown enables the diagnostic
// collector for words that fell through to transliteration.
func New(custom map[string]string, trackUnknown bool) *Normalizer {
	merged := make(map[string]string, len(custom))
	for k, v := range custom {
		merged[strings.ToLower(k)] = v
	}
	return &Normalizer{
		custom:       merged,
		trackUnknown: trackUnknown,
		unknown:      make(map[string]string),
		cache:        make(map[string]string),
	}
}

// Lookup returns the dictionary pronunciation for a word, checking
// custom entries before the built-in dictionary.
func (n *Normalizer) Lookup(word string) (string, bool) {
	lower := strings.ToLower(word)
	if spoken, ok := n.custom[lower]; ok {
		return spoken, true
	}
	spoken, ok := itTerms[lower]
	return spoken, ok
}

// LookupPhrase returns the pronunciation of a multi-word phrase.
func (n *Normalizer) LookupPhrase(phrase string) (string, bool) {
	spoken, ok := multiWordPhrases[strings.ToLower(phrase)]
	return spoken, ok
}

// Phrases returns the known multi-word phrases, longest first.
func (n *Normalizer) Phrases() []string { return phraseKeys }

// Normalize converts a word: phrase table, custom terms, dictionary,
// then the letter-level fallback. Fallback hits are recorded in the
// unknown-word collector when tracking is on.
func (n *Normalizer) Normalize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)

	if spoken, ok := multiWordPhrases[lower]; ok {
		return spoken
	}
	if spoken, ok := n.Lookup(word); ok {
		return spoken
	}

	result := n.transliterate(lower)
	if n.trackUnknown {
		if _, seen := n.unknown[lower]; !seen {
			n.unknown[lower] = result
		}
	}
	return result
}

// Transliterate applies the letter-level fallback without consulting
// the dictionaries and without unknown-word tracking.
func (n *Normalizer) Transliterate(word string) string {
	return n.transliterate(strings.ToLower(word))
}

func (n *Normalizer) transliterate(lower string) string {
	if cached, ok := n.cache[lower]; ok {
		return cached
	}

	var b strings.Builder
	runes := []rune(lower)
	for i := 0; i < len(runes); {
		matched := false
		for _, key := range translitKeys {
			kr := []rune(key)
			if i+len(kr) > len(runes) {
				continue
			}
			if string(runes[i:i+len(kr)]) == key {
				b.WriteString(translitMap[key])
				i += len(kr)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}

	result := b.String()
	n.cache[lower] = result
	return result
}

// UnknownWords returns a copy of the unknown-word collector: every word
// that went through the fallback, mapped to what it became.
func (n *Normalizer) UnknownWords() map[string]string {
	out := make(map[string]string, len(n.unknown))
	for k, v := range n.unknown {
		out[k] = v
	}
	return out
}

// ClearUnknownWords resets the collector, typically between pipeline
// calls.
func (n *Normalizer) ClearUnknownWords() {
	clear(n.unknown)
}
