// Package speakify rewrites technical Russian prose into a fully
// Cyrillic surface a neural speech synthesizer can pronounce.
//
// Technical text is full of things a Russian TTS model cannot read:
// Latin words, code identifiers, URLs, IP addresses, numbers, operators
// and markdown structure. This package replaces all of them with their
// spoken Russian forms while keeping a precise character-level map back
// to the original text, so a player can highlight the source fragment
// of whatever is currently being spoken.
//
// Core features:
//   - fenced code blocks summarized or read token by token
//   - identifiers split and spoken (getUserData → «гет юзер дата»)
//   - numbers, dates, times, sizes and percentages with correct
//     Russian declension («21%» → «двадцать один процент»)
//   - URLs, emails, IPs and file paths spelled out
//   - a curated English dictionary plus a deterministic
//     transliteration fallback
//   - a character map from every output rune to its source range
//
// Main API:
//   - Process(): one-shot normalization, returns the rewritten string
//   - ProcessWithMap(): also returns the character map
//   - New(): builds a reusable Pipeline with merged dictionaries
//
// Example:
//
//	text, m := speakify.ProcessWithMap("Вызови getUserData() через API")
//	start, end := m.OriginalRange(0, 6)
//	// start, end cover «Вызови» in the input
package speakify

import "github.com/riverfjs/speakify-go/internal/track"

// CharMap is the character-level mapping from the rewritten text back
// to the original input. See the methods on track.CharMap:
// OriginalRange, OriginalWordRange, Span, Len.
type CharMap = track.CharMap

// Process normalizes text with the given options and drops the map.
func Process(text string, opts ...Option) string {
	return New(opts...).Process(text)
}

// ProcessWithMap normalizes text and returns the rewritten string
// together with its character map.
func ProcessWithMap(text string, opts ...Option) (string, *CharMap) {
	return New(opts...).ProcessWithMap(text)
}
