// Package track implements the position-tracked rewrite buffer.
//
// A TrackedText wraps an input string and records every substitution
// against offsets in the original input, so that after an arbitrary
// number of rewrite passes a precise character-level map from the
// final text back to the original can be produced.
//
// All offsets are code points (runes), never bytes.
package track

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

// Replacement is a single logged substitution. OrigStart/OrigEnd are a
// half-open rune range in the original input; ranges of logged
// replacements are pairwise disjoint.
type Replacement struct {
	OrigStart int
	OrigEnd   int
	OrigText  string
	NewText   string
}

// Match is the view of a regex match handed to a rewriter callback.
type Match struct {
	groups []string // groups[0] is the whole match
	prev   rune     // rune before the match, 0 at start of text
	next   rune     // rune after the match, 0 at end of text
}

// Text returns the full matched text.
func (m Match) Text() string { return m.groups[0] }

// Group returns the i-th submatch ("" if it did not participate).
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.groups) {
		return ""
	}
	return m.groups[i]
}

// Prev returns the rune immediately before the match (0 at the start
// of text). Rewriters use it where the pattern itself cannot express a
// boundary.
func (m Match) Prev() rune { return m.prev }

// Next returns the rune immediately after the match (0 at the end of
// text).
func (m Match) Next() rune { return m.next }

// TrackedText is the mutable rewrite substrate. It is not safe for
// concurrent use; the pipeline creates one per call.
type TrackedText struct {
	original string
	origLen  int // rune length of original
	current  string

	// repls is kept sorted by OrigStart. Disjointness makes the order total.
	repls []Replacement

	dropped int
}

// New creates a TrackedText over the given input.
func New(text string) *TrackedText {
	return &TrackedText{
		original: text,
		origLen:  utf8.RuneCountInString(text),
		current:  text,
	}
}

// Original returns the immutable input string.
func (t *TrackedText) Original() string { return t.original }

// Text returns the current rewritten string.
func (t *TrackedText) Text() string { return t.current }

// Dropped reports how many substitutions were skipped because they
// would have overlapped an earlier replacement.
func (t *TrackedText) Dropped() int { return t.dropped }

// SubRegex rewrites matches of re via the rewriter callback. The
// rewriter returns the replacement and whether to apply it; returning
// ok=false leaves the match untouched and unlogged, so later passes
// may still claim the span. Matches are processed right to left so
// that offsets of pending matches stay valid within the pass. A match
// that touches an already replaced region is silently dropped (counted
// in Dropped).
func (t *TrackedText) SubRegex(re *regexp.Regexp, rewrite func(Match) (string, bool)) *TrackedText {
	return t.subRegex(re, rewrite, 0)
}

// Sub rewrites every match of re with the fixed replacement string.
func (t *TrackedText) Sub(re *regexp.Regexp, repl string) *TrackedText {
	return t.subRegex(re, func(Match) (string, bool) { return repl, true }, 0)
}

// ReplaceLiteral replaces occurrences of old with new, tracking each
// occurrence as its own replacement. max limits the number of
// occurrences (≤0 = unlimited).
func (t *TrackedText) ReplaceLiteral(old, new string, max int) *TrackedText {
	if old == "" {
		return t
	}
	re := regexp.MustCompile(regexp.QuoteMeta(old))
	n := max
	if n < 0 {
		n = 0
	}
	return t.subRegex(re, func(Match) (string, bool) { return new, true }, n)
}

func (t *TrackedText) subRegex(re *regexp.Regexp, rewrite func(Match) (string, bool), max int) *TrackedText {
	idx := re.FindAllStringSubmatchIndex(t.current, -1)
	if idx == nil {
		return t
	}
	if max > 0 && len(idx) > max {
		idx = idx[:max]
	}

	// Byte offset -> rune offset table for the pass-start text. Edits run
	// right to left, so offsets of earlier matches never move.
	passText := t.current
	toRune := RuneOffsets(passText)

	for i := len(idx) - 1; i >= 0; i-- {
		loc := idx[i]
		b0, b1 := loc[0], loc[1]
		c0, c1 := toRune[b0], toRune[b1]

		groups := make([]string, len(loc)/2)
		for g := 0; g < len(loc); g += 2 {
			if loc[g] < 0 {
				continue
			}
			groups[g/2] = passText[loc[g]:loc[g+1]]
		}

		if t.touchesReplacement(c0, c1) {
			t.dropped++
			continue
		}

		o0 := t.currentToOriginal(c0, false)
		o1 := t.currentToOriginal(c1, true)
		if t.overlapsLogged(o0, o1) {
			t.dropped++
			continue
		}

		var prev, next rune
		if b0 > 0 {
			prev, _ = utf8.DecodeLastRuneInString(passText[:b0])
		}
		if b1 < len(passText) {
			next, _ = utf8.DecodeRuneInString(passText[b1:])
		}

		newText, ok := rewrite(Match{groups: groups, prev: prev, next: next})
		if !ok {
			continue
		}
		t.record(o0, o1, groups[0], newText)
		t.current = t.current[:b0] + newText + t.current[b1:]
	}
	return t
}

// ReplaceRange replaces the half-open rune range [start, end) of the
// current text. Used by the structural parser, which locates spans by
// offset rather than by pattern. The replacement is dropped if the
// range touches an already replaced region.
func (t *TrackedText) ReplaceRange(start, end int, repl string) bool {
	if start < 0 || end < start {
		return false
	}
	cur := []rune(t.current)
	if end > len(cur) {
		return false
	}
	if t.touchesReplacement(start, end) {
		t.dropped++
		return false
	}
	o0 := t.currentToOriginal(start, false)
	o1 := t.currentToOriginal(end, true)
	if t.overlapsLogged(o0, o1) {
		t.dropped++
		return false
	}
	t.record(o0, o1, string(cur[start:end]), repl)
	t.current = string(cur[:start]) + repl + string(cur[end:])
	return true
}

// record logs a replacement, keeping the log sorted by OrigStart.
func (t *TrackedText) record(o0, o1 int, origText, newText string) {
	i := sort.Search(len(t.repls), func(i int) bool { return t.repls[i].OrigStart >= o0 })
	t.repls = append(t.repls, Replacement{})
	copy(t.repls[i+1:], t.repls[i:])
	t.repls[i] = Replacement{OrigStart: o0, OrigEnd: o1, OrigText: origText, NewText: newText}
}

// touchesReplacement reports whether [c0, c1) in current-text offsets
// intersects the interior of any replacement's inserted text.
func (t *TrackedText) touchesReplacement(c0, c1 int) bool {
	delta := 0
	for _, r := range t.repls {
		newLen := utf8.RuneCountInString(r.NewText)
		curStart := r.OrigStart + delta
		curEnd := curStart + newLen
		if c1 <= curStart {
			return false
		}
		if c0 < curEnd {
			return true
		}
		delta += newLen - (r.OrigEnd - r.OrigStart)
	}
	return false
}

// currentToOriginal translates a current-text rune offset to an
// original-text offset. A position inside a replacement clamps to the
// record's start (for range starts) or end (for range ends).
func (t *TrackedText) currentToOriginal(pos int, isEnd bool) int {
	delta := 0
	for _, r := range t.repls {
		newLen := utf8.RuneCountInString(r.NewText)
		curStart := r.OrigStart + delta
		curEnd := curStart + newLen
		switch {
		case pos < curStart:
			return pos - delta
		case pos < curEnd:
			if isEnd {
				return r.OrigEnd
			}
			return r.OrigStart
		default:
			delta += newLen - (r.OrigEnd - r.OrigStart)
		}
	}
	return pos - delta
}

// overlapsLogged reports whether [o0, o1) in original offsets overlaps
// any logged replacement. Point ranges count as inside when they fall
// within a record.
func (t *TrackedText) overlapsLogged(o0, o1 int) bool {
	for _, r := range t.repls {
		if o0 == o1 {
			if r.OrigStart <= o0 && o0 < r.OrigEnd {
				return true
			}
			continue
		}
		if o0 < r.OrigEnd && r.OrigStart < o1 {
			return true
		}
	}
	return false
}

// BuildMapping derives the character map for the current state.
func (t *TrackedText) BuildMapping() *CharMap {
	orig := []rune(t.original)
	out := []rune(t.current)

	spans := make([][2]int, 0, len(out))
	if len(t.repls) == 0 {
		for i := range out {
			spans = append(spans, [2]int{i, i + 1})
		}
		return &CharMap{original: t.original, transformed: t.current, origRunes: orig, spans: spans}
	}

	origIdx := 0
	for _, r := range t.repls {
		for origIdx < r.OrigStart {
			spans = append(spans, [2]int{origIdx, origIdx + 1})
			origIdx++
		}
		n := utf8.RuneCountInString(r.NewText)
		for i := 0; i < n; i++ {
			spans = append(spans, [2]int{r.OrigStart, r.OrigEnd})
		}
		origIdx = r.OrigEnd
	}
	for origIdx < len(orig) {
		spans = append(spans, [2]int{origIdx, origIdx + 1})
		origIdx++
	}

	return &CharMap{original: t.original, transformed: t.current, origRunes: orig, spans: spans}
}

// Replacements returns a copy of the log sorted by original start.
func (t *TrackedText) Replacements() []Replacement {
	out := make([]Replacement, len(t.repls))
	copy(out, t.repls)
	return out
}

// RuneOffsets builds a byte-offset -> rune-offset table for s.
// Only byte offsets on rune boundaries are meaningful.
func RuneOffsets(s string) []int {
	table := make([]int, len(s)+1)
	n := 0
	for i := range s {
		table[i] = n
		n++
	}
	table[len(s)] = n
	return table
}
