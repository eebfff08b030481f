package track

import (
	"regexp"
	"testing"
	"unicode/utf8"
)

func sub(t *TrackedText, pattern, repl string) {
	t.SubRegex(regexp.MustCompile(pattern), func(Match) (string, bool) {
		return repl, true
	})
}

func TestSubRegex_Simple(t *testing.T) {
	tr := New("Hello getUserData")
	sub(tr, "getUserData", "гет юзер дата")
	if tr.Text() != "Hello гет юзер дата" {
		t.Errorf("Text() = %q", tr.Text())
	}
}

func TestSubRegex_Callback(t *testing.T) {
	tr := New("a1 b22 c333")
	tr.SubRegex(regexp.MustCompile(`\d+`), func(m Match) (string, bool) {
		return "<" + m.Text() + ">", true
	})
	if tr.Text() != "a<1> b<22> c<333>" {
		t.Errorf("Text() = %q", tr.Text())
	}
}

func TestSubRegex_SkipLeavesSpanForLaterPass(t *testing.T) {
	tr := New("256 and 255")
	// First pass refuses everything above 255.
	tr.SubRegex(regexp.MustCompile(`\d+`), func(m Match) (string, bool) {
		if m.Text() == "256" {
			return "", false
		}
		return "ok", true
	})
	// Second pass may still claim the skipped span.
	sub(tr, "256", "later")
	if tr.Text() != "later and ok" {
		t.Errorf("Text() = %q", tr.Text())
	}
	if tr.Dropped() != 0 {
		t.Errorf("Dropped() = %d, want 0", tr.Dropped())
	}
}

func TestSubRegex_OverlapDropped(t *testing.T) {
	tr := New("foobar")
	sub(tr, "foobar", "X")
	sub(tr, "X", "Y") // tries to edit inside a replacement
	if tr.Text() != "X" {
		t.Errorf("Text() = %q", tr.Text())
	}
	if tr.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", tr.Dropped())
	}
}

func TestSubRegex_CrossBoundaryMatchDropped(t *testing.T) {
	tr := New("abc def")
	sub(tr, "abc", "xyz")
	// Matches spanning replacement and original text must not log.
	before := tr.Text()
	sub(tr, "yz d", "!")
	if tr.Text() != before {
		t.Errorf("Text() = %q, want unchanged %q", tr.Text(), before)
	}
	if tr.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", tr.Dropped())
	}
}

func TestReplaceLiteral_Count(t *testing.T) {
	tr := New("a.a.a")
	tr.ReplaceLiteral(".", "!", 2)
	if tr.Text() != "a!a!a" {
		t.Errorf("Text() = %q", tr.Text())
	}
}

func TestReplaceRange(t *testing.T) {
	tr := New("привет мир")
	if !tr.ReplaceRange(7, 10, "world") {
		t.Fatal("ReplaceRange() = false")
	}
	if tr.Text() != "привет world" {
		t.Errorf("Text() = %q", tr.Text())
	}
	m := tr.BuildMapping()
	o0, o1 := m.OriginalRange(7, 12)
	if o0 != 7 || o1 != 10 {
		t.Errorf("OriginalRange(7, 12) = (%d, %d), want (7, 10)", o0, o1)
	}
}

func TestMapping_Identity(t *testing.T) {
	input := "просто текст"
	m := New(input).BuildMapping()
	if m.Len() != utf8.RuneCountInString(input) {
		t.Fatalf("Len() = %d", m.Len())
	}
	for i := 0; i < m.Len(); i++ {
		a, b := m.Span(i)
		if a != i || b != i+1 {
			t.Errorf("Span(%d) = (%d, %d)", i, a, b)
		}
	}
}

func TestMapping_LenMatchesTransformed(t *testing.T) {
	tr := New("Вызови getUserData сейчас")
	sub(tr, "getUserData", "гет юзер дата")
	m := tr.BuildMapping()
	if m.Len() != utf8.RuneCountInString(m.Transformed()) {
		t.Errorf("Len() = %d, rune len = %d", m.Len(), utf8.RuneCountInString(m.Transformed()))
	}
}

func TestMapping_ReplacementSpansShareRange(t *testing.T) {
	tr := New("ab CODE cd")
	sub(tr, "CODE", "хх")
	m := tr.BuildMapping()
	// Replacement starts at rune 3 and is 2 runes long.
	for i := 3; i < 5; i++ {
		a, b := m.Span(i)
		if a != 3 || b != 7 {
			t.Errorf("Span(%d) = (%d, %d), want (3, 7)", i, a, b)
		}
	}
}

func TestMapping_RecordsDisjointAndSorted(t *testing.T) {
	tr := New("one two three four")
	sub(tr, "two", "2")
	sub(tr, "four", "4")
	sub(tr, "one", "1")
	repls := tr.Replacements()
	for i := 1; i < len(repls); i++ {
		if repls[i-1].OrigEnd > repls[i].OrigStart {
			t.Errorf("records overlap: %+v then %+v", repls[i-1], repls[i])
		}
	}
}

func TestMapping_TranslationAfterMultiplePasses(t *testing.T) {
	tr := New("aa bb cc")
	sub(tr, "aa", "xxxx") // grows text by 2
	sub(tr, "cc", "y")    // later span, translated through the delta
	m := tr.BuildMapping()

	// "y" is the last rune of "xxxx bb y".
	o0, o1 := m.OriginalRange(m.Len()-1, m.Len())
	if o0 != 6 || o1 != 8 {
		t.Errorf("OriginalRange = (%d, %d), want (6, 8)", o0, o1)
	}
}

func TestOriginalWordRange_ExpandsToWhitespace(t *testing.T) {
	tr := New("Вызови getUserData сейчас")
	sub(tr, "User", "юзер")
	m := tr.BuildMapping()

	// Offset inside «юзер» must expand to the whole identifier.
	idx := -1
	runes := []rune(m.Transformed())
	for i := range runes {
		if string(runes[i:min(i+4, len(runes))]) == "юзер" {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("юзер not found in transformed text")
	}
	w0, w1 := m.OriginalWordRange(idx)
	orig := []rune(m.Original())
	if string(orig[w0:w1]) != "getUserData" {
		t.Errorf("word range = %q", string(orig[w0:w1]))
	}
}

func TestTrimSpace_AdjustsSpans(t *testing.T) {
	tr := New("  ядро  ")
	m := tr.BuildMapping().TrimSpace()
	if m.Transformed() != "ядро" {
		t.Fatalf("Transformed() = %q", m.Transformed())
	}
	a, b := m.Span(0)
	if a != 2 || b != 3 {
		t.Errorf("Span(0) = (%d, %d), want (2, 3)", a, b)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
