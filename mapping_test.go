package speakify

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// mapProperties asserts the universal character-map invariants for one
// input.
func mapProperties(t *testing.T, input string) {
	t.Helper()
	out, m := ProcessWithMap(input)

	if m.Len() != utf8.RuneCountInString(out) {
		t.Errorf("map length %d != output rune length %d (input %q)",
			m.Len(), utf8.RuneCountInString(out), input)
	}

	inputLen := utf8.RuneCountInString(input)
	for i := 0; i < m.Len(); i++ {
		a, b := m.Span(i)
		if a < 0 || a > b || b > inputLen {
			t.Errorf("Span(%d) = (%d, %d) out of bounds for input %q", i, a, b, input)
		}
	}

	// Every span must be contained in the union range of any window
	// around it.
	if m.Len() > 2 {
		s, e := 1, m.Len()-1
		u0, u1 := m.OriginalRange(s, e)
		for i := s; i < e; i++ {
			a, b := m.Span(i)
			if a < u0 || b > u1 {
				t.Errorf("Span(%d)=(%d,%d) outside OriginalRange(%d,%d)=(%d,%d)",
					i, a, b, s, e, u0, u1)
			}
		}
	}
}

func TestMapProperties(t *testing.T) {
	inputs := []string{
		"Вызови getUserData() через API",
		"Версия должна быть >= 20.10.0",
		"user@example.com",
		"Сервер 192.168.1.1 на порту 8080",
		"# Заголовок\n\nСкачай [файл](https://example.com/f.zip) размером 100MB",
		"```python\nprint('hello')\n```",
		"50% или 3.14",
		"Привет, мир",
	}
	for _, input := range inputs {
		mapProperties(t, input)
	}
}

func TestMap_PureRussianIsIdentity(t *testing.T) {
	input := "Привет, мир"
	out, m := ProcessWithMap(input)
	if out != input {
		t.Fatalf("output %q != input", out)
	}
	for i := 0; i < m.Len(); i++ {
		a, b := m.Span(i)
		if a != i || b != i+1 {
			t.Errorf("Span(%d) = (%d, %d), want identity", i, a, b)
		}
	}
}

// TestMap_TestNumberAbbrev is the canonical mapping scenario: every
// output word of «Test 123 API» maps back to its source token.
func TestMap_TestNumberAbbrev(t *testing.T) {
	input := "Test 123 API"
	out, m := ProcessWithMap(input)

	wantWords := map[string]string{
		"тест":     "Test",
		"сто":      "123",
		"двадцать": "123",
		"три":      "123",
		"эй":       "API",
		"пи":       "API",
		"ай":       "API",
	}

	runes := []rune(out)
	origRunes := []rune(input)
	start := -1
	seen := map[string]bool{}
	for i := 0; i <= len(runes); i++ {
		atSpace := i == len(runes) || runes[i] == ' '
		if !atSpace && start < 0 {
			start = i
		}
		if atSpace && start >= 0 {
			word := string(runes[start:i])
			o0, o1 := m.OriginalRange(start, i)
			src := string(origRunes[o0:o1])
			if want, ok := wantWords[word]; ok {
				if src != want {
					t.Errorf("word %q maps to %q, want %q", word, src, want)
				}
				seen[word] = true
			}
			start = -1
		}
	}
	for word := range wantWords {
		if !seen[word] {
			t.Errorf("word %q not found in output %q", word, out)
		}
	}
}

func TestMap_WordRange(t *testing.T) {
	input := "Вызови getUserData сейчас"
	out, m := ProcessWithMap(input)

	idx := strings.Index(out, "юзер")
	if idx < 0 {
		t.Fatalf("юзер not in %q", out)
	}
	runeIdx := utf8.RuneCountInString(out[:idx])
	w0, w1 := m.OriginalWordRange(runeIdx)
	orig := []rune(input)
	if string(orig[w0:w1]) != "getUserData" {
		t.Errorf("OriginalWordRange = %q", string(orig[w0:w1]))
	}
}
