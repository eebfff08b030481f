package codeblock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverfjs/speakify-go/internal/abbrev"
	"github.com/riverfjs/speakify-go/internal/ident"
	"github.com/riverfjs/speakify-go/internal/translit"
)

func newHandler(mode Mode) *Handler {
	return New(mode, ident.New(abbrev.New(nil), translit.New(nil, false)))
}

func TestBrief(t *testing.T) {
	assert.Equal(t, "далее следует пример кода на пайтон", Brief("python"))
	assert.Equal(t, "далее следует пример кода на го", Brief("go"))
	assert.Equal(t, "далее следует блок кода", Brief(""))
	// Unknown language tags are spoken as-is, lowercased.
	assert.Equal(t, "далее следует пример кода на brainfuck", Brief("Brainfuck"))
}

func TestProcess_BriefMode(t *testing.T) {
	h := newHandler(ModeBrief)
	assert.Equal(t,
		"далее следует пример кода на пайтон",
		h.Process("print('hello')", "python"))
}

func TestFull_ReadsTokens(t *testing.T) {
	h := newHandler(ModeFull)
	got := h.Full("print('hello')")
	assert.Contains(t, got, "принт")
	assert.Contains(t, got, "хелло")
	assert.Contains(t, got, "открывающая скобка")
	assert.Contains(t, got, "закрывающая скобка")
}

func TestFull_Identifiers(t *testing.T) {
	h := newHandler(ModeFull)
	assert.Contains(t, h.Full("user_name = getValue()"), "юзер нейм")
	assert.Contains(t, h.Full("user_name = getValue()"), "гет вэлью")
	assert.Contains(t, h.Full("x = 42"), "сорок два")
}

func TestFull_Operators(t *testing.T) {
	h := newHandler(ModeFull)
	got := h.Full("a >= b && c")
	assert.Contains(t, got, "больше или равно")
	assert.Contains(t, got, "и")
}

func TestFull_GreekSymbols(t *testing.T) {
	h := newHandler(ModeFull)
	got := h.Full("λ x → x")
	assert.Contains(t, got, "лямбда")
	assert.Contains(t, got, "стрелка")
}

func TestLanguageName(t *testing.T) {
	name, ok := LanguageName("TS")
	assert.True(t, ok)
	assert.Equal(t, "тайпскрипт", name)

	_, ok = LanguageName("nope")
	assert.False(t, ok)
}
