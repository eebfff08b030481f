package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverfjs/speakify-go/internal/abbrev"
	"github.com/riverfjs/speakify-go/internal/translit"
)

func newNormalizer() *Normalizer {
	return New(abbrev.New(nil), translit.New(nil, false))
}

func TestSplitCamel(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"getUser", []string{"get", "User"}},
		{"getUserData", []string{"get", "User", "Data"}},
		{"XMLHttpRequest", []string{"XML", "Http", "Request"}},
		{"parseJSON", []string{"parse", "JSON"}},
		{"base64Encode", []string{"base", "64", "Encode"}},
		{"v2", []string{"v", "2"}},
		{"word", []string{"word"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitCamel(tt.in), "SplitCamel(%q)", tt.in)
	}
}

func TestNormalizeCamel(t *testing.T) {
	n := newNormalizer()
	assert.Equal(t, "гет юзер дата", n.NormalizeCamel("getUserData"))
	assert.Equal(t, "парс джейсон", n.NormalizeCamel("parseJSON"))
}

func TestNormalizeSnake(t *testing.T) {
	n := newNormalizer()
	assert.Equal(t, "юзер нейм", n.NormalizeSnake("user_name"))
	assert.Equal(t, "инит", n.NormalizeSnake("__init__"))
	assert.Equal(t, "макс вэлью каунт", n.NormalizeSnake("max_value_count"))
}

func TestNormalizeKebab(t *testing.T) {
	n := newNormalizer()
	assert.Equal(t, "риакт дом", n.NormalizeKebab("react-dom"))
	assert.Equal(t, "ю ти эф восемь", n.NormalizeKebab("UTF-8"))
}

func TestDigitSegmentsReadAsCardinals(t *testing.T) {
	n := newNormalizer()
	assert.Equal(t, "бейз шестьдесят четыре энкоуд", n.NormalizeCamel("base64Encode"))
}

func TestUppercaseSegmentsRouteToAbbreviations(t *testing.T) {
	n := newNormalizer()
	assert.Equal(t, "эйч ти эм эл парс", n.NormalizeCamel("HTMLParse"))
}

func TestUnknownSegmentsFallBackToEnglish(t *testing.T) {
	n := newNormalizer()
	// "frob" is in no dictionary and transliterates letter by letter.
	assert.Equal(t, "гет фроб", n.NormalizeCamel("getFrob"))
}
