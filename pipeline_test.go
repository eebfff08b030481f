package speakify

import (
	"strings"
	"testing"
)

// TestSeed_Identifiers covers the canonical end-to-end scenarios.
func TestSeed_Identifiers(t *testing.T) {
	got := Process("Вызови getUserData() через API")
	want := "Вызови гет юзер дата открывающая скобка закрывающая скобка через эй пи ай"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestSeed_OperatorAndVersion(t *testing.T) {
	got := Process("Версия должна быть >= 20.10.0")
	want := "Версия должна быть больше или равно двадцать точка десять точка ноль"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestSeed_Email(t *testing.T) {
	got := Process("user@example.com")
	want := "user собака example точка ком"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestSeed_Float(t *testing.T) {
	got := Process("3.14")
	want := "три точка один четыре"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestSeed_Percentages(t *testing.T) {
	tests := []struct{ in, want string }{
		{"50%", "пятьдесят процентов"},
		{"11%", "одиннадцать процентов"},
		{"12%", "двенадцать процентов"},
		{"13%", "тринадцать процентов"},
		{"14%", "четырнадцать процентов"},
		{"21%", "двадцать один процент"},
		{"22%", "двадцать два процента"},
		{"31%", "тридцать один процент"},
	}
	for _, tt := range tests {
		if got := Process(tt.in); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeed_SizeUnit(t *testing.T) {
	got := Process("100MB")
	want := "сто мегабайт"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestSeed_CodeBlockBrief(t *testing.T) {
	got := Process(" ```python\nprint('hello')\n``` ",
		WithCodeBlockMode(CodeBlockBrief))
	want := "далее следует пример кода на пайтон"
	if got != want {
		t.Errorf("Process() = %q, want %q", got, want)
	}
}

func TestCodeBlockFull_ReadsContents(t *testing.T) {
	got := Process("```python\nprint('hello')\n```")
	if !strings.Contains(got, "принт") {
		t.Errorf("full mode should read tokens, got %q", got)
	}
	if strings.Contains(got, "далее следует") {
		t.Errorf("full mode must not summarize, got %q", got)
	}
}

func TestCodeBlock_AtInputEdges(t *testing.T) {
	got := Process("```go\nx := 1\n```", WithCodeBlockMode(CodeBlockBrief))
	if got != "далее следует пример кода на го" {
		t.Errorf("Process() = %q", got)
	}

	got = Process("текст до\n```\na\n```", WithCodeBlockMode(CodeBlockBrief))
	if !strings.Contains(got, "далее следует блок кода") {
		t.Errorf("Process() = %q", got)
	}
}

func TestDiagramBlock_Sentinel(t *testing.T) {
	got := Process("```mermaid\ngraph TD\nA-->B\n```")
	if got != "Тут диаграмма" {
		t.Errorf("Process() = %q", got)
	}
}

func TestDiagramBlock_CustomSentinel(t *testing.T) {
	got := Process("```mermaid\ngraph TD\n```",
		WithDiagramSentinel("Тут мермэйд диаграмма"))
	if got != "Тут мермэйд диаграмма" {
		t.Errorf("Process() = %q", got)
	}
}

func TestInlineCode(t *testing.T) {
	got := Process("Запусти `npm install` сейчас")
	if !strings.Contains(got, "инсталл") {
		t.Errorf("Process() = %q", got)
	}
	if strings.Contains(got, "`") {
		t.Errorf("backticks must not survive: %q", got)
	}
}

func TestInlineCode_SnakeCase(t *testing.T) {
	got := Process("Метод `get_user_data` устарел")
	if !strings.Contains(got, "гет юзер дата") {
		t.Errorf("Process() = %q", got)
	}
}

func TestURLInText(t *testing.T) {
	got := Process("Смотри https://example.com/docs там")
	for _, part := range []string{"эйч ти ти пи эс", "двоеточие слэш слэш", "точка ком", "слэш docs"} {
		if !strings.Contains(got, part) {
			t.Errorf("Process() = %q, missing %q", got, part)
		}
	}
}

func TestIPv4(t *testing.T) {
	got := Process("Сервер 192.168.1.1 доступен")
	if !strings.Contains(got, "сто девяносто два точка") {
		t.Errorf("Process() = %q", got)
	}
}

func TestIPv4_DigitsMode(t *testing.T) {
	got := Process("10.0.0.1", WithIPReadMode(IPReadDigits))
	if got != "один ноль точка ноль точка ноль точка один" {
		t.Errorf("Process() = %q", got)
	}
}

func TestIPv4_InvalidOctetFallsThrough(t *testing.T) {
	got := Process("300.1.2.3")
	if strings.Contains(got, "триста точка") == false &&
		strings.Contains(got, "триста") == false {
		t.Errorf("Process() = %q", got)
	}
	// Must not read as an address with «точка» between all four octets
	// the numbers way only if IP pass claimed it; it may not.
	p := New()
	p.Process("300.1.2.3")
	if p.Stats().OverlapDropped != 0 {
		t.Errorf("unexpected overlap drops: %+v", p.Stats())
	}
}

func TestDates(t *testing.T) {
	got := Process("Релиз 2024-01-15 вышел")
	if !strings.Contains(got, "пятнадцатое января") {
		t.Errorf("Process() = %q", got)
	}
	got = Process("Дата 15.01.2024 указана")
	if !strings.Contains(got, "пятнадцатое января") {
		t.Errorf("Process() = %q", got)
	}
}

func TestTimes(t *testing.T) {
	got := Process("Встреча в 14:30 у стойки")
	if !strings.Contains(got, "четырнадцать часов тридцать минут") {
		t.Errorf("Process() = %q", got)
	}
}

func TestRanges(t *testing.T) {
	got := Process("Подожди 10-20 минут")
	if !strings.Contains(got, "от десяти до двадцати") {
		t.Errorf("Process() = %q", got)
	}
}

func TestOperatorsDisabled(t *testing.T) {
	got := Process("a -> b", WithReadOperators(false))
	if strings.Contains(got, "стрелка") {
		t.Errorf("operators must not be spoken: %q", got)
	}
}

func TestMarkdown_HeadingsAndLinks(t *testing.T) {
	got := Process("# Установка\n\nЧитай [документацию](https://example.com/docs) внимательно")
	if strings.Contains(got, "#") {
		t.Errorf("heading marker survived: %q", got)
	}
	if !strings.Contains(got, "документацию") {
		t.Errorf("link text lost: %q", got)
	}
	if strings.Contains(got, "эйч ти ти пи") || strings.Contains(got, "https") {
		t.Errorf("link target must not be spoken: %q", got)
	}
}

func TestMarkdown_LinkTextStillNormalized(t *testing.T) {
	got := Process("Читай [Docker docs](https://docker.com) внимательно")
	if !strings.Contains(got, "докер") {
		t.Errorf("link text must keep normalizing: %q", got)
	}
}

func TestMarkdown_NumberedList(t *testing.T) {
	got := Process("1. Установить пакет\n2. Запустить тесты\n")
	if !strings.Contains(got, "первое:") || !strings.Contains(got, "второе:") {
		t.Errorf("Process() = %q", got)
	}
}

func TestCustomEnglishTerms(t *testing.T) {
	got := Process("Подключи Grafana", WithEnglishTerms(map[string]string{
		"grafana": "графана",
	}))
	if !strings.Contains(got, "графана") {
		t.Errorf("Process() = %q", got)
	}
}

func TestCustomAbbreviations(t *testing.T) {
	got := Process("Отдел SRE дежурит", WithAbbreviations(map[string]string{
		"sre": "эс ар и",
	}))
	if !strings.Contains(got, "эс ар и") {
		t.Errorf("Process() = %q", got)
	}
}

func TestRejectedDictionaryEntries(t *testing.T) {
	p := New(WithEnglishTerms(map[string]string{
		"":       "пусто",
		"шрифт":  "не ascii",
		"valid1": "валид",
	}))
	if p.Stats().RejectedDictEntries != 2 {
		t.Errorf("RejectedDictEntries = %d, want 2", p.Stats().RejectedDictEntries)
	}
}

func TestUnknownWordsCollected(t *testing.T) {
	p := New(WithUnknownWordTracking(true))
	p.Process("Запусти frobnicate сейчас")
	unknown := p.UnknownWords()
	if _, ok := unknown["frobnicate"]; !ok {
		t.Errorf("UnknownWords() = %v", unknown)
	}
	if len(p.Warnings()) == 0 {
		t.Error("Warnings() is empty")
	}
}

func TestGreekLetters(t *testing.T) {
	got := Process("тип α и функция λ")
	if !strings.Contains(got, "альфа") || !strings.Contains(got, "лямбда") {
		t.Errorf("Process() = %q", got)
	}
}

func TestSpecialLanguageNames(t *testing.T) {
	got := Process("Пишем на C++ и C#")
	if !strings.Contains(got, "си плюс плюс") || !strings.Contains(got, "си шарп") {
		t.Errorf("Process() = %q", got)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := Process(""); got != "" {
		t.Errorf("Process(\"\") = %q", got)
	}
	out, m := ProcessWithMap("")
	if out != "" || m.Len() != 0 {
		t.Errorf("ProcessWithMap(\"\") = %q, len %d", out, m.Len())
	}
}

func TestWhitespaceOnly(t *testing.T) {
	if got := Process("   \n\t  "); got != "" {
		t.Errorf("Process() = %q", got)
	}
}

func TestRussianPassthrough(t *testing.T) {
	input := "Привет, как дела? Всё хорошо."
	if got := Process(input); got != input {
		t.Errorf("Process() = %q, want input unchanged", got)
	}
}

func TestBOMStripped(t *testing.T) {
	got := Process("\ufeffПривет")
	if got != "Привет" {
		t.Errorf("Process() = %q", got)
	}
}

func TestQuotesUnified(t *testing.T) {
	got := Process("Он сказал «привет» и ушёл")
	if strings.ContainsAny(got, "«»") {
		t.Errorf("guillemets survived: %q", got)
	}
}

func TestDeterminism(t *testing.T) {
	input := "Вызови getUserData() через API на 192.168.1.1 в 14:30, скачай 100MB за 5-10 sec"
	first := Process(input)
	for i := 0; i < 5; i++ {
		if got := Process(input); got != first {
			t.Fatalf("run %d differs:\n%q\n%q", i, got, first)
		}
	}
}

func TestSingleUnknownLatinWord(t *testing.T) {
	out, m := ProcessWithMap("xyzzy")
	if out == "" || strings.ContainsAny(out, "abcdefghijklmnopqrstuvwxyz") {
		t.Errorf("ProcessWithMap() = %q, want full transliteration", out)
	}
	for i := 0; i < m.Len(); i++ {
		a, b := m.Span(i)
		if a != 0 || b != 5 {
			t.Errorf("Span(%d) = (%d, %d), want (0, 5)", i, a, b)
		}
	}
}
