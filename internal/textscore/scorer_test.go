package textscore

import (
	"math"
	"testing"

	"github.com/verte-zerg/parley/internal/lexicon"
	"github.com/verte-zerg/parley/internal/model"
)

func TestAnalyzeEmptyText(t *testing.T) {
	m := New(lexicon.New()).Analyze("")
	if m.WordCount != 0 {
		t.Fatalf("expected 0 words, got %d", m.WordCount)
	}
	for _, cat := range model.Categories {
		if m.Counts[cat] != 0 || m.Ratios[cat] != 0 {
			t.Fatalf("expected zero %s metrics, got %d / %f", cat, m.Counts[cat], m.Ratios[cat])
		}
	}
	if m.ToneScore != 0 || m.StyleScore != 0 {
		t.Fatalf("expected zero scores, got %f / %f", m.ToneScore, m.StyleScore)
	}
}

func TestAnalyzeWordCountUsesOriginalWhitespace(t *testing.T) {
	cases := map[string]int{
		"value value value":           3,
		"  leading and trailing  ":    3,
		"tabs\tand\nnewlines   mixed": 4,
		"   ":                         0,
	}
	s := New(lexicon.New())
	for text, want := range cases {
		if got := s.Analyze(text).WordCount; got != want {
			t.Fatalf("%q: expected %d words, got %d", text, want, got)
		}
	}
}

func TestCountWholeWordSkipsLongerWords(t *testing.T) {
	if got := CountWholeWord("valor valorização", "valor"); got != 1 {
		t.Fatalf("expected 1 whole-word match, got %d", got)
	}
	if got := CountWholeWord("valor, valor. (valor)", "valor"); got != 3 {
		t.Fatalf("expected punctuation to bound words, got %d", got)
	}
	if got := CountWholeWord("contravalor", "valor"); got != 0 {
		t.Fatalf("expected no match inside a word, got %d", got)
	}
	if got := CountWholeWord("anything", ""); got != 0 {
		t.Fatalf("expected empty word to never match, got %d", got)
	}
}

func TestCountWholeWordAccentedNeighbours(t *testing.T) {
	// "é" is a letter, so "ganho" inside "ganhoé" is not a whole word.
	if got := CountWholeWord("ganhoé ganho", "ganho"); got != 1 {
		t.Fatalf("expected accented neighbour to block match, got %d", got)
	}
}

func TestAnalyzeCountsAndScores(t *testing.T) {
	text := "Acordo e parceria trazem SUCESSO, mas há risco. Juntos, certamente!"
	m := New(lexicon.New()).Analyze(text)

	// "parceria" is in both positive and collaborative sets.
	want := map[model.Category]int{
		model.Positive:      3,
		model.Negative:      1,
		model.Power:         1,
		model.Collaborative: 2,
	}
	for cat, n := range want {
		if m.Counts[cat] != n {
			t.Fatalf("expected %d %s words, got %d", n, cat, m.Counts[cat])
		}
	}
	if m.WordCount != 10 {
		t.Fatalf("expected 10 words, got %d", m.WordCount)
	}
	if math.Abs(m.Ratios[model.Positive]-0.3) > 1e-9 {
		t.Fatalf("expected positive ratio 0.3, got %f", m.Ratios[model.Positive])
	}
	if math.Abs(m.ToneScore-0.5) > 1e-9 {
		t.Fatalf("expected tone 0.5, got %f", m.ToneScore)
	}
	if math.Abs(m.StyleScore-1.0/3.0) > 1e-9 {
		t.Fatalf("expected style 1/3, got %f", m.StyleScore)
	}
}

func TestScoresStayInRange(t *testing.T) {
	s := New(lexicon.New())
	texts := []string{
		"problema problema risco",
		"certamente claramente vital",
		"equipe juntos mútuo sinergia",
		"sucesso",
		"nothing relevant here",
	}
	for _, text := range texts {
		m := s.Analyze(text)
		if m.ToneScore < -1 || m.ToneScore > 1 {
			t.Fatalf("%q: tone out of range: %f", text, m.ToneScore)
		}
		if m.StyleScore < -1 || m.StyleScore > 1 {
			t.Fatalf("%q: style out of range: %f", text, m.StyleScore)
		}
	}
	if m := s.Analyze("problema risco"); m.ToneScore != -1 {
		t.Fatalf("expected tone -1, got %f", m.ToneScore)
	}
}

func TestAnalyzeUsesCustomLexicon(t *testing.T) {
	lex := lexicon.New(lexicon.WithWords(model.Positive, []string{"win-win"}))
	m := New(lex).Analyze("A win-win deal")
	if m.Counts[model.Positive] != 1 {
		t.Fatalf("expected custom word match, got %d", m.Counts[model.Positive])
	}
}

func TestBalanceAndRatio(t *testing.T) {
	if Balance(0, 0) != 0 {
		t.Fatalf("expected zero balance")
	}
	if Balance(3, 1) != 0.5 {
		t.Fatalf("expected 0.5 balance, got %f", Balance(3, 1))
	}
	if Ratio(2, 0) != 0 {
		t.Fatalf("expected zero ratio with zero total")
	}
}
