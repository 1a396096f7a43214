// Package textscore computes tone and style metrics for negotiation transcripts.
package textscore

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/parley/internal/lexicon"
	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/textnorm"
)

// Scorer counts lexicon words in transcripts.
type Scorer struct {
	lex *lexicon.Lexicon
}

// New returns a Scorer backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Analyze scores a transcript. Every input is valid; empty text yields zero metrics.
func (s *Scorer) Analyze(text string) model.TextMetrics {
	metrics := model.TextMetrics{
		WordCount: len(strings.Fields(text)),
		Counts:    make(map[model.Category]int, len(model.Categories)),
		Ratios:    make(map[model.Category]float64, len(model.Categories)),
	}
	normalized := textnorm.Lower(text)

	s.lex.Read(func(words map[model.Category][]string) {
		for _, cat := range model.Categories {
			count := 0
			for _, w := range words[cat] {
				count += CountWholeWord(normalized, w)
			}
			metrics.Counts[cat] = count
		}
	})

	for _, cat := range model.Categories {
		metrics.Ratios[cat] = Ratio(metrics.Counts[cat], metrics.WordCount)
	}
	metrics.ToneScore = Balance(metrics.Counts[model.Positive], metrics.Counts[model.Negative])
	metrics.StyleScore = Balance(metrics.Counts[model.Collaborative], metrics.Counts[model.Power])
	return metrics
}

// CountWholeWord counts occurrences of word in text that are not flanked by letters.
// The search resumes after every occurrence, counted or not.
func CountWholeWord(text, word string) int {
	if word == "" {
		return 0
	}
	count := 0
	pos := 0
	for pos <= len(text)-len(word) {
		idx := strings.Index(text[pos:], word)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(word)
		if !letterBefore(text, start) && !letterAfter(text, end) {
			count++
		}
		pos = end
	}
	return count
}

// Ratio returns part/total, or 0 when total is zero.
func Ratio(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}

// Balance returns (a-b)/(a+b) in [-1,1], or 0 when both are zero.
func Balance(a, b int) float64 {
	den := a + b
	if den <= 0 {
		return 0
	}
	return float64(a-b) / float64(den)
}

func letterBefore(text string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return unicode.IsLetter(r)
}

func letterAfter(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r)
}
