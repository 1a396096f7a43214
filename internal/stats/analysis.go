package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/parley/internal/session"
)

// RenderAnalysis prints lexicon counts, ratios and the tone/style scores.
func RenderAnalysis(w io.Writer, p session.AnalyzePayload) error {
	if _, err := fmt.Fprintf(w, "Words: %d\n", p.WordCount); err != nil {
		return err
	}
	m := p.Metrics
	headers := []string{"Category", "Words", "Ratio"}
	rows := [][]string{
		{"positive", fmt.Sprintf("%d", m.PositiveWords), formatPct(m.PositiveRatio)},
		{"negative", fmt.Sprintf("%d", m.NegativeWords), formatPct(m.NegativeRatio)},
		{"power", fmt.Sprintf("%d", m.PowerWords), formatPct(m.PowerRatio)},
		{"collaborative", fmt.Sprintf("%d", m.CollaborativeWords), formatPct(m.CollaborativeRatio)},
	}
	if err := writeTable(w, headers, rows, map[int]bool{1: true, 2: true}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Tone:  %+.2f\nStyle: %+.2f\n", m.ToneScore, m.StyleScore)
	return err
}

// RenderDetection prints detected tactics followed by every tactic score,
// highest first.
func RenderDetection(w io.Writer, p session.DetectPayload) error {
	if len(p.DetectedPatterns) == 0 {
		if _, err := fmt.Fprintln(w, "No tactics detected."); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "Detected tactics"); err != nil {
			return err
		}
		rows := make([][]string, 0, len(p.DetectedPatterns))
		for _, d := range p.DetectedPatterns {
			rows = append(rows, []string{d.PatternID, formatPct(d.Confidence), d.Description})
		}
		if err := writeTable(w, []string{"Tactic", "Confidence", "Description"}, rows, map[int]bool{1: true}); err != nil {
			return err
		}
	}
	if len(p.AllScores) == 0 {
		return nil
	}
	ids := make([]string, 0, len(p.AllScores))
	for id := range p.AllScores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := p.AllScores[ids[i]], p.AllScores[ids[j]]
		if si == sj {
			return ids[i] < ids[j]
		}
		return si > sj
	})
	if _, err := fmt.Fprintln(w, "\nScores"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{id, fmt.Sprintf("%.2f", p.AllScores[id])})
	}
	return writeTable(w, nil, rows, map[int]bool{1: true})
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
