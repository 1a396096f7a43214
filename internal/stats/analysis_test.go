package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/session"
)

func TestRenderAnalysis(t *testing.T) {
	p := session.AnalyzePayload{
		WordCount: 4,
		Metrics: session.MetricsPayload{
			PositiveWords: 1,
			PositiveRatio: 0.25,
			PowerWords:    2,
			PowerRatio:    0.5,
			ToneScore:     1,
			StyleScore:    -1,
		},
	}
	var buf bytes.Buffer
	if err := RenderAnalysis(&buf, p); err != nil {
		t.Fatalf("render analysis: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Words: 4", "positive          1 25.0%", "power             2 50.0%", "Tone:  +1.00", "Style: -1.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderDetectionOrdersScores(t *testing.T) {
	p := session.DetectPayload{
		DetectedPatterns: []model.DetectedPattern{
			{PatternID: "deadline_pressure", Description: "Pressão de prazo", Confidence: 1},
		},
		AllScores: map[string]float64{
			"anchoring":         0.1,
			"deadline_pressure": 1,
			"bogey":             0.1,
		},
	}
	var buf bytes.Buffer
	if err := RenderDetection(&buf, p); err != nil {
		t.Fatalf("render detection: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "deadline_pressure     100.0% Pressão de prazo") {
		t.Fatalf("missing detection row:\n%s", out)
	}
	scores := out[strings.Index(out, "Scores"):]
	first := strings.Index(scores, "deadline_pressure")
	anchoring := strings.Index(scores, "anchoring")
	bogey := strings.Index(scores, "bogey")
	if first >= anchoring || anchoring >= bogey {
		t.Fatalf("unexpected score order:\n%s", scores)
	}
}

func TestRenderDetectionEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDetection(&buf, session.DetectPayload{}); err != nil {
		t.Fatalf("render detection: %v", err)
	}
	if buf.String() != "No tactics detected.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
