package patterns

import (
	"sort"
	"strings"

	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/textnorm"
)

// DetectionThreshold is the confidence a tactic must exceed to be reported.
const DetectionThreshold = 0.3

// Detector scores transcripts against a pattern catalog.
type Detector struct {
	catalog *Catalog
}

// NewDetector returns a Detector over the given catalog.
func NewDetector(catalog *Catalog) *Detector {
	return &Detector{catalog: catalog}
}

// Catalog returns the catalog the detector reads from.
func (d *Detector) Catalog() *Catalog {
	return d.catalog
}

// Detect scores every tactic as keyword hits divided by keyword count.
// Keywords are matched as raw substrings, so phrases and word fragments
// count wherever they appear. Detected tactics are sorted by confidence,
// ties ordered by tactic id.
func (d *Detector) Detect(text string) model.PatternDetection {
	normalized := textnorm.Lower(text)
	result := model.PatternDetection{
		Scores:   make(map[string]float64, d.catalog.Len()),
		Detected: []model.DetectedPattern{},
	}
	d.catalog.each(func(p *Pattern) {
		score := Score(normalized, p.Keywords)
		result.Scores[p.ID] = score
		if score > DetectionThreshold {
			result.Detected = append(result.Detected, model.DetectedPattern{
				PatternID:   p.ID,
				Description: p.Description,
				Confidence:  score,
			})
		}
	})
	sort.SliceStable(result.Detected, func(i, j int) bool {
		a, b := result.Detected[i], result.Detected[j]
		if a.Confidence == b.Confidence {
			return a.PatternID < b.PatternID
		}
		return a.Confidence > b.Confidence
	})
	return result
}

// SuggestResponses returns the counter-responses for a tactic.
// Unknown ids yield an empty slice.
func (d *Detector) SuggestResponses(id string) []string {
	responses, ok := d.catalog.Responses(id)
	if !ok || responses == nil {
		return []string{}
	}
	return responses
}

// Score returns the non-overlapping substring hits of all keywords in text
// divided by the number of keywords. Text must already be lowercase.
func Score(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	hits := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		hits += strings.Count(text, kw)
	}
	return float64(hits) / float64(len(keywords))
}
