package session

import (
	"encoding/json"

	"github.com/verte-zerg/parley/internal/model"
)

// Timer status values.
const (
	StatusStarted = "started"
	StatusStopped = "stopped"
	StatusCleared = "cleared"
	StatusSaved   = "saved"
	StatusLoaded  = "loaded"
)

// AnalyzePayload is the text analysis result.
type AnalyzePayload struct {
	WordCount int            `json:"word_count" yaml:"word_count"`
	Metrics   MetricsPayload `json:"metrics" yaml:"metrics"`
}

// MetricsPayload flattens TextMetrics.
type MetricsPayload struct {
	PositiveWords      int     `json:"positive_words" yaml:"positive_words"`
	NegativeWords      int     `json:"negative_words" yaml:"negative_words"`
	PowerWords         int     `json:"power_words" yaml:"power_words"`
	CollaborativeWords int     `json:"collaborative_words" yaml:"collaborative_words"`
	PositiveRatio      float64 `json:"positive_ratio" yaml:"positive_ratio"`
	NegativeRatio      float64 `json:"negative_ratio" yaml:"negative_ratio"`
	PowerRatio         float64 `json:"power_ratio" yaml:"power_ratio"`
	CollaborativeRatio float64 `json:"collaborative_ratio" yaml:"collaborative_ratio"`
	ToneScore          float64 `json:"tone_score" yaml:"tone_score"`
	StyleScore         float64 `json:"style_score" yaml:"style_score"`
}

// NewAnalyzePayload converts TextMetrics to its payload form.
func NewAnalyzePayload(m model.TextMetrics) AnalyzePayload {
	return AnalyzePayload{
		WordCount: m.WordCount,
		Metrics: MetricsPayload{
			PositiveWords:      m.Counts[model.Positive],
			NegativeWords:      m.Counts[model.Negative],
			PowerWords:         m.Counts[model.Power],
			CollaborativeWords: m.Counts[model.Collaborative],
			PositiveRatio:      m.Ratios[model.Positive],
			NegativeRatio:      m.Ratios[model.Negative],
			PowerRatio:         m.Ratios[model.Power],
			CollaborativeRatio: m.Ratios[model.Collaborative],
			ToneScore:          m.ToneScore,
			StyleScore:         m.StyleScore,
		},
	}
}

// StartedPayload acknowledges a started timer.
type StartedPayload struct {
	Status     string `json:"status" yaml:"status"`
	ExerciseID string `json:"exercise_id" yaml:"exercise_id"`
	Timestamp  int64  `json:"timestamp" yaml:"timestamp"`
}

// StoppedPayload reports a stopped timer.
type StoppedPayload struct {
	Status         string  `json:"status" yaml:"status"`
	ExerciseID     string  `json:"exercise_id" yaml:"exercise_id"`
	ElapsedSeconds float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Timestamp      int64   `json:"timestamp" yaml:"timestamp"`
}

// DetectPayload is the pattern detection result.
type DetectPayload struct {
	DetectedPatterns []model.DetectedPattern `json:"detected_patterns" yaml:"detected_patterns"`
	AllScores        map[string]float64      `json:"all_scores" yaml:"all_scores"`
}

// ResponsesPayload lists suggested counter-responses for a tactic.
type ResponsesPayload struct {
	PatternID string   `json:"pattern_id" yaml:"pattern_id"`
	Responses []string `json:"responses" yaml:"responses"`
}

// StatsValues holds the descriptive statistics of an exercise.
type StatsValues struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Trend  float64 `json:"trend" yaml:"trend"`
}

// ExerciseStatsPayload is {status:"no_data"} or {status:"success", count, stats}.
type ExerciseStatsPayload struct {
	Status string       `json:"status" yaml:"status"`
	Count  int          `json:"count,omitempty" yaml:"count,omitempty"`
	Stats  *StatsValues `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// NewExerciseStatsPayload converts ExerciseStats to its payload form.
func NewExerciseStatsPayload(s model.ExerciseStats) ExerciseStatsPayload {
	if !s.HasData() {
		return ExerciseStatsPayload{Status: model.StatusNoData}
	}
	return ExerciseStatsPayload{
		Status: model.StatusSuccess,
		Count:  s.Count,
		Stats: &StatsValues{
			Mean:   s.Mean,
			Min:    s.Min,
			Max:    s.Max,
			StdDev: s.StdDev,
			Trend:  s.Trend,
		},
	}
}

// StatsReport holds stats for one exercise or for all of them.
// It encodes as the single payload or as a map keyed by exercise id.
type StatsReport struct {
	ExerciseID string
	Single     *ExerciseStatsPayload
	All        map[string]ExerciseStatsPayload
}

// MarshalJSON encodes the single payload or the full map.
func (r StatsReport) MarshalJSON() ([]byte, error) {
	if r.Single != nil {
		return json.Marshal(r.Single)
	}
	if r.All == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.All)
}

// MarshalYAML encodes the single payload or the full map.
func (r StatsReport) MarshalYAML() (any, error) {
	if r.Single != nil {
		return r.Single, nil
	}
	if r.All == nil {
		return map[string]ExerciseStatsPayload{}, nil
	}
	return r.All, nil
}

// StatusPayload acknowledges a store maintenance operation.
type StatusPayload struct {
	Status     string `json:"status" yaml:"status"`
	ExerciseID string `json:"exercise_id,omitempty" yaml:"exercise_id,omitempty"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
}
