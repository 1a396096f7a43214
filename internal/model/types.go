// Package model defines shared data structures.
package model

import "time"

// Category names a lexicon word set.
type Category string

// Lexicon categories.
const (
	Positive      Category = "positive"
	Negative      Category = "negative"
	Power         Category = "power"
	Collaborative Category = "collaborative"
)

// Categories lists every lexicon category in reporting order.
var Categories = []Category{Positive, Negative, Power, Collaborative}

// TextMetrics captures the lexicon scores of one transcript.
type TextMetrics struct {
	WordCount  int
	Counts     map[Category]int
	Ratios     map[Category]float64
	ToneScore  float64
	StyleScore float64
}

// DetectedPattern is a tactic whose confidence passed the detection threshold.
type DetectedPattern struct {
	PatternID   string  `json:"pattern_id" yaml:"pattern_id"`
	Description string  `json:"description" yaml:"description"`
	Confidence  float64 `json:"confidence" yaml:"confidence"`
}

// PatternDetection holds per-tactic scores and the ranked detections.
type PatternDetection struct {
	Scores   map[string]float64
	Detected []DetectedPattern
}

// Stats status values.
const (
	StatusSuccess = "success"
	StatusNoData  = "no_data"
)

// ExerciseStats summarizes timing samples for one exercise.
type ExerciseStats struct {
	Status string
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
	// Trend is first minus last sample; positive means the latest attempt was faster.
	Trend float64
}

// HasData reports whether the stats were computed from at least one sample.
func (s ExerciseStats) HasData() bool {
	return s.Status == StatusSuccess
}

// Attempt is a timed exercise attempt kept in the history database.
type Attempt struct {
	ID         int64
	ExerciseID string
	StartedAt  time.Time
	EndedAt    time.Time
	DurationMs int64
}

// Seconds returns the attempt duration in seconds.
func (a Attempt) Seconds() float64 {
	return float64(a.DurationMs) / 1000.0
}

// HistoryFilter selects attempts from the history database.
type HistoryFilter struct {
	ExerciseID string
	Since      *time.Time
	Last       int
}

// Exercise describes a training exercise.
type Exercise struct {
	ID     string
	Name   string
	Target time.Duration
	Prompt string
}

// Exercise progress states.
const (
	ProgressNotStarted = "not-started"
	ProgressCompleted  = "completed"
)

// Progress summarizes the recorded attempts of one exercise.
type Progress struct {
	ExerciseID   string
	Name         string
	Status       string
	Attempts     int
	TimeSpent    time.Duration
	LastActivity time.Time
}
