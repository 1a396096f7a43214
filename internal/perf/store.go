// Package perf records exercise timing samples and derives statistics.
package perf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/verte-zerg/parley/internal/logging"
	"github.com/verte-zerg/parley/internal/model"
)

var (
	// ErrInvalidDuration is returned for non-positive or non-finite durations.
	ErrInvalidDuration = errors.New("duration must be a positive finite number of seconds")
	// ErrEmptyExerciseID is returned when an exercise id is blank.
	ErrEmptyExerciseID = errors.New("exercise id is empty")
)

// Store keeps timing samples in seconds per exercise id.
// A single mutex guards the whole mapping for reads and writes.
type Store struct {
	mu      sync.Mutex
	samples map[string][]float64
	logger  *slog.Logger
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		samples: map[string][]float64{},
		logger:  logging.New("perf"),
	}
}

// Record appends a sample for an exercise.
func (s *Store) Record(exerciseID string, seconds float64) error {
	if exerciseID == "" {
		return ErrEmptyExerciseID
	}
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, seconds)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples[exerciseID] = append(s.samples[exerciseID], seconds)
	return nil
}

// Stats computes statistics for one exercise. Absent or empty exercises
// report StatusNoData.
func (s *Store) Stats(exerciseID string) model.ExerciseStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Compute(s.samples[exerciseID])
}

// StatsAll computes statistics for every known exercise id.
func (s *Store) StatsAll() map[string]model.ExerciseStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]model.ExerciseStats, len(s.samples))
	for id, samples := range s.samples {
		out[id] = Compute(samples)
	}
	return out
}

// Samples returns a copy of the samples recorded for an exercise.
func (s *Store) Samples(exerciseID string) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.samples[exerciseID]...)
}

// Exercises returns every known exercise id in sorted order.
func (s *Store) Exercises() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.samples))
	for id := range s.samples {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clear empties the samples of a known exercise. Unknown ids are ignored.
func (s *Store) Clear(exerciseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.samples[exerciseID]; ok {
		s.samples[exerciseID] = []float64{}
	}
}

// Replace swaps the whole mapping for a copy of data.
func (s *Store) Replace(data map[string][]float64) {
	copied := cloneSamples(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = copied
}

// Save writes every exercise's samples as a JSON object to path.
// The file is replaced atomically.
func (s *Store) Save(path string) error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.samples, "", "    ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	s.logger.Debug("saved samples", "path", path)
	return nil
}

// Load replaces the in-memory samples with the contents of path.
// On any error the current samples are left untouched.
func (s *Store) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read samples: %w", err)
	}
	data, err := decodeSamples(raw)
	if err != nil {
		s.logger.Warn("failed to load samples", "path", path, "error", err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = data
	s.logger.Debug("loaded samples", "path", path, "exercises", len(data))
	return nil
}

// Compute derives statistics from ordered samples. StdDev is the population
// standard deviation and Trend is first minus last sample.
func Compute(samples []float64) model.ExerciseStats {
	if len(samples) == 0 {
		return model.ExerciseStats{Status: model.StatusNoData}
	}
	n := float64(len(samples))
	minVal := samples[0]
	maxVal := samples[0]
	var sum float64
	for _, v := range samples {
		sum += v
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	mean := sum / n
	var sq float64
	for _, v := range samples {
		d := v - mean
		sq += d * d
	}
	return model.ExerciseStats{
		Status: model.StatusSuccess,
		Count:  len(samples),
		Mean:   mean,
		Min:    minVal,
		Max:    maxVal,
		StdDev: math.Sqrt(sq / n),
		Trend:  samples[0] - samples[len(samples)-1],
	}
}

func decodeSamples(raw []byte) (map[string][]float64, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		return nil, errors.New("failed to parse samples: expected a JSON object")
	}
	var data map[string][]float64
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse samples: %w", err)
	}
	for id, samples := range data {
		if samples == nil {
			data[id] = []float64{}
		}
	}
	return data, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create samples dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "samples-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp samples file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close samples file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	return nil
}

func cloneSamples(src map[string][]float64) map[string][]float64 {
	dst := make(map[string][]float64, len(src))
	for id, samples := range src {
		dst[id] = append([]float64{}, samples...)
	}
	return dst
}
