// Package session exposes the analysis and timing operations as calls that
// always return a structured payload, never a crash.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/verte-zerg/parley/internal/logging"
	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/patterns"
	"github.com/verte-zerg/parley/internal/perf"
	"github.com/verte-zerg/parley/internal/textscore"
)

// History persists attempts alongside the in-memory performance store.
type History interface {
	InsertAttempt(ctx context.Context, a model.Attempt) (int64, error)
	DeleteExercise(ctx context.Context, exerciseID string) (int64, error)
}

// Engine wires the scorer, detector, performance store and timer together.
// Build one per process and pass it to every caller.
type Engine struct {
	scorer    *textscore.Scorer
	detector  *patterns.Detector
	store     *perf.Store
	timer     *perf.Timer
	history   History
	statsPath string
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithHistory records every stopped attempt in h.
func WithHistory(h History) Option {
	return func(e *Engine) {
		e.history = h
	}
}

// WithAutosave saves the performance store to path after every change.
func WithAutosave(path string) Option {
	return func(e *Engine) {
		e.statsPath = path
	}
}

// WithClock overrides the wall clock used for payload timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New builds an Engine. The timer must record into store.
func New(scorer *textscore.Scorer, detector *patterns.Detector, store *perf.Store, timer *perf.Timer, opts ...Option) *Engine {
	e := &Engine{
		scorer:   scorer,
		detector: detector,
		store:    store,
		timer:    timer,
		now:      time.Now,
		logger:   logging.New("session"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Store returns the performance store.
func (e *Engine) Store() *perf.Store {
	return e.store
}

// Detector returns the pattern detector.
func (e *Engine) Detector() *patterns.Detector {
	return e.detector
}

// AnalyzeText scores a transcript's tone and style.
func (e *Engine) AnalyzeText(text string) Result[AnalyzePayload] {
	return run(e, "analyze_text", func() (AnalyzePayload, error) {
		return NewAnalyzePayload(e.scorer.Analyze(text)), nil
	})
}

// StartTimer starts timing an exercise, replacing any active session.
func (e *Engine) StartTimer(exerciseID string) Result[StartedPayload] {
	return run(e, "start_timer", func() (StartedPayload, error) {
		if _, err := e.timer.Start(exerciseID); err != nil {
			return StartedPayload{}, err
		}
		e.logger.Debug("timer started", "exercise", exerciseID)
		return StartedPayload{
			Status:     StatusStarted,
			ExerciseID: exerciseID,
			Timestamp:  e.now().UnixMilli(),
		}, nil
	})
}

// StopTimer stops the active session and records its duration.
func (e *Engine) StopTimer() Result[StoppedPayload] {
	return run(e, "stop_timer", func() (StoppedPayload, error) {
		lap, err := e.timer.Stop()
		if err != nil {
			return StoppedPayload{}, err
		}
		e.logger.Debug("timer stopped", "exercise", lap.ExerciseID, "elapsed", lap.Elapsed)
		e.appendHistory(lap)
		e.autosave()
		return StoppedPayload{
			Status:         StatusStopped,
			ExerciseID:     lap.ExerciseID,
			ElapsedSeconds: lap.Seconds(),
			Timestamp:      e.now().UnixMilli(),
		}, nil
	})
}

// CancelTimer drops the active session without recording it.
func (e *Engine) CancelTimer() {
	e.timer.Cancel()
}

// DetectPatterns scores a transcript against the tactic catalog.
func (e *Engine) DetectPatterns(text string) Result[DetectPayload] {
	return run(e, "detect_patterns", func() (DetectPayload, error) {
		res := e.detector.Detect(text)
		return DetectPayload{
			DetectedPatterns: res.Detected,
			AllScores:        res.Scores,
		}, nil
	})
}

// SuggestResponses lists counter-responses for a tactic. Unknown tactics
// yield an empty list.
func (e *Engine) SuggestResponses(patternID string) Result[ResponsesPayload] {
	return run(e, "suggest_responses", func() (ResponsesPayload, error) {
		return ResponsesPayload{
			PatternID: patternID,
			Responses: e.detector.SuggestResponses(patternID),
		}, nil
	})
}

// PerformanceStats reports stats for one exercise, or for every exercise
// when exerciseID is empty.
func (e *Engine) PerformanceStats(exerciseID string) Result[StatsReport] {
	return run(e, "get_performance_stats", func() (StatsReport, error) {
		if strings.TrimSpace(exerciseID) != "" {
			single := NewExerciseStatsPayload(e.store.Stats(exerciseID))
			return StatsReport{ExerciseID: exerciseID, Single: &single}, nil
		}
		all := map[string]ExerciseStatsPayload{}
		for id, st := range e.store.StatsAll() {
			all[id] = NewExerciseStatsPayload(st)
		}
		return StatsReport{All: all}, nil
	})
}

// ClearExercise empties an exercise's samples and its history.
func (e *Engine) ClearExercise(exerciseID string) Result[StatusPayload] {
	return run(e, "clear_exercise", func() (StatusPayload, error) {
		e.store.Clear(exerciseID)
		if e.history != nil {
			n, err := e.history.DeleteExercise(context.Background(), exerciseID)
			if err != nil {
				return StatusPayload{}, fmt.Errorf("failed to clear history: %w", err)
			}
			e.logger.Debug("history cleared", "exercise", exerciseID, "attempts", n)
		}
		e.autosave()
		return StatusPayload{Status: StatusCleared, ExerciseID: exerciseID}, nil
	})
}

// SaveStats writes the performance store to path.
func (e *Engine) SaveStats(path string) Result[StatusPayload] {
	return run(e, "save_stats", func() (StatusPayload, error) {
		if err := e.store.Save(path); err != nil {
			return StatusPayload{}, err
		}
		return StatusPayload{Status: StatusSaved, Path: path}, nil
	})
}

// LoadStats replaces the performance store with the contents of path.
func (e *Engine) LoadStats(path string) Result[StatusPayload] {
	return run(e, "load_stats", func() (StatusPayload, error) {
		if err := e.store.Load(path); err != nil {
			return StatusPayload{}, err
		}
		return StatusPayload{Status: StatusLoaded, Path: path}, nil
	})
}

func (e *Engine) appendHistory(lap perf.Lap) {
	if e.history == nil {
		return
	}
	_, err := e.history.InsertAttempt(context.Background(), model.Attempt{
		ExerciseID: lap.ExerciseID,
		StartedAt:  lap.StartedAt,
		EndedAt:    lap.EndedAt,
		DurationMs: lap.Elapsed.Milliseconds(),
	})
	if err != nil {
		e.logger.Warn("failed to save attempt", "exercise", lap.ExerciseID, "error", err)
	}
}

func (e *Engine) autosave() {
	if e.statsPath == "" {
		return
	}
	if err := e.store.Save(e.statsPath); err != nil {
		e.logger.Warn("failed to save stats", "path", e.statsPath, "error", err)
	}
}

func run[T any](e *Engine, op string, fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("recovered panic", "op", op, "panic", r)
			res = fail[T](fmt.Sprintf("%s: internal error: %v", op, r))
		}
	}()
	v, err := fn()
	if err != nil {
		if !errors.Is(err, perf.ErrNoActiveSession) {
			e.logger.Warn("operation failed", "op", op, "error", err)
		}
		return fail[T](err.Error())
	}
	return Result[T]{Value: v}
}
