package perf

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/verte-zerg/parley/internal/logging"
)

// ErrNoActiveSession is returned by Stop when no exercise is being timed.
var ErrNoActiveSession = errors.New("no active timing session")

// Recorder receives elapsed exercise durations.
type Recorder interface {
	Record(exerciseID string, seconds float64) error
}

// Lap is the outcome of a stopped timing session.
type Lap struct {
	ExerciseID string
	StartedAt  time.Time
	EndedAt    time.Time
	Elapsed    time.Duration
}

// Seconds returns the elapsed time in seconds.
func (l Lap) Seconds() float64 {
	return l.Elapsed.Seconds()
}

// Timer times one exercise attempt at a time. It is Idle until Start and
// Running until Stop or Cancel. Starting while Running replaces the session.
type Timer struct {
	mu        sync.Mutex
	recorder  Recorder
	now       func() time.Time
	logger    *slog.Logger
	running   bool
	exercise  string
	startedAt time.Time
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithClock overrides the time source.
func WithClock(now func() time.Time) TimerOption {
	return func(t *Timer) {
		t.now = now
	}
}

// NewTimer returns an idle Timer that feeds stopped laps to recorder.
func NewTimer(recorder Recorder, opts ...TimerOption) *Timer {
	t := &Timer{
		recorder: recorder,
		now:      time.Now,
		logger:   logging.New("timer"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins timing an exercise and returns the start instant.
func (t *Timer) Start(exerciseID string) (time.Time, error) {
	if exerciseID == "" {
		return time.Time{}, ErrEmptyExerciseID
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		t.logger.Debug("replacing active session", "previous", t.exercise, "exercise", exerciseID)
	}
	t.running = true
	t.exercise = exerciseID
	t.startedAt = t.now()
	return t.startedAt, nil
}

// Stop ends the active session and records its duration.
// The timer returns to Idle even when recording fails.
func (t *Timer) Stop() (Lap, error) {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return Lap{}, ErrNoActiveSession
	}
	end := t.now()
	lap := Lap{
		ExerciseID: t.exercise,
		StartedAt:  t.startedAt,
		EndedAt:    end,
		Elapsed:    end.Sub(t.startedAt),
	}
	t.reset()
	t.mu.Unlock()

	if t.recorder != nil {
		if err := t.recorder.Record(lap.ExerciseID, lap.Seconds()); err != nil {
			return lap, fmt.Errorf("failed to record %s: %w", lap.ExerciseID, err)
		}
	}
	return lap, nil
}

// Cancel drops the active session without recording it.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

// Active returns the exercise being timed, if any.
func (t *Timer) Active() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exercise, t.running
}

// Elapsed returns the time since Start, or zero when idle.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return 0
	}
	return t.now().Sub(t.startedAt)
}

func (t *Timer) reset() {
	t.running = false
	t.exercise = ""
	t.startedAt = time.Time{}
}
