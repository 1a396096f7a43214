package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/parley/internal/exercise"
	"github.com/verte-zerg/parley/internal/lexicon"
	"github.com/verte-zerg/parley/internal/patterns"
	"github.com/verte-zerg/parley/internal/perf"
	"github.com/verte-zerg/parley/internal/session"
	"github.com/verte-zerg/parley/internal/textscore"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestModel(t *testing.T) (*Model, *session.Engine, *fakeClock) {
	t.Helper()
	catalog, err := patterns.NewCatalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	store := perf.NewStore()
	timer := perf.NewTimer(store, perf.WithClock(clock.Now))
	engine := session.New(textscore.New(lexicon.New()), patterns.NewDetector(catalog), store, timer)
	ex, _ := exercise.Lookup("batna")
	m, err := NewModel(engine, ex)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m, engine, clock
}

func TestNewModelStartsTimer(t *testing.T) {
	m, engine, clock := newTestModel(t)
	if m.state != stateWriting {
		t.Fatalf("expected writing state")
	}
	clock.now = clock.now.Add(time.Second)
	if res := engine.StopTimer(); !res.OK() {
		t.Fatalf("expected active timer, got %s", res.Failure.Message)
	}
}

func TestSubmitRecordsAttemptAndShowsAnalysis(t *testing.T) {
	m, engine, clock := newTestModel(t)
	clock.now = clock.now.Add(5 * time.Second)
	m.input.SetValue("O prazo termina hoje, é urgente.")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.state != stateResults {
		t.Fatalf("expected results state, errMsg=%q", m.errMsg)
	}
	if !strings.Contains(m.results, "Tempo: 5s") {
		t.Fatalf("missing elapsed time in results:\n%s", m.results)
	}
	if !strings.Contains(m.results, "Words: 6") {
		t.Fatalf("missing analysis in results:\n%s", m.results)
	}
	st := engine.Store().Stats("batna")
	if st.Count != 1 || st.Mean != 5 {
		t.Fatalf("expected one 5s sample, got %+v", st)
	}
	footer := m.renderFooter()
	if !containsAll(footer, []string{"batna", "Attempts 1", "Mean 5s", "enter: again"}) {
		t.Fatalf("footer missing expected segments: %s", footer)
	}
}

func TestRestartAndCancel(t *testing.T) {
	m, engine, clock := newTestModel(t)
	clock.now = clock.now.Add(time.Second)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateWriting {
		t.Fatalf("expected writing state after restart")
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input reset, got %q", m.input.Value())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if res := engine.StopTimer(); res.OK() {
		t.Fatalf("expected cancelled timer")
	}
	if engine.Store().Stats("batna").Count != 1 {
		t.Fatalf("expected cancelled attempt not to be recorded")
	}
}

func TestSubmitFailureEndsAttempt(t *testing.T) {
	m, engine, clock := newTestModel(t)
	m.input.SetValue("resposta")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.state != stateResults {
		t.Fatalf("expected results state after a failed stop")
	}
	if m.errMsg == "" {
		t.Fatalf("expected error message for zero elapsed time")
	}
	if m.results != "" {
		t.Fatalf("expected no analysis after a failed stop, got:\n%s", m.results)
	}
	if engine.Store().Stats("batna").HasData() {
		t.Fatalf("expected zero-length attempt not to be recorded")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateWriting || m.errMsg != "" {
		t.Fatalf("expected a fresh attempt after enter, state=%v errMsg=%q", m.state, m.errMsg)
	}
	clock.now = clock.now.Add(2 * time.Second)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.errMsg != "" {
		t.Fatalf("expected second attempt to stop cleanly, got %q", m.errMsg)
	}
	if st := engine.Store().Stats("batna"); st.Count != 1 || st.Mean != 2 {
		t.Fatalf("expected one 2s sample, got %+v", st)
	}
}

func TestRenderFooterWhileWriting(t *testing.T) {
	m, _, _ := newTestModel(t)
	footer := m.renderFooter()
	if !containsAll(footer, []string{"batna", "ctrl+s: submit", "esc: cancel"}) {
		t.Fatalf("footer missing expected segments: %s", footer)
	}
	if strings.Contains(footer, "Attempts") {
		t.Fatalf("expected no attempt stats before any attempt: %s", footer)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
