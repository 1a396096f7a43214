// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/parley/internal/logging"
	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/session"
	statsPkg "github.com/verte-zerg/parley/internal/stats"
)

type state int

const (
	stateWriting state = iota
	stateResults
)

// Model implements the Bubble Tea practice UI. It times one exercise
// attempt while the user writes a response, then shows the analysis.
type Model struct {
	engine   *session.Engine
	exercise model.Exercise
	logger   *slog.Logger

	width  int
	height int

	state     state
	input     textarea.Model
	stopwatch stopwatch.Model

	lastElapsed float64
	results     string
	errMsg      string
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	timerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	overStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	resultsStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6E6E6E"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a practice model and starts timing the exercise.
func NewModel(engine *session.Engine, ex model.Exercise) (*Model, error) {
	input := textarea.New()
	input.Placeholder = "Escreva sua resposta..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.Focus()

	m := &Model{
		engine:    engine,
		exercise:  ex,
		logger:    logging.New("tui"),
		input:     input,
		stopwatch: stopwatch.NewWithInterval(time.Second),
	}
	if res := engine.StartTimer(ex.ID); !res.OK() {
		return nil, fmt.Errorf("failed to start timer: %w", res.Err())
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.stopwatch.Init())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInput()
		return m, nil
	case tea.KeyMsg:
		if m.state == stateResults {
			return m.updateResults(msg)
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.engine.CancelTimer()
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m, m.submit()
		}
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	cmds = append(cmds, cmd)
	if m.state == stateWriting {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.restart()
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// submit stops the timer, records the attempt and analyses the response.
// The timer is idle afterwards even when recording fails, so a failure
// also ends the attempt.
func (m *Model) submit() tea.Cmd {
	text := m.input.Value()
	stopped := m.engine.StopTimer()
	if !stopped.OK() {
		m.errMsg = stopped.Failure.Message
		m.results = ""
		m.state = stateResults
		m.input.Blur()
		return m.stopwatch.Stop()
	}
	m.lastElapsed = stopped.Value.ElapsedSeconds
	m.errMsg = ""

	var b strings.Builder
	fmt.Fprintf(&b, "Tempo: %s (meta %s)\n\n", statsPkg.FormatSeconds(m.lastElapsed), m.exercise.Target)
	if analysis := m.engine.AnalyzeText(text); analysis.OK() {
		if err := statsPkg.RenderAnalysis(&b, analysis.Value); err != nil {
			m.logger.Warn("failed to render analysis", "error", err)
		}
	} else {
		fmt.Fprintf(&b, "%s\n", analysis.Failure.Message)
	}
	b.WriteString("\n")
	if detection := m.engine.DetectPatterns(text); detection.OK() {
		if err := statsPkg.RenderDetection(&b, detection.Value); err != nil {
			m.logger.Warn("failed to render detection", "error", err)
		}
	} else {
		fmt.Fprintf(&b, "%s\n", detection.Failure.Message)
	}
	m.results = strings.TrimRight(b.String(), "\n")
	m.state = stateResults
	m.input.Blur()
	return m.stopwatch.Stop()
}

// restart begins a new attempt of the same exercise.
func (m *Model) restart() tea.Cmd {
	if res := m.engine.StartTimer(m.exercise.ID); !res.OK() {
		m.errMsg = res.Failure.Message
		return nil
	}
	m.errMsg = ""
	m.results = ""
	m.state = stateWriting
	m.input.Reset()
	return tea.Batch(m.input.Focus(), m.stopwatch.Reset(), m.stopwatch.Start())
}

func (m *Model) resizeInput() {
	if m.width == 0 {
		return
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 20 {
		contentWidth = m.width
	}
	m.input.SetWidth(contentWidth)
	inputHeight := m.height - 8
	if inputHeight < 3 {
		inputHeight = 3
	}
	m.input.SetHeight(inputHeight)
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render(m.exercise.Name),
		promptStyle.Render(m.exercise.Prompt),
		m.renderTimer(),
	}
	if m.state == stateResults {
		if m.results != "" {
			sections = append(sections, resultsStyle.Render(m.results))
		}
	} else {
		sections = append(sections, m.input.View())
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := m.renderFooter()
	if m.width == 0 || m.height < 3 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderTimer() string {
	elapsed := m.stopwatch.Elapsed()
	label := fmt.Sprintf("%s / %s", elapsed.Round(time.Second), m.exercise.Target)
	if m.exercise.Target > 0 && elapsed > m.exercise.Target {
		return overStyle.Render(label)
	}
	return timerStyle.Render(label)
}

func (m *Model) renderFooter() string {
	segments := []string{m.exercise.ID}
	st := m.engine.Store().Stats(m.exercise.ID)
	if st.HasData() {
		segments = append(segments,
			fmt.Sprintf("Attempts %d", st.Count),
			fmt.Sprintf("Mean %s", statsPkg.FormatSeconds(st.Mean)),
			fmt.Sprintf("Best %s", statsPkg.FormatSeconds(st.Min)),
		)
	}
	if m.state == stateResults {
		segments = append(segments, "enter: again", "q: quit")
	} else {
		segments = append(segments, "ctrl+s: submit", "esc: cancel")
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
