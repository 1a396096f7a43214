// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/verte-zerg/parley/internal/exercise"
	"github.com/verte-zerg/parley/internal/model"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
	minSparkWidth       = 8
)

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Tail keeps the last n values.
func Tail(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

// TerminalWidth returns the stdout width, or a fallback when stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// FormatSeconds renders seconds as a rounded duration like "1m30.5s".
func FormatSeconds(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	return d.Round(100 * time.Millisecond).String()
}

// FormatTrend renders a trend with an explicit sign; positive means faster.
func FormatTrend(seconds float64) string {
	if seconds > 0 {
		return "+" + FormatSeconds(seconds)
	}
	return FormatSeconds(seconds)
}

// RenderStats prints a table of per-exercise statistics. Exercises are
// ordered by attempt count. samples feeds the sparkline column and may be nil.
func RenderStats(w io.Writer, all map[string]model.ExerciseStats, samples map[string][]float64, width int) error {
	if len(all) == 0 {
		_, err := fmt.Fprintln(w, "No exercises recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Exercise Performance"); err != nil {
		return err
	}
	headers := []string{"Exercise", "Name", "Attempts", "Mean", "Min", "Max", "Std Dev", "Trend", "Target"}
	rows := make([][]string, 0, len(all))
	for _, id := range RankExercises(all) {
		st := all[id]
		ex, _ := exercise.Lookup(id)
		row := []string{id, ex.Name}
		if !st.HasData() {
			row = append(row, "0", "-", "-", "-", "-", "-", ex.Target.String())
		} else {
			row = append(row,
				fmt.Sprintf("%d", st.Count),
				FormatSeconds(st.Mean),
				FormatSeconds(st.Min),
				FormatSeconds(st.Max),
				FormatSeconds(st.StdDev),
				FormatTrend(st.Trend),
				ex.Target.String(),
			)
		}
		rows = append(rows, row)
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true}
	if err := writeTable(w, headers, rows, rightAlign); err != nil {
		return err
	}
	if len(samples) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderSparklines(w, samples, width)
}

// RenderSparklines prints one duration sparkline per exercise, sized to width.
func RenderSparklines(w io.Writer, samples map[string][]float64, width int) error {
	ids := make([]string, 0, len(samples))
	labelWidth := 0
	for id, values := range samples {
		if len(values) == 0 {
			continue
		}
		ids = append(ids, id)
		if n := displayWidth(id); n > labelWidth {
			labelWidth = n
		}
	}
	if len(ids) == 0 {
		return nil
	}
	sortStrings(ids)
	sparkWidth := width - labelWidth - 3
	if sparkWidth < minSparkWidth {
		sparkWidth = minSparkWidth
	}
	if _, err := fmt.Fprintln(w, "Durations (oldest to newest)"); err != nil {
		return err
	}
	for _, id := range ids {
		line := padCell(id, labelWidth, false) + " │ " + Sparkline(Tail(samples[id], sparkWidth))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
