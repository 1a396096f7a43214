package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/parley/internal/exercise"
	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/store"
)

// HistoryReport contains precomputed data for history rendering.
type HistoryReport struct {
	Attempts []model.Attempt
	// Series holds attempt durations in seconds per exercise, oldest first.
	Series map[string][]float64
	// Smoothed is Series passed through MovingAverage.
	Smoothed map[string][]float64
}

// BuildHistoryReport loads attempts and prepares per-exercise series.
func BuildHistoryReport(ctx context.Context, st *store.Store, filter model.HistoryFilter, window int) (HistoryReport, error) {
	attempts, err := st.ListAttempts(ctx, filter)
	if err != nil {
		return HistoryReport{}, err
	}
	series := make(map[string][]float64)
	for _, a := range attempts {
		series[a.ExerciseID] = append(series[a.ExerciseID], a.Seconds())
	}
	smoothed := make(map[string][]float64, len(series))
	for id, values := range series {
		smoothed[id] = MovingAverage(values, window)
	}
	return HistoryReport{
		Attempts: attempts,
		Series:   series,
		Smoothed: smoothed,
	}, nil
}

// RenderHistory prints the attempt list followed by smoothed sparklines.
func RenderHistory(w io.Writer, report HistoryReport, width int) error {
	if len(report.Attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Attempt History"); err != nil {
		return err
	}
	headers := []string{"#", "Exercise", "Ended", "Duration", "Target"}
	rows := make([][]string, 0, len(report.Attempts))
	for i, a := range report.Attempts {
		ex, _ := exercise.Lookup(a.ExerciseID)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			a.ExerciseID,
			a.EndedAt.Local().Format("2006-01-02 15:04"),
			FormatSeconds(a.Seconds()),
			ex.Target.String(),
		})
	}
	if err := writeTable(w, headers, rows, map[int]bool{0: true, 3: true, 4: true}); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderSparklines(w, report.Smoothed, width)
}
