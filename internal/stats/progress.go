package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/parley/internal/exercise"
	"github.com/verte-zerg/parley/internal/model"
)

// BuildProgress summarizes attempts per exercise. Every built-in exercise is
// listed, followed by other exercise ids found in attempts in first-seen order.
func BuildProgress(attempts []model.Attempt) []model.Progress {
	byID := map[string]*model.Progress{}
	var order []string
	add := func(ex model.Exercise) *model.Progress {
		p, ok := byID[ex.ID]
		if !ok {
			p = &model.Progress{ExerciseID: ex.ID, Name: ex.Name, Status: model.ProgressNotStarted}
			byID[ex.ID] = p
			order = append(order, ex.ID)
		}
		return p
	}
	for _, ex := range exercise.All() {
		add(ex)
	}
	for _, a := range attempts {
		ex, _ := exercise.Lookup(a.ExerciseID)
		p := add(ex)
		p.Status = model.ProgressCompleted
		p.Attempts++
		p.TimeSpent += time.Duration(a.DurationMs) * time.Millisecond
		if a.EndedAt.After(p.LastActivity) {
			p.LastActivity = a.EndedAt
		}
	}
	out := make([]model.Progress, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// RenderProgress prints per-exercise completion and total time spent.
func RenderProgress(w io.Writer, progress []model.Progress) error {
	completed := 0
	var total time.Duration
	rows := make([][]string, 0, len(progress))
	for _, p := range progress {
		if p.Status == model.ProgressCompleted {
			completed++
		}
		total += p.TimeSpent
		last := "-"
		if !p.LastActivity.IsZero() {
			last = p.LastActivity.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			p.ExerciseID,
			p.Name,
			p.Status,
			fmt.Sprintf("%d", p.Attempts),
			FormatSeconds(p.TimeSpent.Seconds()),
			last,
		})
	}
	if _, err := fmt.Fprintln(w, "Progress"); err != nil {
		return err
	}
	headers := []string{"Exercise", "Name", "Status", "Attempts", "Time", "Last Activity"}
	if err := writeTable(w, headers, rows, map[int]bool{3: true, 4: true}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Completed %d/%d, total time %s\n", completed, len(progress), FormatSeconds(total.Seconds()))
	return err
}
