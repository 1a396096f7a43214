package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/parley/internal/exercise"
	"github.com/verte-zerg/parley/internal/generator"
	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/session"
	"github.com/verte-zerg/parley/internal/stats"
	"github.com/verte-zerg/parley/internal/tui"
)

var (
	statsRebuild bool
	statsFormat  string

	historySince  string
	historyLast   int
	historyWindow int

	clearFormat string
)

func newPracticeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "practice [exercise]",
		Short: "Time an exercise attempt in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPracticeCmd,
	}
}

func runPracticeCmd(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	exerciseID := ""
	if len(args) == 1 {
		exerciseID = args[0]
	} else if fileCfg.Practice.Exercise != nil {
		exerciseID = *fileCfg.Practice.Exercise
	}
	ex, err := resolveExercise(exerciseID, stats.AttemptCounts(a.engine.Store().StatsAll()), generator.New())
	if err != nil {
		return err
	}

	m, err := tui.NewModel(a.engine, ex)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		a.engine.CancelTimer()
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveExercise returns the named exercise, or a weighted random pick
// favouring the least practised ones when id is empty.
func resolveExercise(id string, attempts map[string]int, gen *generator.Generator) (model.Exercise, error) {
	id = strings.TrimSpace(id)
	if id != "" {
		ex, _ := exercise.Lookup(id)
		return ex, nil
	}
	ex, ok := gen.PickWeighted(exercise.All(), attempts, weightFactor)
	if !ok {
		return model.Exercise{}, fmt.Errorf("no exercises available")
	}
	return ex, nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [exercise]",
		Short: "Show exercise timing statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsRebuild, "rebuild", false, "rebuild the stats file from the history database")
	cmd.Flags().StringVar(&statsFormat, "format", defaultFormat, "output format (text, json, yaml)")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	if err := validateFormat(statsFormat); err != nil {
		return err
	}
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	st := a.engine.Store()
	if statsRebuild {
		if a.history == nil {
			return fmt.Errorf("--rebuild needs the history database")
		}
		samples, err := a.history.SamplesByExercise(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		st.Replace(samples)
		if res := a.engine.SaveStats(statsFile); !res.OK() {
			return res.Err()
		}
	}

	exerciseID := ""
	if len(args) == 1 {
		exerciseID = args[0]
	}
	res := a.engine.PerformanceStats(exerciseID)
	return writeResult(cmd.OutOrStdout(), statsFormat, res, func(w io.Writer, _ session.StatsReport) error {
		all := st.StatsAll()
		if exerciseID != "" {
			all = map[string]model.ExerciseStats{exerciseID: st.Stats(exerciseID)}
		}
		samples := make(map[string][]float64, len(all))
		for id := range all {
			samples[id] = st.Samples(id)
		}
		if err := stats.RenderStats(w, all, samples, stats.TerminalWidth()); err != nil {
			return err
		}
		if exerciseID != "" || a.history == nil {
			return nil
		}
		attempts, err := a.history.ListAttempts(cmd.Context(), model.HistoryFilter{})
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return stats.RenderProgress(w, stats.BuildProgress(attempts))
	})
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [exercise]",
		Short: "Show recorded exercise attempts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N attempts")
	cmd.Flags().IntVar(&historyWindow, "window", defaultWindow, "moving average window for the trend lines")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	filter := model.HistoryFilter{Last: historyLast}
	if len(args) == 1 {
		filter.ExerciseID = args[0]
	}
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		filter.Since = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if a.history == nil {
		return fmt.Errorf("history is disabled")
	}

	report, err := stats.BuildHistoryReport(cmd.Context(), a.history, filter, historyWindow)
	if err != nil {
		return fmt.Errorf("failed to build history: %w", err)
	}
	if err := stats.RenderHistory(cmd.OutOrStdout(), report, stats.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear <exercise>",
		Short: "Delete every recorded attempt of an exercise",
		Args:  cobra.ExactArgs(1),
		RunE:  runClearCmd,
	}
	cmd.Flags().StringVar(&clearFormat, "format", defaultFormat, "output format (text, json, yaml)")
	return cmd
}

func runClearCmd(cmd *cobra.Command, args []string) error {
	if err := validateFormat(clearFormat); err != nil {
		return err
	}
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return writeResult(cmd.OutOrStdout(), clearFormat, a.engine.ClearExercise(args[0]), renderStatus)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the performance stats to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			return writeResult(cmd.OutOrStdout(), formatText, a.engine.SaveStats(args[0]), renderStatus)
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the performance stats with a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()
			if res := a.engine.LoadStats(args[0]); !res.OK() {
				return res.Err()
			}
			return writeResult(cmd.OutOrStdout(), formatText, a.engine.SaveStats(statsFile), renderStatus)
		},
	}
}

func renderStatus(w io.Writer, p session.StatusPayload) error {
	line := p.Status
	if p.ExerciseID != "" {
		line += " " + p.ExerciseID
	}
	if p.Path != "" {
		line += " " + p.Path
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
