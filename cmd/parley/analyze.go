package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/parley/internal/exercise"
	"github.com/verte-zerg/parley/internal/session"
	"github.com/verte-zerg/parley/internal/stats"
)

var (
	analyzeText     string
	analyzeFormat   string
	analyzeParallel int

	respondFormat string
)

func addTranscriptFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&analyzeText, "text", "", "analyze this text instead of files or stdin")
	cmd.Flags().StringVar(&analyzeFormat, "format", defaultFormat, "output format (text, json, yaml)")
	cmd.Flags().IntVar(&analyzeParallel, "parallel", defaultParallel, "transcripts analyzed concurrently")
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Score tone and style of transcripts",
		RunE:  runAnalyzeCmd,
	}
	addTranscriptFlags(cmd)
	return cmd
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [files...]",
		Short: "Detect negotiation tactics in transcripts",
		RunE:  runDetectCmd,
	}
	addTranscriptFlags(cmd)
	return cmd
}

func prepareTranscripts(cmd *cobra.Command, args []string) ([]input, *session.Engine, error) {
	applyIntConfig(cmd, "parallel", &analyzeParallel, fileCfg.Practice.Parallel)
	if err := validateFormat(analyzeFormat); err != nil {
		return nil, nil, err
	}
	if analyzeParallel < 1 {
		return nil, nil, fmt.Errorf("--parallel must be > 0")
	}
	inputs, err := collectInputs(cmd.InOrStdin(), analyzeText, cmd.Flags().Changed("text"), args)
	if err != nil {
		return nil, nil, err
	}
	engine, err := newAnalyzer()
	if err != nil {
		return nil, nil, err
	}
	return inputs, engine, nil
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	inputs, engine, err := prepareTranscripts(cmd, args)
	if err != nil {
		return err
	}
	items, err := runBatch(cmd.Context(), inputs, analyzeParallel, engine.AnalyzeText)
	if err != nil {
		return err
	}
	return writeBatch(cmd.OutOrStdout(), analyzeFormat, items, stats.RenderAnalysis)
}

func runDetectCmd(cmd *cobra.Command, args []string) error {
	inputs, engine, err := prepareTranscripts(cmd, args)
	if err != nil {
		return err
	}
	items, err := runBatch(cmd.Context(), inputs, analyzeParallel, engine.DetectPatterns)
	if err != nil {
		return err
	}
	return writeBatch(cmd.OutOrStdout(), analyzeFormat, items, stats.RenderDetection)
}

func newRespondCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "respond <tactic>",
		Short: "Suggest counter-responses for a tactic",
		Args:  cobra.ExactArgs(1),
		RunE:  runRespondCmd,
	}
	cmd.Flags().StringVar(&respondFormat, "format", defaultFormat, "output format (text, json, yaml)")
	return cmd
}

func runRespondCmd(cmd *cobra.Command, args []string) error {
	if err := validateFormat(respondFormat); err != nil {
		return err
	}
	engine, err := newAnalyzer()
	if err != nil {
		return err
	}
	res := engine.SuggestResponses(args[0])
	return writeResult(cmd.OutOrStdout(), respondFormat, res, func(w io.Writer, p session.ResponsesPayload) error {
		if len(p.Responses) == 0 {
			_, err := fmt.Fprintf(w, "No responses for %q. Run: parley patterns\n", p.PatternID)
			return err
		}
		desc := engine.Detector().Catalog().DescriptionOrDefault(p.PatternID)
		if _, err := fmt.Fprintf(w, "%s: %s\n", p.PatternID, desc); err != nil {
			return err
		}
		for i, r := range p.Responses {
			if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, r); err != nil {
				return err
			}
		}
		return nil
	})
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List known negotiation tactics",
		Args:  cobra.NoArgs,
		RunE:  runPatternsCmd,
	}
}

func runPatternsCmd(cmd *cobra.Command, _ []string) error {
	engine, err := newAnalyzer()
	if err != nil {
		return err
	}
	for _, p := range engine.Detector().Catalog().Patterns() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-20s %2d keywords  %s\n", p.ID, len(p.Keywords), p.Description); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newExercisesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exercises",
		Short: "List training exercises",
		Args:  cobra.NoArgs,
		RunE:  runExercisesCmd,
	}
}

func runExercisesCmd(cmd *cobra.Command, _ []string) error {
	for _, ex := range exercise.All() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %6s  %s\n", ex.ID, ex.Target, ex.Name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
