// Package main provides the CLI entrypoint for parley.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/parley/internal/config"
	"github.com/verte-zerg/parley/internal/lexicon"
	"github.com/verte-zerg/parley/internal/logging"
	"github.com/verte-zerg/parley/internal/model"
	"github.com/verte-zerg/parley/internal/patterns"
	"github.com/verte-zerg/parley/internal/perf"
	"github.com/verte-zerg/parley/internal/session"
	"github.com/verte-zerg/parley/internal/store"
	"github.com/verte-zerg/parley/internal/textscore"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultFormat    = formatText
	defaultParallel  = 4
	defaultWindow    = 5
	weightFactor     = 2.0
)

var (
	logLevel  string
	logFormat string
	statsFile string
	noHistory bool

	fileCfg config.FileConfig
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "parley",
		Short:             "Negotiation transcript analysis and exercise timing",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaultLogFormat, "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&statsFile, "stats-file", "", "performance stats file (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "do not record attempts in the history database")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newRespondCmd())
	rootCmd.AddCommand(newPatternsCmd())
	rootCmd.AddCommand(newExercisesCmd())
	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// setup loads the config file, merges it under the flags and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = cfg
	applyStringConfig(cmd, "log-level", &logLevel, cfg.Log.Level)
	applyStringConfig(cmd, "log-format", &logFormat, cfg.Log.Format)
	applyStringConfig(cmd, "stats-file", &statsFile, cfg.Store.StatsFile)
	if cfg.Store.History != nil && !*cfg.Store.History && !cmd.Flags().Changed("no-history") {
		noHistory = true
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if logFormat != "text" && logFormat != "json" {
		return fmt.Errorf("--log-format must be text or json")
	}
	logging.Init(level, logFormat, cmd.ErrOrStderr())
	if statsFile == "" {
		statsFile = config.DefaultStatsPath()
	}
	return nil
}

// app holds the engine and the resources it owns for one command.
type app struct {
	engine  *session.Engine
	history *store.Store
}

// newAnalyzer builds an engine for commands that never touch persisted stats.
func newAnalyzer() (*session.Engine, error) {
	scorer, detector, err := buildAnalysis(fileCfg)
	if err != nil {
		return nil, err
	}
	st := perf.NewStore()
	return session.New(scorer, detector, st, perf.NewTimer(st)), nil
}

// openApp builds an engine backed by the stats file and, unless disabled,
// the attempt history database.
func openApp() (*app, error) {
	scorer, detector, err := buildAnalysis(fileCfg)
	if err != nil {
		return nil, err
	}
	st := perf.NewStore()
	if _, err := os.Stat(statsFile); err == nil {
		if err := st.Load(statsFile); err != nil {
			logging.New("cli").Warn("ignoring unreadable stats file", "path", statsFile, "error", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat stats file: %w", err)
	}

	a := &app{}
	opts := []session.Option{session.WithAutosave(statsFile)}
	if !noHistory {
		hist, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		a.history = hist
		opts = append(opts, session.WithHistory(hist))
	}
	a.engine = session.New(scorer, detector, st, perf.NewTimer(st), opts...)
	return a, nil
}

func (a *app) Close() {
	if a.history == nil {
		return
	}
	if err := a.history.Close(); err != nil {
		logging.New("cli").Warn("failed to close db", "error", err)
	}
}

func buildAnalysis(cfg config.FileConfig) (*textscore.Scorer, *patterns.Detector, error) {
	lex, err := buildLexicon(cfg.Lexicon)
	if err != nil {
		return nil, nil, err
	}
	extra := make([]patterns.Pattern, 0, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		extra = append(extra, patterns.Pattern{
			ID:          strings.TrimSpace(p.ID),
			Description: p.Description,
			Keywords:    p.Keywords,
			Responses:   p.Responses,
		})
	}
	catalog, err := patterns.NewCatalog(extra...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build pattern catalog: %w", err)
	}
	return textscore.New(lex), patterns.NewDetector(catalog), nil
}

func buildLexicon(cfg config.LexiconConfig) (*lexicon.Lexicon, error) {
	replace := cfg.Replace != nil && *cfg.Replace
	configured := map[model.Category][]string{
		model.Positive:      cfg.Positive,
		model.Negative:      cfg.Negative,
		model.Power:         cfg.Power,
		model.Collaborative: cfg.Collaborative,
	}
	var opts []lexicon.Option
	for _, cat := range model.Categories {
		words := configured[cat]
		if len(words) == 0 {
			continue
		}
		if replace {
			opts = append(opts, lexicon.WithWords(cat, words))
		} else {
			opts = append(opts, lexicon.WithExtraWords(cat, words))
		}
	}
	lex := lexicon.New(opts...)

	dir := config.DefaultLexiconDir()
	if cfg.Dir != nil && *cfg.Dir != "" {
		dir = *cfg.Dir
	}
	if err := lex.LoadDir(dir); err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return lex, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
