package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/parley/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless a config already exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# parley configuration
# Uncomment a value to enable it. CLI flags override config values.

[lexicon]
# replace = false         # Replace the built-in word lists instead of extending them
# dir = %q
# positive = ["ótimo", "justo"]
# negative = ["inaceitável"]
# power = ["exijo"]
# collaborative = ["parceria"]

# [[pattern]]
# id = "silence"
# description = "Silêncio estratégico para pressionar a outra parte"
# keywords = ["silêncio", "pausa"]
# responses = ["Aguarde e não preencha o silêncio com concessões"]

[store]
# stats-file = %q
# history = true          # Record attempts in the history database

[log]
# level = %q              # debug, info, warn, error
# format = %q             # text or json

[practice]
# exercise = "batna"      # Default exercise for parley practice
# parallel = %d           # Transcripts analyzed concurrently
`,
		config.DefaultLexiconDir(),
		config.DefaultStatsPath(),
		defaultLogLevel,
		defaultLogFormat,
		defaultParallel,
	)
}
