// Package main provides the CLI entrypoint for typequote.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/typequote/internal/config"
	"github.com/verte-zerg/typequote/internal/logging"
	"github.com/verte-zerg/typequote/internal/model"
	"github.com/verte-zerg/typequote/internal/passage"
	"github.com/verte-zerg/typequote/internal/store"
	"github.com/verte-zerg/typequote/internal/theme"
	"github.com/verte-zerg/typequote/internal/tui"
	"github.com/verte-zerg/typequote/internal/typing"
)

const (
	defaultLang     = "en"
	defaultWords    = 25
	defaultCaps     = 0.5
	defaultPunct    = 0.5
	defaultLogLevel = "info"
)

const defaultPunctSet = ".,!?;:\"'()-"

var (
	practicePassages  string
	practiceWordsFile string
	practiceLang      string
	practiceWords     int
	practiceCaps      float64
	practicePunct     float64
	practicePunctSet  string
	practiceTheme     string
	practiceLogLevel  string

	listPassages string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typequote",
		Short:         "TUI typing speed trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practicePassages, "passages", "", "passage file, passages separated by blank lines (default: built-in set)")
	rootCmd.Flags().StringVar(&practiceWordsFile, "words-file", "", "word list to generate passages from, one word per line")
	rootCmd.Flags().StringVar(&practiceLang, "lang", defaultLang, "language of the word list, used for filtering")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per generated passage")
	rootCmd.Flags().Float64Var(&practiceCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	rootCmd.Flags().Float64Var(&practicePunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	rootCmd.Flags().StringVar(&practicePunctSet, "punct-set", defaultPunctSet, "punctuation set")
	rootCmd.Flags().StringVar(&practiceTheme, "theme", theme.DefaultName, "color theme ("+strings.Join(theme.Names(), ", ")+")")
	rootCmd.Flags().StringVar(&practiceLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newPassagesCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "passages", &practicePassages, fileCfg.Practice.Passages)
	applyStringConfig(cmd, "words-file", &practiceWordsFile, fileCfg.Practice.WordsFile)
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyFloatConfig(cmd, "caps", &practiceCaps, fileCfg.Practice.CapsPct)
	applyFloatConfig(cmd, "punct", &practicePunct, fileCfg.Practice.PunctPct)
	applyStringConfig(cmd, "punct-set", &practicePunctSet, fileCfg.Practice.PunctSet)
	applyStringConfig(cmd, "log-level", &practiceLogLevel, fileCfg.Log.Level)

	cfg := model.Config{
		PassagesPath: practicePassages,
		WordsPath:    practiceWordsFile,
		Lang:         practiceLang,
		Words:        practiceWords,
		CapsPct:      practiceCaps,
		PunctPct:     practicePunct,
		PunctSet:     practicePunctSet,
		LogLevel:     practiceLogLevel,
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = practiceTheme
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	picker, err := resolvePicker(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	persisted, _, err := st.Theme(context.Background())
	if err != nil {
		logErrf("failed to load saved theme: %v\n", err)
	}
	th, err := resolveTheme(cfg.Theme, persisted, fileCfg.Practice.Theme)
	if err != nil {
		return err
	}

	log := logging.New(config.DefaultLogPath(), level)
	defer func() {
		_ = log.Sync()
	}()

	game, err := typing.NewGame(picker, typing.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	log.Info("practice started",
		zap.String("theme", th.Name),
		zap.Bool("words_mode", cfg.WordsMode()),
	)

	program := tea.NewProgram(tui.NewModel(game, th, st, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolvePicker picks the passage source: a generated word list, a passage
// file, or the built-in set.
func resolvePicker(cfg model.Config) (typing.Picker, error) {
	if cfg.WordsMode() {
		words, err := passage.LoadWords(cfg.WordsPath, passage.FilterForLang(cfg.Lang))
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordsPath, err)
		}
		gen, err := passage.NewGenerator(words, passage.GeneratorConfig{
			Words:    cfg.Words,
			CapsPct:  cfg.CapsPct,
			PunctPct: cfg.PunctPct,
			PunctSet: []rune(cfg.PunctSet),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build generator: %w", err)
		}
		return gen, nil
	}
	return loadPassageSet(cfg.PassagesPath)
}

func loadPassageSet(path string) (*passage.Set, error) {
	if path == "" {
		return passage.Builtin(), nil
	}
	set, err := passage.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load passages: %w", err)
	}
	return set, nil
}

// resolveTheme applies precedence: explicit flag, saved choice, config file,
// default. Only an unknown flag value is an error.
func resolveTheme(flagValue, persisted string, fileValue *string) (theme.Theme, error) {
	if flagValue != "" {
		th, ok := theme.Lookup(flagValue)
		if !ok {
			return theme.Theme{}, fmt.Errorf("unknown theme %q (available: %s)", flagValue, strings.Join(theme.Names(), ", "))
		}
		return th, nil
	}
	if persisted != "" {
		if th, ok := theme.Lookup(persisted); ok {
			return th, nil
		}
		logErrf("ignoring unknown saved theme %q\n", persisted)
	}
	if fileValue != nil {
		if th, ok := theme.Lookup(*fileValue); ok {
			return th, nil
		}
		logErrf("ignoring unknown config theme %q\n", *fileValue)
	}
	return theme.Default(), nil
}

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

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typequote configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# passages = "~/quotes.txt"   # Passage file, passages separated by blank lines
# words-file = ""             # Word list; generates passages instead of quotes
# lang = %q                 # Word list language
# words = %d                  # Words per generated passage
# caps = %.2f                 # Probability of capitalized first letter (0-1)
# punct = %.2f                # Punctuation probability per word (0-1)
# punct-set = %q      # Punctuation set
# theme = %q              # One of: %s

[log]
# level = %q              # debug, info, warn, error
`,
		defaultLang,
		defaultWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		theme.DefaultName,
		strings.Join(theme.Names(), ", "),
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.PassagesPath != "" && cfg.WordsPath != "" {
		return fmt.Errorf("--passages and --words-file are mutually exclusive")
	}
	if !cfg.WordsMode() {
		return nil
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
