// Package main provides the CLI entrypoint for wordrill.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordrill/internal/config"
	"github.com/verte-zerg/wordrill/internal/generator"
	"github.com/verte-zerg/wordrill/internal/logs"
	"github.com/verte-zerg/wordrill/internal/model"
	"github.com/verte-zerg/wordrill/internal/perf"
	"github.com/verte-zerg/wordrill/internal/stats"
	"github.com/verte-zerg/wordrill/internal/statsui"
	"github.com/verte-zerg/wordrill/internal/store"
	"github.com/verte-zerg/wordrill/internal/trainer"
	"github.com/verte-zerg/wordrill/internal/tui"
	"github.com/verte-zerg/wordrill/internal/wordlist"
)

const (
	defaultWords      = 50
	defaultDuration   = 0
	defaultWPM        = 40
	defaultCandidates = stats.DefaultCandidates
	defaultLogLevel   = "info"
)

var (
	practiceWords      int
	practiceDuration   int
	practiceWPM        int
	practiceCandidates int
	practiceWordList   string
)

func main() {
	_ = godotenv.Load()
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordrill",
		Short:         "Adaptive typing trainer that drills your slowest words",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per test (10-200)")
	rootCmd.Flags().IntVar(&practiceDuration, "duration", defaultDuration, "time limit in seconds (0 = finish all words)")
	rootCmd.PersistentFlags().IntVar(&practiceWPM, "wpm", defaultWPM, "target WPM; faster words graduate")
	rootCmd.PersistentFlags().IntVar(&practiceCandidates, "candidates", defaultCandidates, "number of worst words drilled per test")
	rootCmd.PersistentFlags().StringVar(&practiceWordList, "wordlist", "", "path to a newline-separated vocabulary (default: built-in English list)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newGraduatedCmd())
	rootCmd.AddCommand(newTargetCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// app holds the wired dependencies shared by every command.
type app struct {
	cfg     model.Config
	logger  *slog.Logger
	db      *store.Store
	trainer *trainer.Trainer

	closeLog func() error
}

// openApp loads settings, opens storage and builds the trainer. A nil console
// keeps warnings out of the terminal while a TUI owns it.
func openApp(cmd *cobra.Command, console io.Writer) (*app, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyIntConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)
	applyIntConfig(cmd, "wpm", &practiceWPM, fileCfg.Practice.WPM)
	applyIntConfig(cmd, "candidates", &practiceCandidates, fileCfg.Practice.Candidates)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)

	cfg := model.Config{
		Words:           practiceWords,
		DurationSeconds: practiceDuration,
		WPMTarget:       practiceWPM,
		Candidates:      practiceCandidates,
		WordListPath:    practiceWordList,
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	level := defaultLogLevel
	if fileCfg.Log.Level != nil {
		level = *fileCfg.Log.Level
	}
	logPath := config.DefaultLogPath()
	if fileCfg.Log.File != nil {
		logPath = *fileCfg.Log.File
	}
	logger, closeLog, err := logs.New(logs.Options{Level: level, FilePath: logPath, Console: console})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	vocabulary, err := wordlist.Resolve(cfg.WordListPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}

	db, err := store.Open(config.DefaultDBPath())
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	ctx := cmd.Context()
	if !cmd.Flags().Changed("wpm") {
		wpm, ok, err := perf.LoadWPMTarget(ctx, db)
		switch {
		case err != nil:
			logger.Warn("failed to read wpm target", "error", err)
		case ok:
			cfg.WPMTarget = wpm
		}
	}

	perfStore := perf.Initialize(ctx, db, vocabulary, logger)
	tr := trainer.New(perfStore, db, generator.New(), cfg, logger)
	logger.Debug("loaded settings", "words", cfg.Words, "duration_s", cfg.DurationSeconds, "wpm", cfg.WPMTarget, "candidates", cfg.Candidates, "vocabulary", len(vocabulary))

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		trainer:  tr,
		closeLog: closeLog,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logErrf("failed to close db: %v\n", err)
	}
	if err := a.closeLog(); err != nil {
		logErrf("failed to close log: %v\n", err)
	}
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	duration := time.Duration(a.cfg.DurationSeconds) * time.Second
	program := tea.NewProgram(tui.NewModel(a.trainer, duration), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
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

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-word stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	interactive := isTerminal(os.Stdout)
	var console io.Writer
	if !interactive {
		console = os.Stderr
	}
	a, err := openApp(cmd, console)
	if err != nil {
		return err
	}
	defer a.Close()

	if !interactive {
		report := stats.BuildReport(a.trainer, float64(a.trainer.WPMTarget()), a.trainer.CandidateLimit())
		if err := stats.RenderWordTable(cmd.OutOrStdout(), report.Ranked, report.WPM, report.Candidates); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	program := tea.NewProgram(statsui.NewModel(a.trainer), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newGraduatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graduated",
		Short: "List words faster than the WPM target",
		Args:  cobra.NoArgs,
		RunE:  runGraduatedCmd,
	}
}

func runGraduatedCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	wpm := float64(a.trainer.WPMTarget())
	graduated := stats.GraduatedWords(a.trainer.Snapshot(), wpm)
	if err := stats.RenderGraduatedTable(cmd.OutOrStdout(), graduated, wpm); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newTargetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "target [wpm]",
		Short: "Show or set the persisted WPM target",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTargetCmd,
	}
}

func runTargetCmd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		wpm := a.trainer.WPMTarget()
		_, err := fmt.Fprintf(out, "%d WPM (graduate under %.1f ms/char)\n", wpm, stats.GraduationThresholdMs(float64(wpm)))
		return err
	}

	wpm, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid wpm %q: must be a positive integer", args[0])
	}
	if err := a.trainer.SetWPMTarget(cmd.Context(), wpm); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Target set to %d WPM; %d words graduated\n", wpm, a.trainer.GraduatedCount())
	return err
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget all word stats",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	a.trainer.Store().Reset(cmd.Context())
	a.logger.Info("word stats reset", "words", len(a.trainer.Store().Vocabulary()))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reset stats for %d words\n", len(a.trainer.Store().Vocabulary()))
	return err
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d              # Words per test (%d-%d)
# duration = %d            # Time limit in seconds (0 = finish all words)
# wpm = %d                # Target WPM; words typed faster graduate
# candidates = %d         # Worst words drilled per test
# wordlist = ""           # Newline-separated vocabulary file

[log]
# level = %q          # debug, info, warn, error
# file = %q
`,
		defaultWords,
		config.MinWords,
		config.MaxWords,
		defaultDuration,
		defaultWPM,
		defaultCandidates,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
