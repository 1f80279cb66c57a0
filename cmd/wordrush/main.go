// Package main provides the CLI entrypoint for wordrush.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/wordrush/internal/clock"
	"github.com/verte-zerg/wordrush/internal/config"
	"github.com/verte-zerg/wordrush/internal/game"
	"github.com/verte-zerg/wordrush/internal/generator"
	"github.com/verte-zerg/wordrush/internal/leaderboard"
	"github.com/verte-zerg/wordrush/internal/logger"
	"github.com/verte-zerg/wordrush/internal/model"
	"github.com/verte-zerg/wordrush/internal/scoresui"
	"github.com/verte-zerg/wordrush/internal/stats"
	"github.com/verte-zerg/wordrush/internal/store"
	"github.com/verte-zerg/wordrush/internal/tui"
	"github.com/verte-zerg/wordrush/internal/wordbank"
	"github.com/verte-zerg/wordrush/internal/wordlist"
)

const (
	defaultMode      = string(model.ModeSpeed)
	defaultScheme    = "classic"
	defaultStage     = 0
	defaultBackend   = "sqlite"
	defaultLogLevel  = "info"
	defaultLevels    = game.MaxLevel
	defaultPerLevel  = 20
	defaultMinLength = 1
)

var (
	playName   string
	playMode   string
	playScheme string
	playStage  int
	playBank   string

	scoresPlain  bool
	scoresImport string
	scoresClear  bool

	buildIn        string
	buildOut       string
	buildName      string
	buildLang      string
	buildLevels    int
	buildPerLevel  int
	buildMinLength int
	buildForce     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordrush",
		Short:         "Terminal typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playName, "name", "", "player name (default: anonymous)")
	rootCmd.Flags().StringVar(&playMode, "mode", defaultMode, "preselected mode: speed, breakthrough or practice")
	rootCmd.Flags().StringVar(&playScheme, "scheme", defaultScheme, "speed scheme: classic, brisk or tiered")
	rootCmd.Flags().IntVar(&playStage, "stage", defaultStage, "starting speed stage for practice mode (default: the scheme's middle stage)")
	rootCmd.Flags().StringVar(&playBank, "bank", wordbank.DefaultBank, "word bank name or path")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newBankCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	scheme, err := game.SchemeByName(settings.Scheme)
	if err != nil {
		return err
	}
	bank, err := wordbank.Resolve(settings.Bank, config.DefaultBankDir(), generator.New())
	if err != nil {
		return err
	}

	backend, err := openBackend(settings)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			log.Warn("failed to close leaderboard store", zap.Error(cerr))
		}
	}()
	board := leaderboard.New(backend, clock.System{}, log)

	log.Info("starting",
		zap.String("bank", bank.Name()),
		zap.String("scheme", scheme.Name()),
		zap.String("backend", settings.Backend),
	)
	m := tui.NewModel(tui.Options{
		Bank:     bank,
		Scheme:   scheme,
		Board:    board,
		Logger:   log,
		Settings: settings,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadSettings merges the config file under the command's flags and
// validates the result. Flags override config values only when set.
func loadSettings(cmd *cobra.Command) (model.Settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "name", &playName, fileCfg.Game.Name)
	applyStringConfig(cmd, "mode", &playMode, fileCfg.Game.Mode)
	applyStringConfig(cmd, "scheme", &playScheme, fileCfg.Game.Scheme)
	applyIntConfig(cmd, "stage", &playStage, fileCfg.Game.PracticeStage)
	applyStringConfig(cmd, "bank", &playBank, fileCfg.Game.Bank)

	backend := defaultBackend
	applyStringConfig(cmd, "", &backend, fileCfg.Leaderboard.Backend)
	storePath := ""
	applyStringConfig(cmd, "", &storePath, fileCfg.Leaderboard.Path)
	if storePath == "" {
		storePath = defaultStorePath(backend)
	}
	logLevel := defaultLogLevel
	applyStringConfig(cmd, "", &logLevel, fileCfg.Log.Level)
	logFile := config.DefaultLogPath()
	applyStringConfig(cmd, "", &logFile, fileCfg.Log.File)

	settings := model.Settings{
		Player:        strings.TrimSpace(playName),
		Mode:          model.Mode(strings.ToLower(strings.TrimSpace(playMode))),
		Scheme:        strings.ToLower(strings.TrimSpace(playScheme)),
		PracticeStage: playStage,
		Bank:          strings.TrimSpace(playBank),
		Backend:       strings.ToLower(strings.TrimSpace(backend)),
		StorePath:     storePath,
		LogLevel:      strings.ToLower(strings.TrimSpace(logLevel)),
		LogFile:       logFile,
	}
	if err := config.Validate(settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

func defaultStorePath(backend string) string {
	if strings.EqualFold(strings.TrimSpace(backend), "file") {
		return config.DefaultDocumentDir()
	}
	return config.DefaultDBPath()
}

func newLogger(settings model.Settings) (*zap.Logger, error) {
	log, err := logger.New(logger.Config{Level: settings.LogLevel, File: settings.LogFile})
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return log, nil
}

type leaderboardStore interface {
	leaderboard.Backend
	Close() error
}

func openBackend(settings model.Settings) (leaderboardStore, error) {
	switch settings.Backend {
	case "file":
		st, err := store.OpenFile(settings.StorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open leaderboard directory: %w", err)
		}
		return st, nil
	default:
		st, err := store.Open(settings.StorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		return st, nil
	}
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

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show high scores",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().BoolVar(&scoresPlain, "plain", false, "print a plain table instead of the TUI")
	cmd.Flags().StringVar(&scoresImport, "import", "", "merge high scores from an exported JSON file")
	cmd.Flags().BoolVar(&scoresClear, "clear", false, "remove all high scores")
	cmd.MarkFlagsMutuallyExclusive("import", "clear")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	backend, err := openBackend(settings)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			logErrf("failed to close leaderboard store: %v\n", cerr)
		}
	}()
	board := leaderboard.New(backend, clock.System{}, log)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch {
	case scoresClear:
		if err := board.Clear(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "High scores cleared.")
		return err
	case scoresImport != "":
		return importScores(ctx, board, scoresImport, out)
	}

	if scoresPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		entries, err := board.List(ctx)
		if err != nil {
			return err
		}
		return stats.RenderLeaderboard(out, entries)
	}

	m := scoresui.NewModel(board)
	m.Refresh(ctx)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run scores TUI: %w", err)
	}
	return nil
}

func importScores(ctx context.Context, board *leaderboard.Board, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	imported, err := leaderboard.ParseExport(data)
	if err != nil {
		return err
	}
	merged, err := board.Merge(ctx, imported)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Imported %d entries; %d on the board.\n", len(imported), len(merged))
	return err
}

func newBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage word banks",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in and custom word banks",
		Args:  cobra.NoArgs,
		RunE:  runBankListCmd,
	})

	build := &cobra.Command{
		Use:   "build",
		Short: "Build a leveled word bank from a word list",
		Args:  cobra.NoArgs,
		RunE:  runBankBuildCmd,
	}
	build.Flags().StringVar(&buildIn, "in", "", "word list file, one word per line")
	build.Flags().StringVar(&buildOut, "out", "", "output bank file (default: <bank dir>/<name>.toml)")
	build.Flags().StringVar(&buildName, "name", "", "bank name (default: input file name)")
	build.Flags().StringVar(&buildLang, "lang", "", "language filter: en, zh, zh-hant, zh-hans")
	build.Flags().IntVar(&buildLevels, "levels", defaultLevels, "number of levels")
	build.Flags().IntVar(&buildPerLevel, "per-level", defaultPerLevel, "words kept per level")
	build.Flags().IntVar(&buildMinLength, "min-length", defaultMinLength, "word length of level 1, in characters")
	build.Flags().BoolVar(&buildForce, "force", false, "overwrite an existing bank file")
	_ = build.MarkFlagRequired("in")
	cmd.AddCommand(build)
	return cmd
}

func runBankListCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, name := range wordbank.BuiltinNames() {
		if _, err := fmt.Fprintf(out, "%s (built-in)\n", name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	bankDir := config.DefaultBankDir()
	entries, err := os.ReadDir(bankDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read bank directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".toml"))
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runBankBuildCmd(cmd *cobra.Command, _ []string) error {
	name := strings.TrimSpace(buildName)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(buildIn), filepath.Ext(buildIn))
	}
	outPath := buildOut
	if outPath == "" {
		outPath = filepath.Join(config.DefaultBankDir(), name+".toml")
	}
	if !buildForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("word bank already exists: %s (use --force to overwrite)", outPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat word bank: %w", err)
		}
	}

	words, err := wordlist.LoadWords(buildIn, wordlist.FilterForLang(buildLang))
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	gen := generator.New()
	bank, err := wordbank.FromWordList(words, wordbank.BuildOptions{
		Name:      name,
		Levels:    buildLevels,
		PerLevel:  buildPerLevel,
		MinLength: buildMinLength,
	}, gen, gen)
	if err != nil {
		return err
	}
	if err := wordbank.Save(outPath, bank); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d levels from %d words)\n", outPath, bank.Levels(), len(words))
	return err
}

// applyStringConfig copies a config value into target unless the named flag
// was set on the command line. An empty name always applies the value.
func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if name != "" && cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if name != "" && cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordrush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# name = ""                 # Player name (blank plays as %q, or 匿名玩家 on zh banks)
# mode = %q            # speed, breakthrough or practice
# scheme = %q         # classic, brisk or tiered
# practice-stage = 5         # Starting practice stage (unset: the scheme's middle stage)
# bank = %q           # Built-in bank, custom bank name or path

[leaderboard]
# backend = %q        # sqlite or file
# path = %q

[log]
# level = %q            # debug, info, warn or error
# file = %q
`,
		game.DefaultPlayer,
		defaultMode,
		defaultScheme,
		wordbank.DefaultBank,
		defaultBackend,
		config.DefaultDBPath(),
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
