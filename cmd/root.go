package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abhisek/wolfchan/internal/config"
	"github.com/abhisek/wolfchan/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wolfchan",
	Short: "Pomodoro focus timer with mini-game breaks",
	Long: `wolfchan is a terminal pomodoro timer. Work in focused blocks, take
short breaks, and play a quick mini-game every few minutes of work.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a TOML or YAML config file (overrides WOLFCHAN_CONFIG)")
	pf.String("db", "", "Path to SQLite database file (overrides WOLFCHAN_DB env var)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	f := rootCmd.Flags()
	f.Bool("headless", false, "Run without the terminal UI and print transitions")
	f.String("status-addr", "", "Serve the JSON status API on this address (e.g. 127.0.0.1:7420)")
	f.Duration("work", 0, "Work block length (e.g. 25m)")
	f.Duration("break", 0, "Break length (e.g. 5m)")
	f.Duration("game-interval", 0, "Work time between mini-games (e.g. 2m)")
	f.Bool("no-sound", false, "Disable the audio chime")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(triviaCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies flag overrides, which take
// precedence over both the file and the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if p, _ := flags.GetString("db"); p != "" {
		cfg.Store.Path = p
	}
	if l, _ := flags.GetString("log-level"); l != "" {
		cfg.Log.Level = l
	}
	if flags.Changed("status-addr") {
		cfg.Status.Addr, _ = flags.GetString("status-addr")
	}
	durations := []struct {
		flag string
		dst  *config.Duration
	}{
		{"work", &cfg.Timer.Work},
		{"break", &cfg.Timer.Break},
		{"game-interval", &cfg.Timer.GameInterval},
	}
	for _, d := range durations {
		if flags.Changed(d.flag) {
			v, _ := flags.GetDuration(d.flag)
			d.dst.Duration = v
		}
	}
	if noSound, _ := flags.GetBool("no-sound"); noSound {
		cfg.Notify.Sound = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG location.
func resolveDBPath(cfg *config.Config) (string, error) {
	if p := cfg.Store.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// errJournalDisabled is returned by commands that read the journal when
// the store is turned off.
var errJournalDisabled = errors.New("journal disabled: set [store] disabled = false to keep history")

// openJournal opens the store for commands that only make sense with a
// journal.
func openJournal(cfg *config.Config) (*store.Store, error) {
	if cfg.Store.Disabled {
		return nil, errJournalDisabled
	}
	return openStore(cfg)
}

// newLogger opens the log file. The terminal belongs to the UI, so logs
// never go to stderr.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Log.File == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
