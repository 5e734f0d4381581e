package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/wolfchan/internal/app"
	"github.com/abhisek/wolfchan/internal/config"
	"github.com/abhisek/wolfchan/internal/headless"
	"github.com/abhisek/wolfchan/internal/llm"
	"github.com/abhisek/wolfchan/internal/notify"
	"github.com/abhisek/wolfchan/internal/progress"
	"github.com/abhisek/wolfchan/internal/session"
	"github.com/abhisek/wolfchan/internal/statusapi"
	"github.com/abhisek/wolfchan/internal/store"
	"github.com/abhisek/wolfchan/internal/trivia"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runApp loads config, opens the journal and launches the TUI, or the
// headless runner when stdout is not a terminal.
func runApp(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	var repo store.EventRepo
	if !cfg.Store.Disabled {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		repo = st.EventRepo()
	}

	runID := uuid.NewString()
	logger = logger.With("run", runID)
	logger.Info("starting", "version", version, "work", cfg.Timer.Work.Duration, "break", cfg.Timer.Break.Duration)

	board := statusapi.NewBoard()
	if cfg.Status.Addr != "" {
		srv := statusapi.NewServer(cfg.Status.Addr, board, logger)
		ln, err := srv.Listen()
		if err != nil {
			return fmt.Errorf("status api: %w", err)
		}
		go func() {
			if err := srv.Serve(ctx, ln); err != nil {
				logger.Error("status api stopped", "error", err)
			}
		}()
	}

	headlessFlag, _ := cmd.Flags().GetBool("headless")
	fd := os.Stdout.Fd()
	if headlessFlag || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		r := headless.New(headless.Options{
			Session:   sessionConfig(cfg),
			Progress:  progressConfig(cfg),
			EventRepo: repo,
			RunID:     runID,
			Board:     board,
			Notifier:  notify.New(notify.Options{Sound: cfg.Notify.Sound, Bell: cfg.Notify.Bell, Out: os.Stdout, Logger: logger}),
			Out:       os.Stdout,
			Logger:    logger,
		})
		return r.Run(ctx)
	}

	return app.Run(ctx, app.Options{
		Config:    cfg,
		EventRepo: repo,
		RunID:     runID,
		Generator: triviaGenerator(ctx, cfg, repo, logger),
		Notifier:  notify.New(notify.Options{Sound: cfg.Notify.Sound, Bell: cfg.Notify.Bell, Out: os.Stderr, Logger: logger}),
		Board:     board,
		Logger:    logger,
	})
}

func sessionConfig(cfg *config.Config) session.Config {
	return session.Config{
		Work:         cfg.Timer.Work.Duration,
		Break:        cfg.Timer.Break.Duration,
		GameInterval: cfg.Timer.GameInterval.Duration,
		Tick:         cfg.Timer.Tick.Duration,
	}
}

func progressConfig(cfg *config.Config) progress.Config {
	return progress.Config{
		WorkDuration:   cfg.Timer.Work.Duration,
		WeeklyGoal:     cfg.Progress.WeeklyGoal,
		CountDismissed: cfg.Games.CountDismissed,
	}
}

// triviaGenerator returns the LLM generator when configured and usable,
// otherwise the built-in bank.
func triviaGenerator(ctx context.Context, cfg *config.Config, repo store.EventRepo, logger *slog.Logger) trivia.Generator {
	if cfg.Games.TriviaSource != "llm" {
		return trivia.BankGenerator{}
	}
	provider, err := newLLMProvider(ctx, cfg, repo, logger)
	if err != nil {
		logger.Warn("LLM trivia unavailable, using the question bank", "error", err)
		return trivia.BankGenerator{}
	}
	return trivia.NewLLMGenerator(provider, trivia.DefaultLLMConfig(), logger)
}

func newLLMProvider(ctx context.Context, cfg *config.Config, repo store.EventRepo, logger *slog.Logger) (llm.Provider, error) {
	lc, ok := llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout.Duration,
		// Only the mock provider consults it.
		Responder: trivia.OfflineResponder(nil),
	}.Discover()
	if !ok {
		return nil, fmt.Errorf("no LLM provider configured: set llm.provider and an API key")
	}
	return llm.NewProvider(ctx, lc, repo, logger)
}
