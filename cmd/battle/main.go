package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlego/internal/config"
	"github.com/udisondev/battlego/internal/console"
	"github.com/udisondev/battlego/internal/data"
	"github.com/udisondev/battlego/internal/game/event"
	"github.com/udisondev/battlego/internal/spectate"
)

const BattleConfigPath = "config/battle.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := BattleConfigPath
	if p := os.Getenv("BATTLE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBattle(cfgPath)
	if err != nil {
		return fmt.Errorf("loading battle config: %w", err)
	}

	// stdout belongs to the game, logs go to stderr
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	catalog, err := data.LoadCatalog(cfg.RosterPath)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	slog.Info("roster loaded", "archetypes", catalog.Len(), "path", cfg.RosterPath)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	var extra event.Notifier
	if cfg.Spectator.Enabled {
		hub := spectate.NewHub(cfg.Spectator.SendQueueSize)
		extra = hub
		srv := spectate.NewServer(hub, cfg.Spectator.Addr)
		g.Go(func() error {
			slog.Info("starting spectator feed", "addr", cfg.Spectator.Addr)
			if err := srv.Run(runCtx); err != nil {
				return fmt.Errorf("spectator feed: %w", err)
			}
			return nil
		})
	}

	game := console.NewGame(os.Stdin, os.Stdout, catalog, cfg, extra)
	g.Go(func() error {
		// the feed has nothing to show once the game is over
		defer stop()
		err := game.Run(runCtx)
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout, "\nGame interrupted. Bye!")
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("battle error: %w", err)
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Warn if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
