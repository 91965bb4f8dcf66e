// Package main is the entry point for the lion and fan scene.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/lionfan/internal/config"
	"github.com/Faultbox/lionfan/internal/engine/export"
	"github.com/Faultbox/lionfan/internal/game"
	"github.com/Faultbox/lionfan/internal/game/stage"
	"github.com/Faultbox/lionfan/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, path, err := config.LoadWithPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, path); err != nil {
		logger.Error("exiting", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config, path string) error {
	logger.Info("=== Lion & Fan ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if opts := config.Export(); opts.Path != "" {
		return exportScene(cfg, opts)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(cfg, path)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	logger.Info("closed normally")
	return nil
}

// exportScene simulates the stage headless and writes the resulting pose.
func exportScene(cfg *config.Config, opts config.ExportOptions) error {
	st, err := stage.New(cfg.Animation)
	if err != nil {
		return err
	}
	if opts.Cool {
		st.Engage()
	}
	for range opts.Frames {
		st.Tick()
	}

	if err := export.WriteGLB(opts.Path, st.Root()); err != nil {
		return err
	}
	logger.Info("scene exported",
		zap.String("path", opts.Path),
		zap.Int("frames", opts.Frames),
		zap.Stringer("mode", st.Mode()),
		zap.Uint64("seed", st.Seed()),
	)
	return nil
}
