package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/name-wheel/internal/config"
	"github.com/iburimskiy/name-wheel/internal/game"
	"github.com/iburimskiy/name-wheel/internal/sound"
	"github.com/iburimskiy/name-wheel/internal/wheel"
)

// errReported marks a failure that run already wrote to the configured log.
var errReported = errors.New("reported")

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errReported) {
			slog.Error("application error", "error", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, closeLog, err := logOutput(cfg.Logging.Output)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}))
	slog.SetDefault(logger)

	if err := start(cfg, logger); err != nil {
		return reportError(logger, err)
	}
	return nil
}

// reportError logs err while the log output is still open.
func reportError(logger *slog.Logger, err error) error {
	logger.Error("application error", "error", err)
	return fmt.Errorf("%w: %w", errReported, err)
}

func start(cfg config.Config, logger *slog.Logger) error {
	player, err := sound.NewPlayer(cfg.Audio, logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		player = nil
	}
	defer player.Close()

	ctrl := wheel.NewController(
		wheel.WithFullTurns(cfg.Wheel.FullTurns),
		wheel.WithSpinDuration(cfg.Wheel.SpinDuration),
	)
	g, err := game.New(cfg, ctrl, player, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(cfg.Window.Title)

	logger.Info("starting name wheel", "full_turns", cfg.Wheel.FullTurns, "spin_duration", cfg.Wheel.SpinDuration)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// logOutput opens the log destination: stdout, stderr or a file path.
func logOutput(name string) (io.Writer, func(), error) {
	switch name {
	case "", "stderr":
		return os.Stderr, func() {}, nil
	case "stdout":
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
		_ = f.Close()
	}, nil
}
