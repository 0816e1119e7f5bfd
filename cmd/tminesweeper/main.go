package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper/internal/audio"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/ui/terminal"
)

func main() {
	cfg := config.Load(os.Args[1:])

	// the screen owns stdout and stderr, only the log file is written
	logger, err := logging.Setup(cfg, io.Discard)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}

	ctrl, err := game.New(cfg.Params(), mines.NewRand(cfg.Seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start game:", err)
		os.Exit(1)
	}

	player := audio.NewPlayer(cfg.Mute)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open terminal:", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Info("minesweeper started", slog.String("params", cfg.Params().String()))

	if err := terminal.New(screen, ctrl, player, logger).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		player.Close()
		os.Exit(1)
	}
}
