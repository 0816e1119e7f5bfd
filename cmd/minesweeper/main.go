package main

import (
	"log/slog"
	"os"

	"github.com/vancomm/minesweeper/internal/audio"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/ui/graphics"
	"github.com/vancomm/minesweeper/internal/ui/layout"
)

func main() {
	cfg := config.Load(os.Args[1:])

	logger, err := logging.Setup(cfg, os.Stderr)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}

	ctrl, err := game.New(cfg.Params(), mines.NewRand(cfg.Seed))
	if err != nil {
		logger.Error("failed to start game", "error", err)
		os.Exit(1)
	}

	player := audio.NewPlayer(cfg.Mute)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer player.Close()

	width, height := config.BoardSize()
	l := layout.New(width, height, config.CellSize, config.CellSize, config.TopBar)

	sprites, err := graphics.LoadSprites(cfg.Sprites, config.CellSize, logger)
	if err != nil {
		logger.Error("failed to load sprites", "error", err)
		os.Exit(1)
	}

	logger.Info("minesweeper started",
		slog.String("params", cfg.Params().String()),
		slog.Bool("development", cfg.Development),
	)

	if err := graphics.NewEngine(ctrl, l, sprites, player, logger).Run(); err != nil {
		logger.Error("game exited", "error", err)
		player.Close()
		os.Exit(1)
	}
}
