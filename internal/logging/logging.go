package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper/internal/audio"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

// Loggers are the package loggers Setup configures.
func Loggers() []*logrus.Logger {
	return []*logrus.Logger{mines.Log, game.Log, audio.Log}
}

// Setup configures the package loggers to write to console and, if
// cfg.LogFile is set, to a rotating log file. It returns the logger
// used by the entrypoints.
func Setup(cfg config.App, console io.Writer) (*slog.Logger, error) {
	level := logrus.InfoLevel
	if cfg.Development {
		level = logrus.DebugLevel
	}

	var hook logrus.Hook
	if cfg.LogFile != "" {
		var err error
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		}
	}

	for _, log := range Loggers() {
		log.SetLevel(level)
		log.SetOutput(console)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development})
		if hook != nil {
			log.AddHook(hook)
		}
	}

	var handler slog.Handler = slog.NewJSONHandler(console, nil)
	if cfg.Development {
		handler = tint.NewHandler(console, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler), nil
}
