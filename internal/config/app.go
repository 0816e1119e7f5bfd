package config

import (
	"errors"
	"net/url"
	"os"

	"github.com/gorilla/schema"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	CellSize     = 32
	TopBar       = 64
	WindowWidth  = 864
	WindowHeight = 640
	FPS          = 30
	DefaultMines = 100
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type App struct {
	MineCount   int    `schema:"mine_count"`
	Seed        uint64 `schema:"seed"`
	LogFile     string `schema:"log_file"`
	Mute        bool   `schema:"mute"`
	Sprites     string `schema:"sprites"`
	Development bool   `schema:"-"`
}

// envKeys maps environment variables to schema keys.
var envKeys = map[string]string{
	"MINESWEEPER_MINE_COUNT": "mine_count",
	"MINESWEEPER_SEED":       "seed",
	"MINESWEEPER_LOG_FILE":   "log_file",
	"MINESWEEPER_MUTE":       "mute",
	"MINESWEEPER_SPRITES":    "sprites",
}

func BoardSize() (width, height int) {
	return WindowWidth / CellSize, (WindowHeight - TopBar) / CellSize
}

// Load reads .env, the environment and the command line arguments.
// The first argument, when present, is the mine count. Bad values
// never fail the load: they are replaced with defaults.
func Load(args []string) App {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env loaded")
	}

	values := url.Values{}
	for env, key := range envKeys {
		if v, ok := os.LookupEnv(env); ok {
			values.Set(key, v)
		}
	}
	if len(args) > 0 {
		values.Set("mine_count", args[0])
	}

	app := Decode(values)
	app.Development = Development()
	return app
}

// Decode builds an App from raw values, falling back to defaults for
// anything that does not convert or is out of range.
func Decode(values url.Values) App {
	var app App
	if err := decoder.Decode(&app, values); err != nil {
		var multi schema.MultiError
		if !errors.As(err, &multi) {
			logrus.WithError(err).Debug("unable to decode config")
			return App{MineCount: DefaultMines}
		}
		for key, keyErr := range multi {
			logrus.WithError(keyErr).WithField("key", key).Debug("ignoring config value")
		}
	}

	width, height := BoardSize()
	if app.MineCount <= 0 || app.MineCount >= width*height {
		app.MineCount = DefaultMines
	}
	return app
}

func (a App) Params() mines.GameParams {
	width, height := BoardSize()
	return mines.GameParams{Width: width, Height: height, MineCount: a.MineCount}
}

// Development reports whether DEVELOPMENT is set to anything but "0".
// It is read after .env is loaded.
func Development() bool {
	v, ok := os.LookupEnv("DEVELOPMENT")
	return ok && v != "0"
}
