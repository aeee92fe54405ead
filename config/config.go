// Package config collects the game's startup settings from defaults, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"torus-snake/game/types"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultSpeedMs      = 100
	DefaultFPS          = 60
	DefaultLogLevel     = "info"
)

type Config struct {
	WindowWidth  int
	WindowHeight int
	CellSize     int
	TickInterval time.Duration
	FPS          int
	Seed         uint64
	LogLevel     string
}

func Default() Config {
	return Config{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		CellSize:     types.CellSize,
		TickInterval: DefaultSpeedMs * time.Millisecond,
		FPS:          DefaultFPS,
		LogLevel:     DefaultLogLevel,
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load builds a Config from defaults, SNAKE_* environment variables and
// args (without the program name).
func Load(args []string) (Config, error) {
	cfg, err := fromEnv(Default())
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	speed := fs.Int("speed", int(cfg.TickInterval/time.Millisecond), "Game speed in milliseconds per tick (lower = faster)")
	fs.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "Window width in pixels")
	fs.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "Window height in pixels")
	fs.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = random)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}
	cfg.TickInterval = time.Duration(*speed) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromEnv(cfg Config) (Config, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_WIDTH", &cfg.WindowWidth},
		{"SNAKE_HEIGHT", &cfg.WindowHeight},
		{"SNAKE_CELL", &cfg.CellSize},
		{"SNAKE_FPS", &cfg.FPS},
	}
	for _, e := range ints {
		v := GetEnv(e.key, "")
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrapf(ErrInvalid, "%s=%q", e.key, v)
		}
		*e.dst = n
	}

	if v := GetEnv("SNAKE_SPEED", ""); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrapf(ErrInvalid, "SNAKE_SPEED=%q", v)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}
	if v := GetEnv("SNAKE_SEED", ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrapf(ErrInvalid, "SNAKE_SEED=%q", v)
		}
		cfg.Seed = seed
	}
	cfg.LogLevel = GetEnv("SNAKE_LOG_LEVEL", cfg.LogLevel)
	return cfg, nil
}

// Validate rejects sizes and rates the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Wrapf(ErrInvalid, "window %dx%d", c.WindowWidth, c.WindowHeight)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalid, "cell size %d", c.CellSize)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalid, "tick interval %v", c.TickInterval)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalid, "fps %d", c.FPS)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log level %q", c.LogLevel)
	}
	return nil
}

// NewLogger builds the process logger at the configured level.
func (c Config) NewLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "snake",
		ReportTimestamp: true,
		Level:           level,
	})
}
