package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"startrek/internal/log"
	"startrek/internal/theme"
)

// DefaultDebugLog is where -debug writes unless STARTREK_DEBUG_LOG names
// another file.
const DefaultDebugLog = "startrek_debug.log"

// ColorMode decides whether styles reach the terminal.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds front-end options. Nothing here changes the rules of the
// game.
type Config struct {
	Theme         string
	Color         ColorMode
	TUI           bool
	Debug         bool
	DebugLog      string
	BellPerSecond float64
}

// GetEnv returns the environment value for key or fallback when unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load reads .env (if present) and the environment, then validates.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment", "error", err)
	}

	config, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func load() (*Config, error) {
	tui, err := strconv.ParseBool(GetEnv("STARTREK_TUI", "false"))
	if err != nil {
		return nil, fmt.Errorf("STARTREK_TUI: %w", err)
	}
	bell, err := strconv.ParseFloat(GetEnv("STARTREK_BELL_PER_SECOND", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("STARTREK_BELL_PER_SECOND: %w", err)
	}

	return &Config{
		Theme:         GetEnv("STARTREK_THEME", theme.DOSThemeName),
		Color:         ColorMode(GetEnv("STARTREK_COLOR", string(ColorAuto))),
		TUI:           tui,
		DebugLog:      GetEnv("STARTREK_DEBUG_LOG", DefaultDebugLog),
		BellPerSecond: bell,
	}, nil
}

// Validate checks every option against its allowed values.
func (c *Config) Validate() error {
	switch c.Theme {
	case theme.DOSThemeName, theme.MonoThemeName:
	default:
		return fmt.Errorf("theme must be %q or %q, got %q", theme.DOSThemeName, theme.MonoThemeName, c.Theme)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}

	if c.DebugLog == "" {
		return fmt.Errorf("debug log path must not be empty")
	}

	if c.BellPerSecond < 0 {
		return fmt.Errorf("bell rate must not be negative, got %g", c.BellPerSecond)
	}

	return nil
}

// ParseFlags lets command line flags override the loaded values.
func (c *Config) ParseFlags(name string, args []string, output io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	color := fs.String("color", string(c.Color), "colour output: auto, always or never")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log to "+c.DebugLog)
	fs.BoolVar(&c.TUI, "tui", c.TUI, "run in the full-screen interface")
	fs.StringVar(&c.Theme, "theme", c.Theme, "colour theme: dos or mono")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Color = ColorMode(*color)

	return c.Validate()
}

// LogFile is the debug log to open, or "" when -debug was not given.
func (c *Config) LogFile() string {
	if !c.Debug {
		return ""
	}
	return c.DebugLog
}

// UseColor resolves the colour mode against whether output is a terminal.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
