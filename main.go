package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"startrek/internal/ansi"
	"startrek/internal/api"
	"startrek/internal/config"
	"startrek/internal/game"
	"startrek/internal/log"
	"startrek/internal/terminal"
	"startrek/internal/theme"
	"startrek/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set up global panic handler first
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "startrek crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "startrek: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.ParseFlags(args[0], args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if path := cfg.LogFile(); path != "" {
		if err := log.SetFileOutput(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not configure debug logging to file: %v\n", err)
		}
	}
	defer log.Close()
	log.Info("starting", "version", version, "commit", commit, "date", date, "theme", cfg.Theme, "tui", cfg.TUI)

	themes := theme.NewThemeManager()
	if err := themes.SetTheme(cfg.Theme); err != nil {
		return err
	}

	newGame := func(con api.Console) *game.Game {
		return game.New(game.DefaultDefs(), game.NewRandom(), con)
	}
	play := func(con api.Console) error {
		return runSession(con, newGame)
	}

	if cfg.TUI {
		if !terminal.IsTerminal(os.Stdout.Fd()) {
			return errors.New("the full-screen interface requires a terminal")
		}
		app := tui.NewApplication(tui.Options{
			Theme:         themes.Current(),
			BellPerSecond: cfg.BellPerSecond,
		})
		return app.Run(play)
	}

	return runLineMode(cfg, themes.Current(), play)
}

// runLineMode plays on stdin and stdout, in raw mode when stdin is a
// terminal.
func runLineMode(cfg *config.Config, th theme.Theme, play func(api.Console) error) error {
	interactive := terminal.IsTerminal(os.Stdin.Fd())
	restore, err := terminal.Raw(os.Stdin.Fd())
	if err != nil {
		return err
	}
	defer restore()

	// Raw mode swallows Ctrl-C, so only outside signals arrive here.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)
	go func() {
		sig, ok := <-signals
		if !ok {
			return
		}
		log.Error("SIGNAL RECEIVED", "signal", sig.String())
		restore()
		os.Exit(1)
	}()

	var out io.Writer = os.Stdout
	if !cfg.UseColor(terminal.IsTerminal(os.Stdout.Fd())) {
		th = nil
		out = ansi.NewStripWriter(os.Stdout)
	}

	con := terminal.NewConsole(os.Stdin, out, terminal.Options{
		Theme:         th,
		CRLF:          interactive,
		BellPerSecond: cfg.BellPerSecond,
	})
	return play(con)
}
