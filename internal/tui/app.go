package tui

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"startrek/internal/api"
	"startrek/internal/log"
	"startrek/internal/terminal"
	"startrek/internal/theme"
)

const keyBuffer = 64

// Options configures the full-screen front end.
type Options struct {
	Theme         theme.Theme
	BellPerSecond float64

	// Screen replaces the real terminal, for tests.
	Screen tcell.Screen
}

// App is the tview front end. The session runs on its own goroutine and
// talks to a terminal.Console whose keys come from the UI and whose output
// lands in the transcript view.
type App struct {
	app        *tview.Application
	view       *tview.TextView
	status     *tview.TextView
	transcript *Transcript
	keys       *keyReader
	console    *terminal.Console

	startOnce sync.Once
	done      chan struct{}
	err       error
}

// NewApplication creates and configures the tview application
func NewApplication(opts Options) *App {
	th := opts.Theme
	if th == nil {
		th = theme.NewDOSTheme()
	}
	components := theme.NewThemedComponents(th)

	a := &App{
		app:        tview.NewApplication(),
		view:       components.NewTranscriptView(),
		status:     components.NewStatusBar(),
		transcript: NewTranscript(defaultMaxLines),
		keys:       newKeyReader(keyBuffer),
		done:       make(chan struct{}),
	}
	a.console = terminal.NewConsole(a.keys, writerFunc(a.write), terminal.Options{
		Theme:         th,
		BellPerSecond: opts.BellPerSecond,
	})

	a.status.SetText(fmt.Sprintf(" STAR TREK | theme: %s | ESC aborts input | Ctrl-C quits", th.Name()))

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.view, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	if opts.Screen != nil {
		a.app.SetScreen(opts.Screen)
	}
	a.app.SetRoot(layout, true)
	a.app.SetInputCapture(a.handleKey)

	return a
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// write feeds console output to the transcript and schedules a redraw.
func (a *App) write(p []byte) (int, error) {
	n, err := a.transcript.Write(p)
	a.app.QueueUpdateDraw(a.refresh)
	return n, err
}

func (a *App) refresh() {
	a.view.SetText(tview.TranslateANSI(a.transcript.Content()))
	a.view.ScrollToEnd()
}

// handleKey forwards editing keys to the session and leaves the rest, such
// as page up and down, to the transcript view.
func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	b := keyBytes(event)
	if b == nil {
		return event
	}
	if !a.keys.push(b) {
		log.Debug("key dropped", "key", event.Name())
	}
	return nil
}

// beforeDraw starts the session on the first frame, once the screen exists,
// and rings the terminal bell for every bell the console wrote.
func (a *App) beforeDraw(session func(api.Console) error) func(tcell.Screen) bool {
	return func(screen tcell.Screen) bool {
		a.startOnce.Do(func() { go a.runSession(session) })
		if a.transcript.TakeBells() > 0 {
			_ = screen.Beep()
		}
		return false
	}
}

func (a *App) runSession(session func(api.Console) error) {
	defer close(a.done)
	defer a.app.Stop()
	defer func() {
		if r := recover(); r != nil {
			log.Error("session panic", "error", r, "stack", string(debug.Stack()))
			a.err = fmt.Errorf("session panic: %v", r)
		}
	}()

	a.err = session(a.console)
	log.Info("session finished", "error", a.err)
}

// Run shows the interface and runs session until it returns.
func (a *App) Run(session func(api.Console) error) error {
	a.app.SetBeforeDrawFunc(a.beforeDraw(session))

	if err := a.app.Run(); err != nil {
		a.keys.Close()
		return fmt.Errorf("run interface: %w", err)
	}

	a.keys.Close()
	<-a.done
	return a.err
}

// Transcript exposes the collected output.
func (a *App) Transcript() *Transcript {
	return a.transcript
}
