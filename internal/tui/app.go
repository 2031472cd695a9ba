// Package tui implements the interactive rewind demo.
//
// The demo edits a single line of text. Typing changes a live input
// buffer; committing the buffer records it in the history store, where
// it can be stepped backward and forward:
//
//	Enter   commit the input (undoable write)
//	Ctrl+S  commit the input silently (bypasses history)
//	Ctrl+Z  undo
//	Ctrl+Y  redo
//	Ctrl+R  reset to the baseline
//	Esc     quit
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/internal/config"
)

// App is the interactive demo application.
type App struct {
	screen tcell.Screen
	store  *rewind.Store[string]
	cfg    config.Config

	input     []rune
	status    string
	statusErr bool
	lastOp    string
	quit      bool
}

// New creates the demo application with its own terminal screen.
func New(cfg config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg), nil
}

// NewWithScreen creates the demo application on an existing screen.
// Used by tests with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen, cfg config.Config) *App {
	app := &App{
		screen: screen,
		cfg:    cfg,
		input:  []rune(cfg.Demo.Initial),
	}
	app.buildStore()
	return app
}

// buildStore creates a fresh store from the current configuration,
// using the current input as the baseline.
func (a *App) buildStore() {
	a.store = rewind.New(string(a.input), a.cfg.StoreOptions()...)
	a.store.Subscribe(func(c rewind.Change[string]) {
		a.lastOp = c.Op.String()
	})
}

// Run initializes the screen and processes events until quit.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	a.screen.EnablePaste()

	for !a.quit {
		a.draw()
		event := a.screen.PollEvent()
		if event == nil {
			return nil
		}
		a.handleEvent(event)
	}
	return nil
}

// eventConfig carries a reloaded configuration into the event loop.
type eventConfig struct {
	tcell.EventTime
	cfg config.Config
}

// PostConfig delivers a reloaded configuration to the running event
// loop. Safe to call from the watcher goroutine.
func (a *App) PostConfig(cfg config.Config) {
	ev := &eventConfig{cfg: cfg}
	ev.SetEventNow()
	_ = a.screen.PostEvent(ev)
}

func (a *App) handleEvent(event tcell.Event) {
	switch ev := event.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case *eventConfig:
		a.applyConfig(ev.cfg)
	}
}

// applyConfig rebuilds the store with the new settings. History does
// not survive a capacity or mode change; the current present becomes
// the new baseline.
func (a *App) applyConfig(cfg config.Config) {
	cfg.Demo.Initial = a.store.Present()
	a.cfg = cfg
	a.input = []rune(cfg.Demo.Initial)
	a.buildStore()
	a.status = "configuration reloaded"
}

func (a *App) handleKey(ev *tcell.EventKey) {
	a.status = ""
	a.statusErr = false

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		a.quit = true

	case tcell.KeyEnter:
		a.store.Set(string(a.input))
		a.status = "committed"

	case tcell.KeyCtrlS:
		a.store.SetSilent(string(a.input))
		a.status = "committed silently"

	case tcell.KeyCtrlZ:
		if err := a.store.Undo(); err != nil {
			a.status = err.Error()
			a.statusErr = true
			return
		}
		a.input = []rune(a.store.Present())

	case tcell.KeyCtrlY:
		if err := a.store.Redo(); err != nil {
			a.status = err.Error()
			a.statusErr = true
			return
		}
		a.input = []rune(a.store.Present())

	case tcell.KeyCtrlR:
		a.store.Reset()
		a.input = []rune(a.store.Present())
		a.status = "reset to baseline"

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}

	case tcell.KeyRune:
		a.input = append(a.input, ev.Rune())
	}
}

// Input returns the live input buffer. Used by tests.
func (a *App) Input() string {
	return string(a.input)
}

// Status returns the current status message. Used by tests.
func (a *App) Status() string {
	return a.status
}

// Store returns the history store. Used by tests.
func (a *App) Store() *rewind.Store[string] {
	return a.store
}

// Quitting reports whether a quit key was handled. Used by tests.
func (a *App) Quitting() bool {
	return a.quit
}

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Dim(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func (a *App) draw() {
	a.screen.Clear()

	st := a.store.Snapshot()

	title := fmt.Sprintf("rewind demo — capacity %d, %s mode", a.store.Capacity(), a.store.Mode())
	a.drawText(0, 0, styleTitle, title)

	a.drawText(0, 2, styleDefault, "> "+string(a.input))

	a.drawText(0, 4, styleDefault, "present: "+st.Present)
	a.drawText(0, 5, styleDim, fmt.Sprintf("past (%d): %v", len(st.Past), st.Past))
	a.drawText(0, 6, styleDim, fmt.Sprintf("future (%d): %v", len(st.Future), st.Future))

	flags := fmt.Sprintf("undo: %v   redo: %v   last op: %s", st.CanUndo(), st.CanRedo(), a.lastOp)
	a.drawText(0, 8, styleDefault, flags)

	a.drawText(0, 10, styleDim, "[Enter] commit  [C-s] silent  [C-z] undo  [C-y] redo  [C-r] reset  [Esc] quit")

	if a.status != "" {
		style := styleDefault
		if a.statusErr {
			style = styleError
		}
		a.drawText(0, 12, style, a.status)
	}

	a.screen.ShowCursor(2+len(a.input), 2)
	a.screen.Show()
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	width, height := a.screen.Size()
	if y >= height {
		return
	}
	for _, r := range text {
		if x >= width {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
