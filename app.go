package easel

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config configures a new App. The zero value is usable; empty fields fall
// back to the defaults below.
type Config struct {
	Title  string // window title (default "easel")
	Width  int    // canvas width in pixels (default 960)
	Height int    // canvas height in pixels (default 640)

	// Resizable lets the user resize the window. A resize recreates every
	// layer surface at the new size and resets the active layer.
	Resizable bool

	// Query is a percent-encoded query string carrying the replay contract:
	// "i" pre-seeds console input (newline-separated), "o" is the expected
	// output transcript for diff display, "test" enables the authoring panel
	// that shows the captured session as a shareable query string.
	Query string

	// ShowFPS draws a small FPS/TPS overlay in the top-left corner.
	ShowFPS bool

	// ScreenshotDir is where Screenshot writes PNG files (default "screenshots").
	ScreenshotDir string
}

// displayMode selects what fills the window: the layered canvas, or the
// widget/console panels. The two are mutually exclusive; attaching any widget
// or touching the console hides the canvas.
type displayMode uint8

const (
	modeCanvas displayMode = iota
	modePanel
)

// ticker is implemented by objects that need a per-tick check (grids polling
// for activation, panels driving widget interaction).
type ticker interface {
	tick(a *App, dt float64)
}

// App is the application context. It owns all the state the original design
// kept in globals — layer registry, input trackers, console, panels, frame
// clock — and is passed explicitly to every component constructor. Methods
// are safe to call from the program goroutine while the frame loop runs.
type App struct {
	mu  sync.Mutex
	cfg Config

	layers *layerSet
	keys   *keyboard
	ptr    pointer

	mode    displayMode
	console *console
	ui      *Panel
	io      *Panel
	dlog    diagLog

	onFrame func(dt float64)
	delta   float64
	lastNow time.Time
	ticked  bool

	tickers []ticker
	steps   []*motionStep // turtle animation driver queue, head advances per tick
	pending []func()      // widget handlers fired this tick, run after unlock

	inject   []syntheticEvent
	keyBuf   []ebiten.Key
	touchBuf []ebiten.TouchID
	charBuf  []rune
	focused  bool

	shotQueue []string
	fps       fpsOverlay
}

// NewApp creates an App with the given configuration. The window does not
// open until Run is called, but every API (layers, drawing, console seeding)
// is usable immediately.
func NewApp(cfg Config) *App {
	if cfg.Title == "" {
		cfg.Title = "easel"
	}
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 640
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	a := &App{
		cfg:     cfg,
		layers:  newLayerSet(cfg.Width, cfg.Height),
		keys:    newKeyboard(),
		focused: true,
	}
	a.console = newConsole(a, cfg.Query)
	a.ui = newPanel(a, "ui")
	a.io = newPanel(a, "io")
	return a
}

// Run opens the window and starts the frame loop. The program function runs
// on its own goroutine so it can use the blocking helpers (ReadLine, Sleep,
// turtle motion) in straight-line code. A panic in the program is recovered
// and appended to the diagnostic log rather than crashing the window.
// Run blocks until the window closes.
func (a *App) Run(program func(*App)) error {
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	if a.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if program != nil {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					a.Logf("program panic: %v", r)
				}
			}()
			program(a)
		}()
	}
	if err := ebiten.RunGame(&appGame{app: a}); err != nil {
		return fmt.Errorf("easel: run: %w", err)
	}
	return nil
}

// OnFrame installs the per-frame callback, invoked once per display refresh
// with the elapsed time in seconds. Replacing the callback takes effect on
// the next refresh. There is no pause: install a no-op to stop reacting.
func (a *App) OnFrame(fn func(dt float64)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onFrame = fn
}

// Delta returns the elapsed time of the most recent frame in seconds.
func (a *App) Delta() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.delta
}

// Size returns the current canvas dimensions in pixels.
func (a *App) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.layers.width, a.layers.height
}

// SetLayer makes layer id the target of all drawing primitives, creating its
// surface on first use. A newly created layer stacks above all earlier ones.
func (a *App) SetLayer(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.layers.setActive(id)
}

// Layer returns the id of the active layer.
func (a *App) Layer() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.layers.active
}

// ResetCanvas destroys every layer surface and returns to a single blank base
// layer, also restoring canvas mode if panels had taken over the window.
func (a *App) ResetCanvas() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.layers.reset()
	a.mode = modeCanvas
}

// Sleep suspends the calling goroutine for the given duration. Pending sleeps
// cannot be aborted; they simply run out.
func (a *App) Sleep(d time.Duration) {
	time.Sleep(d)
}

// addTicker registers an object for per-tick servicing. Caller holds a.mu or
// is the constructor of an object not yet visible to the loop.
func (a *App) addTicker(t ticker) {
	a.tickers = append(a.tickers, t)
}

// usePanels switches the window to panel mode. Canvas compositing stops until
// ResetCanvas. Caller holds a.mu.
func (a *App) usePanels() {
	a.mode = modePanel
}

// tick advances one frame of toolkit state. It is driven by the Ebiten loop
// and called directly by tests. Input must already have been fed (polled or
// injected) for this tick.
func (a *App) tick(dt float64) {
	a.mu.Lock()
	a.delta = dt

	a.stepMotions(dt)
	for _, t := range a.tickers {
		t.tick(a, dt)
	}
	a.console.tick(a)
	a.ui.tick(a, dt)
	a.io.tick(a, dt)
	a.fps.tick(dt)

	// Capture the callback before unlocking: a replacement installed from
	// inside the callback is observed on the next tick, never mid-tick.
	// Widget handlers collected during the locked walk run after the unlock
	// so they are free to call any App method.
	fn := a.onFrame
	fired := a.pending
	a.pending = nil
	a.mu.Unlock()

	for _, f := range fired {
		a.runProtected(f)
	}
	if fn != nil {
		a.runProtected(func() { fn(dt) })
	}
}

// runProtected invokes a user callback, converting a panic into a diagnostic
// log entry so a fault in student code cannot kill the frame loop.
func (a *App) runProtected(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.Logf("callback panic: %v", r)
		}
	}()
	fn()
}

// feedChars delivers typed characters to whatever is reading them (console
// line entry, focused text field).
func (a *App) feedChars(chars []rune) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range chars {
		if a.console.feedChar(r) {
			continue
		}
		if a.ui.feedChar(r) {
			continue
		}
		a.io.feedChar(r)
	}
}

// --- ebiten.Game adapter ---

type appGame struct {
	app *App
}

func (g *appGame) Update() error {
	a := g.app

	// Focus loss hard-resets input: release events for held keys will never
	// arrive once the window blurs.
	focused := ebiten.IsFocused()
	a.mu.Lock()
	if a.focused && !focused {
		a.keys.reset()
		a.ptr.reset()
	}
	a.focused = focused

	if !a.drainInjected() {
		a.keyBuf = a.keys.poll(a.keyBuf)
		a.touchBuf = a.ptr.poll(a.touchBuf)
		a.charBuf = ebiten.AppendInputChars(a.charBuf[:0])
	}
	chars := a.charBuf
	a.mu.Unlock()

	if len(chars) > 0 {
		a.feedChars(chars)
		a.mu.Lock()
		a.charBuf = a.charBuf[:0]
		a.mu.Unlock()
	}

	now := time.Now()
	var dt float64
	if a.ticked {
		dt = now.Sub(a.lastNow).Seconds()
		if dt > 0.25 {
			dt = 0.25 // clamp hitches (debugger, window drag)
		}
	}
	a.lastNow = now
	a.ticked = true

	a.tick(dt)
	return nil
}

func (g *appGame) Draw(screen *ebiten.Image) {
	a := g.app
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.mode {
	case modeCanvas:
		a.layers.composite(screen)
	case modePanel:
		a.drawPanels(screen)
	}
	a.dlog.draw(screen)
	if a.cfg.ShowFPS {
		a.fps.draw(screen)
	}
	a.flushScreenshots(screen)
}

func (g *appGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a := g.app
	if !a.cfg.Resizable {
		return a.cfg.Width, a.cfg.Height
	}
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	a.mu.Lock()
	a.layers.resize(outsideWidth, outsideHeight)
	a.mu.Unlock()
	return outsideWidth, outsideHeight
}

// drawPanels renders panel mode: widgets of the UI panel stacked from the
// top, then the console (with any IO-panel widgets below its text).
// Caller holds a.mu.
func (a *App) drawPanels(screen *ebiten.Image) {
	w := float64(a.layers.width)
	y := panelPadding
	y = a.ui.draw(screen, panelPadding, y, w-2*panelPadding)
	y = a.console.draw(screen, panelPadding, y, w-2*panelPadding)
	a.io.draw(screen, panelPadding, y, w-2*panelPadding)
}
