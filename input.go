package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxTouches bounds the number of simultaneously tracked touches.
const maxTouches = 10

// PressState is the tri-state lifecycle of a tracked key or button.
//
// A key starts Unpressed. A physical press moves it to Pressed. The
// application may consume the press (TakeKey), moving it to Consumed, and
// release also moves it to Consumed — so "was this key ever pressed" stays
// answerable after release, and a consumed press never triggers twice. The
// next physical press moves Consumed back to Pressed.
type PressState uint8

const (
	Unpressed PressState = iota // never pressed (or explicitly cleared)
	Pressed                     // pressed and not yet consumed
	Consumed                    // press was consumed or the key was released
)

// String returns the state name for debug output.
func (s PressState) String() string {
	switch s {
	case Unpressed:
		return "Unpressed"
	case Pressed:
		return "Pressed"
	case Consumed:
		return "Consumed"
	default:
		return "PressState(?)"
	}
}

// keyboard tracks per-key press state. It is fed once per tick from Ebiten's
// edge-triggered key deltas (or from injected events in tests) and queried by
// the student program.
type keyboard struct {
	states map[ebiten.Key]PressState
	held   map[ebiten.Key]bool
}

func newKeyboard() *keyboard {
	return &keyboard{
		states: make(map[ebiten.Key]PressState),
		held:   make(map[ebiten.Key]bool),
	}
}

// handleKeyDown records a physical press. Callers must deliver one event per
// physical press (no auto-repeat).
func (k *keyboard) handleKeyDown(key ebiten.Key) {
	k.held[key] = true
	k.states[key] = Pressed
}

// handleKeyUp records a release. Release always yields Consumed rather than
// Unpressed, so "pressed then released" stays distinguishable from "never
// pressed". Releasing either shift key clears both shifts, and releasing
// either Enter variant clears both, smoothing over keyboard layout quirks.
func (k *keyboard) handleKeyUp(key ebiten.Key) {
	delete(k.held, key)
	k.states[key] = Consumed
	switch key {
	case ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
		k.states[ebiten.KeyShiftLeft] = Consumed
		k.states[ebiten.KeyShiftRight] = Consumed
		delete(k.held, ebiten.KeyShiftLeft)
		delete(k.held, ebiten.KeyShiftRight)
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		k.states[ebiten.KeyEnter] = Consumed
		k.states[ebiten.KeyNumpadEnter] = Consumed
		delete(k.held, ebiten.KeyEnter)
		delete(k.held, ebiten.KeyNumpadEnter)
	}
}

// state returns the tri-state value for key.
func (k *keyboard) state(key ebiten.Key) PressState {
	return k.states[key]
}

// take consumes a pending press: true exactly once per physical press.
func (k *keyboard) take(key ebiten.Key) bool {
	if k.states[key] == Pressed {
		k.states[key] = Consumed
		return true
	}
	return false
}

// clearKey forces a key back to Unpressed, discarding its press history.
func (k *keyboard) clearKey(key ebiten.Key) {
	delete(k.states, key)
	delete(k.held, key)
}

// reset hard-resets every key to Unpressed. Used when the window loses focus,
// since release events for held keys will never arrive.
func (k *keyboard) reset() {
	clear(k.states)
	clear(k.held)
}

// poll feeds this tick's key edges from Ebiten. justBuf is a reusable buffer;
// the (possibly grown) buffer is returned for reuse.
func (k *keyboard) poll(justBuf []ebiten.Key) []ebiten.Key {
	justBuf = inpututil.AppendJustPressedKeys(justBuf[:0])
	for _, key := range justBuf {
		k.handleKeyDown(key)
	}
	justBuf = inpututil.AppendJustReleasedKeys(justBuf[:0])
	for _, key := range justBuf {
		k.handleKeyUp(key)
	}
	return justBuf
}

// pointer tracks the merged mouse/touch state with a one-shot "activated"
// query: after any button or touch goes down, the first consumer of the press
// gets true and everyone else false until every button and touch has been
// released, which re-arms the query. Grid cell activation and Hitbox.Clicked
// are both built on this.
type pointer struct {
	x, y     float64
	buttons  int // pressed mouse buttons
	touches  int // active touches
	consumed bool
}

// anyDown reports whether any mouse button or touch is active.
func (p *pointer) anyDown() bool {
	return p.buttons > 0 || p.touches > 0
}

// takeActivated consumes the current press. True at most once per unbroken
// press-release cycle.
func (p *pointer) takeActivated() bool {
	if p.anyDown() && !p.consumed {
		p.consumed = true
		return true
	}
	return false
}

// peekActivated reports whether takeActivated would return true, without
// consuming. Consumers that hit-test the position check this first so a miss
// doesn't eat the press.
func (p *pointer) peekActivated() bool {
	return p.anyDown() && !p.consumed
}

// set applies an absolute pointer state (position plus down counts) and
// re-arms the one-shot query once everything is released.
func (p *pointer) set(x, y float64, buttons, touches int) {
	p.x = x
	p.y = y
	p.buttons = buttons
	p.touches = touches
	if !p.anyDown() {
		p.consumed = false
	}
}

// reset clears all pointer state, as on focus loss.
func (p *pointer) reset() {
	p.buttons = 0
	p.touches = 0
	p.consumed = false
}

// poll reads the live mouse and touch state from Ebiten. touchBuf is a
// reusable buffer returned for reuse.
func (p *pointer) poll(touchBuf []ebiten.TouchID) []ebiten.TouchID {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	buttons := 0
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons++
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons++
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons++
	}

	touchBuf = ebiten.AppendTouchIDs(touchBuf[:0])
	touches := len(touchBuf)
	if touches > maxTouches {
		touches = maxTouches
	}
	// A touch position wins over the (possibly stale) cursor position.
	if touches > 0 {
		tx, ty := ebiten.TouchPosition(touchBuf[0])
		x, y = float64(tx), float64(ty)
	}

	p.set(x, y, buttons, touches)
	return touchBuf
}

// --- App-facing queries ---

// KeyState returns the tri-state press value for key without consuming it.
func (a *App) KeyState(key ebiten.Key) PressState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.keys.state(key)
}

// KeyHeld reports whether key is physically held down right now.
func (a *App) KeyHeld(key ebiten.Key) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.keys.held[key]
}

// TakeKey consumes a pending press of key. It returns true exactly once per
// physical press regardless of how often it is called while the key is held.
func (a *App) TakeKey(key ebiten.Key) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.keys.take(key)
}

// ClearKey forces key back to the never-pressed state.
func (a *App) ClearKey(key ebiten.Key) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys.clearKey(key)
}

// ResetInput hard-resets all keyboard and pointer state, as happens
// automatically when the window loses focus.
func (a *App) ResetInput() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys.reset()
	a.ptr.reset()
}

// PointerPosition returns the current pointer position in canvas coordinates.
// With active touches, the first touch wins over the mouse cursor.
func (a *App) PointerPosition() (x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ptr.x, a.ptr.y
}

// PointerDown reports whether any mouse button or touch is currently active.
func (a *App) PointerDown() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ptr.anyDown()
}

// PointerActivated consumes the one-shot press query: true at most once per
// continuous press, re-arming only after all buttons and touches release.
func (a *App) PointerActivated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ptr.takeActivated()
}
