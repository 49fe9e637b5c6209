package easel

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Hitbox is a rectangular click target with one-shot semantics: Clicked
// returns true at most once per unbroken press and re-arms only after all
// buttons and touches have been released.
type Hitbox struct {
	app                 *App
	X, Y, Width, Height float64
}

// NewHitbox creates a hitbox covering (x, y, w, h) in canvas coordinates.
func (a *App) NewHitbox(x, y, w, h float64) *Hitbox {
	return &Hitbox{app: a, X: x, Y: y, Width: w, Height: h}
}

// Rect returns the hitbox rectangle.
func (h *Hitbox) Rect() Rect {
	return Rect{X: h.X, Y: h.Y, Width: h.Width, Height: h.Height}
}

// Contains reports whether the canvas point (x, y) lies inside the hitbox.
func (h *Hitbox) Contains(x, y float64) bool {
	return h.Rect().Contains(x, y)
}

// Clicked consumes the one-shot pointer query when the press is inside the
// hitbox. A press outside is left for other consumers.
func (h *Hitbox) Clicked() bool {
	h.app.mu.Lock()
	defer h.app.mu.Unlock()
	return h.clickedLocked()
}

func (h *Hitbox) clickedLocked() bool {
	if !h.app.ptr.peekActivated() {
		return false
	}
	if !h.Contains(h.app.ptr.x, h.app.ptr.y) {
		return false
	}
	return h.app.ptr.takeActivated()
}

// buttonFlashDuration is how long the press feedback highlight fades out.
const buttonFlashDuration = 0.25

// Button is a Hitbox with a label, drawn on the layer active at construction.
// Clicking it flashes a brief highlight that fades via an eased tween.
type Button struct {
	Hitbox
	layer     int
	label     string
	fill      string
	textColor string
	textSize  float64

	flash  *gween.Tween
	flashV float64
}

// NewButton creates a labeled button at (x, y, w, h) on the active layer and
// draws it immediately.
func (a *App) NewButton(label string, x, y, w, h float64) *Button {
	a.mu.Lock()
	defer a.mu.Unlock()
	b := &Button{
		Hitbox:    Hitbox{app: a, X: x, Y: y, Width: w, Height: h},
		layer:     a.layers.active,
		label:     label,
		fill:      "steelblue",
		textColor: "white",
		textSize:  16,
	}
	a.addTicker(b)
	b.redrawLocked()
	return b
}

// Label returns the button caption.
func (b *Button) Label() string {
	b.app.mu.Lock()
	defer b.app.mu.Unlock()
	return b.label
}

// SetLabel changes the caption and repaints.
func (b *Button) SetLabel(label string) {
	b.app.mu.Lock()
	defer b.app.mu.Unlock()
	b.label = label
	b.redrawLocked()
}

// SetColors changes fill and caption colors, then repaints.
func (b *Button) SetColors(fill, textColor string) {
	b.app.mu.Lock()
	defer b.app.mu.Unlock()
	b.fill = fill
	b.textColor = textColor
	b.redrawLocked()
}

// Clicked reports a one-shot click and starts the press-feedback flash.
func (b *Button) Clicked() bool {
	b.app.mu.Lock()
	defer b.app.mu.Unlock()
	if !b.clickedLocked() {
		return false
	}
	b.flash = gween.New(1, 0, buttonFlashDuration, ease.OutQuad)
	return true
}

// tick fades the press-feedback flash, repainting while it is live.
func (b *Button) tick(_ *App, dt float64) {
	if b.flash == nil {
		return
	}
	v, done := b.flash.Update(float32(dt))
	b.flashV = float64(v)
	if done {
		b.flash = nil
		b.flashV = 0
	}
	b.redrawLocked()
}

// redrawLocked repaints the button onto its layer. Caller holds app.mu.
func (b *Button) redrawLocked() {
	dst := b.app.layers.surface(b.layer)
	r := b.Rect()
	sub := subSurface(dst, r)
	sub.Clear()

	fillRectOn(sub, r.X, r.Y, r.Width, r.Height, ParseColor(b.fill))
	if b.flashV > 0 {
		highlight := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(b.flashV * 160)}
		fillRectOn(sub, r.X, r.Y, r.Width, r.Height, highlight)
	}
	strokeRectOn(sub, r.X+0.5, r.Y+0.5, r.Width-1, r.Height-1, 1, ParseColor("black"))
	if b.label != "" {
		tw, th := measureText(b.label, b.textSize)
		textOn(sub, b.label,
			r.X+(r.Width-tw)/2, r.Y+(r.Height-th)/2,
			b.textSize, ParseColor(b.textColor))
	}
}
