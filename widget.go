package easel

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// Panel layout metrics.
const (
	panelPadding = 12.0
	widgetHeight = 28.0
	widgetGap    = 8.0
)

// WidgetKind selects what the element builder creates.
type WidgetKind uint8

const (
	WidgetButton WidgetKind = iota
	WidgetCheckbox
	WidgetSlider
	WidgetTextField
	WidgetLabel
)

// labelable reports whether the kind is an input-like control that the
// builder wraps with its label text.
func (k WidgetKind) labelable() bool {
	switch k {
	case WidgetCheckbox, WidgetSlider, WidgetTextField:
		return true
	}
	return false
}

// String returns the kind name for debug output.
func (k WidgetKind) String() string {
	switch k {
	case WidgetButton:
		return "button"
	case WidgetCheckbox:
		return "checkbox"
	case WidgetSlider:
		return "slider"
	case WidgetTextField:
		return "textfield"
	case WidgetLabel:
		return "label"
	default:
		return "widget(?)"
	}
}

// Widget is one element of a panel. Which fields matter depends on the kind:
// Text for buttons, labels, and text fields; Checked for checkboxes;
// Value/Min/Max for sliders.
type Widget struct {
	panel   *Panel
	kind    WidgetKind
	label   string
	labeled bool

	Text     string
	Checked  bool
	Value    float64
	Min, Max float64

	// OnClick fires for buttons and checkboxes; OnChange for sliders and
	// text fields. Both run on the frame goroutine after the tick's state
	// walk, so any App method may be called from them. Blocking helpers
	// (ReadLine, animated turtle motion) would stall the frame loop.
	OnClick  func()
	OnChange func(*Widget)

	rect    Rect // last laid-out position, for hit testing
	focused bool
	pressed bool
}

// Kind returns the widget kind.
func (w *Widget) Kind() WidgetKind { return w.kind }

// Label returns the builder-supplied label.
func (w *Widget) Label() string { return w.label }

// Labeled reports whether the widget was wrapped with its label (only
// input-like kinds are).
func (w *Widget) Labeled() bool { return w.labeled }

// Panel is a vertical stack of widgets. The App owns two: the UI panel
// (default target of the element builder) and the IO panel, which shares the
// window column with the console.
type Panel struct {
	app     *App
	name    string
	widgets []*Widget
}

func newPanel(a *App, name string) *Panel {
	return &Panel{app: a, name: name}
}

// UIPanel returns the general widget panel.
func (a *App) UIPanel() *Panel { return a.ui }

// IOPanel returns the panel sharing the console column.
func (a *App) IOPanel() *Panel { return a.io }

// NewElement creates a widget of the requested kind under the UI panel.
// Attaching any element hides the canvas: the window shows panels until
// ResetCanvas.
func (a *App) NewElement(kind WidgetKind, label string) *Widget {
	return a.ui.NewElement(kind, label)
}

// NewElement appends a widget of the requested kind to this panel.
// Input-like kinds (checkbox, slider, text field) are wrapped with the label;
// other kinds use it as their caption.
func (p *Panel) NewElement(kind WidgetKind, label string) *Widget {
	return p.InsertElement(kind, label, nil)
}

// InsertElement creates a widget and inserts it before the given sibling
// (nil appends). Panics if before belongs to another panel.
func (p *Panel) InsertElement(kind WidgetKind, label string, before *Widget) *Widget {
	p.app.mu.Lock()
	defer p.app.mu.Unlock()

	w := &Widget{
		panel:   p,
		kind:    kind,
		label:   label,
		labeled: kind.labelable(),
		Max:     1,
	}
	if !w.labeled {
		w.Text = label
	}

	idx := len(p.widgets)
	if before != nil {
		if before.panel != p {
			panic("easel: sibling widget belongs to a different panel")
		}
		for i, sib := range p.widgets {
			if sib == before {
				idx = i
				break
			}
		}
	}
	p.widgets = append(p.widgets, nil)
	copy(p.widgets[idx+1:], p.widgets[idx:])
	p.widgets[idx] = w

	// Attaching under a panel hides the canvas.
	p.app.usePanels()
	return w
}

// Remove detaches w from its panel.
func (p *Panel) Remove(w *Widget) {
	p.app.mu.Lock()
	defer p.app.mu.Unlock()
	for i, sib := range p.widgets {
		if sib == w {
			copy(p.widgets[i:], p.widgets[i+1:])
			p.widgets[len(p.widgets)-1] = nil
			p.widgets = p.widgets[:len(p.widgets)-1]
			return
		}
	}
}

// Widgets returns the panel's widgets in display order. The returned slice
// MUST NOT be mutated.
func (p *Panel) Widgets() []*Widget {
	p.app.mu.Lock()
	defer p.app.mu.Unlock()
	return p.widgets
}

// feedChar delivers a typed character to the focused text field.
// Caller holds app.mu.
func (p *Panel) feedChar(r rune) bool {
	for _, w := range p.widgets {
		if w.kind == WidgetTextField && w.focused {
			if unicode.IsPrint(r) {
				w.Text += string(r)
				w.fireChange()
			}
			return true
		}
	}
	return false
}

// fireClick and fireChange queue a widget handler on the app's pending list.
// Handlers run once the tick releases the app lock, so they may call back
// into any App method. Caller holds app.mu.
func (w *Widget) fireClick() {
	if w.OnClick != nil {
		w.panel.app.pending = append(w.panel.app.pending, w.OnClick)
	}
}

func (w *Widget) fireChange() {
	if w.OnChange != nil {
		fn, wd := w.OnChange, w
		w.panel.app.pending = append(w.panel.app.pending, func() { fn(wd) })
	}
}

// tick drives widget interaction from the pointer and keyboard state.
// Caller holds app.mu.
func (p *Panel) tick(a *App, _ float64) {
	px, py := a.ptr.x, a.ptr.y

	for _, w := range p.widgets {
		switch w.kind {
		case WidgetButton:
			if a.ptr.peekActivated() && w.rect.Contains(px, py) {
				a.ptr.takeActivated()
				w.pressed = true
				w.fireClick()
			}
			if !a.ptr.anyDown() {
				w.pressed = false
			}
		case WidgetCheckbox:
			if a.ptr.peekActivated() && w.rect.Contains(px, py) {
				a.ptr.takeActivated()
				w.Checked = !w.Checked
				w.fireClick()
			}
		case WidgetSlider:
			if a.ptr.anyDown() && w.rect.Contains(px, py) {
				t := (px - w.rect.X) / w.rect.Width
				t = clamp(t, 0, 1)
				val := w.Min + t*(w.Max-w.Min)
				if val != w.Value {
					w.Value = val
					w.fireChange()
				}
			}
		case WidgetTextField:
			if a.ptr.peekActivated() && w.rect.Contains(px, py) {
				a.ptr.takeActivated()
				p.focus(w)
			}
			if w.focused && a.keys.take(ebiten.KeyBackspace) && len(w.Text) > 0 {
				runes := []rune(w.Text)
				w.Text = string(runes[:len(runes)-1])
				w.fireChange()
			}
		}
	}
}

func (p *Panel) focus(target *Widget) {
	for _, w := range p.widgets {
		w.focused = w == target
	}
}

// draw renders the panel as a vertical stack into the column (x, y, w),
// returning the next free y. Caller holds app.mu.
func (p *Panel) draw(screen *ebiten.Image, x, y, w float64) float64 {
	for _, wd := range p.widgets {
		cx := x
		if wd.labeled && wd.label != "" {
			lw, lh := measureText(wd.label, consoleTextSize)
			textOn(screen, wd.label, x, y+(widgetHeight-lh)/2, consoleTextSize, ParseColor("gainsboro"))
			cx += lw + widgetGap
		}
		cw := w - (cx - x)
		wd.rect = Rect{X: cx, Y: y, Width: cw, Height: widgetHeight}
		wd.drawControl(screen)
		y += widgetHeight + widgetGap
	}
	return y
}

// drawControl paints one widget at its laid-out rect.
func (w *Widget) drawControl(screen *ebiten.Image) {
	r := w.rect
	switch w.kind {
	case WidgetButton:
		fill := "steelblue"
		if w.pressed {
			fill = "lightsteelblue"
		}
		fillRectOn(screen, r.X, r.Y, r.Width, r.Height, ParseColor(fill))
		tw, th := measureText(w.Text, consoleTextSize)
		textOn(screen, w.Text, r.X+(r.Width-tw)/2, r.Y+(r.Height-th)/2, consoleTextSize, ParseColor("white"))
	case WidgetCheckbox:
		// Square box sized to the row, check mark when set.
		box := r.Height
		strokeRectOn(screen, r.X, r.Y, box, box, 1.5, ParseColor("gainsboro"))
		if w.Checked {
			lineOn(screen, r.X+5, r.Y+box/2, r.X+box/2, r.Y+box-6, 2, ParseColor("palegreen"))
			lineOn(screen, r.X+box/2, r.Y+box-6, r.X+box-5, r.Y+5, 2, ParseColor("palegreen"))
		}
		w.rect.Width = box
	case WidgetSlider:
		mid := r.Y + r.Height/2
		lineOn(screen, r.X, mid, r.X+r.Width, mid, 3, ParseColor("dimgray"))
		t := 0.0
		if w.Max > w.Min {
			t = clamp((w.Value-w.Min)/(w.Max-w.Min), 0, 1)
		}
		fillCircleOn(screen, r.X+t*r.Width, mid, 8, ParseColor("steelblue"))
	case WidgetTextField:
		fillRectOn(screen, r.X, r.Y, r.Width, r.Height, ParseColor("#202020"))
		border := "dimgray"
		if w.focused {
			border = "steelblue"
		}
		strokeRectOn(screen, r.X, r.Y, r.Width, r.Height, 1.5, ParseColor(border))
		caret := ""
		if w.focused {
			caret = "_"
		}
		textOn(screen, w.Text+caret, r.X+6, r.Y+(r.Height-consoleTextSize*1.2)/2, consoleTextSize, ParseColor("white"))
	case WidgetLabel:
		_, th := measureText(w.Text, consoleTextSize)
		textOn(screen, w.Text, r.X, r.Y+(r.Height-th)/2, consoleTextSize, ParseColor("gainsboro"))
	}
}
