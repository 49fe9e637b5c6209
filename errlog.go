package easel

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// diagLogMaxVisible is how many entries the on-screen overlay shows.
const diagLogMaxVisible = 6

type logEntry struct {
	msg   string
	count int
}

// diagLog is the on-page diagnostic log: recovered panics, Logf messages,
// and asset failures land here so students see faults in the window instead
// of a hidden terminal. Consecutive identical messages collapse into a
// repetition counter rather than duplicate lines.
type diagLog struct {
	entries []logEntry
}

func (d *diagLog) append(msg string) {
	if n := len(d.entries); n > 0 && d.entries[n-1].msg == msg {
		d.entries[n-1].count++
		return
	}
	d.entries = append(d.entries, logEntry{msg: msg, count: 1})
}

// draw renders the newest entries as an overlay along the bottom edge.
// Caller holds app.mu.
func (d *diagLog) draw(screen *ebiten.Image) {
	if len(d.entries) == 0 {
		return
	}
	start := len(d.entries) - diagLogMaxVisible
	if start < 0 {
		start = 0
	}
	visible := d.entries[start:]

	h := float64(len(visible))*consoleLineHeight + panelPadding
	b := screen.Bounds()
	top := float64(b.Max.Y) - h
	fillRectOn(screen, float64(b.Min.X), top, float64(b.Dx()), h, ParseColor("#000000a0"))

	y := top + panelPadding/2
	for _, e := range visible {
		msg := e.msg
		if e.count > 1 {
			msg = fmt.Sprintf("%s (x%d)", msg, e.count)
		}
		textOn(screen, msg, float64(b.Min.X)+panelPadding, y, consoleTextSize, ParseColor("salmon"))
		y += consoleLineHeight
	}
}

// Logf appends a formatted message to the on-screen diagnostic log and
// mirrors it to the standard logger.
func (a *App) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("easel: %s", msg)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dlog.append(msg)
}

// LogMessages returns the collapsed diagnostic log as "message" or
// "message (xN)" lines.
func (a *App) LogMessages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.dlog.entries))
	for _, e := range a.dlog.entries {
		if e.count > 1 {
			out = append(out, fmt.Sprintf("%s (x%d)", e.msg, e.count))
		} else {
			out = append(out, e.msg)
		}
	}
	return out
}
