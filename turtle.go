package easel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// motionStep is one queued turtle motion. The app's animation driver advances
// the head step each tick; the goroutine that enqueued it blocks on done
// until the step completes, so sequential turtle calls animate frame by frame
// without any timer bookkeeping in student code.
type motionStep struct {
	turtle       *Turtle
	fromX, fromY float64
	toX, toY     float64
	fromH, toH   float64
	draw         bool
	tw           *gween.Tween
	lastX, lastY float64
	done         chan struct{}
}

// stepMotions advances the head of the motion queue by dt. Caller holds a.mu.
func (a *App) stepMotions(dt float64) {
	if len(a.steps) == 0 {
		return
	}
	st := a.steps[0]
	v, finished := st.tw.Update(float32(dt))
	t := float64(v)

	cx := lerp(st.fromX, st.toX, t)
	cy := lerp(st.fromY, st.toY, t)
	tr := st.turtle
	if st.draw {
		lineOn(a.layers.surface(tr.layer), st.lastX, st.lastY, cx, cy, tr.penWidth, ParseColor(tr.penColor))
	}
	st.lastX = cx
	st.lastY = cy

	tr.x = cx
	tr.y = cy
	tr.heading = normalizeDeg(lerp(st.fromH, st.toH, t))

	if finished {
		copy(a.steps, a.steps[1:])
		a.steps[len(a.steps)-1] = nil
		a.steps = a.steps[:len(a.steps)-1]
		close(st.done)
	}
}

// Turtle is a position, a heading, and a pen, drawing on the layer active at
// construction. Heading 0 points up; positive angles turn clockwise. Every
// motion is an asynchronous animation step: the call returns only after its
// step has fully played out.
type Turtle struct {
	app     *App
	layer   int
	x, y    float64
	heading float64
	pen     bool

	penColor     string
	penWidth     float64
	stepDuration float64 // seconds per motion step; 0 = instantaneous
}

// NewTurtle creates a turtle at (x, y) on the active layer with the pen down,
// heading up, a 2px black pen, and a 0.2s animation step.
func (a *App) NewTurtle(x, y float64) *Turtle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return &Turtle{
		app:          a,
		layer:        a.layers.active,
		x:            x,
		y:            y,
		pen:          true,
		penColor:     "black",
		penWidth:     2,
		stepDuration: 0.2,
	}
}

// Position returns the turtle's current canvas position.
func (t *Turtle) Position() (x, y float64) {
	t.app.mu.Lock()
	defer t.app.mu.Unlock()
	return t.x, t.y
}

// Heading returns the current heading in degrees, normalized to [0, 360).
func (t *Turtle) Heading() float64 {
	t.app.mu.Lock()
	defer t.app.mu.Unlock()
	return t.heading
}

// PenUp lifts the pen; subsequent motion leaves no trail.
func (t *Turtle) PenUp() {
	t.app.mu.Lock()
	defer t.app.mu.Unlock()
	t.pen = false
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() {
	t.app.mu.Lock()
	defer t.app.mu.Unlock()
	t.pen = true
}

// SetPen configures trail color and width.
func (t *Turtle) SetPen(clr string, width float64) {
	t.app.mu.Lock()
	defer t.app.mu.Unlock()
	t.penColor = clr
	t.penWidth = width
}

// SetStepDuration sets the animation time per motion step. Zero makes every
// motion instantaneous (useful in tests and batch runs).
func (t *Turtle) SetStepDuration(seconds float64) {
	t.app.mu.Lock()
	defer t.app.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	t.stepDuration = seconds
}

// Forward moves dist pixels along the current heading, drawing if the pen is
// down. The call blocks until the motion step completes.
func (t *Turtle) Forward(dist float64) {
	t.app.mu.Lock()
	rad := t.heading * math.Pi / 180
	toX := t.x + math.Sin(rad)*dist
	toY := t.y - math.Cos(rad)*dist
	t.enqueueLocked(toX, toY, t.heading)
}

// Backward moves dist pixels against the current heading. It suspends
// exactly like Forward.
func (t *Turtle) Backward(dist float64) {
	t.Forward(-dist)
}

// Right turns clockwise by deg degrees, animated over the step duration.
func (t *Turtle) Right(deg float64) {
	t.app.mu.Lock()
	t.enqueueLocked(t.x, t.y, t.heading+deg)
}

// Left turns counterclockwise by deg degrees.
func (t *Turtle) Left(deg float64) {
	t.Right(-deg)
}

// JumpTo teleports without animation or drawing.
func (t *Turtle) JumpTo(x, y float64) {
	t.app.mu.Lock()
	defer t.app.mu.Unlock()
	t.x = x
	t.y = y
}

// enqueueLocked queues one motion step and waits for it. Called with app.mu
// held; the lock is released before blocking.
func (t *Turtle) enqueueLocked(toX, toY, toH float64) {
	a := t.app
	if t.stepDuration == 0 {
		if t.pen && (toX != t.x || toY != t.y) {
			lineOn(a.layers.surface(t.layer), t.x, t.y, toX, toY, t.penWidth, ParseColor(t.penColor))
		}
		t.x = toX
		t.y = toY
		t.heading = normalizeDeg(toH)
		a.mu.Unlock()
		return
	}
	st := &motionStep{
		turtle: t,
		fromX:  t.x, fromY: t.y,
		toX: toX, toY: toY,
		fromH: t.heading, toH: toH,
		draw:  t.pen && (toX != t.x || toY != t.y),
		tw:    gween.New(0, 1, float32(t.stepDuration), ease.InOutQuad),
		lastX: t.x, lastY: t.y,
		done: make(chan struct{}),
	}
	a.steps = append(a.steps, st)
	a.mu.Unlock()
	<-st.done
}

// normalizeDeg wraps an angle into [0, 360).
func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
