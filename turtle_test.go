package easel

import (
	"math"
	"testing"
	"time"
)

const turtleEps = 1e-6

// runTurtle executes fn on its own goroutine while driving app ticks, the way
// the frame loop does for a real program. It returns once fn completes.
func runTurtle(t *testing.T, a *App, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	deadline := time.Now().Add(5 * time.Second)
	for {
		select {
		case <-done:
			return
		default:
		}
		if time.Now().After(deadline) {
			t.Fatal("turtle program did not finish")
		}
		a.tick(0.02)
		time.Sleep(time.Millisecond)
	}
}

func TestTurtleInstantForward(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(100, 100)
	tr.SetStepDuration(0)

	tr.Forward(40) // heading 0 points up
	x, y := tr.Position()
	if math.Abs(x-100) > turtleEps || math.Abs(y-60) > turtleEps {
		t.Errorf("Position = (%v, %v), want (100, 60)", x, y)
	}
}

func TestTurtleInstantTurnAndMove(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(0, 0)
	tr.SetStepDuration(0)

	tr.Right(90) // now facing east
	if math.Abs(tr.Heading()-90) > turtleEps {
		t.Fatalf("Heading = %v, want 90", tr.Heading())
	}
	tr.Forward(10)
	x, y := tr.Position()
	if math.Abs(x-10) > turtleEps || math.Abs(y) > turtleEps {
		t.Errorf("Position = (%v, %v), want (10, 0)", x, y)
	}

	tr.Left(135)
	if math.Abs(tr.Heading()-315) > turtleEps {
		t.Errorf("Heading = %v, want 315", tr.Heading())
	}
}

func TestTurtleBackward(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(50, 50)
	tr.SetStepDuration(0)

	tr.Backward(30) // heading up, so backward moves down
	x, y := tr.Position()
	if math.Abs(x-50) > turtleEps || math.Abs(y-80) > turtleEps {
		t.Errorf("Position = (%v, %v), want (50, 80)", x, y)
	}
	if math.Abs(tr.Heading()) > turtleEps {
		t.Errorf("Backward must not change the heading, got %v", tr.Heading())
	}
}

func TestTurtleJumpTo(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(0, 0)
	tr.JumpTo(123, 45)
	x, y := tr.Position()
	if x != 123 || y != 45 {
		t.Errorf("Position = (%v, %v), want (123, 45)", x, y)
	}
}

func TestTurtleAnimatedForwardBlocks(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(100, 100)
	tr.SetStepDuration(0.1)

	runTurtle(t, a, func() {
		tr.Forward(50)
	})
	x, y := tr.Position()
	if math.Abs(x-100) > turtleEps || math.Abs(y-50) > turtleEps {
		t.Errorf("Position = (%v, %v), want (100, 50)", x, y)
	}
}

func TestTurtleAnimatedBackwardBlocks(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(100, 100)
	tr.SetStepDuration(0.1)

	runTurtle(t, a, func() {
		tr.Backward(50)
	})
	x, y := tr.Position()
	if math.Abs(x-100) > turtleEps || math.Abs(y-150) > turtleEps {
		t.Errorf("Position = (%v, %v), want (100, 150)", x, y)
	}
}

func TestTurtleSequentialSteps(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(0, 100)
	tr.SetStepDuration(0.05)

	// A right angle drawn as two strokes: each call returns only after its
	// step has played out, so the end state is fully deterministic.
	runTurtle(t, a, func() {
		tr.Right(90)
		tr.Forward(100)
		tr.Left(90)
		tr.Forward(100)
	})

	x, y := tr.Position()
	if math.Abs(x-100) > turtleEps || math.Abs(y) > turtleEps {
		t.Errorf("Position = (%v, %v), want (100, 0)", x, y)
	}
	if math.Abs(tr.Heading()) > turtleEps {
		t.Errorf("Heading = %v, want 0", tr.Heading())
	}
}

func TestTurtlePenState(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(0, 0)
	tr.SetStepDuration(0)

	tr.PenUp()
	tr.Forward(10) // no trail, but motion still applies
	if _, y := tr.Position(); math.Abs(y+10) > turtleEps {
		t.Errorf("pen-up motion should still move, y = %v", y)
	}
	tr.PenDown()
	tr.SetPen("tomato", 4)
	tr.Forward(10)
}

func TestTurtleNegativeStepDurationClamps(t *testing.T) {
	a := NewApp(Config{})
	tr := a.NewTurtle(0, 0)
	tr.SetStepDuration(-1)

	a.mu.Lock()
	d := tr.stepDuration
	a.mu.Unlock()
	if d != 0 {
		t.Errorf("stepDuration = %v, want 0", d)
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := normalizeDeg(tt.in); math.Abs(got-tt.want) > turtleEps {
			t.Errorf("normalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
