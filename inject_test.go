package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInjectedEventsConsumeOnePerTick(t *testing.T) {
	a := NewApp(Config{})
	a.InjectKeyPress(ebiten.KeyA)
	a.InjectKeyPress(ebiten.KeyB)

	step(a, 0.016)
	if a.KeyState(ebiten.KeyA) != Pressed {
		t.Error("first event should apply on the first tick")
	}
	if a.KeyState(ebiten.KeyB) != Unpressed {
		t.Error("second event must wait for the next tick")
	}

	step(a, 0.016)
	if a.KeyState(ebiten.KeyB) != Pressed {
		t.Error("second event should apply on the second tick")
	}
}

func TestInjectKeyTap(t *testing.T) {
	a := NewApp(Config{})
	a.InjectKeyTap(ebiten.KeySpace)

	step(a, 0.016)
	if a.KeyState(ebiten.KeySpace) != Pressed || !a.KeyHeld(ebiten.KeySpace) {
		t.Error("tap should press on the first tick")
	}
	step(a, 0.016)
	if a.KeyState(ebiten.KeySpace) != Consumed {
		t.Error("tap should release on the second tick")
	}
	if a.KeyHeld(ebiten.KeySpace) {
		t.Error("tapped key should not stay held")
	}
}

func TestInjectClick(t *testing.T) {
	a := NewApp(Config{})
	a.InjectClick(100, 200)

	step(a, 0.016)
	if !a.PointerDown() {
		t.Error("click should press on the first tick")
	}
	if x, y := a.PointerPosition(); x != 100 || y != 200 {
		t.Errorf("PointerPosition = (%v, %v), want (100, 200)", x, y)
	}
	step(a, 0.016)
	if a.PointerDown() {
		t.Error("click should release on the second tick")
	}
}

func TestInjectTouch(t *testing.T) {
	a := NewApp(Config{})
	a.InjectTouch(5, 6)
	step(a, 0.016)
	if !a.PointerDown() {
		t.Error("touch should count as pointer down")
	}
	a.InjectTouchEnd(5, 6)
	step(a, 0.016)
	if a.PointerDown() {
		t.Error("touch end should release the pointer")
	}
}

func TestInjectTextFeedsConsoleRead(t *testing.T) {
	a := NewApp(Config{})
	got := make(chan string, 1)
	go func() { got <- a.ReadLine("> ") }()

	waitUntil(t, a, func() bool {
		a.mu.Lock()
		defer a.mu.Unlock()
		return a.console.reading
	})

	a.InjectText("hi")
	a.InjectKeyTap(ebiten.KeyEnter)
	waitUntil(t, a, func() bool {
		select {
		case line := <-got:
			if line != "hi" {
				t.Errorf("ReadLine = %q, want %q", line, "hi")
			}
			return true
		default:
			return false
		}
	})
}
