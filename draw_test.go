package easel

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTextSize(t *testing.T) {
	a := NewApp(Config{})

	w, h := a.TextSize("hello", 16)
	if w <= 0 || h <= 0 {
		t.Errorf("TextSize = (%v, %v), want positive dimensions", w, h)
	}

	w2, _ := a.TextSize("hello hello", 16)
	if w2 <= w {
		t.Errorf("longer string measured %v, shorter %v", w2, w)
	}

	_, h1 := a.TextSize("a", 12)
	_, h2 := a.TextSize("a\nb", 12)
	if h2 <= h1 {
		t.Errorf("two lines measured %v, one line %v", h2, h1)
	}
}

func TestSubSurface(t *testing.T) {
	img := ebiten.NewImage(100, 100)
	sub := subSurface(img, Rect{X: 10, Y: 20, Width: 30, Height: 40})

	b := sub.Bounds()
	if b.Min.X != 10 || b.Min.Y != 20 || b.Dx() != 30 || b.Dy() != 40 {
		t.Errorf("sub bounds = %v, want (10,20)-(40,60)", b)
	}
}

func TestPrimitivesTargetActiveLayer(t *testing.T) {
	a := NewApp(Config{})

	// Each primitive must create and paint the active layer without panicking.
	a.SetLayer(1)
	a.Clear("navy")
	a.Line(0, 0, 50, 50, 2, "white")
	a.FillRect(10, 10, 20, 20, "red")
	a.StrokeRect(10, 10, 20, 20, 1, "yellow")
	a.FillCircle(50, 50, 10, "green")
	a.StrokeCircle(50, 50, 12, 1, "lime")
	a.FillTriangle(0, 0, 10, 0, 5, 10, "orange")
	a.Text("hi", 5, 5, 14, "white")
	a.DrawImage(ebiten.NewImage(4, 4), 0, 0, 8, 8)
	a.Clear("")

	if _, ok := a.layers.surfaces[1]; !ok {
		t.Error("primitives should have created layer 1")
	}
	if _, ok := a.layers.surfaces[BaseLayer]; ok {
		t.Error("the base layer should not exist until referenced")
	}
}

func TestDrawOn(t *testing.T) {
	a := NewApp(Config{})
	var got *ebiten.Image
	a.DrawOn(DrawFunc(func(dst *ebiten.Image) { got = dst }))

	a.mu.Lock()
	want := a.layers.surfaces[BaseLayer]
	a.mu.Unlock()
	if got != want {
		t.Error("DrawOn should pass the active layer surface")
	}
}
