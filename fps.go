package easel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner when
// Config.ShowFPS is set. The readout refreshes every ~0.5 seconds.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	fresh bool
}

func (f *fpsOverlay) tick(dt float64) {
	f.since += dt
	if f.since >= 0.5 {
		f.since = 0
		f.fresh = false
	}
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
		f.img = ebiten.NewImage(100, 32)
	}
	if !f.fresh {
		f.img.Clear()
		// Semi-transparent background for readability.
		f.img.Fill(color.RGBA{A: 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
		f.fresh = true
	}
	screen.DrawImage(f.img, nil)
}
