package easel

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultFrameRate is the frame advance rate used when none is configured.
const defaultFrameRate = 10.0

// Sprite is a Hitbox that displays one frame of a shared sheet image. Frames
// are the precomputed grid of frameW x frameH sub-rectangles of the sheet,
// numbered row-major. Advance drives the animation from frame-relative time;
// with looping disabled the sprite freezes on the last frame and reports
// Finished.
type Sprite struct {
	Hitbox
	layer  int
	sheet  *ebiten.Image
	frames []image.Rectangle

	frame     int
	frameRate float64
	loop      bool
	remaining float64
	finished  bool
}

// NewSprite creates a sprite at (x, y, w, h) on the active layer, showing
// frame 0 of sheet cut into frameW x frameH tiles. Looping is on by default.
func (a *App) NewSprite(sheet *ebiten.Image, frameW, frameH int, x, y, w, h float64) *Sprite {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := &Sprite{
		Hitbox:    Hitbox{app: a, X: x, Y: y, Width: w, Height: h},
		layer:     a.layers.active,
		sheet:     sheet,
		frames:    cutFrames(sheet, frameW, frameH),
		frameRate: defaultFrameRate,
		loop:      true,
	}
	s.remaining = 1 / s.frameRate
	s.redrawLocked()
	return s
}

// cutFrames precomputes the row-major sub-rectangle grid of sheet.
func cutFrames(sheet *ebiten.Image, frameW, frameH int) []image.Rectangle {
	b := sheet.Bounds()
	if frameW <= 0 || frameH <= 0 {
		return nil
	}
	cols := b.Dx() / frameW
	rows := b.Dy() / frameH
	frames := make([]image.Rectangle, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := b.Min.X + c*frameW
			y := b.Min.Y + r*frameH
			frames = append(frames, image.Rect(x, y, x+frameW, y+frameH))
		}
	}
	return frames
}

// FrameCount returns the number of frames in the sheet grid.
func (s *Sprite) FrameCount() int { return len(s.frames) }

// Frame returns the current frame index.
func (s *Sprite) Frame() int {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	return s.frame
}

// SetFrame jumps to frame i, clears the finished state, and repaints.
func (s *Sprite) SetFrame(i int) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	s.frame = i
	s.finished = false
	s.remaining = 1 / s.frameRate
	s.redrawLocked()
}

// SetFrameRate sets the animation speed in frames per second.
func (s *Sprite) SetFrameRate(fps float64) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	if fps > 0 {
		s.frameRate = fps
	}
}

// SetLoop controls whether the animation wraps or freezes on the last frame.
func (s *Sprite) SetLoop(loop bool) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	s.loop = loop
}

// Finished reports whether a non-looping animation has frozen on its last
// frame. A looping sprite never finishes.
func (s *Sprite) Finished() bool {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	return s.finished
}

// Update advances the animation by the elapsed time of the current frame.
// Call it once per tick, typically from the OnFrame callback. Each tick
// decrements the remaining frame time; on underflow the frame index advances
// (wrapping when looping, else freezing and setting Finished) and the counter
// is replenished by the fixed per-frame duration.
func (s *Sprite) Update() {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	s.advanceLocked(s.app.delta)
}

func (s *Sprite) advanceLocked(dt float64) {
	if s.finished || len(s.frames) == 0 {
		return
	}
	s.remaining -= dt
	for s.remaining <= 0 {
		if s.frame >= len(s.frames)-1 {
			if !s.loop {
				s.finished = true
				s.remaining = 0
				break
			}
			s.frame = 0
		} else {
			s.frame++
		}
		s.remaining += 1 / s.frameRate
	}
	s.redrawLocked()
}

// MoveTo repositions the sprite (and its hitbox), erasing the old rectangle
// and repainting at the new one.
func (s *Sprite) MoveTo(x, y float64) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	old := s.Rect()
	subSurface(s.app.layers.surface(s.layer), old).Clear()
	s.X = x
	s.Y = y
	s.redrawLocked()
}

// Draw paints the current frame into dst at the sprite rectangle.
func (s *Sprite) Draw(dst *ebiten.Image) {
	if len(s.frames) == 0 {
		return
	}
	frame := s.sheet.SubImage(s.frames[s.frame]).(*ebiten.Image)
	imageOn(dst, frame, s.X, s.Y, s.Width, s.Height)
}

// redrawLocked repaints the sprite rectangle on its layer. Caller holds app.mu.
func (s *Sprite) redrawLocked() {
	dst := s.app.layers.surface(s.layer)
	sub := subSurface(dst, s.Rect())
	sub.Clear()
	s.Draw(sub)
}
