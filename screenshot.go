package easel

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame. The resulting PNG is written to Config.ScreenshotDir with a
// timestamped filename. Safe to call from the program goroutine or a frame
// callback.
func (a *App) Screenshot(label string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shotQueue = append(a.shotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Draw; caller holds a.mu.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.shotQueue) == 0 {
		return
	}

	dir := a.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		a.dlog.append(fmt.Sprintf("screenshot: mkdir %s: %v", dir, err))
		a.shotQueue = a.shotQueue[:0]
		return
	}

	img := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")

	for _, label := range a.shotQueue {
		name := stamp + "_" + sanitizeLabel(label) + ".png"
		if err := writePNG(filepath.Join(dir, name), img); err != nil {
			a.dlog.append(fmt.Sprintf("screenshot: %v", err))
		}
	}

	a.shotQueue = a.shotQueue[:0]
}

// captureFrame reads the rendered frame back and un-premultiplies the alpha
// channel in place, since image/png expects straight-alpha NRGBA.
func captureFrame(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	screen.ReadPixels(img.Pix)

	for i := 3; i < len(img.Pix); i += 4 {
		al := int(img.Pix[i])
		if al == 0 || al == 255 {
			continue
		}
		for j := i - 3; j < i; j++ {
			img.Pix[j] = uint8(min(int(img.Pix[j])*255/al, 255))
		}
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel maps characters that are unsafe in file names to underscores
// and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	safe := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}
	return strings.Map(safe, label)
}
