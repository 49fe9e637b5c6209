package easel

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPNG creates a small PNG on disk and returns its path.
func writeTestPNG(t *testing.T, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoadImages(t *testing.T) {
	p1 := writeTestPNG(t, "a.png")
	p2 := writeTestPNG(t, "b.png")

	images, err := LoadImages(p1, p2)
	if err != nil {
		t.Fatalf("LoadImages: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("len = %d, want 2", len(images))
	}
	if b := images[0].Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("image size = %dx%d, want 2x2", b.Dx(), b.Dy())
	}
}

func TestLoadImagesNamesFailingPath(t *testing.T) {
	good := writeTestPNG(t, "ok.png")
	bad := filepath.Join(t.TempDir(), "missing.png")

	images, err := LoadImages(good, bad)
	if err == nil {
		t.Fatal("expected an error for the missing file")
	}
	if images != nil {
		t.Error("no images should be returned on failure")
	}
	if !strings.Contains(err.Error(), "missing.png") {
		t.Errorf("error %q should name the failing path", err)
	}
}

func TestLoadImage(t *testing.T) {
	p := writeTestPNG(t, "one.png")
	img, err := LoadImage(p)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img == nil {
		t.Fatal("LoadImage returned nil image")
	}
}
