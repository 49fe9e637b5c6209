package easel

import (
	"bytes"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// whitePixel is a 1x1 white image used as the source for solid triangles.
var whitePixel *ebiten.Image

// faceSource is the default typeface (Go Regular) used by every text
// primitive, the console, and the widget panel.
var faceSource *text.GoTextFaceSource

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		// goregular.TTF is a compiled-in asset; this cannot happen outside a
		// corrupted build.
		log.Fatalf("easel: load builtin font: %v", err)
	}
	faceSource = src
}

// fontFace returns a face of the builtin font at the given pixel size.
func fontFace(size float64) text.Face {
	return &text.GoTextFace{Source: faceSource, Size: size}
}

// --- Surface-level helpers (shared by App primitives and scene objects) ---

func fillRectOn(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRectOn(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, true)
}

func lineOn(dst *ebiten.Image, x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

func fillCircleOn(dst *ebiten.Image, cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), clr, true)
}

func strokeCircleOn(dst *ebiten.Image, cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func fillTriangleOn(dst *ebiten.Image, x1, y1, x2, y2, x3, y3 float64, clr color.Color) {
	var p vector.Path
	p.MoveTo(float32(x1), float32(y1))
	p.LineTo(float32(x2), float32(y2))
	p.LineTo(float32(x3), float32(y3))
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, al := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 0.5
		vs[i].SrcY = 0.5
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(al) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel, op)
}

// measureText returns the rendered dimensions of s at the given pixel size.
func measureText(s string, size float64) (width, height float64) {
	return text.Measure(s, fontFace(size), size*1.2)
}

// subSurface returns the clipped view of img covering r. Coordinates on the
// returned image remain canvas coordinates.
func subSurface(img *ebiten.Image, r Rect) *ebiten.Image {
	return img.SubImage(image.Rect(
		int(r.X), int(r.Y),
		int(r.X+r.Width), int(r.Y+r.Height),
	)).(*ebiten.Image)
}

// textOn draws s with its top-left corner at (x, y).
func textOn(dst *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = size * 1.2
	text.Draw(dst, s, fontFace(size), op)
}

// imageOn blits img scaled into the rectangle (x, y, w, h).
func imageOn(dst *ebiten.Image, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

// --- App drawing primitives ---
//
// All primitives are stateless and paint the active layer surface selected by
// SetLayer. Colors are strings (see ParseColor).

// Clear fills the active layer with a solid color, or makes it fully
// transparent when clr is the empty string.
func (a *App) Clear(clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	dst := a.layers.activeSurface()
	if clr == "" {
		dst.Clear()
		return
	}
	dst.Fill(ParseColor(clr))
}

// Line draws a straight line between two points.
func (a *App) Line(x1, y1, x2, y2, width float64, clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	lineOn(a.layers.activeSurface(), x1, y1, x2, y2, width, ParseColor(clr))
}

// FillRect draws a solid rectangle.
func (a *App) FillRect(x, y, w, h float64, clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fillRectOn(a.layers.activeSurface(), x, y, w, h, ParseColor(clr))
}

// StrokeRect outlines a rectangle.
func (a *App) StrokeRect(x, y, w, h, width float64, clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	strokeRectOn(a.layers.activeSurface(), x, y, w, h, width, ParseColor(clr))
}

// FillCircle draws a solid circle centered at (cx, cy).
func (a *App) FillCircle(cx, cy, r float64, clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fillCircleOn(a.layers.activeSurface(), cx, cy, r, ParseColor(clr))
}

// StrokeCircle outlines a circle centered at (cx, cy).
func (a *App) StrokeCircle(cx, cy, r, width float64, clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	strokeCircleOn(a.layers.activeSurface(), cx, cy, r, width, ParseColor(clr))
}

// FillTriangle draws a solid triangle from three corner points.
func (a *App) FillTriangle(x1, y1, x2, y2, x3, y3 float64, clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fillTriangleOn(a.layers.activeSurface(), x1, y1, x2, y2, x3, y3, ParseColor(clr))
}

// Text draws s with its top-left corner at (x, y) in the given pixel size.
func (a *App) Text(s string, x, y, size float64, clr string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	textOn(a.layers.activeSurface(), s, x, y, size, ParseColor(clr))
}

// TextSize measures s at the given pixel size without drawing it.
func (a *App) TextSize(s string, size float64) (width, height float64) {
	return measureText(s, size)
}

// DrawImage blits img scaled into the rectangle (x, y, w, h) on the active
// layer.
func (a *App) DrawImage(img *ebiten.Image, x, y, w, h float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	imageOn(a.layers.activeSurface(), img, x, y, w, h)
}

// DrawOn runs d against the active layer surface. It is the hook for custom
// Drawable implementations.
func (a *App) DrawOn(d Drawable) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d.Draw(a.layers.activeSurface())
}
