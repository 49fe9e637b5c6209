package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// gutter is the spacing in pixels reserved per cell boundary.
const gutter = 1.0

// Grid is a fixed-size 2D field of cells drawn on the layer that was active
// at construction. Cells redraw themselves immediately when a visual property
// changes; the grid tracks exactly one active cell, updated on a debounced
// click or touch (at most one activation per press-release cycle).
type Grid struct {
	app    *App
	layer  int
	rows   int
	cols   int
	bounds Rect
	cells  [][]*Cell
	active *Cell
}

// NewGrid creates a rows x cols grid filling the rectangle (x, y, w, h) on
// the active layer. Cell sizes are the even division of the bounding
// rectangle minus one pixel of gutter per boundary; both are positive
// whenever w > cols and h > rows.
func (a *App) NewGrid(rows, cols int, x, y, w, h float64) *Grid {
	a.mu.Lock()
	defer a.mu.Unlock()

	g := &Grid{
		app:    a,
		layer:  a.layers.active,
		rows:   rows,
		cols:   cols,
		bounds: Rect{X: x, Y: y, Width: w, Height: h},
	}
	g.cells = make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = &Cell{grid: g, Row: r, Col: c, textSize: 16, textColor: "black"}
		}
	}
	a.addTicker(g)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Bounds returns the grid's bounding rectangle.
func (g *Grid) Bounds() Rect { return g.bounds }

// CellSize returns the width and height of a single cell.
func (g *Grid) CellSize() (w, h float64) {
	return (g.bounds.Width - gutter*float64(g.cols)) / float64(g.cols),
		(g.bounds.Height - gutter*float64(g.rows)) / float64(g.rows)
}

// Cell returns the cell at (row, col). Out-of-range indices fault at the
// point of use; the grid does not validate them.
func (g *Grid) Cell(row, col int) *Cell {
	return g.cells[row][col]
}

// ActiveCell returns the most recently activated cell, or nil before the
// first click or touch inside the grid.
func (g *Grid) ActiveCell() *Cell {
	g.app.mu.Lock()
	defer g.app.mu.Unlock()
	return g.active
}

// CellRect returns the bounding rectangle of the cell at (row, col) in canvas
// coordinates.
func (g *Grid) CellRect(row, col int) Rect {
	cw, ch := g.CellSize()
	return Rect{
		X:      g.bounds.X + float64(col)*(cw+gutter),
		Y:      g.bounds.Y + float64(row)*(ch+gutter),
		Width:  cw,
		Height: ch,
	}
}

// cellFromPoint maps a canvas point to a cell by flooring the coordinate
// offset divided by the cell stride. Returns nil outside the grid.
func (g *Grid) cellFromPoint(x, y float64) *Cell {
	if !g.bounds.Contains(x, y) {
		return nil
	}
	cw, ch := g.CellSize()
	col := int((x - g.bounds.X) / (cw + gutter))
	row := int((y - g.bounds.Y) / (ch + gutter))
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return g.cells[row][col]
}

// tick polls the one-shot pointer query. A held press activates at most one
// cell; the query re-arms only after everything is released. Presses outside
// the grid are left for other consumers.
func (g *Grid) tick(a *App, _ float64) {
	if !a.ptr.peekActivated() {
		return
	}
	cell := g.cellFromPoint(a.ptr.x, a.ptr.y)
	if cell == nil {
		return
	}
	a.ptr.takeActivated()
	g.active = cell
}

// Redraw repaints every cell.
func (g *Grid) Redraw() {
	g.app.mu.Lock()
	defer g.app.mu.Unlock()
	for _, row := range g.cells {
		for _, c := range row {
			c.redrawLocked()
		}
	}
}

// Cell is one square of a Grid. Every visual mutation repaints just this
// cell's rectangle, synchronously.
type Cell struct {
	grid      *Grid
	Row, Col  int
	fill      string
	hasFill   bool
	img       *ebiten.Image
	text      string
	textSize  float64
	textColor string
	custom    Drawable
}

// Color returns the cell's fill color, or "" when unset.
func (c *Cell) Color() string {
	c.grid.app.mu.Lock()
	defer c.grid.app.mu.Unlock()
	if !c.hasFill {
		return ""
	}
	return c.fill
}

// SetColor sets the fill color and repaints the cell.
func (c *Cell) SetColor(clr string) {
	c.grid.app.mu.Lock()
	defer c.grid.app.mu.Unlock()
	c.fill = clr
	c.hasFill = clr != ""
	c.redrawLocked()
}

// SetImage sets the cell image (drawn scaled over the fill) and repaints.
func (c *Cell) SetImage(img *ebiten.Image) {
	c.grid.app.mu.Lock()
	defer c.grid.app.mu.Unlock()
	c.img = img
	c.redrawLocked()
}

// Text returns the cell's text value.
func (c *Cell) Text() string {
	c.grid.app.mu.Lock()
	defer c.grid.app.mu.Unlock()
	return c.text
}

// SetText sets the cell text and repaints.
func (c *Cell) SetText(s string) {
	c.grid.app.mu.Lock()
	defer c.grid.app.mu.Unlock()
	c.text = s
	c.redrawLocked()
}

// SetTextStyle sets the text size and color, then repaints.
func (c *Cell) SetTextStyle(size float64, clr string) {
	c.grid.app.mu.Lock()
	defer c.grid.app.mu.Unlock()
	c.textSize = size
	c.textColor = clr
	c.redrawLocked()
}

// SetCustom installs a custom Drawable painted last, clipped to the cell.
// The drawable receives a sub-surface whose coordinates are still canvas
// coordinates; use Rect to position.
func (c *Cell) SetCustom(d Drawable) {
	c.grid.app.mu.Lock()
	defer c.grid.app.mu.Unlock()
	c.custom = d
	c.redrawLocked()
}

// Rect returns the cell's bounding rectangle in canvas coordinates.
func (c *Cell) Rect() Rect {
	return c.grid.CellRect(c.Row, c.Col)
}

// redrawLocked repaints the cell onto its grid's layer. Caller holds app.mu.
func (c *Cell) redrawLocked() {
	g := c.grid
	r := g.CellRect(c.Row, c.Col)
	dst := g.app.layers.surface(g.layer)
	sub := subSurface(dst, r)
	sub.Clear()

	if c.hasFill {
		fillRectOn(sub, r.X, r.Y, r.Width, r.Height, ParseColor(c.fill))
	}
	if c.img != nil {
		imageOn(sub, c.img, r.X, r.Y, r.Width, r.Height)
	}
	if c.text != "" {
		tw, th := measureText(c.text, c.textSize)
		textOn(sub, c.text,
			r.X+(r.Width-tw)/2, r.Y+(r.Height-th)/2,
			c.textSize, ParseColor(c.textColor))
	}
	if c.custom != nil {
		c.custom.Draw(sub)
	}
}
