package easel

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseLayer is the layer selected before any SetLayer call and after a
// viewport resize.
const BaseLayer = 0

// layerSet owns one offscreen surface per integer layer id. Surfaces are
// created lazily on first reference and stacked in creation order (a layer
// first referenced later draws above one referenced earlier). All surfaces
// share the viewport dimensions and are recreated together on resize.
type layerSet struct {
	width, height int
	surfaces      map[int]*ebiten.Image
	order         []int // creation order = z order, bottom first
	active        int
}

func newLayerSet(width, height int) *layerSet {
	return &layerSet{
		width:    width,
		height:   height,
		surfaces: make(map[int]*ebiten.Image),
		active:   BaseLayer,
	}
}

// surface returns the backing image for id, creating it on first reference.
// Ids are opaque keys; negative values are fine.
func (ls *layerSet) surface(id int) *ebiten.Image {
	if img, ok := ls.surfaces[id]; ok {
		return img
	}
	img := ebiten.NewImage(ls.width, ls.height)
	ls.surfaces[id] = img
	ls.order = append(ls.order, id)
	return img
}

// setActive ensures a surface exists for id and makes it the target of all
// drawing primitives.
func (ls *layerSet) setActive(id int) {
	ls.surface(id)
	ls.active = id
}

// activeSurface returns the surface of the active layer, creating the base
// layer if nothing has been referenced yet.
func (ls *layerSet) activeSurface() *ebiten.Image {
	return ls.surface(ls.active)
}

// resize recreates every existing surface at the new viewport size and resets
// the active layer to the base layer. Previous pixel content is discarded.
func (ls *layerSet) resize(width, height int) {
	if width == ls.width && height == ls.height {
		return
	}
	ls.width = width
	ls.height = height
	for _, id := range ls.order {
		ls.surfaces[id].Deallocate()
		ls.surfaces[id] = ebiten.NewImage(width, height)
	}
	ls.active = BaseLayer
}

// reset destroys all surfaces and returns to the initial state.
// Used by App.ResetCanvas.
func (ls *layerSet) reset() {
	for _, id := range ls.order {
		ls.surfaces[id].Deallocate()
		delete(ls.surfaces, id)
	}
	ls.order = ls.order[:0]
	ls.active = BaseLayer
}

// composite draws every surface onto screen in stack order.
func (ls *layerSet) composite(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for _, id := range ls.order {
		screen.DrawImage(ls.surfaces[id], &op)
	}
}

// ids returns the existing layer ids sorted numerically. Test helper and
// debug aid; the z order is ls.order, not this.
func (ls *layerSet) ids() []int {
	out := make([]int, len(ls.order))
	copy(out, ls.order)
	sort.Ints(out)
	return out
}
