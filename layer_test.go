package easel

import "testing"

func TestLayerSetLazyCreation(t *testing.T) {
	ls := newLayerSet(64, 48)
	if len(ls.surfaces) != 0 {
		t.Fatalf("expected no surfaces before first reference, got %d", len(ls.surfaces))
	}

	img := ls.surface(2)
	if img == nil {
		t.Fatal("surface(2) returned nil")
	}
	if len(ls.surfaces) != 1 {
		t.Errorf("expected 1 surface, got %d", len(ls.surfaces))
	}
	if ls.surface(2) != img {
		t.Error("second reference should return the same surface")
	}
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("surface size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestLayerSetCreationOrderIsZOrder(t *testing.T) {
	ls := newLayerSet(8, 8)
	ls.surface(5)
	ls.surface(-1)
	ls.surface(3)

	want := []int{5, -1, 3}
	if len(ls.order) != len(want) {
		t.Fatalf("order = %v, want %v", ls.order, want)
	}
	for i, id := range want {
		if ls.order[i] != id {
			t.Errorf("order[%d] = %d, want %d", i, ls.order[i], id)
		}
	}

	ids := ls.ids()
	wantSorted := []int{-1, 3, 5}
	for i, id := range wantSorted {
		if ids[i] != id {
			t.Errorf("ids()[%d] = %d, want %d", i, ids[i], id)
		}
	}
}

func TestLayerSetActive(t *testing.T) {
	ls := newLayerSet(8, 8)
	if ls.active != BaseLayer {
		t.Errorf("initial active = %d, want %d", ls.active, BaseLayer)
	}

	ls.setActive(7)
	if ls.active != 7 {
		t.Errorf("active = %d, want 7", ls.active)
	}
	if _, ok := ls.surfaces[7]; !ok {
		t.Error("setActive should create the surface")
	}

	// activeSurface on a fresh set creates the base layer.
	fresh := newLayerSet(8, 8)
	fresh.activeSurface()
	if _, ok := fresh.surfaces[BaseLayer]; !ok {
		t.Error("activeSurface should create the base layer")
	}
}

func TestLayerSetResize(t *testing.T) {
	ls := newLayerSet(10, 10)
	ls.setActive(1)
	ls.surface(2)

	ls.resize(20, 30)
	if ls.width != 20 || ls.height != 30 {
		t.Errorf("size = %dx%d, want 20x30", ls.width, ls.height)
	}
	if ls.active != BaseLayer {
		t.Errorf("active after resize = %d, want %d", ls.active, BaseLayer)
	}
	for _, id := range ls.order {
		b := ls.surfaces[id].Bounds()
		if b.Dx() != 20 || b.Dy() != 30 {
			t.Errorf("layer %d size = %dx%d, want 20x30", id, b.Dx(), b.Dy())
		}
	}

	// Same size is a no-op that keeps the active layer.
	ls.setActive(2)
	ls.resize(20, 30)
	if ls.active != 2 {
		t.Error("no-op resize should not reset the active layer")
	}
}

func TestLayerSetReset(t *testing.T) {
	ls := newLayerSet(8, 8)
	ls.setActive(4)
	ls.surface(9)

	ls.reset()
	if len(ls.surfaces) != 0 || len(ls.order) != 0 {
		t.Errorf("expected empty set, got %d surfaces, order %v", len(ls.surfaces), ls.order)
	}
	if ls.active != BaseLayer {
		t.Errorf("active = %d, want %d", ls.active, BaseLayer)
	}
}
