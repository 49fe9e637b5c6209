package easel

import "testing"

func TestFPSOverlayRefreshInterval(t *testing.T) {
	var f fpsOverlay
	f.fresh = true

	f.tick(0.2)
	if !f.fresh {
		t.Error("readout should stay cached inside the refresh interval")
	}
	f.tick(0.2)
	f.tick(0.2)
	if f.fresh {
		t.Error("readout should be invalidated after 0.5s")
	}
	if f.since != 0 {
		t.Errorf("interval accumulator = %v, want 0 after refresh", f.since)
	}
}
