package easel

import "testing"

func TestDiagLogCollapsesRepeats(t *testing.T) {
	var d diagLog
	d.append("boom")
	d.append("boom")
	d.append("boom")
	d.append("other")
	d.append("boom")

	if len(d.entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(d.entries))
	}
	if d.entries[0].msg != "boom" || d.entries[0].count != 3 {
		t.Errorf("entry 0 = %+v, want boom x3", d.entries[0])
	}
	if d.entries[1].msg != "other" || d.entries[1].count != 1 {
		t.Errorf("entry 1 = %+v, want other x1", d.entries[1])
	}
	if d.entries[2].msg != "boom" || d.entries[2].count != 1 {
		t.Errorf("entry 2 = %+v, want boom x1 (non-consecutive repeats stay separate)", d.entries[2])
	}
}

func TestAppLogf(t *testing.T) {
	a := NewApp(Config{})
	a.Logf("failed to load %q", "pic.png")
	a.Logf("failed to load %q", "pic.png")

	got := a.LogMessages()
	if len(got) != 1 {
		t.Fatalf("LogMessages = %v, want one collapsed line", got)
	}
	want := `failed to load "pic.png" (x2)`
	if got[0] != want {
		t.Errorf("LogMessages[0] = %q, want %q", got[0], want)
	}
}
