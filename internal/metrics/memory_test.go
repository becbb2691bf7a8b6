package metrics

import "testing"

// TestSnapshot_Plausible checks the runtime readings are internally
// consistent for a live process.
func TestSnapshot_Plausible(t *testing.T) {
	// Allocate something so the heap is provably non-empty.
	data := make([]byte, 1<<20)
	_ = data[0]

	snap := Snapshot()

	if snap.HeapInUse == 0 {
		t.Error("HeapInUse should be non-zero in a running process")
	}
	if snap.HeapFromOS < snap.HeapInUse {
		t.Errorf("HeapFromOS (%d) should cover HeapInUse (%d)", snap.HeapFromOS, snap.HeapInUse)
	}
	if snap.TotalFromOS < snap.HeapFromOS {
		t.Errorf("TotalFromOS (%d) should cover HeapFromOS (%d)", snap.TotalFromOS, snap.HeapFromOS)
	}
	if snap.LiveObjects == 0 {
		t.Error("LiveObjects should be non-zero in a running process")
	}
	if snap.GCPauseTotal < 0 {
		t.Errorf("GCPauseTotal = %v, want >= 0", snap.GCPauseTotal)
	}
}
