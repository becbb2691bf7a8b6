// Package metrics exposes runtime memory readings for the details view.
package metrics

import (
	"runtime"
	"time"
)

// MemorySnapshot is a point-in-time reading of the Go runtime heap, taken
// after a calculation run to show what the backends cost.
type MemorySnapshot struct {
	// HeapInUse is the number of bytes currently allocated by the program.
	HeapInUse uint64
	// HeapFromOS is the heap memory obtained from the operating system.
	HeapFromOS uint64
	// TotalFromOS is all memory obtained from the operating system.
	TotalFromOS uint64
	// LiveObjects is the number of allocated heap objects.
	LiveObjects uint64
	// GCCycles counts completed garbage collections.
	GCCycles uint32
	// GCPauseTotal is the cumulative stop-the-world pause time.
	GCPauseTotal time.Duration
}

// Snapshot reads the current runtime memory statistics.
func Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapInUse:    m.HeapAlloc,
		HeapFromOS:   m.HeapSys,
		TotalFromOS:  m.Sys,
		LiveObjects:  m.HeapObjects,
		GCCycles:     m.NumGC,
		GCPauseTotal: time.Duration(m.PauseTotalNs),
	}
}
