package system

import "runtime"

// MemoryStats summarizes the Go heap for the `free` command
type MemoryStats struct {
	Goroutines int
	HeapAlloc  uint64
	HeapSys    uint64
	NumGC      uint32
	Sys        uint64
}

// ReadMemoryStats samples the runtime memory counters
func ReadMemoryStats() MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemoryStats{
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  m.HeapAlloc,
		HeapSys:    m.HeapSys,
		NumGC:      m.NumGC,
		Sys:        m.Sys,
	}
}
