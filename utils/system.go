package utils

import (
	"math"
	"runtime"

	"github.com/rs/zerolog"
)

// MemUsage is a snapshot of the runtime allocator in MiB
type MemUsage struct {
	Alloc, TotalAlloc, Sys uint64
	NumGC                  uint32
}

func GetMemUsage() (mu MemUsage) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return MemUsage{
		Alloc:      bToMb(m.Alloc),
		TotalAlloc: bToMb(m.TotalAlloc),
		Sys:        bToMb(m.Sys),
		NumGC:      m.NumGC,
	}
}

// MarshalZerologObject lets a MemUsage be logged with Object()
func (mu MemUsage) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("allocMiB", mu.Alloc).Uint64("totalAllocMiB", mu.TotalAlloc).
		Uint64("sysMiB", mu.Sys).Uint32("numGC", mu.NumGC)
}

// IsFinite reports whether every value is neither NaN nor infinite
func IsFinite(v []float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
