package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Profiler tracks asset load timings and memory statistics for performance
// monitoring. Each measured phase logs its duration together with heap usage
// and GC activity, so regressions in parse or extraction cost show up in the
// log without a tracing setup.
type Profiler struct {
	mu sync.Mutex

	loadCount int
	totalLoad time.Duration

	memStats    runtime.MemStats
	lastGCCount uint32
}

// NewProfiler creates a new Profiler.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{}
}

// Measure starts timing a load phase and returns the function that completes
// it. Intended for defer:
//
//	defer p.Measure("load scene.gltf")()
//
// On completion the phase duration, live heap, and GC count since the last
// measurement are logged.
//
// Parameters:
//   - phase: a label for the measured work
//
// Returns:
//   - func(): completion function that records and logs the measurement
func (p *Profiler) Measure(phase string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)

		p.mu.Lock()
		defer p.mu.Unlock()

		p.loadCount++
		p.totalLoad += elapsed

		runtime.ReadMemStats(&p.memStats)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		gcDelta := p.memStats.NumGC - p.lastGCCount
		p.lastGCCount = p.memStats.NumGC

		log.Printf("[Profiler] %s: %s | Heap: %.2f MB | GC cycles: %d",
			phase, elapsed, allocMB, gcDelta)
	}
}

// LoadCount returns the number of completed measurements.
//
// Returns:
//   - int: the measurement count
func (p *Profiler) LoadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadCount
}

// TotalLoadTime returns the cumulative duration across all measurements.
//
// Returns:
//   - time.Duration: the total measured time
func (p *Profiler) TotalLoadTime() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalLoad
}
