package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate, surface recoveries and memory statistics for the render loop.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	reconfigures   int
	timeouts       int
	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time
	memStats       runtime.MemStats
	lastTotalAlloc uint64

	// Totals over the whole run, never reset.
	totalFrames       int
	totalReconfigures int
	totalTimeouts     int
}

// Stats is a snapshot of the profiler totals.
type Stats struct {
	Frames       int
	Reconfigures int
	Timeouts     int
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// RecordReconfigure counts a surface reconfiguration after a lost or outdated surface.
func (p *Profiler) RecordReconfigure() {
	p.reconfigures++
	p.totalReconfigures++
}

// RecordTimeout counts a frame skipped because the surface timed out.
func (p *Profiler) RecordTimeout() {
	p.timeouts++
	p.totalTimeouts++
}

// Tick should be called once per rendered frame.
// Logs FPS, surface recoveries, heap usage and allocation rate when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	p.totalFrames++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	log.Printf("[Profiler] FPS: %.2f | Reconfigures: %d | Timeouts: %d | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		fps, p.reconfigures, p.timeouts, allocMB, allocRateMB, p.memStats.NumGC)

	p.frameCount = 0
	p.reconfigures = 0
	p.timeouts = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Stats returns the totals recorded since the profiler was created.
func (p *Profiler) Stats() Stats {
	return Stats{
		Frames:       p.totalFrames,
		Reconfigures: p.totalReconfigures,
		Timeouts:     p.totalTimeouts,
	}
}
