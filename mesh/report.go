package mesh

import (
	"log"
	"time"
)

// Report is the statistics summary of one decode-and-compile pass. It is
// advisory: nothing in it is needed for correctness.
type Report struct {
	Width, Height, Length int
	NonAir                int

	Groups    int
	Instances int

	ModelsLoaded int
	ModelsFailed int

	Meshes   int
	Vertices int
	Faces    int

	// Skipped histograms instances omitted because their model failed to
	// resolve, keyed by normalized block name.
	Skipped map[string]int

	PaletteMisses map[int32]int
	UnknownLegacy map[int]int

	Elapsed time.Duration
}

// Reporter receives best-effort progress events during a pass. Events
// may arrive from the compiling goroutine only; implementations need no
// locking.
type Reporter interface {
	GridDecoded(width, height, length, nonAir int)
	Grouped(groups, instances int)
	ModelsResolved(loaded, failed int)
	Progress(processed, total, meshes, vertices, faces int)
	Done(r *Report)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) GridDecoded(int, int, int, int) {}

func (NopReporter) Grouped(int, int) {}

func (NopReporter) ModelsResolved(int, int) {}

func (NopReporter) Progress(int, int, int, int, int) {}

func (NopReporter) Done(*Report) {}

// LogReporter writes events to a standard logger.
type LogReporter struct {
	Logger *log.Logger
}

func (r LogReporter) GridDecoded(width, height, length, nonAir int) {
	r.Logger.Printf("grid %dx%dx%d, %d non-air blocks", width, height, length, nonAir)
}

func (r LogReporter) Grouped(groups, instances int) {
	r.Logger.Printf("%d block groups, %d instances", groups, instances)
}

func (r LogReporter) ModelsResolved(loaded, failed int) {
	r.Logger.Printf("models: %d loaded, %d failed", loaded, failed)
}

func (r LogReporter) Progress(processed, total, meshes, vertices, faces int) {
	r.Logger.Printf("compiled %d/%d groups (%d meshes, %d vertices, %d faces)",
		processed, total, meshes, vertices, faces)
}

func (r LogReporter) Done(rep *Report) {
	r.Logger.Printf("done: %d meshes, %d vertices, %d faces, %d skipped block types in %s",
		rep.Meshes, rep.Vertices, rep.Faces, len(rep.Skipped), rep.Elapsed)
}
