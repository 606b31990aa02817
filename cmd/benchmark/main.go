// Wall-clock throughput harness for the rasterizer core: runs the
// rotate+render loop for a fixed duration with no display attached and
// reports frame rate, per-phase timing, and allocation counters.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/cainthebest/toroid"
)

var (
	duration = flag.Duration("duration", 10*time.Second, "Benchmark duration")
	width    = flag.Int("width", toroid.DefaultWidth, "Frame width in cells")
	height   = flag.Int("height", toroid.DefaultHeight, "Frame height in cells")
	da       = flag.Float64("da", 0.01, "Per-frame rotation about the vertical axis (radians)")
	db       = flag.Float64("db", 0.01, "Per-frame rotation about the horizontal axis (radians)")
)

func main() {
	flag.Parse()

	cfg := toroid.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height

	renderer, err := toroid.NewRenderer(cfg)
	if err != nil {
		panic(err)
	}

	orient := toroid.NewOrientation()
	glyphs := make([]byte, renderer.Size())
	depth := make([]float64, renderer.Size())

	// Stats
	var frames int64
	var rotateTotal, renderTotal time.Duration
	start := time.Now()

	for time.Since(start) < *duration {
		t0 := time.Now()
		orient.Rotate(*da, *db)
		rotateTotal += time.Since(t0)

		t0 = time.Now()
		renderer.Render(orient, glyphs, depth)
		renderTotal += time.Since(t0)

		frames++
	}

	elapsed := time.Since(start)

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Resolution:   %dx%d (%d cells)\n", renderer.Width(), renderer.Height(), renderer.Size())
	fmt.Printf("  Total Frames: %d\n", frames)
	fmt.Printf("  Total Time:   %v\n", elapsed)
	fmt.Printf("  Avg FPS:      %.2f\n", float64(frames)/elapsed.Seconds())
	fmt.Printf("  Avg Rotate:   %v\n", rotateTotal/time.Duration(frames))
	fmt.Printf("  Avg Render:   %v\n", renderTotal/time.Duration(frames))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}
