// Package toroid renders an animated ASCII-art torus ("donut") into
// caller-owned buffers. Points are sampled on the torus surface, rotated
// through two independent angles, projected to a 2D character grid with
// a reciprocal-depth z-buffer, and shaded against a fixed light through
// a 13-glyph brightness ramp.
//
// The package performs no I/O and no allocation after construction, so
// it suits hosts without a general graphics stack: terminal demos,
// embedded character displays, minimal runtimes. Displaying the glyph
// buffer, pacing frames, and handling input are host concerns; see the
// programs under cmd/.
package toroid

import "math"

// Torus geometry: a minor circle of radius 1 swept around a major circle
// of radius 2, so the surface sits 1..3 units from the origin.
const (
	torusMajorRadius = 2.0

	// Projection scales at the canonical 80x22 grid; other grid sizes
	// scale proportionally, preserving the 2:1 cell aspect ratio.
	baseXScale = 30.0
	baseYScale = 15.0
)

// Renderer rasterizes one torus orientation per Render call. It holds
// only values precomputed from its Config and is safe to share across
// goroutines as long as each goroutine supplies its own buffers.
type Renderer struct {
	cfg  Config
	size int

	// Sweep iteration counts covering a full turn per angle
	tubeSteps int
	ringSteps int

	// Projection constants derived from the grid dimensions
	xCenter float64
	yCenter float64
	xScale  float64
	yScale  float64
}

// NewRenderer validates cfg and precomputes the sweep and projection
// constants. This is the only place transcendental-free operation is
// traded away: the ceil here runs once, never per frame.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:       cfg,
		size:      cfg.Width * cfg.Height,
		tubeSteps: int(math.Ceil(2 * math.Pi / cfg.TubeStep)),
		ringSteps: int(math.Ceil(2 * math.Pi / cfg.RingStep)),
		xCenter:   float64(cfg.Width) / 2,
		yCenter:   float64(cfg.Height) / 2,
		xScale:    baseXScale * float64(cfg.Width) / DefaultWidth,
		yScale:    baseYScale * float64(cfg.Height) / DefaultHeight,
	}, nil
}

// Width returns the frame width in cells.
func (r *Renderer) Width() int { return r.cfg.Width }

// Height returns the frame height in cells.
func (r *Renderer) Height() int { return r.cfg.Height }

// Size returns the required buffer length, Width*Height.
func (r *Renderer) Size() int { return r.size }

// Render rasterizes one frame of o into glyphs and depth, both row-major
// with index y*Width+x. Both buffers must have length exactly Size() and
// are fully overwritten: glyphs to the ramp background then the visible
// surface, depth to 0 then the closeness (reciprocal distance) of the
// nearest sample per cell. Wrong buffer lengths are a caller contract
// violation and panic.
//
// Render allocates nothing and performs no I/O; given the same
// Orientation it always produces identical buffers.
func (r *Renderer) Render(o Orientation, glyphs []byte, depth []float64) {
	if len(glyphs) != r.size || len(depth) != r.size {
		panic("toroid: Render buffers must have length Width*Height")
	}

	r.clear(glyphs, depth)

	sa, ca := o.ASin, o.ACos
	sb, cb := o.BSin, o.BCos

	width, height := r.cfg.Width, r.cfg.Height
	viewer := r.cfg.ViewerDistance
	brightness := r.cfg.BrightnessFactor

	// Both sweeps reuse the same recurrence as Orientation.Rotate,
	// seeded at angle zero, so the hot loop stays free of sin/cos.
	jCos, jSin := 1.0, 0.0

	for j := 0; j < r.tubeSteps; j++ {
		iCos, iSin := 1.0, 0.0

		for i := 0; i < r.ringSteps; i++ {
			// Cross-section point distance from the torus axis
			tube := jCos + torusMajorRadius

			t := iSin*tube*ca - jSin*sa
			d := 1 / (iSin*tube*sa + jSin*ca + viewer)

			x := int(r.xCenter + r.xScale*d*(iCos*tube*cb-t*sb))
			y := int(r.yCenter + r.yScale*d*(iCos*tube*sb+t*cb))

			if x >= 0 && x < width && y >= 0 && y < height {
				idx := y*width + x

				// Strict > keeps the earlier sample on exact ties
				if d > depth[idx] {
					depth[idx] = d

					// Surface normal dotted with the fixed light,
					// under the same two rotations as the point
					n := int(brightness * ((jSin*sa-iSin*jCos*ca)*cb -
						iSin*jCos*sa - jSin*ca - iCos*jCos*sb))

					if n < 0 {
						n = 0
					} else if n > RampSize-1 {
						n = RampSize - 1
					}
					glyphs[idx] = r.cfg.Ramp[n]
				}
			}

			iCos, iSin = advance(iCos, iSin, r.cfg.RingStep)
		}

		jCos, jSin = advance(jCos, jSin, r.cfg.TubeStep)
	}
}

// clear resets both buffers: glyphs to the background glyph via
// exponential copy, depth to zero closeness.
func (r *Renderer) clear(glyphs []byte, depth []float64) {
	glyphs[0] = r.cfg.Ramp[0]
	for filled := 1; filled < len(glyphs); filled *= 2 {
		copy(glyphs[filled:], glyphs[:filled])
	}
	for i := range depth {
		depth[i] = 0
	}
}
