package toroid

import (
	"fmt"
	"math"
)

// Rendering Defaults
const (
	// DefaultWidth is the frame width in character cells
	DefaultWidth = 80

	// DefaultHeight is the frame height in character cells
	DefaultHeight = 22

	// DefaultViewerDistance is the offset added to rotated z before projection
	DefaultViewerDistance = 5.0

	// DefaultBrightnessFactor scales the surface luminance before ramp lookup
	DefaultBrightnessFactor = 8.0

	// DefaultTubeStep is the sweep step (radians) around the torus cross-section
	DefaultTubeStep = 0.07

	// DefaultRingStep is the sweep step (radians) around the ring of revolution
	DefaultRingStep = 0.02
)

// RampSize is the number of glyphs in a brightness ramp.
// Luminance indices are always clamped to [0, RampSize-1].
const RampSize = 13

// DefaultRamp is the canonical brightness ramp, dimmest to brightest.
const DefaultRamp = " .,-~:;=!*#$@"

// Config holds the immutable knobs of a Renderer. Values are validated
// once at construction; a Config is never inspected per frame beyond the
// precomputed fields derived from it.
type Config struct {
	// Width and Height are the frame dimensions in cells
	Width  int
	Height int

	// ViewerDistance is the camera offset along z (must exceed the torus
	// extent of 3 units, or projection divides by zero mid-sweep)
	ViewerDistance float64

	// BrightnessFactor scales luminance before truncation and clamping
	BrightnessFactor float64

	// TubeStep and RingStep are the two sweep step sizes in radians,
	// each strictly positive and below a full turn
	TubeStep float64
	RingStep float64

	// Ramp maps a clamped luminance index to its glyph
	Ramp [RampSize]byte
}

// DefaultConfig returns the canonical 80x22 configuration.
func DefaultConfig() Config {
	cfg := Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		ViewerDistance:   DefaultViewerDistance,
		BrightnessFactor: DefaultBrightnessFactor,
		TubeStep:         DefaultTubeStep,
		RingStep:         DefaultRingStep,
	}
	copy(cfg.Ramp[:], DefaultRamp)
	return cfg
}

// Validate reports the first degenerate knob, if any. A failing Config is
// a fatal configuration error, not a per-frame condition.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("toroid: grid %dx%d: both dimensions must be at least 1", c.Width, c.Height)
	}
	if c.TubeStep <= 0 || c.TubeStep >= 2*math.Pi {
		return fmt.Errorf("toroid: tube step %v: must be in (0, 2π)", c.TubeStep)
	}
	if c.RingStep <= 0 || c.RingStep >= 2*math.Pi {
		return fmt.Errorf("toroid: ring step %v: must be in (0, 2π)", c.RingStep)
	}
	// Rotated z ranges over [-3, 3]; the viewer must sit outside that.
	if c.ViewerDistance <= 3 {
		return fmt.Errorf("toroid: viewer distance %v: must exceed the torus extent of 3", c.ViewerDistance)
	}
	return nil
}
