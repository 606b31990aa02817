package toroid

import (
	"bytes"
	"testing"
)

func newTestRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()
	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func newBuffers(r *Renderer) ([]byte, []float64) {
	return make([]byte, r.Size()), make([]float64, r.Size())
}

func TestRenderOverwritesStaleBuffers(t *testing.T) {
	r := newTestRenderer(t, DefaultConfig())
	glyphs, depth := newBuffers(r)

	for i := range glyphs {
		glyphs[i] = 'X'
		depth[i] = -1
	}

	r.Render(NewOrientation(), glyphs, depth)

	background := DefaultConfig().Ramp[0]
	for i := range glyphs {
		if glyphs[i] == 'X' {
			t.Fatalf("stale glyph survived at cell %d", i)
		}
		if depth[i] < 0 {
			t.Fatalf("stale depth survived at cell %d: %v", i, depth[i])
		}
		// A cell no sample reached keeps zero closeness and the
		// background glyph.
		if depth[i] == 0 && glyphs[i] != background {
			t.Fatalf("cell %d has zero depth but glyph %q", i, glyphs[i])
		}
	}
}

func TestRenderPanicsOnWrongBufferLength(t *testing.T) {
	r := newTestRenderer(t, DefaultConfig())

	cases := []struct {
		name   string
		glyphs []byte
		depth  []float64
	}{
		{"short glyphs", make([]byte, r.Size()-1), make([]float64, r.Size())},
		{"long depth", make([]byte, r.Size()), make([]float64, r.Size()+1)},
		{"both empty", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %s", tc.name)
				}
			}()
			r.Render(NewOrientation(), tc.glyphs, tc.depth)
		})
	}
}

// With default configuration and the identity orientation the torus is
// visible and the occupied cells sit roughly symmetric about the center
// column.
func TestDefaultOrientationFrame(t *testing.T) {
	cfg := DefaultConfig()
	r := newTestRenderer(t, cfg)
	glyphs, depth := newBuffers(r)

	r.Render(NewOrientation(), glyphs, depth)

	background := cfg.Ramp[0]
	visible := 0
	left, right := cfg.Width, -1
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if glyphs[y*cfg.Width+x] == background && depth[y*cfg.Width+x] == 0 {
				continue
			}
			visible++
			if x < left {
				left = x
			}
			if x > right {
				right = x
			}
		}
	}

	if visible == 0 {
		t.Fatal("default orientation produced an empty frame")
	}

	// Compare the occupied extent on each side of the center column.
	center := cfg.Width / 2
	lo, hi := center-left, right-(center-1)
	if diff := lo - hi; diff < -2 || diff > 2 {
		t.Errorf("occupied columns [%d, %d] not symmetric about column %d", left, right, center)
	}
}

func TestBrightnessClampUnderExtremeFactors(t *testing.T) {
	for _, factor := range []float64{-1000, 0, 8, 1e6} {
		cfg := DefaultConfig()
		cfg.BrightnessFactor = factor
		r := newTestRenderer(t, cfg)
		glyphs, depth := newBuffers(r)

		o := NewOrientation()
		for frame := 0; frame < 5; frame++ {
			r.Render(o, glyphs, depth)
			for i, g := range glyphs {
				if bytes.IndexByte(cfg.Ramp[:], g) < 0 {
					t.Fatalf("factor %v frame %d: glyph %q at cell %d not in ramp", factor, frame, g, i)
				}
			}
			o.Rotate(0.9, 0.4)
		}
	}
}

func TestRenderDeterminism(t *testing.T) {
	r1 := newTestRenderer(t, DefaultConfig())
	r2 := newTestRenderer(t, DefaultConfig())
	g1, d1 := newBuffers(r1)
	g2, d2 := newBuffers(r2)

	o1 := NewOrientation()
	o2 := NewOrientation()

	for frame := 0; frame < 20; frame++ {
		o1.Rotate(0.07, 0.03)
		o2.Rotate(0.07, 0.03)
		r1.Render(o1, g1, d1)
		r2.Render(o2, g2, d2)

		if !bytes.Equal(g1, g2) {
			t.Fatalf("frame %d: glyph buffers diverged", frame)
		}
		for i := range d1 {
			if d1[i] != d2[i] {
				t.Fatalf("frame %d: depth buffers diverged at cell %d: %v vs %v", frame, i, d1[i], d2[i])
			}
		}
	}
}

// For every cell the stored depth must equal the maximum closeness among
// all samples that projected onto it. The oracle replays the exact sweep
// and records the per-cell maximum independently of the depth test.
func TestDepthKeepsNearestSample(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 12
	cfg.TubeStep = 0.3
	cfg.RingStep = 0.1

	r := newTestRenderer(t, cfg)
	glyphs, depth := newBuffers(r)

	o := NewOrientation()
	o.Rotate(0.5, 0.2)
	r.Render(o, glyphs, depth)

	want := make([]float64, r.Size())
	sa, ca := o.ASin, o.ACos
	sb, cb := o.BSin, o.BCos

	jCos, jSin := 1.0, 0.0
	for j := 0; j < r.tubeSteps; j++ {
		iCos, iSin := 1.0, 0.0
		for i := 0; i < r.ringSteps; i++ {
			tube := jCos + torusMajorRadius
			tmp := iSin*tube*ca - jSin*sa
			d := 1 / (iSin*tube*sa + jSin*ca + cfg.ViewerDistance)

			x := int(r.xCenter + r.xScale*d*(iCos*tube*cb-tmp*sb))
			y := int(r.yCenter + r.yScale*d*(iCos*tube*sb+tmp*cb))

			if x >= 0 && x < cfg.Width && y >= 0 && y < cfg.Height {
				if idx := y*cfg.Width + x; d > want[idx] {
					want[idx] = d
				}
			}

			iCos, iSin = advance(iCos, iSin, cfg.RingStep)
		}
		jCos, jSin = advance(jCos, jSin, cfg.TubeStep)
	}

	for i := range want {
		if depth[i] != want[i] {
			t.Errorf("cell %d: stored depth %v, max sample closeness %v", i, depth[i], want[i])
		}
	}
}
