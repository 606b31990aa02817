package toroid

import (
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	if len(DefaultRamp) != RampSize {
		t.Fatalf("default ramp has %d glyphs, want %d", len(DefaultRamp), RampSize)
	}
}

func TestValidateRejectsDegenerateConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero tube step", func(c *Config) { c.TubeStep = 0 }},
		{"negative tube step", func(c *Config) { c.TubeStep = -0.07 }},
		{"tube step full turn", func(c *Config) { c.TubeStep = 2 * math.Pi }},
		{"zero ring step", func(c *Config) { c.RingStep = 0 }},
		{"ring step over full turn", func(c *Config) { c.RingStep = 7 }},
		{"viewer inside torus", func(c *Config) { c.ViewerDistance = 3 }},
		{"zero viewer distance", func(c *Config) { c.ViewerDistance = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tc.name)
			}
			if _, err := NewRenderer(cfg); err == nil {
				t.Errorf("NewRenderer accepted config with %s", tc.name)
			}
		})
	}
}

func TestRendererDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 11

	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if r.Width() != 40 || r.Height() != 11 || r.Size() != 440 {
		t.Errorf("got %dx%d size %d, want 40x11 size 440", r.Width(), r.Height(), r.Size())
	}
}
