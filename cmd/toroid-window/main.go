// Desktop window host for the toroid rasterizer. Displays the glyph
// buffer as debug text in an ebiten window, rotating once per tick, for
// machines where a terminal is not available or not wanted.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/cainthebest/toroid"
)

// Cell size of ebitenutil's debug font in pixels
const (
	cellWidth  = 6
	cellHeight = 16
)

var (
	width  = flag.Int("width", toroid.DefaultWidth, "Frame width in cells")
	height = flag.Int("height", toroid.DefaultHeight, "Frame height in cells")
	da     = flag.Float64("da", 0.07, "Per-tick rotation about the vertical axis (radians)")
	db     = flag.Float64("db", 0.03, "Per-tick rotation about the horizontal axis (radians)")
	tps    = flag.Int("tps", 50, "Ticks (frames) per second")
)

type game struct {
	renderer *toroid.Renderer

	orient toroid.Orientation
	glyphs []byte
	depth  []float64
	frame  strings.Builder
}

func (g *game) Update() error {
	g.orient.Rotate(*da, *db)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.orient, g.glyphs, g.depth)

	g.frame.Reset()
	w := g.renderer.Width()
	for y := 0; y < g.renderer.Height(); y++ {
		g.frame.Write(g.glyphs[y*w : (y+1)*w])
		g.frame.WriteByte('\n')
	}
	ebitenutil.DebugPrint(screen, g.frame.String())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.renderer.Width() * cellWidth, g.renderer.Height() * cellHeight
}

func main() {
	flag.Parse()

	cfg := toroid.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height

	renderer, err := toroid.NewRenderer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	g := &game{
		renderer: renderer,
		orient:   toroid.NewOrientation(),
		glyphs:   make([]byte, renderer.Size()),
		depth:    make([]float64, renderer.Size()),
	}

	ebiten.SetWindowTitle("toroid")
	ebiten.SetWindowSize(renderer.Width()*cellWidth*2, renderer.Height()*cellHeight*2)
	ebiten.SetTPS(*tps)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Window host failed: %v\n", err)
		os.Exit(1)
	}
}
