// Usage examples:
//
// # One full animation loop at the default 80x22 grid
// ./toroid-gif -o donut.gif
//
// # Slower, larger animation
// ./toroid-gif -frames 200 -delay 4 -width 120 -height 33 -o big.gif

package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/cainthebest/toroid"
)

// Cell size of the basicfont face in pixels
const (
	cellWidth  = 7
	cellHeight = 13
	cellAscent = 11
)

var palette = color.Palette{color.Black, color.White}

func main() {
	var (
		frames int
		width  int
		height int
		da, db float64
		delay  int
		output string
	)

	flag.IntVar(&frames, "frames", 100, "Number of animation frames")
	flag.IntVar(&width, "width", toroid.DefaultWidth, "Frame width in cells")
	flag.IntVar(&height, "height", toroid.DefaultHeight, "Frame height in cells")
	flag.Float64Var(&da, "da", 0.07, "Per-frame rotation about the vertical axis (radians)")
	flag.Float64Var(&db, "db", 0.03, "Per-frame rotation about the horizontal axis (radians)")
	flag.IntVar(&delay, "delay", 2, "Delay between frames in 1/100ths of a second")
	flag.StringVar(&output, "o", "toroid.gif", "Output GIF path")
	flag.Parse()

	cfg := toroid.DefaultConfig()
	cfg.Width = width
	cfg.Height = height

	renderer, err := toroid.NewRenderer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	orient := toroid.NewOrientation()
	glyphs := make([]byte, renderer.Size())
	depth := make([]float64, renderer.Size())

	anim := &gif.GIF{LoopCount: 0}
	for f := 0; f < frames; f++ {
		renderer.Render(orient, glyphs, depth)
		anim.Image = append(anim.Image, drawFrame(glyphs, renderer.Width(), renderer.Height()))
		anim.Delay = append(anim.Delay, delay)
		orient.Rotate(da, db)
	}

	out, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := gif.EncodeAll(out, anim); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding GIF: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d frames (%dx%d px) to %s\n",
		frames, renderer.Width()*cellWidth, renderer.Height()*cellHeight, output)
}

// drawFrame rasterizes one glyph buffer into a paletted image, one text
// row per buffer row.
func drawFrame(glyphs []byte, w, h int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w*cellWidth, h*cellHeight), palette)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	for y := 0; y < h; y++ {
		d.Dot = fixed.P(0, y*cellHeight+cellAscent)
		d.DrawBytes(glyphs[y*w : (y+1)*w])
	}
	return img
}
