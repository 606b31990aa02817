// Terminal host for the toroid rasterizer: renders the donut on a tcell
// screen with an FPS/heap status line, optional revolution chime, and
// pause/quit keys. The core library only fills the caller-owned buffers;
// everything here (pacing, input, terminal control, audio) is host glue.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/cainthebest/toroid"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeFreq     = 660
	chimeDuration = 60 * time.Millisecond
)

var (
	width  = flag.Int("width", toroid.DefaultWidth, "Frame width in cells")
	height = flag.Int("height", toroid.DefaultHeight, "Frame height in cells")
	da     = flag.Float64("da", 0.07, "Per-frame rotation about the vertical axis (radians)")
	db     = flag.Float64("db", 0.03, "Per-frame rotation about the horizontal axis (radians)")
	delay  = flag.Duration("delay", 20*time.Millisecond, "Frame delay")
	mute   = flag.Bool("mute", false, "Disable audio entirely")
)

type demo struct {
	screen   tcell.Screen
	renderer *toroid.Renderer

	orient toroid.Orientation
	glyphs []byte
	depth  []float64

	paused    bool
	audioInit bool
	soundOn   bool
	prevASin  float64

	frameTime time.Duration
}

func newDemo(renderer *toroid.Renderer) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &demo{
		screen:   screen,
		renderer: renderer,
		orient:   toroid.NewOrientation(),
		glyphs:   make([]byte, renderer.Size()),
		depth:    make([]float64, renderer.Size()),
	}

	if !*mute {
		if err := d.initAudio(); err != nil {
			// Non-fatal, demo can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	return d, nil
}

func (d *demo) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

// playChime emits a short tone; called once per full revolution of
// angle A while sound is toggled on.
func (d *demo) playChime() {
	if !d.audioInit || !d.soundOn {
		return
	}
	sine, err := generators.SineTone(sampleRate, chimeFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(chimeDuration), sine))
}

func (d *demo) step() {
	d.prevASin = d.orient.ASin
	d.orient.Rotate(*da, *db)
	d.renderer.Render(d.orient, d.glyphs, d.depth)

	// Angle A wrapped past zero: one full revolution completed
	if d.prevASin < 0 && d.orient.ASin >= 0 && d.orient.ACos > 0 {
		d.playChime()
	}
}

func (d *demo) draw() {
	w, h := d.renderer.Width(), d.renderer.Height()
	style := tcell.StyleDefault

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.screen.SetContent(x, y, rune(d.glyphs[y*w+x]), nil, style)
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fps := 0.0
	if d.frameTime > 0 {
		fps = 1 / d.frameTime.Seconds()
	}
	status := fmt.Sprintf("FPS: %5.1f | Heap: %s | [space] pause  [s] sound  [q] quit",
		fps, formatBytes(m.HeapAlloc))
	drawText(d.screen, 0, h+1, status, style)

	d.screen.Show()
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				d.paused = !d.paused
			case 's':
				d.soundOn = !d.soundOn
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *demo) run() {
	ticker := time.NewTicker(*delay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case <-ticker.C:
			start := time.Now()
			if !d.paused {
				d.step()
			}
			d.draw()
			d.frameTime = time.Since(start)
		}
	}
}

func (d *demo) cleanup() {
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

func formatBytes(n uint64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
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

	d, err := newDemo(renderer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer d.cleanup()

	d.run()
}
