// Command viewer is the interactive desktop front end: an ebiten window
// that pans, zooms and animates over the Mandelbrot set, re-rendering
// through the engine whenever the view changes.
//
// Keys: arrows/hjkl pan, +/- and the mouse wheel zoom, [ and ] change the
// iteration budget, tab cycles landmarks, space toggles the auto-zoom
// demo, r resets, p saves a screenshot, ? shows help.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	fractal "github.com/ganassini/fractalview"
)

func main() {
	var (
		width    = flag.Int("width", 1024, "window width in pixels")
		height   = flag.Int("height", 768, "window height in pixels")
		landmark = flag.String("landmark", "", "named region to open on")
		palName  = flag.String("palette", "psychedelic", "palette: psychedelic or hue")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("window dimensions must be positive, got %dx%d", *width, *height)
	}

	start := fractal.Viewport{
		CenterX: fractal.DefaultCenterX,
		CenterY: fractal.DefaultCenterY,
		Zoom:    fractal.DefaultZoom,
	}
	if *landmark != "" {
		region, ok := fractal.Landmarks[*landmark]
		if !ok {
			log.Fatalf("unknown landmark %q", *landmark)
		}
		start = region.Viewport()
	}

	pal, ok := fractal.Palettes[*palName]
	if !ok {
		log.Fatalf("unknown palette %q", *palName)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("fractalview")
	if err := ebiten.RunGame(newViewer(*width, *height, start, pal)); err != nil {
		log.Fatalf("run: %v", err)
	}
}
