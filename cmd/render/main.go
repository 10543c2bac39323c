// Command render renders a single Mandelbrot frame and saves it as a PNG
// file. The viewport comes either from explicit coordinates or from a
// named landmark:
//
//	render -x -0.7269 -y 0.1889 -zoom 50 -iter 500 -o boundary.png
//	render -landmark seahorse -o seahorse.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"sort"
	"strings"

	fractal "github.com/ganassini/fractalview"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		x        = flag.Float64("x", fractal.DefaultCenterX, "center, real part")
		y        = flag.Float64("y", fractal.DefaultCenterY, "center, imaginary part")
		zoom     = flag.Float64("zoom", fractal.DefaultZoom, "magnification relative to the full view")
		iter     = flag.Int("iter", 256, "iteration budget")
		width    = flag.Int("width", 1920, "output width in pixels")
		height   = flag.Int("height", 1080, "output height in pixels")
		landmark = flag.String("landmark", "", "named region to render instead of -x/-y/-zoom: "+landmarkNames())
		palName  = flag.String("palette", "psychedelic", "palette: psychedelic or hue")
		out      = flag.String("o", "mandel.png", "output file")
	)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("output dimensions must be positive, got %dx%d", *width, *height)
	}

	view := fractal.Viewport{CenterX: *x, CenterY: *y, Zoom: *zoom}
	if *landmark != "" {
		region, ok := fractal.Landmarks[*landmark]
		if !ok {
			return fmt.Errorf("unknown landmark %q, have: %s", *landmark, landmarkNames())
		}
		view = region.Viewport()
	}

	pal, ok := fractal.Palettes[*palName]
	if !ok {
		return fmt.Errorf("unknown palette %q", *palName)
	}

	log.Printf("rendering %dx%d at (%g, %g) zoom %g, %d iterations",
		*width, *height, view.CenterX, view.CenterY, view.Zoom, *iter)
	img := fractal.RenderImagePalette(*width, *height, fractal.Params{Viewport: view, Iterations: *iter}, pal)

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("saved to %q", *out)
	return nil
}

func landmarkNames() string {
	names := make([]string, 0, len(fractal.Landmarks))
	for name := range fractal.Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
