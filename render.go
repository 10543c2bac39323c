package fractal

import (
	"image"
	"runtime"
	"sync"
)

// Generate fills buf with one rendered frame: width*height RGBA8 pixels,
// row-major, top row first, alpha always 255. buf must hold at least
// width*height*4 bytes; exactly that many are written and nothing is read.
// Non-positive dimensions (or a too-short buffer) make the call a no-op.
// Generate never fails and never panics.
func Generate(buf []byte, width, height int, p Params) {
	GeneratePalette(buf, width, height, p, Psychedelic)
}

// GeneratePalette is Generate with an explicit palette.
func GeneratePalette(buf []byte, width, height int, p Params, pal Palette) {
	if width <= 0 || height <= 0 || len(buf) < width*height*4 {
		return
	}
	p = p.sanitized()

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	rowsPer := (height + workers - 1) / workers

	// Each worker owns a contiguous run of rows and therefore a disjoint
	// slice of buf, so no synchronization beyond the final wait is needed.
	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rowsPer {
		y1 := y0 + rowsPer
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fillRows(buf, width, height, y0, y1, p, pal)
		}(y0, y1)
	}
	wg.Wait()
}

func fillRows(buf []byte, width, height, y0, y1 int, p Params, pal Palette) {
	for py := y0; py < y1; py++ {
		off := py * width * 4
		for px := 0; px < width; px++ {
			res := Iterate(PointAt(px, py, width, height, p.Viewport), p.Iterations)
			c := Shade(res, p.Iterations, pal)
			buf[off] = c.R
			buf[off+1] = c.G
			buf[off+2] = c.B
			buf[off+3] = 255
			off += 4
		}
	}
}

// RenderImage renders one frame into a freshly allocated image.
func RenderImage(width, height int, p Params) *image.RGBA {
	return RenderImagePalette(width, height, p, Psychedelic)
}

// RenderImagePalette is RenderImage with an explicit palette.
func RenderImagePalette(width, height int, p Params, pal Palette) *image.RGBA {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	GeneratePalette(img.Pix, width, height, p, pal)
	return img
}
