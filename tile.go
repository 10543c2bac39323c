package fractal

import "image"

// Region is an axis-aligned rectangle of the complex plane, the shape
// landmark coordinates are usually published in.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

// Landmarks indexes the named regions for flag and URL lookup.
var Landmarks = map[string]Region{
	"seahorse":    SeahorseValley,
	"elephant":    ElephantValley,
	"minibrot":    SpiralMinibrot,
	"triple":      TripleSpiral,
	"dragon":      ValleyOfTheDragon,
	"mini-spiral": MinibrotInMiniSpiral,
}

// Viewport converts r to the viewport whose horizontal extent matches r.
// The vertical extent follows the output aspect ratio, so r's Y range
// contributes only its center. A degenerate region falls back to zoom 1
// through the usual sanitization.
func (r Region) Viewport() Viewport {
	return Viewport{
		CenterX: (r.Xmin + r.Xmax) / 2,
		CenterY: (r.Ymin + r.Ymax) / 2,
		Zoom:    Span / (r.Xmax - r.Xmin),
	}
}

// SplitTiles cuts a width×height pixel grid into tiles of at most
// tileW×tileH pixels, clipped at the right and bottom edges. Returns nil
// if any dimension is non-positive.
func SplitTiles(width, height, tileW, tileH int) []image.Rectangle {
	if width <= 0 || height <= 0 || tileW <= 0 || tileH <= 0 {
		return nil
	}
	cols := (width + tileW - 1) / tileW
	rows := (height + tileH - 1) / tileH
	tiles := make([]image.Rectangle, 0, cols*rows)
	for y := 0; y < height; y += tileH {
		for x := 0; x < width; x += tileW {
			tiles = append(tiles, image.Rect(x, y, min(x+tileW, width), min(y+tileH, height)))
		}
	}
	return tiles
}

// RenderTile renders one tile of a virtual imgW×imgH frame. The returned
// image keeps the tile's global coordinates so callers can composite tiles
// with draw.Draw as they arrive.
func RenderTile(tile image.Rectangle, imgW, imgH int, p Params) *image.RGBA {
	img := image.NewRGBA(tile)
	if imgW <= 0 || imgH <= 0 {
		return img
	}
	p = p.sanitized()
	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		for px := tile.Min.X; px < tile.Max.X; px++ {
			res := Iterate(PointAt(px, py, imgW, imgH, p.Viewport), p.Iterations)
			img.SetRGBA(px, py, Shade(res, p.Iterations, Psychedelic))
		}
	}
	return img
}
