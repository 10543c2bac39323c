package fractal

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// A Palette maps a normalized escape value to an opaque color. Values
// outside [0, 1) are legal; palettes wrap or extend them smoothly.
type Palette func(t float64) color.RGBA

// Interior is the color of points that never escape within the budget.
var Interior = color.RGBA{A: 255}

// Psychedelic is the default palette: three sine waves at different
// frequencies and phases, one per channel. Nearby escape values land on
// strongly contrasting colors, which makes filament detail pop.
func Psychedelic(t float64) color.RGBA {
	r := (math.Sin(t*math.Pi*3)*0.5 + 0.5) * 255
	g := (math.Sin(t*math.Pi*5+math.Pi/3)*0.5 + 0.5) * 255
	b := (math.Sin(t*math.Pi*7+2*math.Pi/3)*0.5 + 0.5) * 255
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// HueSweep walks the full hue circle once per unit of t at full saturation
// and value.
func HueSweep(t float64) color.RGBA {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	r, g, b := colorful.Hsv(t*360, 1, 1).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Palettes indexes the named palettes for flag and URL lookup.
var Palettes = map[string]Palette{
	"psychedelic": Psychedelic,
	"hue":         HueSweep,
}

// Shade colors one iteration result. Interior points always get the fixed
// interior color; escaped points get their smooth iteration value
// normalized by the budget and run through pal. Identical inputs always
// yield identical colors.
func Shade(res Result, limit int, pal Palette) color.RGBA {
	if !res.Escaped {
		return Interior
	}
	return pal(res.Smooth() / float64(limit))
}
