// Package fractal renders the Mandelbrot set into RGBA8 pixel buffers.
//
// The engine is a pure function of its parameters: a viewport (center,
// zoom), an iteration budget and an output resolution go in, a packed
// row-major RGBA buffer comes out. It keeps no state between calls, so any
// number of renders may run concurrently.
package fractal

import "math"

// Span is the width, in complex-plane units, that a viewport covers at
// zoom 1. 4.0 reproduces the conventional full view over [-2, 2].
const Span = 4.0

// Default view: the whole set, centered between the main cardioid and the
// period-2 bulb.
const (
	DefaultCenterX = -0.5
	DefaultCenterY = 0.0
	DefaultZoom    = 1.0
)

// Viewport is the rectangular part of the complex plane currently mapped
// onto the pixel grid. Screen y grows downward and so does Im, so moving
// the view up means decreasing CenterY.
type Viewport struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// Params carries everything one render needs besides the output buffer.
type Params struct {
	Viewport
	Iterations int
}

// sanitized applies the defensive input policy. The engine has no error
// channel, so broken values are replaced rather than reported: non-finite
// centers snap to the default view, non-positive or non-finite zoom
// becomes 1 and the iteration budget is at least 1.
func (p Params) sanitized() Params {
	if !isFinite(p.CenterX) {
		p.CenterX = DefaultCenterX
	}
	if !isFinite(p.CenterY) {
		p.CenterY = DefaultCenterY
	}
	if !isFinite(p.Zoom) || p.Zoom <= 0 {
		p.Zoom = DefaultZoom
	}
	if p.Iterations < 1 {
		p.Iterations = 1
	}
	return p
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Point is a location on the complex plane.
type Point struct {
	Re, Im float64
}

// PointAt maps pixel (px, py) of a width×height grid onto the complex
// plane under v. The mapping is independent per pixel, so rows may be
// evaluated in any order or in parallel.
func PointAt(px, py, width, height int, v Viewport) Point {
	scale := Span / v.Zoom
	return Point{
		Re: v.CenterX + (float64(px)-float64(width)/2)*scale/float64(width),
		Im: v.CenterY + (float64(py)-float64(height)/2)*scale/float64(height),
	}
}
