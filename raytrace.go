package fractal

import (
	"math"
	"runtime"
	"sync"
)

// Camera positions the raytraced demo scene. The look vector is part of
// the call contract but the projection is fixed looking down -Z, so only
// the position moves the view.
type Camera struct {
	X, Y, Z             float64
	LookX, LookY, LookZ float64
}

// Scene geometry: one sphere in front of the default camera.
const (
	sphereZ      = -10.0
	sphereRadius = 3.0
)

// The sphere surface samples the set on a fixed virtual grid, so the
// texture does not depend on the output resolution.
const (
	texelGrid = 256
	texelIter = 100
)

// Raytrace renders the demo scene into buf: a single sphere textured by
// sampling the Mandelbrot set at the hit point, over a vertical sky
// gradient. The buffer contract and defensive policy match Generate:
// row-major RGBA8, alpha 255, no-op on bad dimensions, never panics.
func Raytrace(buf []byte, width, height int, cam Camera) {
	if width <= 0 || height <= 0 || len(buf) < width*height*4 {
		return
	}
	if !isFinite(cam.X) {
		cam.X = 0
	}
	if !isFinite(cam.Y) {
		cam.Y = 0
	}
	if !isFinite(cam.Z) {
		cam.Z = 0
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	rowsPer := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rowsPer {
		y1 := y0 + rowsPer
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for py := y0; py < y1; py++ {
				off := py * width * 4
				for px := 0; px < width; px++ {
					r, g, b := raytracePixel(px, py, width, height, cam)
					buf[off] = uint8(r * 255)
					buf[off+1] = uint8(g * 255)
					buf[off+2] = uint8(b * 255)
					buf[off+3] = 255
					off += 4
				}
			}
		}(y0, y1)
	}
	wg.Wait()
}

// raytracePixel shoots one ray through pixel (px, py) and shades it in
// [0, 1] channel space.
func raytracePixel(px, py, width, height int, cam Camera) (r, g, b float64) {
	// NDC with y up, camera rays through z = -1.
	x := (float64(px)/float64(width))*2 - 1
	y := 1 - (float64(py)/float64(height))*2

	rayLen := math.Sqrt(x*x + y*y + 1)
	rx, ry, rz := x/rayLen, y/rayLen, -1/rayLen

	ocx := cam.X
	ocy := cam.Y
	ocz := cam.Z - sphereZ

	// Ray direction is unit length, so the quadratic's leading term is 1.
	bq := 2 * (ocx*rx + ocy*ry + ocz*rz)
	cq := ocx*ocx + ocy*ocy + ocz*ocz - sphereRadius*sphereRadius
	disc := bq*bq - 4*cq

	if disc < 0 {
		// Sky: vertical gradient from horizon haze to zenith blue.
		t := (y + 1) * 0.5
		return 0.5*(1-t) + 0.1*t, 0.7*(1-t) + 0.3*t, 1.0*(1-t) + 0.6*t
	}

	t := (-bq - math.Sqrt(disc)) / 2
	if t <= 0 {
		// Sphere is behind the camera.
		return 0.2, 0.3, 0.8
	}

	hx := cam.X + t*rx
	hy := cam.Y + t*ry
	u := (hx + sphereRadius) / (2 * sphereRadius)
	v := (hy + sphereRadius) / (2 * sphereRadius)
	return fractalTexel(u, v)
}

// fractalTexel samples the default full-set view at texture coordinate
// (u, v) and returns the shaded color in [0, 1] channel space.
func fractalTexel(u, v float64) (r, g, b float64) {
	view := Viewport{CenterX: DefaultCenterX, CenterY: DefaultCenterY, Zoom: DefaultZoom}
	pt := PointAt(int(u*texelGrid), int(v*texelGrid), texelGrid, texelGrid, view)
	c := Shade(Iterate(pt, texelIter), texelIter, Psychedelic)
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
