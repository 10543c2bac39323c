// Command libfractal builds the engine as a C shared library:
//
//	go build -buildmode=c-shared -o libfractal.so ./cmd/libfractal
//
// The exports are the fixed call layout the presentation layer loads at
// runtime. None of them return anything, so there is no error channel;
// all defensive input handling lives in the library and is shared with
// the native Go API.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	fractal "github.com/ganassini/fractalview"
)

//export generate_fractal
func generate_fractal(buffer *C.uint8_t, width, height C.int32_t, centerX, centerY, zoom C.double, iterations C.int32_t) {
	if buffer == nil || width <= 0 || height <= 0 {
		return
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(width)*int(height)*4)
	fractal.Generate(buf, int(width), int(height), fractal.Params{
		Viewport: fractal.Viewport{
			CenterX: float64(centerX),
			CenterY: float64(centerY),
			Zoom:    float64(zoom),
		},
		Iterations: int(iterations),
	})
}

//export raytrace_scene
func raytrace_scene(buffer *C.uint8_t, width, height C.int32_t, camX, camY, camZ, lookX, lookY, lookZ C.double) {
	if buffer == nil || width <= 0 || height <= 0 {
		return
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(width)*int(height)*4)
	fractal.Raytrace(buf, int(width), int(height), fractal.Camera{
		X: float64(camX), Y: float64(camY), Z: float64(camZ),
		LookX: float64(lookX), LookY: float64(lookY), LookZ: float64(lookZ),
	})
}

//export apply_water_forces
func apply_water_forces(heights, velocities *C.float, size C.int32_t, dt C.float) {
	if heights == nil || velocities == nil || size <= 0 {
		return
	}
	n := int(size) * int(size)
	h := unsafe.Slice((*float32)(unsafe.Pointer(heights)), n)
	v := unsafe.Slice((*float32)(unsafe.Pointer(velocities)), n)
	fractal.WaterStep(h, v, int(size), float32(dt))
}

func main() {}
