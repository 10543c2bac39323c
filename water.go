package fractal

// Wave propagation constants, tuned for a stable-looking surface at the
// timesteps the presentation layer uses.
const (
	waveSpeed   = 1.5
	waveDamping = 0.98
)

// WaterStep advances a square heightfield simulation by one timestep.
// heights and velocities are size×size row-major grids. Interior cells
// accelerate toward the 4-neighborhood laplacian of the surface, damped
// velocities then integrate into heights across the whole field. Border
// cells keep their velocity, which pins the edge and avoids out-of-bounds
// neighbor reads. Grids too small to have an interior, or slices shorter
// than size*size, make the call a no-op.
func WaterStep(heights, velocities []float32, size int, dt float32) {
	if size < 3 || len(heights) < size*size || len(velocities) < size*size {
		return
	}
	for y := 1; y < size-1; y++ {
		for x := 1; x < size-1; x++ {
			i := y*size + x
			lap := heights[i-1] + heights[i+1] + heights[i-size] + heights[i+size] - 4*heights[i]
			accel := waveSpeed * waveSpeed * lap
			velocities[i] = (velocities[i] + accel*dt) * waveDamping
		}
	}
	for i := 0; i < size*size; i++ {
		heights[i] += velocities[i] * dt
	}
}
