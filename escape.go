package fractal

import "math"

// Points whose orbit leaves the circle |z| = 2 are guaranteed to diverge,
// so the escape check compares |z|² against 4.
const escapeRadiusSq = 4.0

// Result is the outcome of iterating one point.
type Result struct {
	Escaped bool
	Count   uint32  // iterations completed before escape, or the budget
	MagSq   float64 // |z|² after the last completed iteration
}

// Iterate runs z ← z² + c from z = 0 until the orbit escapes or the budget
// runs out. Components are tracked separately to keep the loop free of
// complex128 overhead. The recurrence always steps at least once, so a
// point already outside the escape circle reports Count 1.
func Iterate(c Point, limit int) Result {
	var x, y float64
	n := 0
	for n < limit && x*x+y*y <= escapeRadiusSq {
		x, y = x*x-y*y+c.Re, 2*x*y+c.Im
		n++
	}
	magSq := x*x + y*y
	return Result{
		Escaped: magSq > escapeRadiusSq,
		Count:   uint32(n),
		MagSq:   magSq,
	}
}

// Smooth is the renormalized iteration count, a continuous extension of
// Count that removes banding in zoom animations. Only meaningful when the
// point escaped, which guarantees MagSq > 4 and keeps both logs defined.
func (r Result) Smooth() float64 {
	return float64(r.Count) + 1 - math.Log(math.Log(r.MagSq))/math.Ln2
}
