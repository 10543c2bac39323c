package fractal

import (
	"math"
	"testing"
)

func TestIterateImmediateEscape(t *testing.T) {
	// c = (2, 2) has |c|² = 8 > 4, so the very first iteration escapes.
	res := Iterate(Point{Re: 2, Im: 2}, 1)
	if !res.Escaped {
		t.Fatal("(2, 2) did not escape")
	}
	if res.Count != 1 {
		t.Errorf("Count = %d, want 1", res.Count)
	}
	if res.MagSq != 8 {
		t.Errorf("MagSq = %g, want 8", res.MagSq)
	}

	// A bigger budget must not change the outcome.
	if res2 := Iterate(Point{Re: 2, Im: 2}, 1000); res2 != res {
		t.Errorf("budget 1000 gave %+v, budget 1 gave %+v", res2, res)
	}
}

func TestIterateInterior(t *testing.T) {
	for _, c := range []Point{
		{Re: 0, Im: 0},
		{Re: -0.5, Im: 0}, // inside the main cardioid
		{Re: -1, Im: 0},   // period-2 bulb center
	} {
		res := Iterate(c, 500)
		if res.Escaped {
			t.Errorf("interior point (%g, %g) escaped at count %d", c.Re, c.Im, res.Count)
		}
		if res.Count != 500 {
			t.Errorf("interior point (%g, %g): Count = %d, want full budget 500", c.Re, c.Im, res.Count)
		}
	}
}

func TestIterateMonotonicEscapeStability(t *testing.T) {
	// A point that escapes with budget N must report the identical result
	// for every budget M > N.
	points := []Point{
		{Re: 0.35, Im: 0.6},
		{Re: -0.75, Im: 0.3},
		{Re: 0.3, Im: 0.6},
		{Re: -1.5, Im: 1.2},
	}
	for _, c := range points {
		res := Iterate(c, 100)
		if !res.Escaped {
			t.Fatalf("test point (%g, %g) did not escape within 100", c.Re, c.Im)
		}
		for _, budget := range []int{101, 250, 10000} {
			if got := Iterate(c, budget); got != res {
				t.Errorf("(%g, %g) budget %d: %+v, want %+v", c.Re, c.Im, budget, got, res)
			}
		}
	}
}

func TestSmoothFinite(t *testing.T) {
	// The renormalized count must stay finite for every escaped point,
	// including ones that shoot far past the escape circle.
	for _, c := range []Point{
		{Re: 2, Im: 2},
		{Re: 100, Im: -100},
		{Re: 0.35, Im: 0.6},
	} {
		res := Iterate(c, 1000)
		if !res.Escaped {
			t.Fatalf("(%g, %g) did not escape", c.Re, c.Im)
		}
		s := res.Smooth()
		if math.IsNaN(s) || math.IsInf(s, 0) {
			t.Errorf("(%g, %g): Smooth() = %g", c.Re, c.Im, s)
		}
	}
}
