package fractal

import (
	"image/color"
	"testing"
)

func TestShadeInterior(t *testing.T) {
	res := Iterate(Point{Re: -0.5, Im: 0}, 100)
	if res.Escaped {
		t.Fatal("(-0.5, 0) escaped")
	}
	for name, pal := range Palettes {
		if got := Shade(res, 100, pal); got != Interior {
			t.Errorf("palette %q: interior shaded %v, want %v", name, got, Interior)
		}
	}
}

func TestShadeDeterministic(t *testing.T) {
	res := Result{Escaped: true, Count: 37, MagSq: 17.5}
	first := Shade(res, 256, Psychedelic)
	for i := 0; i < 10; i++ {
		if got := Shade(res, 256, Psychedelic); got != first {
			t.Fatalf("call %d: %v, want %v", i, got, first)
		}
	}
}

func TestPaletteAlphaOpaque(t *testing.T) {
	for name, pal := range Palettes {
		for _, tv := range []float64{-2.5, -0.1, 0, 0.25, 0.5, 0.99, 1, 3.7} {
			if c := pal(tv); c.A != 255 {
				t.Errorf("palette %q at t=%g: alpha %d, want 255", name, tv, c.A)
			}
		}
	}
}

func TestPsychedelicAnchors(t *testing.T) {
	// sin(0) = 0 on red, the green and blue phases start at sin(π/3).
	if got, want := Psychedelic(0), (color.RGBA{R: 127, G: 237, B: 237, A: 255}); got != want {
		t.Errorf("Psychedelic(0) = %v, want %v", got, want)
	}
}

func TestHueSweepWraps(t *testing.T) {
	if got, want := HueSweep(0), (color.RGBA{R: 255, A: 255}); got != want {
		t.Errorf("HueSweep(0) = %v, want %v", got, want)
	}
	if a, b := HueSweep(0.25), HueSweep(1.25); a != b {
		t.Errorf("HueSweep(0.25) = %v but HueSweep(1.25) = %v", a, b)
	}
}
