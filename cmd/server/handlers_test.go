package main

import (
	"encoding/binary"
	"image/png"
	"net/http/httptest"
	"testing"

	fractal "github.com/ganassini/fractalview"
)

func TestQueryDefaults(t *testing.T) {
	if got := queryFloat("", 1.5); got != 1.5 {
		t.Errorf("empty float query = %g, want default", got)
	}
	if got := queryFloat("not-a-number", 1.5); got != 1.5 {
		t.Errorf("bad float query = %g, want default", got)
	}
	if got := queryFloat("-0.5", 1.5); got != -0.5 {
		t.Errorf("parsed float = %g, want -0.5", got)
	}
	if got := queryInt("640", 100); got != 640 {
		t.Errorf("parsed int = %d, want 640", got)
	}
	if got := queryInt("x", 100); got != 100 {
		t.Errorf("bad int query = %d, want default", got)
	}
}

func TestFrameRequestValidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want bool
	}{
		{"normal", 1280, 720, true},
		{"zero width", 0, 720, false},
		{"negative height", 100, -1, false},
		{"too large", maxDim + 1, 100, false},
		{"at the cap", maxDim, maxDim, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := frameRequest{W: tt.w, H: tt.h}
			if got := fr.validSize(); got != tt.want {
				t.Errorf("validSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrameRequestIterationCap(t *testing.T) {
	fr := frameRequest{Zoom: 1, Iter: 2000000000, W: 64, H: 64}
	if got := fr.params().Iterations; got != maxIter {
		t.Errorf("params().Iterations = %d, want capped at %d", got, maxIter)
	}
	fr.Iter = 500
	if got := fr.params().Iterations; got != 500 {
		t.Errorf("params().Iterations = %d, want 500 untouched", got)
	}
}

func TestEncodeFrame(t *testing.T) {
	req := frameRequest{X: -0.5, Zoom: 1, Iter: 32, W: 20, H: 10}
	frame := encodeFrame(req)

	if len(frame) != 8+20*10*4 {
		t.Fatalf("frame length %d, want %d", len(frame), 8+20*10*4)
	}
	if w := binary.LittleEndian.Uint32(frame[0:]); w != 20 {
		t.Errorf("header width %d, want 20", w)
	}
	if h := binary.LittleEndian.Uint32(frame[4:]); h != 10 {
		t.Errorf("header height %d, want 10", h)
	}

	want := make([]byte, 20*10*4)
	fractal.Generate(want, 20, 10, req.params())
	for i := range want {
		if frame[8+i] != want[i] {
			t.Fatalf("payload byte %d differs from a direct render", i)
		}
	}
}

func TestRenderHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	renderHandler(rec, httptest.NewRequest("GET", "/render?x=-0.5&zoom=1&iter=16&w=32&h=24", nil))

	if rec.Code != 200 {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("image is %dx%d, want 32x24", b.Dx(), b.Dy())
	}
}

func TestRenderHandlerRejectsBadSize(t *testing.T) {
	rec := httptest.NewRecorder()
	renderHandler(rec, httptest.NewRequest("GET", "/render?w=0", nil))
	if rec.Code != 400 {
		t.Errorf("status %d, want 400", rec.Code)
	}
}
