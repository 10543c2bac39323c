package fractal

import (
	"image"
	"math"
	"testing"
)

func TestSplitTiles(t *testing.T) {
	tests := []struct {
		name                        string
		width, height, tileW, tileH int
		wantCount                   int
		wantLast                    image.Rectangle
	}{
		{
			name:  "exact fit",
			width: 64, height: 64, tileW: 32, tileH: 32,
			wantCount: 4,
			wantLast:  image.Rect(32, 32, 64, 64),
		},
		{
			name:  "clipped edges",
			width: 70, height: 50, tileW: 32, tileH: 32,
			wantCount: 6,
			wantLast:  image.Rect(64, 32, 70, 50),
		},
		{
			name:  "tile bigger than frame",
			width: 10, height: 10, tileW: 64, tileH: 64,
			wantCount: 1,
			wantLast:  image.Rect(0, 0, 10, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := SplitTiles(tt.width, tt.height, tt.tileW, tt.tileH)
			if len(tiles) != tt.wantCount {
				t.Fatalf("got %d tiles, want %d", len(tiles), tt.wantCount)
			}
			if last := tiles[len(tiles)-1]; last != tt.wantLast {
				t.Errorf("last tile %v, want %v", last, tt.wantLast)
			}

			// Tiles must cover every pixel exactly once.
			covered := 0
			for _, tile := range tiles {
				covered += tile.Dx() * tile.Dy()
			}
			if covered != tt.width*tt.height {
				t.Errorf("tiles cover %d pixels, want %d", covered, tt.width*tt.height)
			}
		})
	}
}

func TestSplitTilesInvalid(t *testing.T) {
	for _, args := range [][4]int{
		{0, 10, 4, 4},
		{10, 0, 4, 4},
		{10, 10, 0, 4},
		{10, 10, 4, -1},
	} {
		if tiles := SplitTiles(args[0], args[1], args[2], args[3]); tiles != nil {
			t.Errorf("SplitTiles(%v) = %v, want nil", args, tiles)
		}
	}
}

func TestRenderTileMatchesFullFrame(t *testing.T) {
	// Rendering tile by tile must reproduce the full frame byte for byte.
	const w, h = 64, 48
	p := Params{Viewport: SeahorseValley.Viewport(), Iterations: 128}
	full := RenderImage(w, h, p)

	for _, tile := range SplitTiles(w, h, 20, 20) {
		img := RenderTile(tile, w, h, p)
		for py := tile.Min.Y; py < tile.Max.Y; py++ {
			for px := tile.Min.X; px < tile.Max.X; px++ {
				if got, want := img.RGBAAt(px, py), full.RGBAAt(px, py); got != want {
					t.Fatalf("pixel (%d, %d) in tile %v: %v, want %v", px, py, tile, got, want)
				}
			}
		}
	}
}

func TestRegionViewport(t *testing.T) {
	v := SeahorseValley.Viewport()
	if math.Abs(v.CenterX+0.75) > 1e-12 || math.Abs(v.CenterY-0.1) > 1e-12 {
		t.Errorf("center (%g, %g), want (-0.75, 0.1)", v.CenterX, v.CenterY)
	}
	// The region is 0.1 wide; at Span 4 that is zoom 40.
	if math.Abs(v.Zoom-40) > 1e-9 {
		t.Errorf("zoom %g, want 40", v.Zoom)
	}
}

func TestLandmarksAreUsableViews(t *testing.T) {
	for name, region := range Landmarks {
		v := region.Viewport()
		if v.Zoom <= 0 || !isFinite(v.Zoom) || !isFinite(v.CenterX) || !isFinite(v.CenterY) {
			t.Errorf("landmark %q yields unusable viewport %+v", name, v)
		}
	}
}
