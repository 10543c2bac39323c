package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	fractal "github.com/ganassini/fractalview"
)

const (
	baseIter  = 256
	maxIter   = 2000
	panSpeed  = 8.0  // pixels per tick while a pan key is held
	zoomStep  = 1.05 // per tick while a zoom key is held
	demoStep  = 1.01 // auto-zoom factor per tick
	wheelStep = 1.25
)

// landmarkOrder fixes the tab-cycling sequence; the Landmarks map has no
// useful order of its own.
var landmarkOrder = []string{"seahorse", "elephant", "minibrot", "triple", "dragon", "mini-spiral"}

type viewer struct {
	width, height int
	pal           fractal.Palette
	home          fractal.Viewport

	view fractal.Viewport
	iter int

	// Render handoff. The engine call runs on its own goroutine; Update
	// only marks the view dirty and launches a render when none is in
	// flight, so at most one engine call runs at a time.
	mu        sync.Mutex
	pix       []byte
	fresh     bool
	dirty     bool
	rendering bool

	tex *ebiten.Image

	dragging     bool
	dragX, dragY int
	landmarkIdx  int
	demo         bool
	showHelp     bool
}

func newViewer(width, height int, start fractal.Viewport, pal fractal.Palette) *viewer {
	return &viewer{
		width:  width,
		height: height,
		pal:    pal,
		home:   start,
		view:   start,
		iter:   baseIter,
		tex:    ebiten.NewImage(width, height),
		dirty:  true,
	}
}

func (v *viewer) Update() error {
	v.handleKeys()
	v.handleMouse()

	if v.demo {
		v.zoomBy(demoStep)
	}

	v.mu.Lock()
	launch := v.dirty && !v.rendering
	if launch {
		v.dirty = false
		v.rendering = true
	}
	v.mu.Unlock()

	if launch {
		go v.render(fractal.Params{Viewport: v.view, Iterations: v.iter})
	}
	return nil
}

// render is the only caller of the engine. It runs off the game loop so
// deep-zoom frames do not stall input handling.
func (v *viewer) render(p fractal.Params) {
	buf := make([]byte, v.width*v.height*4)
	fractal.GeneratePalette(buf, v.width, v.height, p, v.pal)

	v.mu.Lock()
	v.pix = buf
	v.fresh = true
	v.rendering = false
	v.mu.Unlock()
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	if v.fresh {
		v.tex.WritePixels(v.pix)
		v.fresh = false
	}
	v.mu.Unlock()

	screen.DrawImage(v.tex, nil)

	hud := fmt.Sprintf("center (%.10g, %.10g)  zoom %.6g  iter %d",
		v.view.CenterX, v.view.CenterY, v.view.Zoom, v.iter)
	if v.demo {
		hud += "  [demo]"
	}
	ebitenutil.DebugPrint(screen, hud)

	if v.showHelp {
		ebitenutil.DebugPrintAt(screen, helpText, 8, 24)
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}

const helpText = `arrows/hjkl  pan
+/- or wheel zoom (wheel: around cursor)
[ ]          iteration budget
tab          next landmark
space        auto-zoom demo
r            reset view
p            screenshot
?            toggle this help`

func (v *viewer) handleKeys() {
	scale := fractal.Span / v.view.Zoom

	panX, panY := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyH) {
		panX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyL) {
		panX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyK) {
		panY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyJ) {
		panY += panSpeed
	}
	if panX != 0 || panY != 0 {
		v.view.CenterX += panX * scale / float64(v.width)
		v.view.CenterY += panY * scale / float64(v.height)
		v.markDirty()
	}

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyNumpadAdd) {
		v.zoomBy(zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyNumpadSubtract) {
		v.zoomBy(1 / zoomStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		v.iter = max(1, v.iter/2)
		v.markDirty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		v.iter = min(maxIter, v.iter*2)
		v.markDirty()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		name := landmarkOrder[v.landmarkIdx%len(landmarkOrder)]
		v.landmarkIdx++
		v.view = fractal.Landmarks[name].Viewport()
		v.iter = autoIter(v.view.Zoom)
		v.markDirty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.demo = !v.demo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.view = v.home
		v.iter = baseIter
		v.demo = false
		v.markDirty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.screenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		v.showHelp = !v.showHelp
	}
}

func (v *viewer) handleMouse() {
	cx, cy := ebiten.CursorPosition()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if v.dragging {
			scale := fractal.Span / v.view.Zoom
			v.view.CenterX -= float64(cx-v.dragX) * scale / float64(v.width)
			v.view.CenterY -= float64(cy-v.dragY) * scale / float64(v.height)
			v.markDirty()
		}
		v.dragging = true
		v.dragX, v.dragY = cx, cy
	} else {
		v.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := wheelStep
		if wy < 0 {
			factor = 1 / wheelStep
		}
		v.zoomAround(cx, cy, factor)
	}
}

// zoomAround scales the zoom while keeping the complex point under pixel
// (px, py) where it is.
func (v *viewer) zoomAround(px, py int, factor float64) {
	c := fractal.PointAt(px, py, v.width, v.height, v.view)
	v.view.Zoom *= factor
	v.view.CenterX = c.Re + (v.view.CenterX-c.Re)/factor
	v.view.CenterY = c.Im + (v.view.CenterY-c.Im)/factor
	v.iter = autoIter(v.view.Zoom)
	v.markDirty()
}

func (v *viewer) zoomBy(factor float64) {
	v.view.Zoom *= factor
	v.iter = autoIter(v.view.Zoom)
	v.markDirty()
}

// autoIter grows the iteration budget with zoom depth; the boundary needs
// more iterations to resolve the deeper the view goes.
func autoIter(zoom float64) int {
	n := int(80*math.Log2(zoom+1)) + baseIter
	if n < baseIter {
		n = baseIter
	}
	if n > maxIter {
		n = maxIter
	}
	return n
}

func (v *viewer) markDirty() {
	v.mu.Lock()
	v.dirty = true
	v.mu.Unlock()
}

// screenshot saves the last finished frame; if no frame has completed yet
// there is nothing to save.
func (v *viewer) screenshot() {
	v.mu.Lock()
	pix := v.pix
	v.mu.Unlock()
	if pix == nil {
		return
	}

	img := &image.RGBA{
		Pix:    pix,
		Stride: v.width * 4,
		Rect:   image.Rect(0, 0, v.width, v.height),
	}
	name := fmt.Sprintf("fractal-%s.png", time.Now().Format("20060102-150405"))

	f, err := os.Create(name)
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("saved %q", name)
}
