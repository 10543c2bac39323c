package main

import (
	"encoding/binary"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	fractal "github.com/ganassini/fractalview"
)

// Caps on what one request may cost. The engine itself has no upper
// bounds; the server refuses to allocate absurd buffers or pin a core on
// an absurd iteration budget for clients.
const (
	maxDim  = 4096
	maxIter = 10000
)

// frameRequest is one frame order from the browser.
type frameRequest struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
	Iter int     `json:"iter"`
	W    int     `json:"w"`
	H    int     `json:"h"`
}

func (fr frameRequest) params() fractal.Params {
	iter := fr.Iter
	if iter > maxIter {
		iter = maxIter
	}
	return fractal.Params{
		Viewport:   fractal.Viewport{CenterX: fr.X, CenterY: fr.Y, Zoom: fr.Zoom},
		Iterations: iter,
	}
}

func (fr frameRequest) validSize() bool {
	return fr.W > 0 && fr.H > 0 && fr.W <= maxDim && fr.H <= maxDim
}

// renderHandler returns one PNG frame for query parameters, with the
// default view filling in whatever the query leaves out.
func renderHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := frameRequest{
		X:    queryFloat(q.Get("x"), fractal.DefaultCenterX),
		Y:    queryFloat(q.Get("y"), fractal.DefaultCenterY),
		Zoom: queryFloat(q.Get("zoom"), fractal.DefaultZoom),
		Iter: queryInt(q.Get("iter"), 256),
		W:    queryInt(q.Get("w"), 1280),
		H:    queryInt(q.Get("h"), 720),
	}
	if !req.validSize() {
		http.Error(w, fmt.Sprintf("dimensions must be in 1..%d", maxDim), http.StatusBadRequest)
		return
	}

	img := fractal.RenderImage(req.W, req.H, req.params())
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("encode png: %v", err)
	}
}

// wsHandler streams frames to one browser. The client sends JSON
// frameRequests; every valid request is answered with one binary message:
// an 8-byte header (width, height as uint32 LE) followed by the RGBA8
// buffer. Requests are handled one at a time per connection, so the
// connection goroutine is the debouncer the engine itself does not have.
func wsHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("ws client connected: %s", r.RemoteAddr)
	ctx := r.Context()

	for {
		var req frameRequest
		if err := wsjson.Read(ctx, c, &req); err != nil {
			log.Printf("ws client gone: %v", err)
			return
		}
		if !req.validSize() {
			continue
		}

		frame := encodeFrame(req)
		if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
			log.Printf("ws write: %v", err)
			return
		}
	}
}

// encodeFrame renders one frame into the wire format.
func encodeFrame(req frameRequest) []byte {
	frame := make([]byte, 8+req.W*req.H*4)
	binary.LittleEndian.PutUint32(frame[0:], uint32(req.W))
	binary.LittleEndian.PutUint32(frame[4:], uint32(req.H))
	fractal.Generate(frame[8:], req.W, req.H, req.params())
	return frame
}

func queryFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func queryInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
