// Command server serves an interactive Mandelbrot view over HTTP.
//
// Three endpoints: / is a small canvas page that drives the renderer,
// /render returns a one-off PNG for query parameters, and /ws streams
// rendered frames over a websocket, one binary message per frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	fractal "github.com/ganassini/fractalview"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		addr     = flag.String("addr", ":8080", "listen address")
		landmark = flag.String("landmark", "", "named region to open on")
	)
	flag.Parse()

	start := fractal.Viewport{
		CenterX: fractal.DefaultCenterX,
		CenterY: fractal.DefaultCenterY,
		Zoom:    fractal.DefaultZoom,
	}
	if *landmark != "" {
		region, ok := fractal.Landmarks[*landmark]
		if !ok {
			return fmt.Errorf("unknown landmark %q", *landmark)
		}
		start = region.Viewport()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler(start))
	mux.HandleFunc("/render", renderHandler)
	mux.HandleFunc("/ws", wsHandler)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}
