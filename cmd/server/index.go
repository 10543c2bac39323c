package main

import (
	"fmt"
	"net/http"

	fractal "github.com/ganassini/fractalview"
)

// indexHandler serves the canvas page. The starting viewport is baked into
// the page so -landmark works without any client-side knowledge.
func indexHandler(start fractal.Viewport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexPage, start.CenterX, start.CenterY, start.Zoom)
	}
}

// The page keeps all viewport state client-side and only ships frame
// requests to /ws. Drag pans, wheel zooms around the cursor.
const indexPage = `<!DOCTYPE html>
<html>
<head>
<title>Mandelbrot</title>
<style>
  body { margin: 0; background: #111; color: #ddd; font: 13px monospace; }
  #hud { position: fixed; top: 8px; left: 8px; }
  canvas { display: block; cursor: crosshair; }
</style>
</head>
<body>
<div id="hud"></div>
<canvas id="view"></canvas>
<script>
const SPAN = 4.0;
let view = { x: %g, y: %g, zoom: %g, iter: 256 };
let inflight = false, dirty = true;

const canvas = document.getElementById("view");
const ctx = canvas.getContext("2d");
canvas.width = window.innerWidth;
canvas.height = window.innerHeight;

const proto = location.protocol === "https:" ? "wss" : "ws";
const ws = new WebSocket(proto + "://" + location.host + "/ws");
ws.binaryType = "arraybuffer";
ws.onopen = pump;
ws.onmessage = (ev) => {
  const head = new DataView(ev.data, 0, 8);
  const w = head.getUint32(0, true), h = head.getUint32(4, true);
  const pix = new Uint8ClampedArray(ev.data, 8);
  ctx.putImageData(new ImageData(pix, w, h), 0, 0);
  inflight = false;
  pump();
};

function pump() {
  if (inflight || !dirty || ws.readyState !== WebSocket.OPEN) return;
  dirty = false;
  inflight = true;
  ws.send(JSON.stringify({
    x: view.x, y: view.y, zoom: view.zoom, iter: view.iter,
    w: canvas.width, h: canvas.height,
  }));
  hud();
}

function hud() {
  document.getElementById("hud").textContent =
    "center (" + view.x.toPrecision(8) + ", " + view.y.toPrecision(8) +
    ")  zoom " + view.zoom.toPrecision(4) + "  iter " + view.iter;
}

function complexAt(px, py) {
  const scale = SPAN / view.zoom;
  return {
    re: view.x + (px - canvas.width / 2) * scale / canvas.width,
    im: view.y + (py - canvas.height / 2) * scale / canvas.height,
  };
}

let drag = null;
canvas.onmousedown = (e) => { drag = { x: e.clientX, y: e.clientY }; };
canvas.onmouseup = () => { drag = null; };
canvas.onmousemove = (e) => {
  if (!drag) return;
  const scale = SPAN / view.zoom;
  view.x -= (e.clientX - drag.x) * scale / canvas.width;
  view.y -= (e.clientY - drag.y) * scale / canvas.height;
  drag = { x: e.clientX, y: e.clientY };
  dirty = true;
  pump();
};
canvas.onwheel = (e) => {
  e.preventDefault();
  const factor = e.deltaY < 0 ? 1.25 : 0.8;
  const c = complexAt(e.clientX, e.clientY);
  view.zoom *= factor;
  view.x = c.re + (view.x - c.re) / factor;
  view.y = c.im + (view.y - c.im) / factor;
  view.iter = Math.min(2000, Math.max(256, Math.round(80 * Math.log2(view.zoom + 1) + 256)));
  dirty = true;
  pump();
};
window.onresize = () => {
  canvas.width = window.innerWidth;
  canvas.height = window.innerHeight;
  dirty = true;
  pump();
};
hud();
</script>
</body>
</html>`
