package webserver

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"

	"github.com/psidex/kiu/internal/graphs"
	"github.com/psidex/kiu/internal/lib"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Keeping it Urban</title>
    <style>
      * { margin: 0; box-sizing: border-box; }
      body { background: #0a0a0a; color: #fafafa; font-family: sans-serif; }
      .hero { position: relative; height: 100vh; overflow: hidden; }
      .streets { position: absolute; inset: 0; width: 100%; height: 100%; }
      .streets path { transition: stroke-opacity 120ms linear, stroke-width 120ms linear; }
      .tessellation { position: absolute; inset: 0; display: grid; grid-template-columns: repeat({{.Cols}}, 1fr); pointer-events: none; }
      .tile { border: 1px solid #fafafa; opacity: 0.03; transition: opacity 120ms linear, transform 120ms linear; }
      .hero-content { position: absolute; left: 8vw; bottom: 12vh; }
      .hero-title { font-size: 6vw; line-height: 1; }
      .typed { display: block; min-height: 1.2em; font-size: 2vw; color: #9a9a9a; }
      .carousel { list-style: none; padding: 0; margin-top: 2em; }
      .carousel li { display: none; }
      .carousel li.active { display: block; }
    </style>
  </head>
  <body>
    <header class="hero" id="hero">
      {{.Streets}}
      <div class="tessellation" aria-hidden="true">
        {{- range .Tiles}}<div class="tile"></div>{{end}}
      </div>
      <div class="hero-content">
        <h1 class="hero-title">Keeping it<br>Urban</h1>
        <span class="typed" id="typed"></span>
        <ul class="carousel" id="carousel">
          {{- range $i, $item := .Items}}
          <li class="{{if eq $i 0}}active{{end}}">{{$item}}</li>
          {{- end}}
        </ul>
      </div>
    </header>
    <footer data-version="{{.Version}}"></footer>
    <script type="text/javascript">
const hero = document.getElementById("hero");
const svg = hero.querySelector("svg.streets");
const tiles = hero.querySelectorAll(".tile");
const items = document.querySelectorAll("#carousel li");
const typed = document.getElementById("typed");
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");

let pending = null;
function queue(msg) {
  if (pending === null) {
    requestAnimationFrame(() => {
      if (ws.readyState === WebSocket.OPEN) {
        pending.forEach((m) => ws.send(JSON.stringify(m)));
      }
      pending = null;
    });
    pending = [];
  }
  pending = pending.filter((m) => m.type !== msg.type);
  pending.push(msg);
}

hero.addEventListener("mousemove", (e) => {
  const rect = hero.getBoundingClientRect();
  queue({ type: "hero", x: (e.clientX - rect.left) / rect.width, y: (e.clientY - rect.top) / rect.height });
  const pt = svg.createSVGPoint();
  pt.x = e.clientX;
  pt.y = e.clientY;
  const local = pt.matrixTransform(svg.getScreenCTM().inverse());
  queue({ type: "pointer", x: local.x, y: local.y });
}, { passive: true });

hero.addEventListener("mouseleave", () => queue({ type: "leave" }));

ws.onmessage = (event) => {
  const msg = JSON.parse(event.data);
  switch (msg.type) {
  case "highlight":
    msg.styles.forEach((s, i) => {
      const path = document.getElementById("street-" + i);
      if (path) {
        path.setAttribute("stroke-opacity", s.o.toFixed(3));
        path.setAttribute("stroke-width", s.w.toFixed(2));
      }
    });
    break;
  case "tiles":
    msg.tiles.forEach((t, i) => {
      if (tiles[i]) {
        tiles[i].style.opacity = t.o;
        tiles[i].style.transform = "translate(" + t.x + "px, " + t.y + "px)";
      }
    });
    break;
  case "typewriter":
    typed.textContent = msg.text;
    break;
  case "carousel":
    items.forEach((li, i) => li.classList.toggle("active", i === msg.index));
    break;
  }
};
    </script>
  </body>
</html>
`))

type pageData struct {
	Streets template.HTML
	Tiles   []struct{}
	Cols    int
	Items   []string
	Version string
}

// renderPage renders the page once; its content only depends on the server config.
func (s *Server) renderPage() ([]byte, error) {
	var svg bytes.Buffer
	r := graphs.SVG{Palette: s.cfg.Highlight.Palette, Stroke: "#fafafa"}
	if err := r.Render(&svg, s.network); err != nil {
		return nil, errors.Wrap(err, "render streets svg")
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, pageData{
		Streets: template.HTML(svg.String()),
		Tiles:   make([]struct{}, s.cfg.Tessellation.Len()),
		Cols:    s.cfg.Tessellation.Cols,
		Items:   s.cfg.Carousel.Items,
		Version: lib.Version,
	})
	if err != nil {
		return nil, errors.Wrap(err, "render page")
	}

	return page.Bytes(), nil
}
