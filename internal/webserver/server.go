package webserver

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/psidex/kiu/internal/config"
	"github.com/psidex/kiu/internal/graphs"
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/streets"
)

type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
	// Generated once in NewServer and shared read-only by every request.
	network *streets.Network
	sampled *sampler.Sampled
	page    []byte
}

func NewServer(cfg config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	s.network = streets.NewCache().Get(cfg.Streets)
	s.sampled = sampler.Sample(s.network)
	logger.Info("Generated street network",
		"seed", cfg.Streets.Seed,
		"paths", len(s.network.Paths),
		"arteries", s.network.Count(streets.Artery),
	)

	page, err := s.renderPage()
	if err != nil {
		return nil, err
	}
	s.page = page

	return s, nil
}

// Handler routes the page, the rendered network and the websocket session.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/ws", s.Session)
	mux.Handle("/streets.svg", s.renderHandler(graphs.SVG{
		Palette: s.cfg.Highlight.Palette, Stroke: "#fafafa", Background: "#0a0a0a",
	}, "image/svg+xml"))
	mux.Handle("/streets.png", s.renderHandler(graphs.NewPNG(), "image/png"))
	mux.Handle("/streets.json", s.renderHandler(graphs.Descriptors{}, "application/json"))
	if s.cfg.Server.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.Server.StaticDir))))
	}
	return mux
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(s.page); err != nil {
		s.logger.Debug("Page write failed", "error", err)
	}
}

func (s *Server) renderHandler(r graphs.Renderer, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var buf bytes.Buffer
		if err := r.Render(&buf, s.network); err != nil {
			s.logger.Error("Render failed", "path", req.URL.Path, "error", err)
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = buf.WriteTo(w)
	})
}
