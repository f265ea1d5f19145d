package webserver

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/reveal"
	"github.com/psidex/kiu/internal/sampler"
	"github.com/psidex/kiu/internal/schedule"
)

// session is the state owned by one websocket connection.
type session struct {
	id     string
	ws     lib.ThreadSafeWebSocket
	logger *slog.Logger
	// mu guards the view state below; timer callbacks and the read loop share it.
	mu         *sync.Mutex
	typewriter *reveal.Typewriter
	carousel   *reveal.Carousel
	// typing drives the typewriter. Only the read loop replaces it.
	typing *schedule.Task
}

func (s *session) send(v any) bool {
	if err := s.ws.WriteJSON(v); err != nil {
		s.logger.Debug("ws write err", "error", err)
		return false
	}
	return true
}

// Session upgrades the request to a websocket and serves pointer highlights and timer
// driven frames until the client goes away.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("ws upgrade err", "error", err)
		return
	}
	ws := lib.NewThreadSafeWebSocket(c)
	defer ws.Close()

	sess := &session{
		id:         uuid.NewString(),
		ws:         ws,
		mu:         &sync.Mutex{},
		typewriter: reveal.NewTypewriter(s.cfg.Typewriter.Text),
		carousel:   reveal.NewCarousel(s.cfg.Carousel.Items),
	}
	sess.logger = s.logger.With("session", sess.id)
	sess.logger.Info("Session started", "remote", r.RemoteAddr)

	if !sess.send(helloMessage{
		Type:    "hello",
		Session: sess.id,
		Version: lib.Version,
		Seed:    s.network.Config.Seed,
		Paths:   len(s.network.Paths),
	}) {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tasks := schedule.NewGroup()
	defer tasks.Stop()

	sess.typing = s.startTypewriter(ctx, sess)
	defer func() { sess.typing.Stop() }()
	if sess.carousel.Len() > 1 {
		tasks.Add(schedule.Every(ctx, s.cfg.Carousel.Interval.Duration, func() bool {
			sess.mu.Lock()
			index := sess.carousel.Advance()
			msg := carouselMessage{
				Type:  "carousel",
				Index: index,
				Item:  sess.carousel.Current(),
				Angle: sess.carousel.Angle(),
			}
			sess.mu.Unlock()
			return sess.send(msg)
		}))
	}

	for {
		var ev clientEvent
		if err := ws.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.logger.Warn("ws read err", "error", err)
			}
			break
		}
		if !s.handleEvent(ctx, sess, ev) {
			break
		}
	}

	sess.logger.Info("Session ended")
}

func (s *Server) startTypewriter(ctx context.Context, sess *session) *schedule.Task {
	return schedule.Every(ctx, s.cfg.Typewriter.Interval.Duration, func() bool {
		sess.mu.Lock()
		changed := sess.typewriter.Tick()
		msg := typewriterMessage{
			Type: "typewriter",
			Text: sess.typewriter.Visible(),
			Done: sess.typewriter.Done(),
		}
		sess.mu.Unlock()

		if !changed {
			return false
		}
		return sess.send(msg) && !msg.Done
	})
}

// handleEvent answers one client event. It returns false when the session should end.
func (s *Server) handleEvent(ctx context.Context, sess *session, ev clientEvent) bool {
	switch ev.Type {
	case eventPointer:
		pointer := sampler.Point{X: ev.X, Y: ev.Y}
		return sess.send(highlightMessage{
			Type:   "highlight",
			Styles: s.sampled.Highlight(&pointer, s.cfg.Highlight.MaxDistance, s.cfg.Highlight.Palette),
		})

	case eventLeave:
		return sess.send(highlightMessage{
			Type:   "highlight",
			Styles: s.sampled.Highlight(nil, s.cfg.Highlight.MaxDistance, s.cfg.Highlight.Palette),
		})

	case eventHero:
		return sess.send(tilesMessage{
			Type:  "tiles",
			Tiles: s.cfg.Tessellation.Tiles(ev.X, ev.Y),
		})

	case eventReplay:
		sess.mu.Lock()
		wasDone := sess.typewriter.Done()
		sess.typewriter.Reset()
		sess.mu.Unlock()
		// A running typewriter task picks up the reset on its own. A finished one is
		// replaced rather than kept alongside the new task.
		if wasDone {
			sess.typing.Stop()
			sess.typing = s.startTypewriter(ctx, sess)
		}
		return true

	default:
		sess.logger.Debug("Unknown client event", "type", ev.Type)
		return sess.send(errorMessage{Type: "error", Error: "unknown event type: " + ev.Type})
	}
}
