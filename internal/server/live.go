package server

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/mhmaidi/folio/internal/welcome"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleLive holds the websocket of one page view. It pushes the welcome
// phases as out-of-band fragments. While attached the view is never swept;
// once the page goes away it is released after the configured grace, so a
// reconnecting client finds it again.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.views.Attach(id); err != nil {
		s.fail(w, r, err)
		return
	}
	defer func() {
		s.views.Detach(id, s.cfg.ReleaseGrace)
		s.log.Debug().Str("view", id).Dur("grace", s.cfg.ReleaseGrace).Msg("view detached")
	}()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Str("view", id).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(s.live, cancel)
	defer stop()

	// The client never sends anything we act on; reading only detects the
	// close.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					s.log.Debug().Err(err).Str("view", id).Msg("websocket read")
				}
				return
			}
		}
	}()

	err = s.cfg.Welcome.Run(ctx, func(phase welcome.Phase) {
		var buf bytes.Buffer
		if err := s.render.Welcome(&buf, phase, true); err != nil {
			s.log.Error().Err(err).Str("view", id).Msg("rendering welcome")
			cancel()
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
			s.log.Debug().Err(err).Str("view", id).Msg("websocket write")
			cancel()
		}
	})
	if err == nil {
		<-ctx.Done()
	}

	deadline := time.Now().Add(time.Second)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
}
