package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/haulledger/backend/internal/auth"
	"github.com/haulledger/backend/internal/events"
)

const (
	streamBuffer    = 16
	streamPing      = 30 * time.Second
	streamReadWait  = 60 * time.Second
	streamWriteWait = 10 * time.Second
	streamReadLimit = 512
)

// EventStream serves GET /events: a websocket that pushes the caller's change
// events so clients know when to refetch. Events are hints, not data; a slow
// client drops events rather than stalling publishers.
type EventStream struct {
	ctx      context.Context
	bus      events.Bus
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewEventStream returns the /events handler. Open streams are closed when ctx
// is cancelled; http.Server.Shutdown does not track hijacked connections.
// allowedOrigins is the CORS allow-list; an empty list accepts any origin.
func NewEventStream(ctx context.Context, bus events.Bus, logger *slog.Logger, allowedOrigins []string) *EventStream {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &EventStream{
		ctx:    ctx,
		bus:    bus,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || len(allowed) == 0 || allowed[origin]
			},
		},
	}
}

// ServeHTTP upgrades the connection and streams events until either side closes.
func (s *EventStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	send := make(chan events.Event, streamBuffer)
	unsubscribe := s.bus.Subscribe(func(_ context.Context, e events.Event) {
		if e.UserID != userID {
			return
		}
		select {
		case send <- e:
		default:
			s.logger.Warn("dropping event, client buffer full", "user_id", userID, "kind", e.Kind)
		}
	})

	ctx, cancel := context.WithCancel(r.Context())
	stop := context.AfterFunc(s.ctx, cancel)
	go s.writePump(ctx, conn, send)
	s.readPump(conn)

	stop()
	unsubscribe()
	cancel()
	_ = conn.Close()
	s.logger.Debug("event stream closed", "user_id", userID)
}

// readPump discards client messages and returns when the connection closes
// or misses its pong deadline.
func (s *EventStream) readPump(conn *websocket.Conn) {
	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(streamReadWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamReadWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump owns all writes. Closing the connection on exit unblocks readPump.
func (s *EventStream) writePump(ctx context.Context, conn *websocket.Conn, send <-chan events.Event) {
	ticker := time.NewTicker(streamPing)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(streamWriteWait))
			return
		case e := <-send:
			payload, err := json.Marshal(e)
			if err != nil {
				s.logger.Error("marshal event", "error", err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
