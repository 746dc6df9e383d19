// Package live serves in-place navigation over a websocket. The browser keeps
// the layout frame it already has and asks the server for the content region
// of each path it navigates to; every connection owns its own Navigator.
package live

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/middleware"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/shell"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Message types.
const (
	TypeNavigate = "navigate"
	TypeRender   = "render"
	TypeError    = "error"
)

// Message is sent by the browser.
type Message struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// Reply is sent by the server, one per message.
type Reply struct {
	Type  string `json:"type"`
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
	Title string `json:"title,omitempty"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// Observer is told when connections open and close.
type Observer interface {
	LiveSessionOpened()
	LiveSessionClosed()
}

type nopObserver struct{}

func (nopObserver) LiveSessionOpened() {}
func (nopObserver) LiveSessionClosed() {}

// Handler upgrades requests to live navigation sessions.
type Handler struct {
	shell    *shell.Router
	upgrader websocket.Upgrader
	observer Observer
	origins  []string
	logger   *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithObserver sets the connection observer.
func WithObserver(o Observer) Option {
	return func(h *Handler) { h.observer = o }
}

// WithAllowedOrigins accepts upgrades from these origins in addition to the
// request's own host. Each entry may be a full URL; only scheme and host count.
func WithAllowedOrigins(origins ...string) Option {
	return func(h *Handler) {
		for _, o := range origins {
			u, err := url.Parse(o)
			if err != nil || u.Scheme == "" || u.Host == "" {
				continue
			}
			h.origins = append(h.origins, u.Scheme+"://"+u.Host)
		}
	}
}

// NewHandler creates a live navigation handler rendering through sh.
func NewHandler(sh *shell.Router, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		shell: sh,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		observer: nopObserver{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.upgrader.CheckOrigin = h.checkOrigin
	return h
}

// checkOrigin allows requests without an Origin header, same-host origins and
// the configured origins.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range h.origins {
		if strings.EqualFold(u.Scheme+"://"+u.Host, allowed) {
			return true
		}
	}
	return false
}

// ServeHTTP upgrades the connection and runs the session until the peer
// goes away. The "path" query parameter is the browser's current path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.logger.Warn("live upgrade failed", "error", err)
		return
	}

	s := &liveSession{
		conn:   conn,
		shell:  h.shell,
		nav:    shell.NewNavigator(r.URL.Query().Get("path")),
		logger: h.logger,
	}
	if v := middleware.GetVisitor(r.Context()); v != nil {
		s.logger = h.logger.With("visitor_id", v.ID)
	}

	h.observer.LiveSessionOpened()
	defer h.observer.LiveSessionClosed()

	s.run(r.Context())
}

type liveSession struct {
	conn   *websocket.Conn
	shell  *shell.Router
	nav    *shell.Navigator
	logger *slog.Logger
}

func (s *liveSession) run(ctx context.Context) {
	defer s.conn.Close()

	s.logger.Debug("live session started", "path", s.nav.Current())

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go s.keepAlive(done)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("live session read failed", "error", err)
			}
			s.logger.Debug("live session ended", "path", s.nav.Current(), "visits", s.nav.Visits())
			return
		}

		reply := s.handle(ctx, data)

		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteJSON(reply); err != nil {
			s.logger.Warn("live session write failed", "error", err)
			return
		}
	}
}

// keepAlive pings the peer until done is closed. WriteControl may run
// concurrently with the reader loop's writes.
func (s *liveSession) keepAlive(done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (s *liveSession) handle(ctx context.Context, data []byte) Reply {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Reply{Type: TypeError, Error: "invalid message: " + err.Error()}
	}

	switch msg.Type {
	case TypeNavigate:
		return s.navigate(ctx, msg.Path)
	default:
		return Reply{Type: TypeError, Error: fmt.Sprintf("unknown message type %q", msg.Type)}
	}
}

func (s *liveSession) navigate(ctx context.Context, path string) Reply {
	if path == "" {
		return Reply{Type: TypeError, Error: "navigate requires a path"}
	}

	prev := s.nav.Navigate(path)

	var buf bytes.Buffer
	res, err := s.shell.RenderContent(ctx, &buf, s.nav.Current(), shell.SourceLive)
	if err != nil {
		s.logger.Error("live render failed", "path", res.Path, "error", err)
		return Reply{Type: TypeError, Path: res.Path, Error: "failed to render page"}
	}

	s.logger.Debug("live navigation", "from", prev, "to", res.Path, "found", res.Found)

	return Reply{
		Type:  TypeRender,
		Path:  res.Path,
		Found: res.Found,
		Title: res.Title(),
		HTML:  buf.String(),
	}
}
