package live_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/live"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/pages"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/shell"
)

type countingObserver struct {
	mu             sync.Mutex
	opened, closed int
}

func (c *countingObserver) LiveSessionOpened() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opened++
}

func (c *countingObserver) LiveSessionClosed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
}

func (c *countingObserver) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened, c.closed
}

func testServer(t *testing.T, opts ...live.Option) *httptest.Server {
	t.Helper()

	table, err := pages.Table()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sh := shell.NewRouter(table, pages.Header(), shell.WithLogger(logger))

	server := httptest.NewServer(live.NewHandler(sh, logger, opts...))
	t.Cleanup(server.Close)
	return server
}

func liveURL(server *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/_shell/live?path=" + path
}

func dial(t *testing.T, server *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(liveURL(server, path), nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) live.Reply {
	t.Helper()

	require.NoError(t, conn.WriteJSON(msg))

	var reply live.Reply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestNavigate(t *testing.T) {
	conn := dial(t, testServer(t), "/")

	reply := roundTrip(t, conn, live.Message{Type: live.TypeNavigate, Path: "/lesson-planner"})

	assert.Equal(t, live.TypeRender, reply.Type)
	assert.Equal(t, "/lesson-planner", reply.Path)
	assert.True(t, reply.Found)
	assert.Equal(t, "Lesson Planner", reply.Title)
	assert.Contains(t, reply.HTML, `data-page="lesson-planner"`)
	assert.Equal(t, 1, strings.Count(reply.HTML, "data-page="))
	assert.NotContains(t, reply.HTML, "<header", "content region only")
}

func TestNavigate_Sequence(t *testing.T) {
	conn := dial(t, testServer(t), "/")

	first := roundTrip(t, conn, live.Message{Type: live.TypeNavigate, Path: "/visual-aids"})
	_ = roundTrip(t, conn, live.Message{Type: live.TypeNavigate, Path: "/"})
	again := roundTrip(t, conn, live.Message{Type: live.TypeNavigate, Path: "/visual-aids/"})

	assert.Equal(t, first, again)
}

func TestNavigate_NotFound(t *testing.T) {
	conn := dial(t, testServer(t), "/")

	reply := roundTrip(t, conn, live.Message{Type: live.TypeNavigate, Path: "/unknown"})

	assert.Equal(t, live.TypeRender, reply.Type)
	assert.Equal(t, "/unknown", reply.Path)
	assert.False(t, reply.Found)
	assert.Equal(t, "Not Found", reply.Title)
	assert.Empty(t, reply.HTML)
}

func TestProtocolErrorsKeepConnection(t *testing.T) {
	conn := dial(t, testServer(t), "/")

	reply := roundTrip(t, conn, live.Message{Type: "scroll"})
	assert.Equal(t, live.TypeError, reply.Type)
	assert.Contains(t, reply.Error, `unknown message type "scroll"`)

	reply = roundTrip(t, conn, live.Message{Type: live.TypeNavigate})
	assert.Equal(t, live.TypeError, reply.Type)
	assert.Equal(t, "navigate requires a path", reply.Error)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var bad live.Reply
	require.NoError(t, conn.ReadJSON(&bad))
	assert.Equal(t, live.TypeError, bad.Type)
	assert.Contains(t, bad.Error, "invalid message")

	reply = roundTrip(t, conn, live.Message{Type: live.TypeNavigate, Path: "/game-generator"})
	assert.Equal(t, live.TypeRender, reply.Type)
	assert.True(t, reply.Found)
}

func TestSessionsAreIndependent(t *testing.T) {
	server := testServer(t)
	a := dial(t, server, "/")
	b := dial(t, server, "/")

	ra := roundTrip(t, a, live.Message{Type: live.TypeNavigate, Path: "/student-profiles"})
	rb := roundTrip(t, b, live.Message{Type: live.TypeNavigate, Path: "/voice-commands"})

	assert.Contains(t, ra.HTML, `data-page="student-profiles"`)
	assert.Contains(t, rb.HTML, `data-page="voice-commands"`)
}

func TestObserver(t *testing.T) {
	obs := &countingObserver{}
	conn := dial(t, testServer(t, live.WithObserver(obs)), "/")

	_ = roundTrip(t, conn, live.Message{Type: live.TypeNavigate, Path: "/"})
	opened, _ := obs.counts()
	assert.Equal(t, 1, opened)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool {
		_, closed := obs.counts()
		return closed == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRejectsPlainHTTP(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/_shell/live")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrigins(t *testing.T) {
	server := testServer(t, live.WithAllowedOrigins("https://sahayak.example/", "not a url"))

	tests := []struct {
		name   string
		origin string
		wantOK bool
	}{
		{"same host", server.URL, true},
		{"configured origin", "https://sahayak.example", true},
		{"configured host other scheme", "http://sahayak.example", false},
		{"foreign origin", "https://elsewhere.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{"Origin": []string{tt.origin}}
			conn, resp, err := websocket.DefaultDialer.Dial(liveURL(server, "/"), header)
			if resp != nil {
				resp.Body.Close()
			}

			if tt.wantOK {
				require.NoError(t, err)
				conn.Close()
				return
			}
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		})
	}
}
