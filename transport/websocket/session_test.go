package websocket

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession dials a throwaway websocket server and wraps the server side
// of the connection in a session. The write pump is NOT started; tests that
// need it start it themselves.
func newTestSession(t *testing.T) (*session, *websocket.Conn) {
	t.Helper()

	upgraded := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		upgraded <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	var serverConn *websocket.Conn
	select {
	case serverConn = <-upgraded:
	case <-time.After(5 * time.Second):
		t.Fatal("server side of the connection never arrived")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess := newSession("test-session", logger, serverConn)
	t.Cleanup(sess.close)

	return sess, client
}

func TestSession_Send(t *testing.T) {
	t.Run("Queued message reaches the client through the write pump", func(t *testing.T) {
		// Given: a session with a running write pump
		sess, client := newTestSession(t)
		go sess.writePump()

		// When: a message is queued
		require.NoError(t, sess.Send([]byte(`{"message":"MOVE_MADE"}`)))

		// Then: the client reads it
		require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))
		_, data, err := client.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"MOVE_MADE"}`, string(data))
	})

	t.Run("Overflowing the buffer closes the session instead of skipping events", func(t *testing.T) {
		// Given: a session whose pump is not draining
		sess, _ := newTestSession(t)

		for i := 0; i < sendBufferSize; i++ {
			require.NoError(t, sess.Send([]byte("payload")))
		}

		// When: one more message arrives
		err := sess.Send([]byte("payload"))

		// Then: the session is closed and stays closed
		require.ErrorIs(t, err, ErrSessionClosed)
		require.ErrorIs(t, sess.Send([]byte("payload")), ErrSessionClosed)
	})

	t.Run("Send after close is rejected", func(t *testing.T) {
		sess, _ := newTestSession(t)
		sess.close()

		require.ErrorIs(t, sess.Send([]byte("payload")), ErrSessionClosed)
	})
}
