package websocket

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendBufferSize = 64
	writeWait      = 10 * time.Second
)

var ErrSessionClosed = errors.New("session closed")

// session is one connected client: the websocket handle, a buffered outbound
// queue drained by a single write pump, and the session id used for logs.
// Send never blocks a room intent; a client too slow to drain the buffer is
// closed rather than silently skipped, so no member ever misses an event it
// was still nominally subscribed to. The disconnect sweep then removes the
// player from its room.
type session struct {
	id     string
	logger *slog.Logger
	conn   *websocket.Conn

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(id string, logger *slog.Logger, conn *websocket.Conn) *session {
	return &session{
		id:     id,
		logger: logger.With("session", id),
		conn:   conn,

		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
}

// Send - enqueues one encoded message for the write pump.
func (that *session) Send(data []byte) error {
	select {
	case <-that.done:
		return ErrSessionClosed
	case that.send <- data:
		return nil
	default:
		that.logger.Warn("send buffer full, closing slow session")
		that.close()
		return ErrSessionClosed
	}
}

// writePump - owns all writes to the connection; gorilla allows only one
// concurrent writer.
func (that *session) writePump() {
	for {
		select {
		case <-that.done:
			return
		case data := <-that.send:
			if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				that.logger.Debug("failed to set write deadline", "error", err)
				return
			}
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Debug("failed to write message", "error", err)
				return
			}
		}
	}
}

// close - stops the write pump and closes the connection.
func (that *session) close() {
	that.closeOnce.Do(func() {
		close(that.done)
		if err := that.conn.Close(); err != nil {
			that.logger.Debug("failed to close connection", "error", err)
		}
	})
}
