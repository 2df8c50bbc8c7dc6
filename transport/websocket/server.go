package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/pkg"
)

type dispatcher interface {
	HandleMessage(ctx context.Context, conn entity.Sender, raw []byte)
	Disconnect(conn entity.Sender)
}

type Server struct {
	logger     *slog.Logger
	dispatcher dispatcher
	upgrader   websocket.Upgrader
}

func New(logger *slog.Logger, dispatcher dispatcher) *Server {
	return &Server{
		logger:     logger,
		dispatcher: dispatcher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Start - serves websocket connections on /ws until the context is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection - upgrades one request and runs its read loop for the
// lifetime of the connection. Each session keeps the same dispatch path from
// its first message to its last; nothing rebinds handlers mid-connection.
func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	sess := newSession(pkg.GenerateSessionID(), that.logger, conn)
	log = log.With("session", sess.id)
	log.Info("connection established", "remote", conn.RemoteAddr().String())

	go sess.writePump()

	defer func() {
		that.dispatcher.Disconnect(sess)
		sess.close()
		log.Info("connection closed")
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("connection read failed", "error", err)
			}
			return
		}

		that.dispatcher.HandleMessage(ctx, sess, raw)
	}
}
