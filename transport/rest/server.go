package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Start - serves the health and stats endpoints until the context is
// canceled.
func Start(ctx context.Context, port string, rooms roomStats) error {
	mux := http.NewServeMux()

	handlers := NewHandlers(rooms)
	mux.HandleFunc("/ping", handlers.PingHandler)
	mux.HandleFunc("/stats", handlers.StatsHandler)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
