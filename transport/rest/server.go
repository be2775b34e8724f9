package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func New(logger *slog.Logger, port string, gamePlay gamePlayService) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(logger, gamePlay),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewRouter wires every endpoint the browser client uses.
func NewRouter(logger *slog.Logger, gamePlay gamePlayService) http.Handler {
	handlers := newSessionHandlers(logger, gamePlay)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)

	mux.HandleFunc("POST /sessions", handlers.createSession)
	mux.HandleFunc("GET /sessions/{id}", handlers.getSession)
	mux.HandleFunc("DELETE /sessions/{id}", handlers.deleteSession)
	mux.HandleFunc("POST /sessions/{id}/turns", handlers.makeTurn)
	mux.HandleFunc("GET /sessions/{id}/hint", handlers.hint)
	mux.HandleFunc("POST /sessions/{id}/restart", handlers.restart)

	return mux
}

// Start blocks until the server stops, a graceful Shutdown is not an error.
func (that *Server) Start() error {
	that.logger.Info("listening", "addr", that.srv.Addr)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
