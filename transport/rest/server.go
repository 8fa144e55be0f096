package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	AvailableSessions() []*entity.Session
	GetSession(sessionID string) (*entity.Session, error)
}

type sessionCounter interface {
	Count() int
}

type Server struct {
	logger         *slog.Logger
	gameManager    gameManager
	sessionCounter sessionCounter

	router *mux.Router
}

func New(logger *slog.Logger, gameManager gameManager, sessionCounter sessionCounter) *Server {
	server := &Server{
		logger:         logger.With("component", "rest"),
		gameManager:    gameManager,
		sessionCounter: sessionCounter,

		router: mux.NewRouter(),
	}

	server.router.HandleFunc("/ping", server.pingHandler).Methods(http.MethodGet)
	server.router.HandleFunc("/health", server.healthHandler).Methods(http.MethodGet)
	server.router.HandleFunc("/sessions", server.listSessionsHandler).Methods(http.MethodGet)
	server.router.HandleFunc("/sessions/{id}", server.getSessionHandler).Methods(http.MethodGet)

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.router.ServeHTTP(w, r)
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
