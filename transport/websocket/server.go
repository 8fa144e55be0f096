package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	RequestAvailable(gameType entity.GameType) ([]*entity.Session, error)
	AvailableSessions() []*entity.Session

	JoinOrCreateSession(gameType entity.GameType, playerID string) (*entity.Session, error)
	JoinSession(sessionID, playerID string) (*entity.Session, error)

	ApplyMove(sessionID, playerID string, move entity.Move) (entity.GameState, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event entity.Event) error
}

type handlerFunc func(ctx context.Context, c *client, payload json.RawMessage) error

type Server struct {
	logger      *slog.Logger
	gameManager gameManager
	publisher   eventPublisher

	hub      *hub
	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameManager gameManager, publisher eventPublisher) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameManager: gameManager,
		publisher:   publisher,

		hub: newHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}

	server.handlers = map[string]handlerFunc{
		actionRequestSessions: server.handleRequestSessions,
		actionSelectGameType:  server.handleSelectGameType,
		actionJoinGame:        server.handleJoinGame,
		actionMakeMove:        server.handleMakeMove,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", that.ServeWS)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
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

// ServeWS upgrades the request and serves the connection until it closes.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(that, conn)
	that.hub.register(c)

	log.Info("WebSocket connection established", "remote_addr", req.RemoteAddr)

	go c.writePump()

	that.sendMessage(c, actionAvailableGames, that.gameManager.AvailableSessions())

	c.readPump(req.Context())

	log.Info("WebSocket connection closed", "remote_addr", req.RemoteAddr)
}

func (that *Server) dispatch(ctx context.Context, c *client, message *Message) {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		that.sendException(c, message.Action, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action))
		return
	}

	if err := handler(ctx, c, message.Payload); err != nil {
		log.Info("action rejected", "error", err, "kind", apperror.Kind(err))
		that.sendException(c, message.Action, err)
	}
}

func (that *Server) sendMessage(c *client, action string, payload any) {
	data, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	that.hub.sendTo(c, data)
}

func (that *Server) broadcastToSession(sessionID, action string, payload any) {
	data, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	that.hub.broadcastToSession(sessionID, data)
}

// broadcastLobby sends the joinable sessions of every game type to every client.
func (that *Server) broadcastLobby() {
	data, err := encode(actionAvailableGames, that.gameManager.AvailableSessions())
	if err != nil {
		that.logger.Error("failed to encode lobby", "error", err)
		return
	}

	that.hub.broadcast(data)
}

func (that *Server) sendException(c *client, action string, err error) {
	that.sendMessage(c, actionException, ExceptionPayload{
		Action:  action,
		Message: err.Error(),
		Kind:    apperror.Kind(err),
	})
}

// publish forwards events to the event feed. Failures are logged and never reach the player.
func (that *Server) publish(ctx context.Context, events ...entity.Event) {
	for _, event := range events {
		if err := that.publisher.Publish(ctx, event); err != nil {
			that.logger.Warn("failed to publish event", "type", event.Type, "session_id", event.SessionID, "error", err)
		}
	}
}

func encode(action string, payload any) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: payloadJSON})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
