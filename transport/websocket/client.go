package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	sendQueueSize = 64
)

// client is one websocket connection.
type client struct {
	server *Server
	conn   *websocket.Conn
	send   chan []byte

	mu       sync.RWMutex
	playerID string
}

func newClient(server *Server, conn *websocket.Conn) *client {
	return &client{
		server: server,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
	}
}

// enqueue reports false when the send queue is full. The caller must hold the hub lock.
func (that *client) enqueue(data []byte) bool {
	select {
	case that.send <- data:
		return true
	default:
		return false
	}
}

// bindPlayer remembers the player that last joined a session over this connection.
func (that *client) bindPlayer(playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.playerID = playerID
}

func (that *client) boundPlayer() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.playerID
}

// readPump dispatches inbound messages one at a time until the connection closes.
func (that *client) readPump(ctx context.Context) {
	log := that.server.logger.With("method", "readPump")

	defer func() {
		that.server.hub.unregister(that)
		_ = that.conn.Close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected close", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.server.sendException(that, "", fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err))
			continue
		}

		that.server.dispatch(ctx, that, &message)
	}
}

// writePump writes queued messages and pings to the connection.
func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
