package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

func (that *Server) handleRequestSessions(_ context.Context, c *client, raw json.RawMessage) error {
	payload, err := decodePayload(raw)
	if err != nil {
		return err
	}

	gameType, err := entity.ParseGameType(payload.GameType)
	if err != nil {
		return err
	}

	sessions, err := that.gameManager.RequestAvailable(gameType)
	if err != nil {
		return fmt.Errorf("failed to request sessions: %w", err)
	}

	that.sendMessage(c, actionAvailableGames, sessions)

	return nil
}

// handleSelectGameType seats the player in a session of the requested type, creating one
// when none is waiting.
func (that *Server) handleSelectGameType(ctx context.Context, c *client, raw json.RawMessage) error {
	log := that.logger.With("method", "handleSelectGameType")

	payload, err := decodePayload(raw)
	if err != nil {
		return err
	}

	gameType, err := entity.ParseGameType(payload.GameType)
	if err != nil {
		that.sendMessage(c, actionSelectGameTypeResponse, failedJoin(err))
		return nil
	}

	session, err := that.gameManager.JoinOrCreateSession(gameType, payload.PlayerID)
	if err != nil {
		that.sendMessage(c, actionSelectGameTypeResponse, failedJoin(err))
		return nil
	}

	that.joined(ctx, c, session, payload.PlayerID)
	that.sendMessage(c, actionSelectGameTypeResponse, JoinResponse{Status: statusSuccess, Game: session})
	that.broadcastToSession(session.ID, actionGameSession, session)
	that.broadcastLobby()

	log.Info("player selected game type", "session_id", session.ID, "player_id", payload.PlayerID, "game_type", gameType)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, c *client, raw json.RawMessage) error {
	log := that.logger.With("method", "handleJoinGame")

	payload, err := decodePayload(raw)
	if err != nil {
		return err
	}

	session, err := that.gameManager.JoinSession(payload.SessionID, payload.PlayerID)
	if err != nil {
		log.Info("failed to join game", "session_id", payload.SessionID, "error", err)
		that.sendMessage(c, actionJoinGameResponse, failedJoin(err))
		return nil
	}

	that.joined(ctx, c, session, payload.PlayerID)
	that.sendMessage(c, actionJoinGameResponse, JoinResponse{Status: statusSuccess, Game: session})
	that.broadcastToSession(session.ID, actionGameSession, session)
	that.broadcastLobby()

	log.Info("player joined game", "session_id", session.ID, "player_id", payload.PlayerID)

	return nil
}

// handleMakeMove applies the move and sends the new state to every subscriber of the
// session. A rejected move is reported to the sender only.
func (that *Server) handleMakeMove(ctx context.Context, c *client, raw json.RawMessage) error {
	payload, err := decodePayload(raw)
	if err != nil {
		return err
	}

	if payload.Position == nil {
		return fmt.Errorf("%w: position is required", apperror.ErrInvalidPayload)
	}

	playerID := payload.PlayerID
	if playerID == "" {
		playerID = c.boundPlayer()
	}

	state, err := that.gameManager.ApplyMove(payload.SessionID, playerID, entity.Move{Position: *payload.Position})
	if err != nil {
		return err
	}

	that.publish(ctx, entity.NewMoveEvents(payload.SessionID, playerID, state)...)
	that.broadcastToSession(payload.SessionID, actionGameState, GameStatePayload{
		SessionID: payload.SessionID,
		GameState: state,
	})

	return nil
}

// joined subscribes the connection to the session and reports the join to the event feed.
func (that *Server) joined(ctx context.Context, c *client, session *entity.Session, playerID string) {
	c.bindPlayer(playerID)
	that.hub.subscribe(session.ID, c)
	that.publish(ctx, entity.NewJoinEvent(session, playerID))
}

func decodePayload(raw json.RawMessage) (Payload, error) {
	var payload Payload
	if len(raw) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return payload, nil
}

func failedJoin(err error) JoinResponse {
	return JoinResponse{
		Status:  statusError,
		Message: err.Error(),
		Kind:    apperror.Kind(err),
	}
}
