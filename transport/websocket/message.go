package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

// Inbound actions.
const (
	actionRequestSessions = "requestSessions"
	actionSelectGameType  = "selectGameType"
	actionJoinGame        = "joinGame"
	actionMakeMove        = "makeMove"
)

// Outbound actions.
const (
	actionAvailableGames         = "availableGames"
	actionSelectGameTypeResponse = "selectGameTypeResponse"
	actionJoinGameResponse       = "joinGameResponse"
	actionGameSession            = "gameSession"
	actionGameState              = "gameState"
	actionException              = "exception"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameType  string `json:"gameType,omitempty"`
	PlayerID  string `json:"playerId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Position  *int   `json:"position,omitempty"`
}

type JoinResponse struct {
	Status  string          `json:"status"`
	Game    *entity.Session `json:"game,omitempty"`
	Message string          `json:"message,omitempty"`
	Kind    string          `json:"kind,omitempty"`
}

type GameStatePayload struct {
	SessionID string           `json:"sessionId"`
	GameState entity.GameState `json:"gameState"`
}

type ExceptionPayload struct {
	Action  string `json:"action,omitempty"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}
