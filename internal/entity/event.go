package entity

import "time"

type EventType string

const (
	EventSessionJoined EventType = "session.joined"
	EventMoveApplied   EventType = "move.applied"
	EventGameFinished  EventType = "game.finished"
)

// Event describes an accepted change of a session for the event feed.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId"`
	PlayerID  string    `json:"playerId,omitempty"`
	Session   *Session  `json:"session,omitempty"`
	State     GameState `json:"gameState,omitempty"`
	At        time.Time `json:"at"`
}

func NewJoinEvent(session *Session, playerID string) Event {
	return Event{
		Type:      EventSessionJoined,
		SessionID: session.ID,
		PlayerID:  playerID,
		Session:   session,
		At:        time.Now().UTC(),
	}
}

// NewMoveEvents returns the events of an accepted move: move.applied, followed by
// game.finished when the move ended the game.
func NewMoveEvents(sessionID, playerID string, state GameState) []Event {
	now := time.Now().UTC()

	events := []Event{{
		Type:      EventMoveApplied,
		SessionID: sessionID,
		PlayerID:  playerID,
		State:     state,
		At:        now,
	}}

	if state.IsTerminal() {
		events = append(events, Event{
			Type:      EventGameFinished,
			SessionID: sessionID,
			State:     state,
			At:        now,
		})
	}

	return events
}
