package entity

const MaxPlayers = 2

type Session struct {
	ID       string    `json:"id"`
	GameType GameType  `json:"gameType"`
	Players  []*Player `json:"players"`
	State    GameState `json:"gameState"`
}

// NewSession returns an empty session holding the given initial state.
func NewSession(id string, state GameState) *Session {
	return &Session{
		ID:       id,
		GameType: state.GameType(),
		Players:  []*Player{},
		State:    state,
	}
}

// Player returns the seated player with the given id.
func (that *Session) Player(playerID string) (*Player, bool) {
	for _, player := range that.Players {
		if player.ID == playerID {
			return player, true
		}
	}

	return nil, false
}

func (that *Session) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

func (that *Session) IsJoinable() bool {
	return !that.IsFull()
}

// Clone returns a deep copy of the session. States are value types, so copying the
// interface copies the board.
func (that *Session) Clone() *Session {
	players := make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		copied := *player
		players = append(players, &copied)
	}

	return &Session{
		ID:       that.ID,
		GameType: that.GameType,
		Players:  players,
		State:    that.State,
	}
}
