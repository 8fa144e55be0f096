package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameType(t *testing.T) {
	t.Run("Accepts supported game types", func(t *testing.T) {
		for _, value := range []string{"tic-tac-toe", "connect-four"} {
			// When: parsing a supported game type
			gameType, err := ParseGameType(value)

			// Then: it should be returned unchanged
			require.NoError(t, err)
			assert.Equal(t, GameType(value), gameType)
		}
	})

	t.Run("Rejects unknown game types", func(t *testing.T) {
		// When: parsing a game type that is not supported
		_, err := ParseGameType("chess")

		// Then: ErrUnknownGameType should be returned
		require.ErrorIs(t, err, apperror.ErrUnknownGameType)
	})
}

func TestSymbols(t *testing.T) {
	t.Run("Tic-tac-toe symbols", func(t *testing.T) {
		first, second, err := Symbols(TicTacToe)

		require.NoError(t, err)
		assert.Equal(t, PlayerX, first)
		assert.Equal(t, PlayerO, second)
	})

	t.Run("Connect-four symbols", func(t *testing.T) {
		first, second, err := Symbols(ConnectFour)

		require.NoError(t, err)
		assert.Equal(t, PlayerRed, first)
		assert.Equal(t, PlayerYellow, second)
	})

	t.Run("Unknown game type", func(t *testing.T) {
		_, _, err := Symbols("go")

		require.ErrorIs(t, err, apperror.ErrUnknownGameType)
	})
}

func TestGameState_IsTerminal(t *testing.T) {
	t.Run("State with a winner is terminal", func(t *testing.T) {
		// Given: a state where X has won
		state := TicTacToeState{CurrentPlayer: PlayerX, Winner: PlayerX}

		// Then: it should be terminal
		assert.True(t, state.IsTerminal())
	})

	t.Run("Drawn state is terminal", func(t *testing.T) {
		state := ConnectFourState{CurrentPlayer: PlayerRed, Draw: true}

		assert.True(t, state.IsTerminal())
	})

	t.Run("Fresh state is not terminal", func(t *testing.T) {
		assert.False(t, TicTacToeState{CurrentPlayer: PlayerX}.IsTerminal())
		assert.False(t, ConnectFourState{CurrentPlayer: PlayerRed}.IsTerminal())
	})
}

func TestGameState_MarshalJSON(t *testing.T) {
	t.Run("Tic-tac-toe state carries its game type and null cells", func(t *testing.T) {
		// Given: a tic-tac-toe state with one mark
		state := TicTacToeState{CurrentPlayer: PlayerO}
		state.Board[4] = PlayerX

		// When: encoding it
		data, err := json.Marshal(state)
		require.NoError(t, err)

		// Then: the payload should match the wire format
		assert.JSONEq(t, `{
			"gameType": "tic-tac-toe",
			"board": [null, null, null, null, "X", null, null, null, null],
			"currentPlayer": "O",
			"winner": null,
			"draw": false
		}`, string(data))
	})

	t.Run("Connect-four state inside a session", func(t *testing.T) {
		// Given: a session holding a connect-four state
		session := NewSession("s-1", ConnectFourState{CurrentPlayer: PlayerRed})
		session.Players = append(session.Players, &Player{ID: "p-1", Symbol: PlayerRed})

		// When: encoding the session
		data, err := json.Marshal(session)
		require.NoError(t, err)

		// Then: the state should be tagged with its game type
		var decoded struct {
			ID        string `json:"id"`
			GameType  string `json:"gameType"`
			GameState struct {
				GameType string      `json:"gameType"`
				Board    [][]*string `json:"board"`
				Winner   *string     `json:"winner"`
			} `json:"gameState"`
			Players []Player `json:"players"`
		}
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, "s-1", decoded.ID)
		assert.Equal(t, "connect-four", decoded.GameType)
		assert.Equal(t, "connect-four", decoded.GameState.GameType)
		assert.Len(t, decoded.GameState.Board, ConnectFourRows)
		assert.Len(t, decoded.GameState.Board[0], ConnectFourColumns)
		assert.Nil(t, decoded.GameState.Winner)
		assert.Equal(t, []Player{{ID: "p-1", Symbol: PlayerRed}}, decoded.Players)
	})
}
