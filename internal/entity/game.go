package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
)

type GameType string

const (
	TicTacToe   GameType = "tic-tac-toe"
	ConnectFour GameType = "connect-four"
)

// GameTypes lists every supported game type.
var GameTypes = []GameType{TicTacToe, ConnectFour}

// ParseGameType validates a game type received from a client.
func ParseGameType(value string) (GameType, error) {
	switch gameType := GameType(value); gameType {
	case TicTacToe, ConnectFour:
		return gameType, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, value)
	}
}

// Symbol is the mark a player puts on the board. The zero value is an empty cell.
type Symbol string

const (
	EmptyCell Symbol = ""

	PlayerX Symbol = "X"
	PlayerO Symbol = "O"

	PlayerRed    Symbol = "R"
	PlayerYellow Symbol = "Y"
)

// MarshalJSON encodes an empty cell as null.
func (that Symbol) MarshalJSON() ([]byte, error) {
	if that == EmptyCell {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Symbol) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = EmptyCell
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal symbol: %w", err)
	}

	*that = Symbol(value)

	return nil
}

// Symbols returns the marks of a game type in join order.
func Symbols(gameType GameType) (Symbol, Symbol, error) {
	switch gameType {
	case TicTacToe:
		return PlayerX, PlayerO, nil
	case ConnectFour:
		return PlayerRed, PlayerYellow, nil
	default:
		return EmptyCell, EmptyCell, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, gameType)
	}
}

// GameState is implemented only by TicTacToeState and ConnectFourState.
type GameState interface {
	GameType() GameType
	Turn() Symbol
	IsTerminal() bool

	gameState()
}

const (
	TicTacToeCells = 9

	ConnectFourRows    = 6
	ConnectFourColumns = 7
)

type TicTacToeState struct {
	Board         [TicTacToeCells]Symbol `json:"board"`
	CurrentPlayer Symbol                 `json:"currentPlayer"`
	Winner        Symbol                 `json:"winner"`
	Draw          bool                   `json:"draw"`
}

func (that TicTacToeState) GameType() GameType { return TicTacToe }

func (that TicTacToeState) Turn() Symbol { return that.CurrentPlayer }

func (that TicTacToeState) IsTerminal() bool {
	return that.Winner != EmptyCell || that.Draw
}

func (that TicTacToeState) MarshalJSON() ([]byte, error) {
	type state TicTacToeState

	return json.Marshal(struct {
		GameType GameType `json:"gameType"`
		state
	}{TicTacToe, state(that)})
}

func (TicTacToeState) gameState() {}

// ConnectFourState keeps the grid as [row][column], row 0 being the bottom row.
type ConnectFourState struct {
	Board         [ConnectFourRows][ConnectFourColumns]Symbol `json:"board"`
	CurrentPlayer Symbol                                      `json:"currentPlayer"`
	Winner        Symbol                                      `json:"winner"`
	Draw          bool                                        `json:"draw"`
}

func (that ConnectFourState) GameType() GameType { return ConnectFour }

func (that ConnectFourState) Turn() Symbol { return that.CurrentPlayer }

func (that ConnectFourState) IsTerminal() bool {
	return that.Winner != EmptyCell || that.Draw
}

func (that ConnectFourState) MarshalJSON() ([]byte, error) {
	type state ConnectFourState

	return json.Marshal(struct {
		GameType GameType `json:"gameType"`
		state
	}{ConnectFour, state(that)})
}

func (ConnectFourState) gameState() {}

// Move carries the game specific argument of a turn: the cell index for tic-tac-toe
// and the column for connect-four.
type Move struct {
	Position int `json:"position"`
}
