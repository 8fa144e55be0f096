package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

const (
	Rows    = entity.ConnectFourRows
	Columns = entity.ConnectFourColumns

	// WinLength is the number of aligned marks that wins the game.
	WinLength = 4
)

// Board is indexed [row][column], row 0 being the bottom.
type Board = [Rows][Columns]entity.Symbol

// directions are row/column steps: horizontal, vertical, diagonal up-right, diagonal down-right.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

// Initial returns an empty grid with Red to move.
func Initial() entity.ConnectFourState {
	return entity.ConnectFourState{CurrentPlayer: entity.PlayerRed}
}

// ApplyMove drops symbol into column and returns the resulting state.
// The given state is never modified.
func ApplyMove(state entity.ConnectFourState, symbol entity.Symbol, column int) (entity.ConnectFourState, error) {
	if state.IsTerminal() {
		return state, fmt.Errorf("%w: game is already finished", apperror.ErrInvalidMove)
	}

	if state.CurrentPlayer != symbol {
		return state, fmt.Errorf("invalid turn: %w", apperror.ErrNotYourTurn)
	}

	if column < 0 || column >= Columns {
		return state, fmt.Errorf("invalid turn: %w: %d", apperror.ErrColumnOutOfRange, column)
	}

	row := DropRow(state.Board, column)
	if row < 0 {
		return state, fmt.Errorf("invalid turn: %w: %d", apperror.ErrColumnFull, column)
	}

	next := state
	next.Board[row][column] = symbol

	switch {
	case CheckWinner(next.Board) != entity.EmptyCell:
		next.Winner = symbol
	case CheckDraw(next.Board):
		next.Draw = true
	default:
		next.CurrentPlayer = opponent(symbol)
	}

	return next, nil
}

// DropRow returns the lowest empty row of column, or -1 when the column is full.
func DropRow(board Board, column int) int {
	for row := 0; row < Rows; row++ {
		if board[row][column] == entity.EmptyCell {
			return row
		}
	}

	return -1
}

// CheckWinner slides a window of WinLength cells over the whole grid in every direction
// and returns the owner of the first complete window, or EmptyCell.
func CheckWinner(board Board) entity.Symbol {
	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Columns; col++ {
				if symbol := windowOwner(board, row, col, d[0], d[1]); symbol != entity.EmptyCell {
					return symbol
				}
			}
		}
	}

	return entity.EmptyCell
}

func windowOwner(board Board, row, col, dr, dc int) entity.Symbol {
	endRow, endCol := row+dr*(WinLength-1), col+dc*(WinLength-1)
	if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
		return entity.EmptyCell
	}

	mark := board[row][col]
	if mark == entity.EmptyCell {
		return entity.EmptyCell
	}

	for i := 1; i < WinLength; i++ {
		if board[row+dr*i][col+dc*i] != mark {
			return entity.EmptyCell
		}
	}

	return mark
}

// CheckDraw reports whether the grid is full without a winner.
func CheckDraw(board Board) bool {
	for row := range board {
		for _, cell := range board[row] {
			if cell == entity.EmptyCell {
				return false
			}
		}
	}

	return CheckWinner(board) == entity.EmptyCell
}

func opponent(symbol entity.Symbol) entity.Symbol {
	if symbol == entity.PlayerRed {
		return entity.PlayerYellow
	}
	return entity.PlayerRed
}
