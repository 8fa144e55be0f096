package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
)

type Board = [entity.TicTacToeCells]entity.Symbol

// WinCombos lists the rows, columns and diagonals of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Initial returns an empty board with X to move.
func Initial() entity.TicTacToeState {
	return entity.TicTacToeState{CurrentPlayer: entity.PlayerX}
}

// ApplyMove places symbol on position and returns the resulting state.
// The given state is never modified.
func ApplyMove(state entity.TicTacToeState, symbol entity.Symbol, position int) (entity.TicTacToeState, error) {
	if state.IsTerminal() {
		return state, fmt.Errorf("%w: game is already finished", apperror.ErrInvalidMove)
	}

	if err := validateMove(state, symbol, position); err != nil {
		return state, fmt.Errorf("invalid turn: %w", err)
	}

	next := state
	next.Board[position] = symbol

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

// validateMove - checks if the move is valid.
func validateMove(state entity.TicTacToeState, symbol entity.Symbol, position int) error {
	if state.CurrentPlayer != symbol {
		return apperror.ErrNotYourTurn
	}

	if position < 0 || position >= len(state.Board) {
		return fmt.Errorf("%w: %d", apperror.ErrOutOfRangeCell, position)
	}

	if state.Board[position] != entity.EmptyCell {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	}

	return nil
}

// CheckWinner returns the symbol owning a complete line, or EmptyCell.
func CheckWinner(board Board) entity.Symbol {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// CheckDraw reports whether the board is full without a winner.
func CheckDraw(board Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return CheckWinner(board) == entity.EmptyCell
}

func opponent(symbol entity.Symbol) entity.Symbol {
	if symbol == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
