package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestInitial(t *testing.T) {
	// When: create a new state
	state := Initial()

	// Then: the board is empty and X moves first
	expected := entity.TicTacToeState{
		Board:         Board{},
		CurrentPlayer: x,
	}

	require.Equal(t, expected, state)
	assert.False(t, state.IsTerminal())
}

func TestApplyMove(t *testing.T) {
	t.Run("ApplyMove", func(t *testing.T) {
		// Given: a new state
		state := Initial()

		// When: player X makes a turn
		next, err := ApplyMove(state, x, 0)
		require.NoError(t, err)

		// Then: the mark is placed and the turn passes to O
		expected := entity.TicTacToeState{
			Board:         Board{x, e, e, e, e, e, e, e, e},
			CurrentPlayer: o,
		}

		require.Equal(t, expected, next)

		// Then: the input state is left untouched
		require.Equal(t, Initial(), state)
	})

	t.Run("Deterministic", func(t *testing.T) {
		// Given: a state with one mark
		state, err := ApplyMove(Initial(), x, 4)
		require.NoError(t, err)

		// When: the same move is applied twice to the same state
		first, err := ApplyMove(state, o, 0)
		require.NoError(t, err)

		second, err := ApplyMove(state, o, 0)
		require.NoError(t, err)

		// Then: both results are equal
		assert.Equal(t, first, second)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X holds cell 0
		state, err := ApplyMove(Initial(), x, 0)
		require.NoError(t, err)

		// When: O tries to move to the same cell
		next, err := ApplyMove(state, o, 0)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, state, next)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new state
		state := Initial()

		// When: O tries to move while it is X's turn
		_, err := ApplyMove(state, o, 1)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Out of range cell", func(t *testing.T) {
		for _, position := range []int{-1, 9, 20} {
			// When: an index outside the board is passed
			_, err := ApplyMove(Initial(), x, position)

			// Then: ErrOutOfRangeCell is returned
			assert.ErrorIs(t, err, apperror.ErrOutOfRangeCell)
		}
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a state where X has already won
		state := entity.TicTacToeState{
			Board:         Board{x, x, x, e, o, e, e, o, e},
			CurrentPlayer: x,
			Winner:        x,
		}

		// When: O tries to move
		_, err := ApplyMove(state, o, 3)

		// Then: ErrInvalidMove is returned even though O is not the current player
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Move after draw", func(t *testing.T) {
		// Given: a drawn state
		state := entity.TicTacToeState{
			Board:         Board{o, x, o, o, x, x, x, o, x},
			CurrentPlayer: o,
			Draw:          true,
		}

		// When: O tries to move on an occupied cell
		_, err := ApplyMove(state, o, 3)

		// Then: ErrInvalidMove is returned before any cell check
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})
}

func TestApplyMove_Scenarios(t *testing.T) {
	t.Run("X wins the top row", func(t *testing.T) {
		// Given: a new state
		state := Initial()

		// When: X0, O4, X1, O5, X2 are played
		moves := []struct {
			symbol   entity.Symbol
			position int
		}{
			{x, 0}, {o, 4}, {x, 1}, {o, 5}, {x, 2},
		}

		var err error
		for _, move := range moves {
			state, err = ApplyMove(state, move.symbol, move.position)
			require.NoError(t, err)
		}

		// Then: X is the winner and the turn is not flipped
		expected := entity.TicTacToeState{
			Board:         Board{x, x, x, e, o, o, e, e, e},
			CurrentPlayer: x,
			Winner:        x,
		}

		require.Equal(t, expected, state)

		// Then: any further move is rejected
		_, err = ApplyMove(state, x, 8)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Alternating turns until draw", func(t *testing.T) {
		// Given: a sequence ending in a full board without a line
		positions := []int{0, 1, 2, 4, 3, 5, 7, 6, 8}

		state := Initial()
		for i, position := range positions {
			expectedTurn := x
			if i%2 == 1 {
				expectedTurn = o
			}

			// Then: the turn alternates strictly
			require.Equal(t, expectedTurn, state.CurrentPlayer)

			var err error
			state, err = ApplyMove(state, state.CurrentPlayer, position)
			require.NoError(t, err)
		}

		// Then: the game ends in a draw without a winner
		assert.True(t, state.Draw)
		assert.Equal(t, e, state.Winner)
		assert.True(t, state.IsTerminal())
	})
}

func TestCheckWinner(t *testing.T) {
	t.Run("Every line is detected", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, symbol := range []entity.Symbol{x, o} {
				// Given: a board where one line is filled with symbol
				var board Board
				for _, cell := range combo {
					board[cell] = symbol
				}

				// Then: that symbol wins
				assert.Equal(t, symbol, CheckWinner(board), "combo %v", combo)
			}
		}
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board without a complete line
		board := Board{x, o, x, e, o, e, x, e, e}

		// Then: there is no winner
		require.Equal(t, e, CheckWinner(board))
		require.False(t, CheckDraw(board))
	})
}

func TestCheckDraw(t *testing.T) {
	t.Run("Full board without a line", func(t *testing.T) {
		board := Board{o, x, o, o, x, x, x, o, x}

		assert.True(t, CheckDraw(board))
		assert.Equal(t, e, CheckWinner(board))
	})

	t.Run("Full board with a line is not a draw", func(t *testing.T) {
		board := Board{x, x, x, o, o, x, o, x, o}

		assert.False(t, CheckDraw(board))
	})
}
