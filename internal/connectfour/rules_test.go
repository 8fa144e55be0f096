package connectfour

import (
	"testing"

	"github.com/rocketscienceinc/boardgame-backend/internal/apperror"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	r = entity.PlayerRed
	y = entity.PlayerYellow
	e = entity.EmptyCell
)

// drawBoard is a full grid without four aligned marks.
func drawBoard() Board {
	a := [Columns]entity.Symbol{r, r, y, y, r, r, y}
	b := [Columns]entity.Symbol{y, y, r, r, y, y, r}

	return Board{a, b, a, b, a, b}
}

func TestInitial(t *testing.T) {
	// When: create a new state
	state := Initial()

	// Then: the grid is empty and Red moves first
	require.Equal(t, entity.ConnectFourState{CurrentPlayer: r}, state)
	assert.False(t, state.IsTerminal())
}

func TestApplyMove(t *testing.T) {
	t.Run("Gravity", func(t *testing.T) {
		// Given: a new state
		state := Initial()

		// When: Red drops into column 3
		next, err := ApplyMove(state, r, 3)
		require.NoError(t, err)

		// Then: the mark lands on the bottom row and Yellow is to move
		assert.Equal(t, r, next.Board[0][3])
		assert.Equal(t, y, next.CurrentPlayer)

		// Then: the input state is left untouched
		assert.Equal(t, Initial(), state)
	})

	t.Run("Red stacks column 0 with Yellow in between", func(t *testing.T) {
		// Given: a new state
		state := Initial()

		var err error
		for row := 0; row < 3; row++ {
			// When: Red drops into column 0
			state, err = ApplyMove(state, r, 0)
			require.NoError(t, err)

			// Then: it lands on the next row
			require.Equal(t, r, state.Board[row][0])

			// When: Red tries to drop again
			_, err = ApplyMove(state, r, 0)

			// Then: it is Yellow's turn
			require.ErrorIs(t, err, apperror.ErrNotYourTurn)

			state, err = ApplyMove(state, y, 1)
			require.NoError(t, err)
			require.Equal(t, y, state.Board[row][1])
		}

		assert.False(t, state.IsTerminal())
	})

	t.Run("Column full", func(t *testing.T) {
		// Given: column 2 filled up to the top
		state := Initial()
		for row := 0; row < Rows; row++ {
			require.Equal(t, row, DropRow(state.Board, 2))

			var err error
			state, err = ApplyMove(state, state.CurrentPlayer, 2)
			require.NoError(t, err)
		}

		// When: one more mark is dropped into it
		next, err := ApplyMove(state, state.CurrentPlayer, 2)

		// Then: ErrColumnFull is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		require.Equal(t, state, next)
		assert.Equal(t, -1, DropRow(state.Board, 2))
	})

	t.Run("Column out of range", func(t *testing.T) {
		for _, column := range []int{-1, Columns, 42} {
			_, err := ApplyMove(Initial(), r, column)

			assert.ErrorIs(t, err, apperror.ErrColumnOutOfRange)
		}
	})

	t.Run("Vertical win keeps the turn", func(t *testing.T) {
		// Given: Red on column 0 and Yellow on column 1, alternating
		state := Initial()

		var err error
		for i := 0; i < 3; i++ {
			state, err = ApplyMove(state, r, 0)
			require.NoError(t, err)

			state, err = ApplyMove(state, y, 1)
			require.NoError(t, err)
		}

		// When: Red drops the fourth mark
		state, err = ApplyMove(state, r, 0)
		require.NoError(t, err)

		// Then: Red wins and the turn is not flipped
		assert.Equal(t, r, state.Winner)
		assert.Equal(t, r, state.CurrentPlayer)

		// Then: further moves fail with ErrInvalidMove
		_, err = ApplyMove(state, y, 5)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Last cell ends in a draw", func(t *testing.T) {
		// Given: a draw board with its top right cell removed
		board := drawBoard()
		last := board[Rows-1][Columns-1]
		board[Rows-1][Columns-1] = e

		state := entity.ConnectFourState{Board: board, CurrentPlayer: last}

		// When: the last mark is dropped
		next, err := ApplyMove(state, last, Columns-1)
		require.NoError(t, err)

		// Then: the game is a draw without a winner
		assert.True(t, next.Draw)
		assert.Equal(t, e, next.Winner)
		assert.Equal(t, last, next.CurrentPlayer)
	})
}

func TestCheckWinner(t *testing.T) {
	t.Run("Every window is detected", func(t *testing.T) {
		for _, d := range directions {
			for row := 0; row < Rows; row++ {
				for col := 0; col < Columns; col++ {
					endRow, endCol := row+d[0]*(WinLength-1), col+d[1]*(WinLength-1)
					if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Columns {
						continue
					}

					// Given: a grid with a single window filled by Yellow
					var board Board
					for i := 0; i < WinLength; i++ {
						board[row+d[0]*i][col+d[1]*i] = y
					}

					// Then: Yellow wins
					assert.Equal(t, y, CheckWinner(board), "start (%d,%d) direction %v", row, col, d)
				}
			}
		}
	})

	t.Run("Three in a row is not a win", func(t *testing.T) {
		var board Board
		board[0][0], board[0][1], board[0][2] = r, r, r

		assert.Equal(t, e, CheckWinner(board))
	})

	t.Run("Broken diagonal is not a win", func(t *testing.T) {
		var board Board
		board[0][0], board[1][1], board[2][2], board[3][3] = r, r, y, r

		assert.Equal(t, e, CheckWinner(board))
	})
}

func TestCheckDraw(t *testing.T) {
	t.Run("Full grid without a line", func(t *testing.T) {
		board := drawBoard()

		assert.Equal(t, e, CheckWinner(board))
		assert.True(t, CheckDraw(board))
	})

	t.Run("Grid with an empty cell", func(t *testing.T) {
		board := drawBoard()
		board[5][0] = e

		assert.False(t, CheckDraw(board))
	})
}
