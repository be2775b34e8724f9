package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: every cell should be empty
	for i, cell := range board {
		assert.Equal(t, Empty, cell, "cell %d", i)
	}
	assert.Equal(t, 0, board.MoveCount())
	assert.Len(t, board.EmptyCells(), BoardSize)
}

func TestApplyMove(t *testing.T) {
	t.Run("Places the mark on an empty cell", func(t *testing.T) {
		// Given: a board with one X already played
		board := Board{X, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty}

		for _, index := range board.EmptyCells() {
			// When: O is applied to an empty cell
			next, err := ApplyMove(board, index, O)
			require.NoError(t, err)

			// Then: only that cell changes
			expected := board
			expected[index] = O
			assert.Equal(t, expected, next)
		}

		// And: the original board is untouched
		assert.Equal(t, Board{X, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty}, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 belongs to X
		board := Board{X, O, Empty, Empty, Empty, Empty, Empty, Empty, Empty}

		for _, index := range []int{0, 1} {
			// When: a player tries to move into an occupied cell
			next, err := ApplyMove(board, index, X)

			// Then: ErrCellOccupied is returned and the board stays the same
			require.ErrorIs(t, err, ErrCellOccupied)
			assert.Equal(t, board, next)
		}
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		board := NewBoard()

		for _, index := range []int{-1, 9, 20} {
			// When: an index outside the board is used
			next, err := ApplyMove(board, index, X)

			// Then: ErrInvalidCell is returned
			require.ErrorIs(t, err, ErrInvalidCell)
			assert.Equal(t, board, next)
		}
	})

	t.Run("Error on invalid player", func(t *testing.T) {
		// When: an empty mark is played
		_, err := ApplyMove(NewBoard(), 0, Empty)

		// Then: ErrInvalidPlayer is returned
		assert.ErrorIs(t, err, ErrInvalidPlayer)
	})
}

func TestWinner(t *testing.T) {
	t.Run("Every winning line for both players", func(t *testing.T) {
		for _, player := range []Mark{X, O} {
			for _, combo := range WinCombos {
				// Given: player owns the line and the opponent holds a cell off the line
				var board Board
				for _, i := range combo {
					board[i] = player
				}
				for i := range board {
					if board[i] == Empty {
						board[i] = Opponent(player)
						break
					}
				}

				// When: looking for the winner
				winner, ok := Winner(board)

				// Then: the line owner wins
				require.True(t, ok, "combo %v", combo)
				assert.Equal(t, player, winner)
				assert.True(t, CheckWin(board, player))
				assert.False(t, CheckWin(board, Opponent(player)))

				line, found := WinningLine(board)
				require.True(t, found)
				assert.Equal(t, combo, line)
			}
		}
	})

	t.Run("No winner on an ongoing board", func(t *testing.T) {
		board := Board{X, O, X, Empty, O, Empty, X, Empty, Empty}

		winner, ok := Winner(board)

		assert.False(t, ok)
		assert.Equal(t, Empty, winner)
	})

	t.Run("Scan order picks rows before columns", func(t *testing.T) {
		// Given: a board with a full row and a full column for X
		board := Board{X, X, X, X, O, O, X, O, O}

		// When: asking for the winning line
		line, ok := WinningLine(board)

		// Then: the first row is reported
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, line)
	})
}

func TestIsFull(t *testing.T) {
	assert.False(t, IsFull(NewBoard()))
	assert.False(t, IsFull(Board{X, O, X, O, X, O, O, X, Empty}))
	assert.True(t, IsFull(Board{X, O, X, O, X, O, O, X, O}))
}

func TestEvaluateOutcome(t *testing.T) {
	t.Run("Win for X after completing a diagonal", func(t *testing.T) {
		// Given: X to move on [X,O,X,O,X,O,_,_,_]
		board := Board{X, O, X, O, X, O, Empty, Empty, Empty}
		require.Equal(t, Outcome{Status: InProgress}, EvaluateOutcome(board))

		// When: X plays cell 6
		board, err := ApplyMove(board, 6, X)
		require.NoError(t, err)

		// Then: the diagonal 2-4-6 wins the round for X
		assert.Equal(t, Outcome{Status: Win, Winner: X}, EvaluateOutcome(board))
	})

	t.Run("Draw on a full board without a line", func(t *testing.T) {
		for _, board := range []Board{
			{X, O, X, X, O, O, O, X, X},
			{X, O, X, O, X, O, O, X, O},
		} {
			assert.Equal(t, Outcome{Status: Draw}, EvaluateOutcome(board))
		}
	})

	t.Run("In progress on an empty board", func(t *testing.T) {
		assert.Equal(t, Outcome{Status: InProgress}, EvaluateOutcome(NewBoard()))
	})

	t.Run("Repeated evaluation does not change the board", func(t *testing.T) {
		board := Board{X, X, X, O, O, Empty, Empty, Empty, Empty}
		snapshot := board

		first := EvaluateOutcome(board)
		second := EvaluateOutcome(board)

		assert.Equal(t, first, second)
		assert.Equal(t, snapshot, board)
	})

	t.Run("Never a win without three in a row", func(t *testing.T) {
		marks := [3]Mark{Empty, X, O}

		// Given: every one of the 3^9 cell assignments
		for n := 0; n < 19683; n++ {
			var board Board
			rest := n
			for i := range board {
				board[i] = marks[rest%3]
				rest /= 3
			}

			if hasLine(board) {
				continue
			}

			// Then: the outcome is never a win
			assert.NotEqual(t, Win, EvaluateOutcome(board).Status, board.String())
		}
	})
}

func TestBoard_String(t *testing.T) {
	board := Board{X, Empty, O, Empty, X, Empty, O, Empty, Empty}

	assert.Equal(t, "X.O\n.X.\nO..", board.String())
}

func hasLine(board Board) bool {
	for _, combo := range WinCombos {
		a := board[combo[0]]
		if a != Empty && a == board[combo[1]] && a == board[combo[2]] {
			return true
		}
	}
	return false
}
