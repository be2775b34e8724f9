package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

const BoardSize = 9

var (
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidPlayer = errors.New("invalid player mark")

	// WinCombos - rows top-to-bottom, columns left-to-right, then both diagonals.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board holds the 9 cells in row-major order.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

// IsPlayer reports whether the mark can be played.
func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// Opponent returns the other player mark, Empty stays Empty.
func Opponent(mark Mark) Mark {
	switch mark {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ApplyMove - returns a copy of board with player placed at index.
// On error the original board is returned.
func ApplyMove(board Board, index int, player Mark) (Board, error) {
	if index < 0 || index >= BoardSize {
		return board, fmt.Errorf("%w: cell %d", ErrInvalidCell, index)
	}

	if !player.IsPlayer() {
		return board, fmt.Errorf("%w: %q", ErrInvalidPlayer, player)
	}

	if board[index] != Empty {
		return board, fmt.Errorf("%w: cell %d", ErrCellOccupied, index)
	}

	board[index] = player

	return board, nil
}

// CheckWin - true if player owns any winning line.
func CheckWin(board Board, player Mark) bool {
	if !player.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if board[combo[0]] == player && board[combo[1]] == player && board[combo[2]] == player {
			return true
		}
	}

	return false
}

// Winner - scans WinCombos in order and returns the owner of the first complete line.
func Winner(board Board) (Mark, bool) {
	mark, _, ok := winningLine(board)
	return mark, ok
}

// WinningLine returns the first complete line, used by renderers to highlight it.
func WinningLine(board Board) ([3]int, bool) {
	_, combo, ok := winningLine(board)
	return combo, ok
}

func winningLine(board Board) (Mark, [3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return a, combo, true
		}
	}

	return Empty, [3]int{}, false
}

func IsFull(board Board) bool {
	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) MoveCount() int {
	count := 0
	for _, cell := range that {
		if cell != Empty {
			count++
		}
	}

	return count
}

func (that Board) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := that[row*3+col]
			if cell == Empty {
				sb.WriteString(".")
			} else {
				sb.WriteString(string(cell))
			}
		}

		if row < 2 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
