package entity

import "github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"

// Score counts round wins per player.
type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

func (that *Score) Add(player tictactoe.Mark) {
	switch player {
	case tictactoe.X:
		that.X++
	case tictactoe.O:
		that.O++
	}
}

func (that Score) Of(player tictactoe.Mark) int {
	switch player {
	case tictactoe.X:
		return that.X
	case tictactoe.O:
		return that.O
	default:
		return 0
	}
}
