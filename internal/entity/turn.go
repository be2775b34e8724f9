package entity

import "github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"

type Move struct {
	Player tictactoe.Mark `json:"player"`
	Cell   int            `json:"cell"`
}

// TurnResult is what one request produced: the human move and, against the bot, its reply.
type TurnResult struct {
	Session *Session          `json:"session"`
	Moves   []Move            `json:"moves"`
	Outcome tictactoe.Outcome `json:"outcome"`
}
