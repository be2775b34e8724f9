package tictactoe

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown outcome status")

type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (that Status) String() string {
	switch that {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

func (that Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw {
	case "in_progress":
		*that = InProgress
	case "win":
		*that = Win
	case "draw":
		*that = Draw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}

	return nil
}

// Outcome is the state of a round. Winner is set only for Win.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsTerminal() bool {
	return that.Status != InProgress
}

// EvaluateOutcome - Win if a line is complete, Draw if the board is full, InProgress otherwise.
func EvaluateOutcome(board Board) Outcome {
	if winner, ok := Winner(board); ok {
		return Outcome{Status: Win, Winner: winner}
	}

	if IsFull(board) {
		return Outcome{Status: Draw}
	}

	return Outcome{Status: InProgress}
}
