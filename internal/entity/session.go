package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const (
	ModeTwoPlayers = "2p"
	ModeBot        = "bot"

	// HumanMark and BotMark are fixed for games against the computer.
	HumanMark = tictactoe.X
	BotMark   = tictactoe.O

	DefaultWinThreshold = 3
)

type Session struct {
	ID           string          `json:"id"`
	Mode         string          `json:"mode"`
	Board        tictactoe.Board `json:"board"`
	Turn         tictactoe.Mark  `json:"turn"`
	Score        Score           `json:"score"`
	Round        int             `json:"round"`
	WinThreshold int             `json:"win_threshold"`
	LastRound    *RoundResult    `json:"last_round,omitempty"`
}

// RoundResult keeps the final board of a finished round, the board itself is reset.
type RoundResult struct {
	Round       int               `json:"round"`
	Board       tictactoe.Board   `json:"board"`
	Outcome     tictactoe.Outcome `json:"outcome"`
	MatchWinner tictactoe.Mark    `json:"match_winner,omitempty"`
}

func ValidateMode(mode string) error {
	switch mode {
	case ModeTwoPlayers, ModeBot:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

func NewSession(id, mode string, winThreshold int) *Session {
	if winThreshold <= 0 {
		winThreshold = DefaultWinThreshold
	}

	return &Session{
		ID:           id,
		Mode:         mode,
		Board:        tictactoe.NewBoard(),
		Turn:         tictactoe.X,
		Round:        1,
		WinThreshold: winThreshold,
	}
}

func (that *Session) IsWithBot() bool {
	return that.Mode == ModeBot
}

func (that *Session) IsBotTurn() bool {
	return that.IsWithBot() && that.Turn == BotMark
}

// MakeTurn - plays cell for player. A finished round is recorded in LastRound and a
// fresh board is set up, so the returned outcome is the only place a terminal state shows.
func (that *Session) MakeTurn(player tictactoe.Mark, cell int) (tictactoe.Outcome, error) {
	if that.Turn != player {
		return tictactoe.Outcome{}, fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	board, err := tictactoe.ApplyMove(that.Board, cell, player)
	if err != nil {
		return tictactoe.Outcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	that.Board = board

	outcome := tictactoe.EvaluateOutcome(board)
	if outcome.IsTerminal() {
		that.closeRound(outcome)
		return outcome, nil
	}

	that.Turn = tictactoe.Opponent(player)

	return outcome, nil
}

// Restart - zero the score and start again from round one.
func (that *Session) Restart() {
	that.Score = Score{}
	that.Round = 1
	that.LastRound = nil
	that.resetBoard()
}

func (that *Session) closeRound(outcome tictactoe.Outcome) {
	result := &RoundResult{
		Round:   that.Round,
		Board:   that.Board,
		Outcome: outcome,
	}

	if outcome.Status == tictactoe.Win {
		that.Score.Add(outcome.Winner)

		if that.Score.Of(outcome.Winner) >= that.WinThreshold {
			result.MatchWinner = outcome.Winner
			that.Score = Score{}
		}
	}

	that.LastRound = result
	that.Round++
	that.resetBoard()
}

func (that *Session) resetBoard() {
	that.Board = tictactoe.NewBoard()
	that.Turn = tictactoe.X
}
