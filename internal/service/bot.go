package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

type BotService interface {
	MakeTurn(session *entity.Session) (entity.Move, tictactoe.Outcome, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the minimax move for the bot mark.
func (that *botService) MakeTurn(session *entity.Session) (entity.Move, tictactoe.Outcome, error) {
	if !session.IsBotTurn() {
		return entity.Move{}, tictactoe.Outcome{}, ErrNotBotTurn
	}

	cell, err := tictactoe.BestMoveFor(session.Board, entity.BotMark)
	if err != nil {
		return entity.Move{}, tictactoe.Outcome{}, fmt.Errorf("failed to search bot move: %w", err)
	}

	outcome, err := session.MakeTurn(entity.BotMark, cell)
	if err != nil {
		return entity.Move{}, tictactoe.Outcome{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return entity.Move{Player: entity.BotMark, Cell: cell}, outcome, nil
}
