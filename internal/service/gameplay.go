package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

type GamePlayService interface {
	StartSession(ctx context.Context, mode string) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	Restart(ctx context.Context, sessionID string) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeTurn(ctx context.Context, sessionID string, player tictactoe.Mark, cell int) (*entity.TurnResult, error)
	Hint(ctx context.Context, sessionID string) (int, error)
}

type gamePlayService struct {
	logger *slog.Logger

	sessionService SessionService
	botService     BotService

	locks *sessionLocks
}

func NewGamePlayService(logger *slog.Logger, sessionService SessionService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:         logger.With("component", "gameplay"),
		sessionService: sessionService,
		botService:     botService,
		locks:          newSessionLocks(),
	}
}

func (that *gamePlayService) StartSession(ctx context.Context, mode string) (*entity.Session, error) {
	session, err := that.sessionService.CreateSession(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", session.ID, "mode", session.Mode)

	return session, nil
}

func (that *gamePlayService) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionService.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

// MakeTurn - plays the move of player, an empty player means whoever is to move.
// Against the bot the reply is played in the same call unless the round is over.
func (that *gamePlayService) MakeTurn(ctx context.Context, sessionID string, player tictactoe.Mark, cell int) (*entity.TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	session, err := that.sessionService.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if player == tictactoe.Empty {
		player = session.Turn
	}

	if session.IsWithBot() && player != entity.HumanMark {
		return nil, fmt.Errorf("%w: %s is played by the bot", apperror.ErrNotYourTurn, player)
	}

	outcome, err := session.MakeTurn(player, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	result := &entity.TurnResult{
		Session: session,
		Moves:   []entity.Move{{Player: player, Cell: cell}},
		Outcome: outcome,
	}

	if !outcome.IsTerminal() && session.IsBotTurn() {
		move, botOutcome, err := that.botService.MakeTurn(session)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot answered", "cell", move.Cell)

		result.Moves = append(result.Moves, move)
		result.Outcome = botOutcome
	}

	if err = that.sessionService.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if result.Outcome.IsTerminal() {
		log.Info("round finished",
			"round", session.LastRound.Round,
			"status", result.Outcome.Status.String(),
			"winner", result.Outcome.Winner,
			"matchWinner", session.LastRound.MatchWinner,
		)
	}

	return result, nil
}

// Hint - the move the search would play for whoever is to move.
func (that *gamePlayService) Hint(ctx context.Context, sessionID string) (int, error) {
	session, err := that.sessionService.GetSessionByID(ctx, sessionID)
	if err != nil {
		return -1, fmt.Errorf("failed to get session by id: %w", err)
	}

	cell, err := tictactoe.BestMoveFor(session.Board, session.Turn)
	if err != nil {
		return -1, fmt.Errorf("failed to search hint: %w", err)
	}

	return cell, nil
}

func (that *gamePlayService) Restart(ctx context.Context, sessionID string) (*entity.Session, error) {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	session, err := that.sessionService.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	session.Restart()

	if err = that.sessionService.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	that.logger.Info("session restarted", "sessionID", sessionID)

	return session, nil
}

func (that *gamePlayService) EndSession(ctx context.Context, sessionID string) error {
	unlock := that.locks.lock(sessionID)
	defer unlock()

	if err := that.sessionService.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", sessionID)

	return nil
}
