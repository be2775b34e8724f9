package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type SessionService interface {
	CreateSession(ctx context.Context, mode string) (*entity.Session, error)
	UpdateSession(ctx context.Context, session *entity.Session) error
	DeleteSession(ctx context.Context, sessionID string) error

	GetSessionByID(ctx context.Context, id string) (*entity.Session, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionService struct {
	sessionRepo  sessionRepo
	winThreshold int
}

func NewSessionService(sessionRepo sessionRepo, winThreshold int) SessionService {
	return &sessionService{
		sessionRepo:  sessionRepo,
		winThreshold: winThreshold,
	}
}

func (that *sessionService) CreateSession(ctx context.Context, mode string) (*entity.Session, error) {
	if err := entity.ValidateMode(mode); err != nil {
		return nil, err
	}

	session := entity.NewSession(uuid.NewString(), mode, that.winThreshold)

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session in storage: %w", err)
	}

	return session, nil
}

func (that *sessionService) GetSessionByID(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve session from storage: %w", err)
	}

	return session, nil
}

func (that *sessionService) UpdateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

func (that *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
