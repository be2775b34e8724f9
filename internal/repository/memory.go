package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewMemorySessionRepository keeps sessions in process memory for the lifetime of the server.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		sessions: make(map[string]entity.Session),
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = copySession(session)

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	session = copySession(&session)

	return &session, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

// copySession detaches LastRound so callers never share state with the store.
func copySession(session *entity.Session) entity.Session {
	stored := *session
	if session.LastRound != nil {
		lastRound := *session.LastRound
		stored.LastRound = &lastRound
	}

	return stored
}
