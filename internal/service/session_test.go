package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

var errRedisDown = errors.New("redis down")

func TestSessionService_CreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and stores a new session", func(t *testing.T) {
		// Given: a repository that accepts the session
		repo := &mockSessionRepo{}
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Session")).Return(nil).Once()

		sessionService := NewSessionService(repo, 5)

		// When: creating a bot session
		session, err := sessionService.CreateSession(ctx, entity.ModeBot)

		// Then: the session gets an id and the configured threshold
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, entity.ModeBot, session.Mode)
		assert.Equal(t, 5, session.WinThreshold)
		repo.AssertExpectations(t)
	})

	t.Run("Returns error for an unknown mode", func(t *testing.T) {
		repo := &mockSessionRepo{}
		sessionService := NewSessionService(repo, 3)

		// When: creating a session with an unsupported mode
		session, err := sessionService.CreateSession(ctx, "online")

		// Then: ErrUnknownMode is returned and nothing is stored
		require.ErrorIs(t, err, apperror.ErrUnknownMode)
		assert.Nil(t, session)
		repo.AssertNotCalled(t, "CreateOrUpdate", mock.Anything, mock.Anything)
	})

	t.Run("Returns error if storage fails", func(t *testing.T) {
		repo := &mockSessionRepo{}
		repo.On("CreateOrUpdate", ctx, mock.AnythingOfType("*entity.Session")).Return(errRedisDown).Once()

		sessionService := NewSessionService(repo, 3)

		session, err := sessionService.CreateSession(ctx, entity.ModeTwoPlayers)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, session)
	})
}

func TestSessionService_GetSessionByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored session", func(t *testing.T) {
		existing := entity.NewSession("s1", entity.ModeBot, 3)

		repo := &mockSessionRepo{}
		repo.On("GetByID", ctx, "s1").Return(existing, nil).Once()

		session, err := NewSessionService(repo, 3).GetSessionByID(ctx, "s1")

		require.NoError(t, err)
		assert.Equal(t, existing, session)
	})

	t.Run("Wraps not found", func(t *testing.T) {
		repo := &mockSessionRepo{}
		repo.On("GetByID", ctx, "missing").Return(nil, apperror.ErrSessionNotFound).Once()

		session, err := NewSessionService(repo, 3).GetSessionByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, session)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	ctx := context.Background()

	repo := &mockSessionRepo{}
	repo.On("DeleteByID", ctx, "s1").Return(nil).Once()
	repo.On("DeleteByID", ctx, "s2").Return(errRedisDown).Once()

	sessionService := NewSessionService(repo, 3)

	require.NoError(t, sessionService.DeleteSession(ctx, "s1"))
	require.ErrorIs(t, sessionService.DeleteSession(ctx, "s2"), errRedisDown)
	repo.AssertExpectations(t)
}
