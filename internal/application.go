package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository"
	"github.com/rocketscienceinc/tictactoe-core/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-core/internal/service"
	"github.com/rocketscienceinc/tictactoe-core/transport/rest"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeStorage, err := initSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	sessionService := service.NewSessionService(sessionRepo, conf.Match.WinThreshold)
	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, sessionService, botService)

	httpServer := rest.New(logger, conf.HTTPPort, gamePlayService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err = httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown: %w", err)
		}

		return nil
	}
}

// initSessionRepository picks the configured storage, the returned func releases it.
func initSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	if conf.Storage != config.StorageRedis {
		log.Info("Using in-memory session storage")
		return repository.NewMemorySessionRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisAddrString := conf.Redis.GetRedisAddr()

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	log.Info("Using redis session storage", "addr", redisAddrString, "ttl", conf.SessionTTL)

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewSessionRepository(redisStorage.Connection, conf.SessionTTL), closeStorage, nil
}
