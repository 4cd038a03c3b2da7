package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-tabletop/internal/config"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/transport/redis"
)

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

	settings, err := conf.GameSettings()
	if err != nil {
		return fmt.Errorf("invalid game settings: %w", err)
	}

	sessionID := conf.SessionID
	if sessionID == "" {
		sessionID = pkg.GenerateSessionID()
	}

	redisClient, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisClient.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	channels := redis.NewChannels(conf.Redis.ChannelPrefix, sessionID)
	snapshotRepo := repository.NewSnapshotRepository(redisClient, conf.Redis.SnapshotTTL)
	presenter := redis.NewPresenter(logger, redisClient, channels.Render)
	gameController := tictactoe.NewGameController(logger, presenter, settings)
	bridge := redis.NewBridge(logger, redisClient, sessionID, channels, gameController, presenter, snapshotRepo)

	defer func() {
		// the snapshot only describes a live session
		if delErr := snapshotRepo.DeleteByID(context.Background(), sessionID); delErr != nil &&
			!errors.Is(delErr, repository.ErrSnapshotNotFound) {
			log.Error("could not delete snapshot", "error", delErr)
		}
	}()

	go func() {
		if runErr := presenter.Run(ctx); runErr != nil {
			log.Error("presenter stopped", "error", runErr)
		}
	}()

	log.Info("Starting game session", "sessionID", sessionID, "input", channels.Input, "render", channels.Render)

	if err = bridge.Run(ctx); err != nil {
		return fmt.Errorf("redis bridge error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
