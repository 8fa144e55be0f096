package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/boardgame-backend/internal/config"
	"github.com/rocketscienceinc/boardgame-backend/internal/entity"
	"github.com/rocketscienceinc/boardgame-backend/internal/repository"
	"github.com/rocketscienceinc/boardgame-backend/internal/service"
	"github.com/rocketscienceinc/boardgame-backend/internal/transport/redis"
	"github.com/rocketscienceinc/boardgame-backend/internal/usecase"
	"github.com/rocketscienceinc/boardgame-backend/transport/rest"
	"github.com/rocketscienceinc/boardgame-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis host is empty")

type eventPublisher interface {
	Publish(ctx context.Context, event entity.Event) error
}

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

	var publisher eventPublisher = redis.NopPublisher{}
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisAddrString := conf.Redis.GetRedisAddr()

		redisClient, err := redis.New(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		publisher = redis.NewPublisher(redisClient, conf.Redis.Channel)
		log.Info("Publishing session events", "addr", redisAddrString, "channel", conf.Redis.Channel)
	}

	sessionRepo := repository.NewSessionRepository()
	matchmakingService := service.NewMatchmakingService(sessionRepo)
	gameManager := usecase.NewGameManager(logger, sessionRepo, matchmakingService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gameManager, sessionRepo)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, publisher)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
