package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tui"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/rest"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/websocket"
	"golang.org/x/sync/errgroup"
)

// localSessionID - the TUI plays a single local game.
const localSessionID = "local"

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunServer - runs the HTTP and WebSocket servers until a signal arrives or one of them fails.
func RunServer(logger *slog.Logger, conf *config.Config) error {
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

	gameRepo, closeStorage, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeStorage(log)

	gameUseCase := usecase.NewGameUseCase(logger, gameRepo, conf.StrictMoves)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameUseCase, conf.SessionTTL).Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, gameUseCase, conf.SessionTTL).Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// RunTUI - plays a local game in the terminal. The game lives in memory only.
func RunTUI(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := storage.NewBadgerStorage()
	if err != nil {
		return fmt.Errorf("could not open badger storage: %w", err)
	}

	defer func() {
		if err = db.Close(); err != nil {
			log.Error("could not close badger storage", "error", err)
		}
	}()

	gameRepo := repository.NewBadgerGameRepository(db, conf.SessionTTL)
	gameUseCase := usecase.NewGameUseCase(logger, gameRepo, conf.StrictMoves)

	program := tea.NewProgram(tui.New(ctx, gameUseCase, localSessionID), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}

	return nil
}

// newGameRepository - opens the configured store, the returned func closes it.
func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func(*slog.Logger), error) {
	switch conf.Storage {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeFn := func(log *slog.Logger) {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewGameRepository(redisStorage, conf.SessionTTL), closeFn, nil

	default:
		db, err := storage.NewBadgerStorage()
		if err != nil {
			return nil, nil, fmt.Errorf("could not open badger storage: %w", err)
		}

		closeFn := func(log *slog.Logger) {
			if err := db.Close(); err != nil {
				log.Error("could not close badger storage", "error", err)
			}
		}

		return repository.NewBadgerGameRepository(db, conf.SessionTTL), closeFn, nil
	}
}
