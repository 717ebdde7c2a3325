package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameUseCase - routes renderer events into the game of a session and stores the result.
//
// Events are applied one at a time: each is loaded, applied and saved before the next one starts,
// whichever transport delivered it.
type GameUseCase struct {
	logger      *slog.Logger
	gameRepo    gameRepo
	strictMoves bool

	mu sync.Mutex
}

// NewGameUseCase - with strictMoves unset, rejected moves are ignored and the unchanged view is returned.
func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo, strictMoves bool) *GameUseCase {
	return &GameUseCase{
		logger:      logger.With("component", "usecase"),
		gameRepo:    gameRepo,
		strictMoves: strictMoves,
	}
}

func (that *GameUseCase) GetOrCreateGame(ctx context.Context, sessionID string) (*tictactoe.View, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := game.View()

	return &view, nil
}

// Dispatch - applies one event to the session's game. When an event is rejected the
// unchanged view is returned together with the error.
func (that *GameUseCase) Dispatch(ctx context.Context, sessionID string, event tictactoe.Event) (*tictactoe.View, error) {
	log := that.logger.With("method", "Dispatch", "sessionID", sessionID, "event", event.Name())

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.loadGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := game.Dispatch(event)
	if err != nil {
		view := game.View()

		if errors.Is(err, apperror.ErrInvalidMove) && !that.strictMoves {
			log.Debug("move ignored", "reason", err)
			eventsTotal.WithLabelValues(event.Name(), resultIgnored).Inc()

			return &view, nil
		}

		log.Info("event rejected", "error", err)
		eventsTotal.WithLabelValues(event.Name(), resultRejected).Inc()

		return &view, fmt.Errorf("failed to dispatch %s: %w", event.Name(), err)
	}

	if err = that.saveGame(ctx, sessionID, next); err != nil {
		return nil, err
	}

	eventsTotal.WithLabelValues(event.Name(), resultApplied).Inc()
	historyLength.Observe(float64(next.Len()))

	log.Debug("event applied", "step", next.Step(), "history", next.Len())

	view := next.View()

	return &view, nil
}

func (that *GameUseCase) MakeMove(ctx context.Context, sessionID string, cell int) (*tictactoe.View, error) {
	return that.Dispatch(ctx, sessionID, tictactoe.CellClicked{Index: cell})
}

func (that *GameUseCase) JumpTo(ctx context.Context, sessionID string, step int) (*tictactoe.View, error) {
	return that.Dispatch(ctx, sessionID, tictactoe.HistoryLinkClicked{Step: step})
}

func (that *GameUseCase) Reset(ctx context.Context, sessionID string) (*tictactoe.View, error) {
	return that.Dispatch(ctx, sessionID, tictactoe.ResetRequested{})
}

// EndGame - drops the session's game. Ending a session without a game is not an error.
func (that *GameUseCase) EndGame(ctx context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	err := that.gameRepo.DeleteByID(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game ended", "sessionID", sessionID)

	return nil
}

// loadGame - returns the stored game of the session, creating one on first use.
// A stored game that fails validation is replaced by a new one.
func (that *GameUseCase) loadGame(ctx context.Context, sessionID string) (tictactoe.Game, error) {
	log := that.logger.With("method", "loadGame", "sessionID", sessionID)

	record, err := that.gameRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return that.createGame(ctx, sessionID)
	}

	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := tictactoe.Restore(record)
	if err != nil {
		log.Warn("stored game discarded", "error", err)

		return that.createGame(ctx, sessionID)
	}

	return game, nil
}

func (that *GameUseCase) createGame(ctx context.Context, sessionID string) (tictactoe.Game, error) {
	game := tictactoe.NewGame()

	if err := that.saveGame(ctx, sessionID, game); err != nil {
		return tictactoe.Game{}, err
	}

	that.logger.Info("game created", "sessionID", sessionID)

	return game, nil
}

func (that *GameUseCase) saveGame(ctx context.Context, sessionID string, game tictactoe.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game.Record(sessionID)); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}
