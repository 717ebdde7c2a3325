package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*tictactoe.View, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (*tictactoe.View, error)
	JumpTo(ctx context.Context, sessionID string, step int) (*tictactoe.View, error)
	Reset(ctx context.Context, sessionID string) (*tictactoe.View, error)
	EndGame(ctx context.Context, sessionID string) error
}

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	validate    *validator.Validate
	sessionTTL  time.Duration
}

func New(logger *slog.Logger, gameUseCase gameUseCase, sessionTTL time.Duration) *Server {
	return &Server{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
		validate:    validator.New(),
		sessionTTL:  sessionTTL,
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/game", that.handleGetGame)
	mux.HandleFunc("DELETE /api/game", that.handleEndGame)
	mux.HandleFunc("POST /api/game/move", that.handleMove)
	mux.HandleFunc("POST /api/game/jump", that.handleJump)
	mux.HandleFunc("POST /api/game/reset", that.handleReset)

	return mux
}

// Start - serves HTTP until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
