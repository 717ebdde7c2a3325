package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const (
	maxMessageSize  = 1 << 10
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, sessionID string) (*tictactoe.View, error)
	Dispatch(ctx context.Context, sessionID string, event tictactoe.Event) (*tictactoe.View, error)
	EndGame(ctx context.Context, sessionID string) error
}

type handlerFunc func(ctx context.Context, sessionID string, msg *Message, conn *ws.Conn) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	sessionTTL  time.Duration
	upgrader    ws.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase, sessionTTL time.Duration) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		sessionTTL:  sessionTTL,
		upgrader: ws.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionJump] = server.handleJump
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionLeave] = server.handleLeave

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
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

// upgradeToWebSocket - upgrades the connection to WebSocket and sends the current game.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	cookie, created := pkg.SessionCookie(req, that.sessionTTL)

	header := http.Header{}
	if created {
		header.Add("Set-Cookie", cookie.String())
		log.Info("session cookie not found, new one created", "cookie", cookie.Value)
	}

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	log.Info("WebSocket connection established", "sessionID", cookie.Value)

	if err = that.handleMessages(req.Context(), cookie.Value, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects or leaves.
func (that *Server) handleMessages(ctx context.Context, sessionID string, conn *ws.Conn) error {
	log := that.logger.With("method", "handleMessages", "sessionID", sessionID)

	if err := that.handleState(ctx, sessionID, &Message{Action: actionState}, conn); err != nil {
		return err
	}

	for {
		_, reqBody, err := conn.ReadMessage()
		if err != nil {
			if ws.IsCloseError(err, ws.CloseNormalClosure, ws.CloseGoingAway) {
				log.Info("WebSocket connection closed")
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			if err = that.sendError(conn, "", "malformed message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			if err = that.sendError(conn, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, sessionID, &message, conn); err != nil {
			if errors.Is(err, errLeave) {
				return nil
			}

			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}
