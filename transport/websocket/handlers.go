package websocket

import (
	"context"
	"errors"
	"fmt"

	ws "github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// errLeave stops the read loop after a client left its game.
var errLeave = errors.New("client left")

func (that *Server) handleState(ctx context.Context, sessionID string, msg *Message, conn *ws.Conn) error {
	view, err := that.gameUseCase.GetOrCreateGame(ctx, sessionID)
	if err != nil {
		that.logger.Error("failed to get game", "method", "handleState", "sessionID", sessionID, "error", err)
		return that.sendError(conn, msg.Action, "failed to get the game")
	}

	return that.sendMessage(conn, msg.Action, Payload{Game: view})
}

func (that *Server) handleMove(ctx context.Context, sessionID string, msg *Message, conn *ws.Conn) error {
	payload, err := decodePayload(msg)
	if err != nil || payload.Cell == nil {
		return that.sendError(conn, msg.Action, "cell is required")
	}

	return that.dispatch(ctx, sessionID, msg, conn, tictactoe.CellClicked{Index: *payload.Cell})
}

func (that *Server) handleJump(ctx context.Context, sessionID string, msg *Message, conn *ws.Conn) error {
	payload, err := decodePayload(msg)
	if err != nil || payload.Step == nil {
		return that.sendError(conn, msg.Action, "step is required")
	}

	return that.dispatch(ctx, sessionID, msg, conn, tictactoe.HistoryLinkClicked{Step: *payload.Step})
}

func (that *Server) handleReset(ctx context.Context, sessionID string, msg *Message, conn *ws.Conn) error {
	return that.dispatch(ctx, sessionID, msg, conn, tictactoe.ResetRequested{})
}

func (that *Server) handleLeave(ctx context.Context, sessionID string, msg *Message, conn *ws.Conn) error {
	if err := that.gameUseCase.EndGame(ctx, sessionID); err != nil {
		that.logger.Error("failed to end game", "method", "handleLeave", "sessionID", sessionID, "error", err)
		return that.sendError(conn, msg.Action, "failed to leave the game")
	}

	if err := that.sendMessage(conn, msg.Action, Payload{}); err != nil {
		return err
	}

	closeMsg := ws.FormatCloseMessage(ws.CloseNormalClosure, "game left")
	if err := conn.WriteMessage(ws.CloseMessage, closeMsg); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return errLeave
}

// dispatch - forwards the event and pushes the resulting view; rejected events carry the unchanged view.
func (that *Server) dispatch(ctx context.Context, sessionID string, msg *Message, conn *ws.Conn, event tictactoe.Event) error {
	log := that.logger.With("method", "dispatch", "sessionID", sessionID, "action", msg.Action)

	view, err := that.gameUseCase.Dispatch(ctx, sessionID, event)

	switch {
	case err == nil:
		return that.sendMessage(conn, msg.Action, Payload{Game: view})
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrInvalidStep):
		return that.sendMessage(conn, msg.Action, Payload{Game: view, Error: err.Error()})
	default:
		log.Error("failed to dispatch event", "error", err)
		return that.sendError(conn, msg.Action, "failed to update the game")
	}
}
