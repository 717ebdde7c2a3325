package websocket

import (
	"encoding/json"
	"fmt"

	ws "github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const (
	actionState = "game:state"
	actionMove  = "game:move"
	actionJump  = "game:jump"
	actionReset = "game:reset"
	actionLeave = "game:leave"
	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Cell  *int            `json:"cell,omitempty"`
	Step  *int            `json:"step,omitempty"`
	Game  *tictactoe.View `json:"game,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *ws.Conn, action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: payloadJSON,
	}

	if err = conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *ws.Conn, action, errMessage string) error {
	if action == "" {
		action = actionError
	}

	return that.sendMessage(conn, action, Payload{Error: errMessage})
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
