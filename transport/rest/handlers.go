package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const maxBodyBytes = 1 << 10

type moveRequest struct {
	Cell *int `json:"cell" validate:"required"`
}

type jumpRequest struct {
	Step *int `json:"step" validate:"required"`
}

type gameResponse struct {
	Game  *tictactoe.View `json:"game,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sessionID := pkg.SessionID(w, r, that.sessionTTL)

	view, err := that.gameUseCase.GetOrCreateGame(r.Context(), sessionID)
	that.respond(w, "handleGetGame", view, err)
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !that.decode(w, r, &req) {
		return
	}

	sessionID := pkg.SessionID(w, r, that.sessionTTL)

	view, err := that.gameUseCase.MakeMove(r.Context(), sessionID, *req.Cell)
	that.respond(w, "handleMove", view, err)
}

func (that *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if !that.decode(w, r, &req) {
		return
	}

	sessionID := pkg.SessionID(w, r, that.sessionTTL)

	view, err := that.gameUseCase.JumpTo(r.Context(), sessionID, *req.Step)
	that.respond(w, "handleJump", view, err)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := pkg.SessionID(w, r, that.sessionTTL)

	view, err := that.gameUseCase.Reset(r.Context(), sessionID)
	that.respond(w, "handleReset", view, err)
}

func (that *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	sessionID := pkg.SessionID(w, r, that.sessionTTL)

	if err := that.gameUseCase.EndGame(r.Context(), sessionID); err != nil {
		that.respond(w, "handleEndGame", nil, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode - reads and validates a JSON body, answering 400 itself when it is malformed.
func (that *Server) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	log := that.logger.With("method", "decode", "path", r.URL.Path)

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(req); err != nil {
		log.Debug("malformed body", "error", err)
		writeJSON(w, http.StatusBadRequest, gameResponse{Error: "malformed request body"})

		return false
	}

	if err := that.validate.Struct(req); err != nil {
		log.Debug("invalid body", "error", err)
		writeJSON(w, http.StatusBadRequest, gameResponse{Error: err.Error()})

		return false
	}

	return true
}

func (that *Server) respond(w http.ResponseWriter, method string, view *tictactoe.View, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, gameResponse{Game: view})
	case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrInvalidStep):
		writeJSON(w, http.StatusUnprocessableEntity, gameResponse{Game: view, Error: err.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		writeJSON(w, http.StatusInternalServerError, gameResponse{Error: "Internal Server Error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
