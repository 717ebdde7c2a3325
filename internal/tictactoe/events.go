package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

const (
	EventCellClicked        = "cell_clicked"
	EventHistoryLinkClicked = "history_link_clicked"
	EventResetRequested     = "reset_requested"
)

// Event - a user action coming from a renderer.
type Event interface {
	Name() string
}

type CellClicked struct {
	Index int
}

type HistoryLinkClicked struct {
	Step int
}

type ResetRequested struct{}

func (CellClicked) Name() string { return EventCellClicked }

func (HistoryLinkClicked) Name() string { return EventHistoryLinkClicked }

func (ResetRequested) Name() string { return EventResetRequested }

// Dispatch - applies a single event. Rejected moves are reported (wrapping apperror.ErrInvalidMove)
// together with the unchanged game, callers decide whether to surface or ignore them.
func (that Game) Dispatch(event Event) (Game, error) {
	switch e := event.(type) {
	case CellClicked:
		return that.TryApplyMove(e.Index)
	case HistoryLinkClicked:
		return that.JumpTo(e.Step)
	case ResetRequested:
		return NewGame(), nil
	default:
		return that, fmt.Errorf("%w: %T", apperror.ErrUnknownEvent, event)
	}
}
