package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// Game - the move history of one match and the step currently displayed.
//
// Game is immutable: every operation returns a new value and leaves the receiver untouched.
// The zero value is a game at its start.
type Game struct {
	history []entity.Board
	step    int
}

func NewGame() Game {
	return Game{
		history: []entity.Board{{}},
		step:    0,
	}
}

// ApplyMove - plays the next mark at cell. Moves on an occupied cell, an out of range cell
// or a won board are ignored and the receiver is returned unchanged.
func (that Game) ApplyMove(cell int) Game {
	next, err := that.TryApplyMove(cell)
	if err != nil {
		return that
	}

	return next
}

// TryApplyMove - same as ApplyMove but reports why a move was rejected.
// Rejections always wrap apperror.ErrInvalidMove.
func (that Game) TryApplyMove(cell int) (Game, error) {
	if err := that.validateMove(cell); err != nil {
		return that, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	history := that.snapshots()
	current := history[that.step]

	// drop every snapshot after the displayed one, the new move starts a fresh branch
	next := make([]entity.Board, that.step+1, that.step+2)
	copy(next, history[:that.step+1])
	next = append(next, current.Place(cell, that.NextPlayer()))

	return Game{
		history: next,
		step:    len(next) - 1,
	}, nil
}

// validateMove - checks if the move is valid.
func (that Game) validateMove(cell int) error {
	current := that.Current()

	if current.Winner() != entity.EmptyCell {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !current.IsEmptyCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// JumpTo - moves the step pointer. History is never altered.
func (that Game) JumpTo(step int) (Game, error) {
	history := that.snapshots()

	if step < 0 || step >= len(history) {
		return that, fmt.Errorf("%w: %d is outside [0, %d]", apperror.ErrInvalidStep, step, len(history)-1)
	}

	return Game{
		history: history,
		step:    step,
	}, nil
}

func (that Game) Step() int {
	return that.step
}

// Len - number of snapshots in history, the initial empty board included.
func (that Game) Len() int {
	return len(that.snapshots())
}

// History - returns a copy of every snapshot, oldest first.
func (that Game) History() []entity.Board {
	history := that.snapshots()

	out := make([]entity.Board, len(history))
	copy(out, history)

	return out
}

func (that Game) Current() entity.Board {
	return that.snapshots()[that.step]
}

func (that Game) Winner() entity.Mark {
	return that.Current().Winner()
}

func (that Game) NextPlayer() entity.Mark {
	return entity.MarkForStep(that.step)
}

func (that Game) snapshots() []entity.Board {
	if len(that.history) == 0 {
		return []entity.Board{{}}
	}

	return that.history
}
