package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// Record - converts the game into its storable form.
func (that Game) Record(id string) *entity.Game {
	return &entity.Game{
		ID:        id,
		History:   that.History(),
		Step:      that.step,
		UpdatedAt: time.Now().UTC(),
	}
}

// Restore - rebuilds a game from a stored record, refusing records that could not have been
// produced by ApplyMove.
func Restore(record *entity.Game) (Game, error) {
	if record == nil || len(record.History) == 0 {
		return Game{}, fmt.Errorf("%w: empty history", apperror.ErrCorruptedGame)
	}

	if record.History[0] != (entity.Board{}) {
		return Game{}, fmt.Errorf("%w: game start is not an empty board", apperror.ErrCorruptedGame)
	}

	for step := 1; step < len(record.History); step++ {
		if err := checkTransition(record.History[step-1], record.History[step], step); err != nil {
			return Game{}, err
		}
	}

	if record.Step < 0 || record.Step >= len(record.History) {
		return Game{}, fmt.Errorf("%w: step %d with %d snapshots", apperror.ErrCorruptedGame, record.Step, len(record.History))
	}

	history := make([]entity.Board, len(record.History))
	copy(history, record.History)

	return Game{
		history: history,
		step:    record.Step,
	}, nil
}

// checkTransition - step must differ from the previous snapshot by exactly one mark placed by the right player.
func checkTransition(prev, next entity.Board, step int) error {
	if prev.Winner() != entity.EmptyCell {
		return fmt.Errorf("%w: move #%d played after a win", apperror.ErrCorruptedGame, step)
	}

	diff := prev.Diff(next)
	if len(diff) != 1 {
		return fmt.Errorf("%w: move #%d changes %d cells", apperror.ErrCorruptedGame, step, len(diff))
	}

	cell := diff[0]
	if prev[cell] != entity.EmptyCell || next[cell] != entity.MarkForStep(step-1) {
		return fmt.Errorf("%w: move #%d is not a %s mark on an empty cell", apperror.ErrCorruptedGame, step, entity.MarkForStep(step-1))
	}

	return nil
}
