package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidStep   = errors.New("invalid step")
	ErrCorruptedGame = errors.New("game history is corrupted")
	ErrUnknownEvent  = errors.New("unknown event")
)
