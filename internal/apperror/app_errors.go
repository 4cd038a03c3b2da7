package apperror

import "errors"

var (
	ErrCellOutOfRange = errors.New("cell index out of range")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidPiece   = errors.New("invalid piece")
	ErrGameFinished   = errors.New("game is already finished")
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidColor   = errors.New("invalid color")
	ErrInvalidPayload = errors.New("invalid payload")
)
