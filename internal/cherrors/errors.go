package cherrors

import "errors"

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrMatchFinished  = errors.New("match is already finished")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNotPlayersTurn = errors.New("it is not the player's turn")
	ErrEmptyMove      = errors.New("move is empty")
	ErrInvalidColor   = errors.New("player color must be white or black")
	ErrInvalidConfig  = errors.New("invalid engine config")
	ErrEngineBusy     = errors.New("engine is busy with another request")
	ErrInternal       = errors.New("internal error")
)
