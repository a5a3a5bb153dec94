package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrUnknownPolicy    = errors.New("unknown bot policy")
)
