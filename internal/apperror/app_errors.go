package apperror

import "errors"

var (
	ErrNotNumbers   = errors.New("coordinates are not numbers")
	ErrInvalidBoard = errors.New("invalid board")
	ErrInputClosed  = errors.New("input closed before the game finished")
)
