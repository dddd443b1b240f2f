package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrInvalidMark     = errors.New("invalid mark")
)
