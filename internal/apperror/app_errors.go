package apperror

import "errors"

var (
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownMode     = errors.New("unknown game mode")
)
