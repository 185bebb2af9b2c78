package model

import "errors"

// Common errors used across the application
var (
	// Construction errors
	ErrInvalidDimension = errors.New("invalid dimension")

	// Move errors
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameComplete   = errors.New("game is already complete")
	ErrGameInProgress = errors.New("game is in progress")
)
