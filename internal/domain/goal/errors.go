package goal

import "errors"

var (
	// ErrGoalNotFound indicates the goal doesn't exist.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrInvalidInput indicates invalid goal input.
	ErrInvalidInput = errors.New("invalid goal input")
)
