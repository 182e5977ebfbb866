package plan

import "errors"

var (
	// ErrPlanNotFound indicates the plan doesn't exist.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrStageNotFound indicates the stage doesn't exist.
	ErrStageNotFound = errors.New("stage not found")
	// ErrTaskNotFound indicates the task doesn't exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidTransition indicates an invalid task status transition.
	ErrInvalidTransition = errors.New("invalid task status transition")
	// ErrInvalidInput indicates invalid input for plan operations.
	ErrInvalidInput = errors.New("invalid plan input")
)
