package focus

import "errors"

var (
	// ErrInvalidContext indicates more than one of task/plan/goal was supplied.
	ErrInvalidContext = errors.New("focus session context must reference at most one of task, plan, or goal")
	// ErrSessionNotFound indicates the session is missing or already ended.
	ErrSessionNotFound = errors.New("focus session not found")
	// ErrSessionActive indicates the user already has an active session in
	// the workspace. The check is best-effort, not transactional.
	ErrSessionActive = errors.New("an active focus session already exists")
	// ErrInvalidInput indicates invalid focus input.
	ErrInvalidInput = errors.New("invalid focus input")
)
