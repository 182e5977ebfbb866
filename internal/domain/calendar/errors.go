package calendar

import "errors"

var (
	// ErrEventNotFound indicates the event doesn't exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrReminderNotFound indicates the reminder doesn't exist.
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrInvalidInput indicates invalid calendar input.
	ErrInvalidInput = errors.New("invalid calendar input")
	// ErrInvalidRepeatRule indicates a rule value outside the closed enumeration.
	ErrInvalidRepeatRule = errors.New("invalid repeat rule")
	// ErrInvalidRange indicates a query range whose end precedes its start.
	ErrInvalidRange = errors.New("invalid time range")
)
