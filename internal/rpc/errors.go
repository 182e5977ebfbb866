package rpc

import (
	"errors"

	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/domain/focus"
	"github.com/fplanhq/fplan/internal/domain/goal"
	"github.com/fplanhq/fplan/internal/domain/plan"
	"github.com/fplanhq/fplan/internal/domain/workspace"
	"github.com/fplanhq/fplan/internal/transport"
)

// mapError translates domain errors into JSON-RPC error objects. Errors it
// does not recognize pass through unchanged and surface as internal errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, workspace.ErrWorkspaceNotFound),
		errors.Is(err, plan.ErrPlanNotFound),
		errors.Is(err, plan.ErrStageNotFound),
		errors.Is(err, plan.ErrTaskNotFound),
		errors.Is(err, goal.ErrGoalNotFound),
		errors.Is(err, calendar.ErrEventNotFound),
		errors.Is(err, calendar.ErrReminderNotFound),
		errors.Is(err, focus.ErrSessionNotFound):
		return &transport.Error{Code: transport.ErrNotFoundCode, Message: err.Error()}
	case errors.Is(err, plan.ErrInvalidTransition),
		errors.Is(err, focus.ErrSessionActive):
		return &transport.Error{Code: transport.ErrConflictCode, Message: err.Error()}
	case errors.Is(err, workspace.ErrInvalidInput),
		errors.Is(err, plan.ErrInvalidInput),
		errors.Is(err, goal.ErrInvalidInput),
		errors.Is(err, calendar.ErrInvalidInput),
		errors.Is(err, calendar.ErrInvalidRepeatRule),
		errors.Is(err, calendar.ErrInvalidRange),
		errors.Is(err, focus.ErrInvalidInput),
		errors.Is(err, focus.ErrInvalidContext):
		return &transport.Error{Code: transport.ErrInvalidCode, Message: err.Error()}
	default:
		return err
	}
}

func errMethodNotFound(method string) error {
	return &transport.Error{Code: transport.ErrMethodNotFound, Message: "method not found: " + method}
}

func errInvalidParams(err error) error {
	return &transport.Error{Code: transport.ErrInvalidParams, Message: "invalid params: " + err.Error()}
}
