package plan

import "strings"

// ValidateCreateInput validates fields required to create a plan.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.WorkspaceID) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ValidateTaskTransition validates a requested task status transition.
func ValidateTaskTransition(from, to TaskStatus) error {
	valid := false
	switch from {
	case TaskTodo:
		if to == TaskDoing || to == TaskDone {
			valid = true
		}
	case TaskDoing:
		if to == TaskTodo || to == TaskDone {
			valid = true
		}
	case TaskDone:
		if to == TaskTodo {
			valid = true
		}
	}
	if !valid {
		return ErrInvalidTransition
	}
	return nil
}
