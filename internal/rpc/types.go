package rpc

import (
	"time"

	"github.com/fplanhq/fplan/internal/domain/focus"
)

// Workspace methods.

type CreateWorkspaceParams struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type GetWorkspaceParams struct {
	ID string `json:"id,omitempty"`
}

// Plan methods.

type CreatePlanParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type GetPlanParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type UpdatePlanParams struct {
	WorkspaceID string  `json:"workspace_id,omitempty"`
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type ListPlansParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

type AddStageParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	PlanID      string `json:"plan_id"`
	Title       string `json:"title"`
	Position    int    `json:"position,omitempty"`
}

type ListStagesParams struct {
	PlanID string `json:"plan_id"`
}

type DeleteStageParams struct {
	PlanID string `json:"plan_id"`
	ID     string `json:"id"`
}

// Task methods.

type CreateTaskParams struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	PlanID      string     `json:"plan_id"`
	StageID     *string    `json:"stage_id,omitempty"`
	Title       string     `json:"title"`
	DueAt       *time.Time `json:"due_at,omitempty"`
}

type UpdateTaskParams struct {
	PlanID  string     `json:"plan_id"`
	ID      string     `json:"id"`
	Title   *string    `json:"title,omitempty"`
	StageID *string    `json:"stage_id,omitempty"`
	DueAt   *time.Time `json:"due_at,omitempty"`
}

type TransitionTaskParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	PlanID      string `json:"plan_id"`
	ID          string `json:"id"`
	Status      string `json:"status"`
}

type CompleteTaskParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	PlanID      string `json:"plan_id"`
	ID          string `json:"id"`
}

type DeleteTaskParams struct {
	PlanID string `json:"plan_id"`
	ID     string `json:"id"`
}

type ListTasksParams struct {
	PlanID string `json:"plan_id"`
}

// Goal methods.

type CreateGoalParams struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	PlanIDs     []string   `json:"plan_ids,omitempty"`
}

type GetGoalParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type UpdateGoalParams struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

type GoalPlanLinkParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	GoalID      string `json:"goal_id"`
	PlanID      string `json:"plan_id"`
}

// Calendar methods.

type CreateEventParams struct {
	WorkspaceID string    `json:"workspace_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Repeat      string    `json:"repeat,omitempty"`
}

type UpdateEventParams struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Repeat      *string    `json:"repeat,omitempty"`
}

type CreateReminderParams struct {
	WorkspaceID string    `json:"workspace_id,omitempty"`
	Title       string    `json:"title"`
	RemindAt    time.Time `json:"remind_at"`
	Repeat      string    `json:"repeat,omitempty"`
}

type UpdateReminderParams struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	RemindAt    *time.Time `json:"remind_at,omitempty"`
	Repeat      *string    `json:"repeat,omitempty"`
}

type CalendarItemParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	ID          string `json:"id"`
}

type CalendarRangeParams struct {
	WorkspaceID string    `json:"workspace_id,omitempty"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
}

type CalendarTodayParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

// Focus methods.

type StartFocusParams struct {
	WorkspaceID            string  `json:"workspace_id,omitempty"`
	TaskID                 *string `json:"task_id,omitempty"`
	PlanID                 *string `json:"plan_id,omitempty"`
	GoalID                 *string `json:"goal_id,omitempty"`
	PlannedDurationMinutes *int    `json:"planned_duration_minutes,omitempty"`
}

type EndFocusParams struct {
	SessionID string `json:"session_id"`
}

// EndFocusResponse reports the completed session, or Discarded when the
// session was too short to record.
type EndFocusResponse struct {
	Session   *focus.Session `json:"session,omitempty"`
	Discarded bool           `json:"discarded"`
}

type FocusScopeParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

// Activity methods.

type RecentActivityParams struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}
