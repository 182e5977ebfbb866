package activity

import "time"

// Kind represents the type of feed event
type Kind string

const (
	KindWorkspaceCreated Kind = "workspace_created"
	KindPlanCreated      Kind = "plan_created"
	KindPlanCompleted    Kind = "plan_completed"
	KindTaskCreated      Kind = "task_created"
	KindTaskCompleted    Kind = "task_completed"
	KindGoalCreated      Kind = "goal_created"
	KindEventCreated     Kind = "event_created"
	KindReminderCreated  Kind = "reminder_created"
	KindFocusStarted     Kind = "focus_started"
	KindFocusCompleted   Kind = "focus_completed"
)

// Entry represents one item in a workspace's activity feed
type Entry struct {
	ID          int64     `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	ActorID     string    `json:"actor_id"`
	Kind        Kind      `json:"kind"`
	SubjectID   *string   `json:"subject_id,omitempty"`
	Summary     string    `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
}
