package focus

import "time"

const (
	// MinSessionMinutes is the floor under which an ended session is
	// discarded entirely rather than recorded.
	MinSessionMinutes = 5
	// MaxSessionMinutes caps the credited duration of any single session.
	MaxSessionMinutes = 240
)

// Session represents one timeboxed stretch of focused work. A session is
// active while EndedAt is nil; DurationMinutes is set only at end.
type Session struct {
	ID                     string     `json:"id"`
	UserID                 string     `json:"user_id"`
	WorkspaceID            string     `json:"workspace_id"`
	TaskID                 *string    `json:"task_id,omitempty"`
	PlanID                 *string    `json:"plan_id,omitempty"`
	GoalID                 *string    `json:"goal_id,omitempty"`
	StartedAt              time.Time  `json:"started_at"`
	EndedAt                *time.Time `json:"ended_at,omitempty"`
	DurationMinutes        *int       `json:"duration_minutes,omitempty"`
	PlannedDurationMinutes *int       `json:"planned_duration_minutes,omitempty"`
}

// Active reports whether the session is still running.
func (s *Session) Active() bool {
	return s.EndedAt == nil
}

// Context is the optional single task/plan/goal a session is linked to.
// All fields nil means free focus.
type Context struct {
	TaskID *string `json:"task_id,omitempty"`
	PlanID *string `json:"plan_id,omitempty"`
	GoalID *string `json:"goal_id,omitempty"`
}

// Validate rejects contexts referencing more than one of task/plan/goal.
func (c Context) Validate() error {
	refs := 0
	if c.TaskID != nil && *c.TaskID != "" {
		refs++
	}
	if c.PlanID != nil && *c.PlanID != "" {
		refs++
	}
	if c.GoalID != nil && *c.GoalID != "" {
		refs++
	}
	if refs > 1 {
		return ErrInvalidContext
	}
	return nil
}

// Stats bundles the derived analytics for a user's focus history.
type Stats struct {
	StreakDays          int `json:"streak_days"`
	AverageDailyMinutes int `json:"average_daily_minutes"`
}
