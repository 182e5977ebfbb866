package workspace

import "time"

// Workspace is the container for plans, goals, calendar items, and sessions
type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is a lightweight representation for listing
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PlanCount   int       `json:"plan_count"`
	GoalCount   int       `json:"goal_count"`
	CreatedAt   time.Time `json:"created_at"`
}
