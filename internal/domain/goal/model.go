package goal

import "time"

// Goal is an outcome the user is working toward, optionally backed by plans
type Goal struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	PlanIDs     []string   `json:"plan_ids,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Progress is derived from the tasks of a goal's linked plans
type Progress struct {
	DoneTasks  int `json:"done_tasks"`
	TotalTasks int `json:"total_tasks"`
}
