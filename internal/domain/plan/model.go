package plan

import "time"

// PlanStatus represents the lifecycle status of a plan
type PlanStatus string

const (
	StatusActive    PlanStatus = "active"
	StatusCompleted PlanStatus = "completed"
	StatusArchived  PlanStatus = "archived"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskTodo  TaskStatus = "todo"
	TaskDoing TaskStatus = "doing"
	TaskDone  TaskStatus = "done"
)

// Plan is a structured piece of work made of stages and tasks
type Plan struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      PlanStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

// Stage is an ordered section within a plan
type Stage struct {
	ID        string    `json:"id"`
	PlanID    string    `json:"plan_id"`
	Title     string    `json:"title"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Task is a unit of work within a plan, optionally grouped under a stage
type Task struct {
	ID         string     `json:"id"`
	PlanID     string     `json:"plan_id"`
	StageID    *string    `json:"stage_id,omitempty"`
	Title      string     `json:"title"`
	Status     TaskStatus `json:"status"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt time.Time  `json:"modified_at"`
}

// PlanSummary is a lightweight representation for listing
type PlanSummary struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Status    PlanStatus `json:"status"`
	TaskCount int        `json:"task_count"`
	DoneTasks int        `json:"done_tasks"`
	CreatedAt time.Time  `json:"created_at"`
}
