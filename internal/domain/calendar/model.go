package calendar

import "time"

// Event is a calendar event. A single row represents an entire recurring
// series; occurrences are derived at read time and never stored.
type Event struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      time.Time  `json:"ends_at"`
	Repeat      RepeatRule `json:"repeat"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

// Reminder is a point-in-time reminder, recurring the same way events do.
type Reminder struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspace_id"`
	Title       string     `json:"title"`
	RemindAt    time.Time  `json:"remind_at"`
	Repeat      RepeatRule `json:"repeat"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

// Window is a concrete start/end pair derived from a recurring anchor.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// EventOccurrence is one rendered instance of an event within a query range.
type EventOccurrence struct {
	Event Event     `json:"event"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReminderOccurrence is one rendered instance of a reminder.
type ReminderOccurrence struct {
	Reminder Reminder  `json:"reminder"`
	At       time.Time `json:"at"`
}

// DaySchedule bundles everything visible on a single day.
type DaySchedule struct {
	Events    []EventOccurrence    `json:"events"`
	Reminders []ReminderOccurrence `json:"reminders"`
}
