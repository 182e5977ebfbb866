package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fplanhq/fplan/internal/domain/activity"
	"github.com/fplanhq/fplan/internal/repository"
	"github.com/google/uuid"
)

// Service handles calendar operations. Recurrence expansion itself is pure;
// the service only adds persistence around it.
type Service struct {
	events     EventRepository
	reminders  ReminderRepository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new calendar service.
func NewService(
	events EventRepository,
	reminders ReminderRepository,
	activities ActivityRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		events:     events,
		reminders:  reminders,
		activities: activities,
		logger:     logger,
	}
}

// CreateEventRequest describes an event creation request.
type CreateEventRequest struct {
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	Repeat      string
}

// UpdateEventRequest describes an event update. Nil fields are unchanged.
type UpdateEventRequest struct {
	ID          string
	Title       *string
	Description *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	Repeat      *string
}

// CreateReminderRequest describes a reminder creation request.
type CreateReminderRequest struct {
	Title    string
	RemindAt time.Time
	Repeat   string
}

// UpdateReminderRequest describes a reminder update. Nil fields are unchanged.
type UpdateReminderRequest struct {
	ID       string
	Title    *string
	RemindAt *time.Time
	Repeat   *string
}

// CreateEvent stores a new event after validating its window and rule.
func (s *Service) CreateEvent(ctx context.Context, actorID, workspaceID string, req CreateEventRequest) (*Event, error) {
	if workspaceID == "" || req.Title == "" {
		return nil, ErrInvalidInput
	}
	if req.EndsAt.Before(req.StartsAt) {
		return nil, ErrInvalidInput
	}
	rule, err := ParseRepeatRule(req.Repeat)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ev := &Event{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Repeat:      rule,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if err := s.events.Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: workspaceID,
			ActorID:     actorID,
			Kind:        activity.KindEventCreated,
			SubjectID:   &ev.ID,
			Summary:     fmt.Sprintf("created event %q", ev.Title),
		})
	}

	return ev, nil
}

// GetEvent fetches an event by ID.
func (s *Service) GetEvent(ctx context.Context, workspaceID, id string) (*Event, error) {
	ev, err := s.events.Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return ev, nil
}

// UpdateEvent modifies a stored event. Editing the row changes every rendered
// occurrence of the series; there is no per-occurrence override.
func (s *Service) UpdateEvent(ctx context.Context, workspaceID string, req UpdateEventRequest) (*Event, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	ev, err := s.GetEvent(ctx, workspaceID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ev.Title = *req.Title
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.StartsAt != nil {
		ev.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		ev.EndsAt = *req.EndsAt
	}
	if req.Repeat != nil {
		rule, err := ParseRepeatRule(*req.Repeat)
		if err != nil {
			return nil, err
		}
		ev.Repeat = rule
	}
	if ev.EndsAt.Before(ev.StartsAt) {
		return nil, ErrInvalidInput
	}
	ev.ModifiedAt = time.Now()

	if err := s.events.Update(ctx, ev); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("updating event: %w", err)
	}
	return ev, nil
}

// DeleteEvent removes an event and its entire derived series.
func (s *Service) DeleteEvent(ctx context.Context, workspaceID, id string) error {
	if err := s.events.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// ListEvents returns the stored event rows for a workspace.
func (s *Service) ListEvents(ctx context.Context, workspaceID string) ([]Event, error) {
	return s.events.ListByWorkspace(ctx, workspaceID)
}

// CreateReminder stores a new reminder.
func (s *Service) CreateReminder(ctx context.Context, actorID, workspaceID string, req CreateReminderRequest) (*Reminder, error) {
	if workspaceID == "" || req.Title == "" {
		return nil, ErrInvalidInput
	}
	rule, err := ParseRepeatRule(req.Repeat)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rem := &Reminder{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Title:       req.Title,
		RemindAt:    req.RemindAt,
		Repeat:      rule,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	if err := s.reminders.Create(ctx, rem); err != nil {
		return nil, fmt.Errorf("creating reminder: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: workspaceID,
			ActorID:     actorID,
			Kind:        activity.KindReminderCreated,
			SubjectID:   &rem.ID,
			Summary:     fmt.Sprintf("created reminder %q", rem.Title),
		})
	}

	return rem, nil
}

// GetReminder fetches a reminder by ID.
func (s *Service) GetReminder(ctx context.Context, workspaceID, id string) (*Reminder, error) {
	rem, err := s.reminders.Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("getting reminder: %w", err)
	}
	return rem, nil
}

// UpdateReminder modifies a stored reminder.
func (s *Service) UpdateReminder(ctx context.Context, workspaceID string, req UpdateReminderRequest) (*Reminder, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	rem, err := s.GetReminder(ctx, workspaceID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		rem.Title = *req.Title
	}
	if req.RemindAt != nil {
		rem.RemindAt = *req.RemindAt
	}
	if req.Repeat != nil {
		rule, err := ParseRepeatRule(*req.Repeat)
		if err != nil {
			return nil, err
		}
		rem.Repeat = rule
	}
	rem.ModifiedAt = time.Now()

	if err := s.reminders.Update(ctx, rem); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("updating reminder: %w", err)
	}
	return rem, nil
}

// DeleteReminder removes a reminder.
func (s *Service) DeleteReminder(ctx context.Context, workspaceID, id string) error {
	if err := s.reminders.Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReminderNotFound
		}
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}

// ListReminders returns the stored reminder rows for a workspace.
func (s *Service) ListReminders(ctx context.Context, workspaceID string) ([]Reminder, error) {
	return s.reminders.ListByWorkspace(ctx, workspaceID)
}

// EventsInRange expands every stored event into its occurrences overlapping
// [rangeStart, rangeEnd], sorted by occurrence start. Occurrences are
// ephemeral: computed per call, never persisted.
func (s *Service) EventsInRange(ctx context.Context, workspaceID string, rangeStart, rangeEnd time.Time) ([]EventOccurrence, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, ErrInvalidRange
	}
	events, err := s.events.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	var out []EventOccurrence
	for _, ev := range events {
		for _, w := range ExpandWindows(ev.StartsAt, ev.EndsAt, ev.Repeat, rangeStart, rangeEnd) {
			out = append(out, EventOccurrence{Event: ev, Start: w.Start, End: w.End})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// RemindersInRange expands every stored reminder into its occurrences inside
// [rangeStart, rangeEnd], sorted by instant.
func (s *Service) RemindersInRange(ctx context.Context, workspaceID string, rangeStart, rangeEnd time.Time) ([]ReminderOccurrence, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, ErrInvalidRange
	}
	reminders, err := s.reminders.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}

	var out []ReminderOccurrence
	for _, rem := range reminders {
		for _, at := range ExpandInstants(rem.RemindAt, rem.Repeat, rangeStart, rangeEnd) {
			out = append(out, ReminderOccurrence{Reminder: rem, At: at})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out, nil
}

// Today returns the schedule for the local calendar day containing now.
func (s *Service) Today(ctx context.Context, workspaceID string, now time.Time) (*DaySchedule, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	events, err := s.EventsInRange(ctx, workspaceID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	reminders, err := s.RemindersInRange(ctx, workspaceID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return &DaySchedule{Events: events, Reminders: reminders}, nil
}
