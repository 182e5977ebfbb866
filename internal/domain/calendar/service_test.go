package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/repository"
	"github.com/fplanhq/fplan/internal/repository/mocks"
)

func newCalendarService(events *mocks.EventRepository, reminders *mocks.ReminderRepository) *calendar.Service {
	activities := &mocks.ActivityRepository{}
	activities.On("Log", mock.Anything, mock.Anything).Return(nil).Maybe()
	return calendar.NewService(events, reminders, activities, nil)
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()
	events := &mocks.EventRepository{}
	reminders := &mocks.ReminderRepository{}
	svc := newCalendarService(events, reminders)

	events.On("Create", ctx, mock.Anything).Return(nil)

	ev, err := svc.CreateEvent(ctx, "user1", "ws1", calendar.CreateEventRequest{
		Title:    "Standup",
		StartsAt: date(2025, 1, 6, 9, 0),
		EndsAt:   date(2025, 1, 6, 9, 15),
		Repeat:   "daily",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ev.ID)
	require.Equal(t, "ws1", ev.WorkspaceID)
	require.Equal(t, calendar.RepeatDaily, ev.Repeat)
	events.AssertExpectations(t)
}

func TestCreateEvent_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newCalendarService(&mocks.EventRepository{}, &mocks.ReminderRepository{})

	_, err := svc.CreateEvent(ctx, "user1", "ws1", calendar.CreateEventRequest{
		StartsAt: date(2025, 1, 6, 9, 0),
		EndsAt:   date(2025, 1, 6, 10, 0),
	})
	require.ErrorIs(t, err, calendar.ErrInvalidInput)

	// End before start
	_, err = svc.CreateEvent(ctx, "user1", "ws1", calendar.CreateEventRequest{
		Title:    "Backwards",
		StartsAt: date(2025, 1, 6, 10, 0),
		EndsAt:   date(2025, 1, 6, 9, 0),
	})
	require.ErrorIs(t, err, calendar.ErrInvalidInput)

	_, err = svc.CreateEvent(ctx, "user1", "ws1", calendar.CreateEventRequest{
		Title:    "Bad rule",
		StartsAt: date(2025, 1, 6, 9, 0),
		EndsAt:   date(2025, 1, 6, 10, 0),
		Repeat:   "hourly",
	})
	require.ErrorIs(t, err, calendar.ErrInvalidRepeatRule)
}

func TestGetEvent_NotFound(t *testing.T) {
	ctx := context.Background()
	events := &mocks.EventRepository{}
	svc := newCalendarService(events, &mocks.ReminderRepository{})

	events.On("Get", ctx, "ws1", "missing").Return((*calendar.Event)(nil), repository.ErrNotFound)

	_, err := svc.GetEvent(ctx, "ws1", "missing")
	require.ErrorIs(t, err, calendar.ErrEventNotFound)
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	events := &mocks.EventRepository{}
	svc := newCalendarService(events, &mocks.ReminderRepository{})

	existing := &calendar.Event{
		ID:          "ev1",
		WorkspaceID: "ws1",
		Title:       "Standup",
		StartsAt:    date(2025, 1, 6, 9, 0),
		EndsAt:      date(2025, 1, 6, 9, 15),
		Repeat:      calendar.RepeatDaily,
	}
	events.On("Get", ctx, "ws1", "ev1").Return(existing, nil)
	events.On("Update", ctx, mock.Anything).Return(nil)

	newTitle := "Morning sync"
	newRepeat := "weekly"
	ev, err := svc.UpdateEvent(ctx, "ws1", calendar.UpdateEventRequest{
		ID:     "ev1",
		Title:  &newTitle,
		Repeat: &newRepeat,
	})
	require.NoError(t, err)
	require.Equal(t, "Morning sync", ev.Title)
	require.Equal(t, calendar.RepeatWeekly, ev.Repeat)
	events.AssertExpectations(t)
}

func TestUpdateEvent_WindowStaysValid(t *testing.T) {
	ctx := context.Background()
	events := &mocks.EventRepository{}
	svc := newCalendarService(events, &mocks.ReminderRepository{})

	existing := &calendar.Event{
		ID:          "ev1",
		WorkspaceID: "ws1",
		Title:       "Standup",
		StartsAt:    date(2025, 1, 6, 9, 0),
		EndsAt:      date(2025, 1, 6, 9, 15),
	}
	events.On("Get", ctx, "ws1", "ev1").Return(existing, nil)

	badEnd := date(2025, 1, 6, 8, 0)
	_, err := svc.UpdateEvent(ctx, "ws1", calendar.UpdateEventRequest{ID: "ev1", EndsAt: &badEnd})
	require.ErrorIs(t, err, calendar.ErrInvalidInput)
	events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	ctx := context.Background()
	events := &mocks.EventRepository{}
	svc := newCalendarService(events, &mocks.ReminderRepository{})

	events.On("Delete", ctx, "ws1", "missing").Return(repository.ErrNotFound)

	err := svc.DeleteEvent(ctx, "ws1", "missing")
	require.ErrorIs(t, err, calendar.ErrEventNotFound)
}

func TestCreateReminder(t *testing.T) {
	ctx := context.Background()
	reminders := &mocks.ReminderRepository{}
	svc := newCalendarService(&mocks.EventRepository{}, reminders)

	reminders.On("Create", ctx, mock.Anything).Return(nil)

	rem, err := svc.CreateReminder(ctx, "user1", "ws1", calendar.CreateReminderRequest{
		Title:    "Water plants",
		RemindAt: date(2025, 1, 6, 18, 0),
		Repeat:   "every_2_days",
	})
	require.NoError(t, err)
	require.Equal(t, calendar.RepeatEvery2Days, rem.Repeat)
	reminders.AssertExpectations(t)
}

func TestEventsInRange_ExpandsAndSorts(t *testing.T) {
	ctx := context.Background()
	events := &mocks.EventRepository{}
	svc := newCalendarService(events, &mocks.ReminderRepository{})

	stored := []calendar.Event{
		{
			ID:       "ev-late",
			Title:    "Review",
			StartsAt: date(2025, 1, 8, 15, 0),
			EndsAt:   date(2025, 1, 8, 16, 0),
			Repeat:   calendar.RepeatNone,
		},
		{
			ID:       "ev-daily",
			Title:    "Standup",
			StartsAt: date(2025, 1, 6, 9, 0),
			EndsAt:   date(2025, 1, 6, 9, 15),
			Repeat:   calendar.RepeatDaily,
		},
	}
	events.On("ListByWorkspace", ctx, "ws1").Return(stored, nil)

	occ, err := svc.EventsInRange(ctx, "ws1", date(2025, 1, 6, 0, 0), date(2025, 1, 8, 23, 59))
	require.NoError(t, err)

	// Three standups plus one review, interleaved by start time
	require.Len(t, occ, 4)
	require.Equal(t, "ev-daily", occ[0].Event.ID)
	require.Equal(t, date(2025, 1, 6, 9, 0), occ[0].Start)
	require.Equal(t, "ev-daily", occ[2].Event.ID)
	require.Equal(t, "ev-late", occ[3].Event.ID)
	require.Equal(t, 15*time.Minute, occ[1].End.Sub(occ[1].Start))
}

func TestEventsInRange_InvalidRange(t *testing.T) {
	ctx := context.Background()
	svc := newCalendarService(&mocks.EventRepository{}, &mocks.ReminderRepository{})

	_, err := svc.EventsInRange(ctx, "ws1", date(2025, 1, 8, 0, 0), date(2025, 1, 6, 0, 0))
	require.ErrorIs(t, err, calendar.ErrInvalidRange)
}

func TestRemindersInRange(t *testing.T) {
	ctx := context.Background()
	reminders := &mocks.ReminderRepository{}
	svc := newCalendarService(&mocks.EventRepository{}, reminders)

	stored := []calendar.Reminder{
		{ID: "rem1", Title: "Water plants", RemindAt: date(2025, 1, 6, 18, 0), Repeat: calendar.RepeatDaily},
		{ID: "rem2", Title: "Pay rent", RemindAt: date(2025, 1, 7, 9, 0), Repeat: calendar.RepeatNone},
	}
	reminders.On("ListByWorkspace", ctx, "ws1").Return(stored, nil)

	occ, err := svc.RemindersInRange(ctx, "ws1", date(2025, 1, 6, 0, 0), date(2025, 1, 7, 23, 59))
	require.NoError(t, err)

	require.Len(t, occ, 3)
	require.Equal(t, "rem1", occ[0].Reminder.ID)
	require.Equal(t, "rem2", occ[1].Reminder.ID)
	require.Equal(t, date(2025, 1, 7, 18, 0), occ[2].At)
}

func TestToday(t *testing.T) {
	ctx := context.Background()
	events := &mocks.EventRepository{}
	reminders := &mocks.ReminderRepository{}
	svc := newCalendarService(events, reminders)

	events.On("ListByWorkspace", ctx, "ws1").Return([]calendar.Event{
		{ID: "ev1", Title: "Standup", StartsAt: date(2025, 1, 6, 9, 0), EndsAt: date(2025, 1, 6, 9, 15), Repeat: calendar.RepeatDaily},
	}, nil)
	reminders.On("ListByWorkspace", ctx, "ws1").Return([]calendar.Reminder{
		{ID: "rem1", Title: "Tomorrow only", RemindAt: date(2025, 1, 11, 8, 0), Repeat: calendar.RepeatNone},
	}, nil)

	sched, err := svc.Today(ctx, "ws1", date(2025, 1, 10, 14, 30))
	require.NoError(t, err)
	require.Len(t, sched.Events, 1)
	require.Equal(t, date(2025, 1, 10, 9, 0), sched.Events[0].Start)
	require.Empty(t, sched.Reminders)
}
