package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/repository"
)

func TestEventRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertWorkspace(t, db, "w1")

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Second)
	ev := &calendar.Event{
		ID:          "e1",
		WorkspaceID: "w1",
		Title:       "Standup",
		Description: "Daily sync",
		StartsAt:    now,
		EndsAt:      now.Add(30 * time.Minute),
		Repeat:      calendar.RepeatDaily,
		CreatedAt:   now,
		ModifiedAt:  now,
	}

	require.NoError(t, repo.Create(ctx, ev))

	loaded, err := repo.Get(ctx, "w1", "e1")
	require.NoError(t, err)
	require.Equal(t, "Standup", loaded.Title)
	require.Equal(t, "Daily sync", loaded.Description)
	require.Equal(t, calendar.RepeatDaily, loaded.Repeat)

	// Workspace scoping
	_, err = repo.Get(ctx, "other", "e1")
	require.Equal(t, repository.ErrNotFound, err)

	// Unknown workspace rejected by the foreign key
	bad := &calendar.Event{ID: "e2", WorkspaceID: "missing", Title: "X", StartsAt: now, EndsAt: now, Repeat: calendar.RepeatNone, CreatedAt: now, ModifiedAt: now}
	require.Equal(t, repository.ErrForeignKeyViolation, repo.Create(ctx, bad))
}

func TestEventRepository_UpdateDelete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertWorkspace(t, db, "w1")

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Second)
	ev := &calendar.Event{
		ID:          "e1",
		WorkspaceID: "w1",
		Title:       "Standup",
		StartsAt:    now,
		EndsAt:      now.Add(30 * time.Minute),
		Repeat:      calendar.RepeatNone,
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	require.NoError(t, repo.Create(ctx, ev))

	ev.Title = "Planning"
	ev.Repeat = calendar.RepeatWeekly
	require.NoError(t, repo.Update(ctx, ev))

	loaded, err := repo.Get(ctx, "w1", "e1")
	require.NoError(t, err)
	require.Equal(t, "Planning", loaded.Title)
	require.Equal(t, calendar.RepeatWeekly, loaded.Repeat)

	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, "other", "e1"))
	require.NoError(t, repo.Delete(ctx, "w1", "e1"))
	_, err = repo.Get(ctx, "w1", "e1")
	require.Equal(t, repository.ErrNotFound, err)
}

func TestEventRepository_ListByWorkspace(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertWorkspace(t, db, "w1")
	insertWorkspace(t, db, "w2")

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"e2", "e1"} {
		ev := &calendar.Event{
			ID:          id,
			WorkspaceID: "w1",
			Title:       "Event " + id,
			StartsAt:    now.Add(time.Duration(-i) * time.Hour),
			EndsAt:      now.Add(time.Duration(-i)*time.Hour + 30*time.Minute),
			Repeat:      calendar.RepeatNone,
			CreatedAt:   now,
			ModifiedAt:  now,
		}
		require.NoError(t, repo.Create(ctx, ev))
	}

	events, err := repo.ListByWorkspace(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Sorted by starts_at ascending
	require.Equal(t, "e1", events[0].ID)
	require.Equal(t, "e2", events[1].ID)

	events, err = repo.ListByWorkspace(ctx, "w2")
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestReminderRepository_CRUD(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertWorkspace(t, db, "w1")

	repo := NewReminderRepository(db)
	now := time.Now().UTC().Truncate(time.Second)
	rem := &calendar.Reminder{
		ID:          "r1",
		WorkspaceID: "w1",
		Title:       "Water plants",
		RemindAt:    now.Add(time.Hour),
		Repeat:      calendar.RepeatEvery2Days,
		CreatedAt:   now,
		ModifiedAt:  now,
	}

	require.NoError(t, repo.Create(ctx, rem))

	loaded, err := repo.Get(ctx, "w1", "r1")
	require.NoError(t, err)
	require.Equal(t, "Water plants", loaded.Title)
	require.Equal(t, calendar.RepeatEvery2Days, loaded.Repeat)

	rem.Title = "Water the plants"
	require.NoError(t, repo.Update(ctx, rem))

	reminders, err := repo.ListByWorkspace(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	require.Equal(t, "Water the plants", reminders[0].Title)

	require.NoError(t, repo.Delete(ctx, "w1", "r1"))
	_, err = repo.Get(ctx, "w1", "r1")
	require.Equal(t, repository.ErrNotFound, err)
}
