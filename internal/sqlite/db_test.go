package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	// Verify all tables were created
	tables := []string{
		"workspaces",
		"plans",
		"stages",
		"tasks",
		"goals",
		"goal_plans",
		"events",
		"reminders",
		"focus_sessions",
		"activity_feed",
		"api_tokens",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestPlansTable verifies the plans table constraints
func TestPlansTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertWorkspace(t, db, "w1")

	_, err := db.ExecContext(ctx,
		`INSERT INTO plans (id, workspace_id, title, status) VALUES (?, ?, ?, ?)`,
		"p1", "w1", "Test Plan", "active")
	require.NoError(t, err)

	// Foreign key constraint - should fail with unknown workspace
	_, err = db.ExecContext(ctx,
		`INSERT INTO plans (id, workspace_id, title, status) VALUES (?, ?, ?, ?)`,
		"p2", "missing", "Test Plan", "active")
	require.Error(t, err, "should fail with invalid workspace_id")

	// Status constraint - should fail with invalid status
	_, err = db.ExecContext(ctx,
		`INSERT INTO plans (id, workspace_id, title, status) VALUES (?, ?, ?, ?)`,
		"p3", "w1", "Test Plan", "INVALID")
	require.Error(t, err, "should fail with invalid status")
}

// TestStageCascade verifies stages and tasks follow plan deletion
func TestStageCascade(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertWorkspace(t, db, "w1")
	insertPlan(t, db, "p1", "w1")

	_, err := db.ExecContext(ctx,
		`INSERT INTO stages (id, plan_id, title, position) VALUES (?, ?, ?, ?)`,
		"st1", "p1", "Stage", 0)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (id, plan_id, stage_id, title, status) VALUES (?, ?, ?, ?, ?)`,
		"t1", "p1", "st1", "Task", "todo")
	require.NoError(t, err)

	// Deleting the stage nulls the task's stage_id
	_, err = db.ExecContext(ctx, `DELETE FROM stages WHERE id = ?`, "st1")
	require.NoError(t, err)

	var stageID any
	err = db.QueryRowContext(ctx, `SELECT stage_id FROM tasks WHERE id = ?`, "t1").Scan(&stageID)
	require.NoError(t, err)
	require.Nil(t, stageID)

	// Deleting the plan cascades to tasks
	_, err = db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, "p1")
	require.NoError(t, err)

	var count int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE plan_id = ?`, "p1").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

// TestFocusSessionsTable verifies session context columns stay unconstrained
func TestFocusSessionsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertWorkspace(t, db, "w1")

	// A session may reference a task that no longer exists
	_, err := db.ExecContext(ctx,
		`INSERT INTO focus_sessions (id, user_id, workspace_id, task_id, started_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		"s1", "u1", "w1", "deleted-task")
	require.NoError(t, err)

	var taskID string
	err = db.QueryRowContext(ctx,
		`SELECT task_id FROM focus_sessions WHERE id = ?`, "s1").Scan(&taskID)
	require.NoError(t, err)
	require.Equal(t, "deleted-task", taskID)
}

func insertWorkspace(t *testing.T, db *DB, id string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO workspaces (id, name) VALUES (?, ?)`,
		id, "Workspace "+id,
	)
	require.NoError(t, err)
}

func insertPlan(t *testing.T, db *DB, id, workspaceID string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO plans (id, workspace_id, title, status) VALUES (?, ?, ?, ?)`,
		id, workspaceID, "Plan "+id, "active",
	)
	require.NoError(t, err)
}
