package focus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/fplanhq/fplan/internal/domain/activity"
	"github.com/fplanhq/fplan/internal/repository"
	"github.com/google/uuid"
)

// Clock returns the current instant. It is injected so tests can pin time.
type Clock func() time.Time

// Service handles the focus session lifecycle and derived analytics.
type Service struct {
	sessions   SessionRepository
	activities ActivityRepository
	clock      Clock
	logger     *slog.Logger
}

// NewService creates a new focus service. Pass time.Now as the clock outside
// of tests.
func NewService(sessions SessionRepository, activities ActivityRepository, clock Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		sessions:   sessions,
		activities: activities,
		clock:      clock,
		logger:     logger,
	}
}

// StartRequest describes a session start request.
type StartRequest struct {
	Context                Context
	PlannedDurationMinutes *int
}

// Start creates a new active session for the user.
//
// The single-active-session check is a best-effort convenience guard, not a
// hard invariant: two racing starts can both pass the lookup and create
// concurrent active sessions, because there is no uniqueness constraint at
// the data layer.
func (s *Service) Start(ctx context.Context, userID, workspaceID string, req StartRequest) (*Session, error) {
	if userID == "" || workspaceID == "" {
		return nil, ErrInvalidInput
	}
	if err := req.Context.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.sessions.FindActiveByUser(ctx, userID, workspaceID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("checking active session: %w", err)
	}
	if existing != nil {
		return existing, ErrSessionActive
	}

	sess := &Session{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		WorkspaceID:            workspaceID,
		TaskID:                 req.Context.TaskID,
		PlanID:                 req.Context.PlanID,
		GoalID:                 req.Context.GoalID,
		StartedAt:              s.clock(),
		PlannedDurationMinutes: req.PlannedDurationMinutes,
	}
	if err := s.sessions.Insert(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: workspaceID,
			ActorID:     userID,
			Kind:        activity.KindFocusStarted,
			SubjectID:   &sess.ID,
			Summary:     "started a focus session",
		})
	}

	return sess, nil
}

// End completes an active session.
//
// Sessions shorter than MinSessionMinutes are deleted outright and End
// returns (nil, nil); callers must treat that as a silent discard, not an
// error. Durations are clamped to MaxSessionMinutes.
func (s *Service) End(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, ErrInvalidInput
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !sess.Active() {
		return nil, ErrSessionNotFound
	}

	now := s.clock()
	elapsed := now.Sub(sess.StartedAt)

	if elapsed < MinSessionMinutes*time.Minute {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("discarding session: %w", err)
		}
		return nil, nil
	}

	minutes := int(math.Round(elapsed.Minutes()))
	if minutes > MaxSessionMinutes {
		minutes = MaxSessionMinutes
	}

	sess.EndedAt = &now
	sess.DurationMinutes = &minutes
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("completing session: %w", err)
	}

	if s.activities != nil {
		_ = s.activities.Log(ctx, &activity.Entry{
			WorkspaceID: sess.WorkspaceID,
			ActorID:     sess.UserID,
			Kind:        activity.KindFocusCompleted,
			SubjectID:   &sess.ID,
			Summary:     fmt.Sprintf("focused for %d minutes", minutes),
		})
	}

	return sess, nil
}

// Active returns the user's currently running session, or nil when idle.
func (s *Service) Active(ctx context.Context, userID, workspaceID string) (*Session, error) {
	sess, err := s.sessions.FindActiveByUser(ctx, userID, workspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding active session: %w", err)
	}
	return sess, nil
}

// Streak counts consecutive local calendar days, backward from today
// inclusive, each containing at least one qualifying completed session.
// Today must qualify for the streak to be non-zero.
func (s *Service) Streak(ctx context.Context, userID, workspaceID string) (int, error) {
	now := s.clock()
	sessions, err := s.sessions.FindCompletedInRange(ctx, userID, workspaceID, time.Time{}, now)
	if err != nil {
		return 0, fmt.Errorf("loading session history: %w", err)
	}

	days := make(map[string]struct{})
	for _, sess := range sessions {
		if !qualifies(sess) {
			continue
		}
		days[sess.StartedAt.In(now.Location()).Format(time.DateOnly)] = struct{}{}
	}

	streak := 0
	for day := now; ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[day.Format(time.DateOnly)]; !ok {
			break
		}
		streak++
	}
	return streak, nil
}

// AverageDailyFocus returns the mean focused minutes per day over the last
// windowDays, rounded to the nearest minute. The divisor is windowDays, not
// the count of active days, so zero-activity days pull the average down.
func (s *Service) AverageDailyFocus(ctx context.Context, userID, workspaceID string, windowDays int) (int, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	now := s.clock()
	from := now.AddDate(0, 0, -windowDays)

	sessions, err := s.sessions.FindCompletedInRange(ctx, userID, workspaceID, from, now)
	if err != nil {
		return 0, fmt.Errorf("loading session history: %w", err)
	}

	total := 0
	for _, sess := range sessions {
		if qualifies(sess) {
			total += *sess.DurationMinutes
		}
	}
	return int(math.Round(float64(total) / float64(windowDays))), nil
}

// ComputeStats derives the streak and 7-day rolling average together.
func (s *Service) ComputeStats(ctx context.Context, userID, workspaceID string) (*Stats, error) {
	streak, err := s.Streak(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}
	avg, err := s.AverageDailyFocus(ctx, userID, workspaceID, 7)
	if err != nil {
		return nil, err
	}
	return &Stats{StreakDays: streak, AverageDailyMinutes: avg}, nil
}

// qualifies reports whether a session counts toward streak and average:
// completed with at least MinSessionMinutes credited.
func qualifies(sess Session) bool {
	return sess.EndedAt != nil && sess.DurationMinutes != nil && *sess.DurationMinutes >= MinSessionMinutes
}
