package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fplanhq/fplan/internal/domain/activity"
	"github.com/fplanhq/fplan/internal/domain/calendar"
	"github.com/fplanhq/fplan/internal/domain/focus"
	"github.com/fplanhq/fplan/internal/domain/goal"
	"github.com/fplanhq/fplan/internal/domain/plan"
	"github.com/fplanhq/fplan/internal/domain/workspace"
	"github.com/fplanhq/fplan/internal/transport"
)

// WorkspaceService defines workspace operations needed by the RPC layer.
type WorkspaceService interface {
	Create(ctx context.Context, req workspace.CreateRequest) (*workspace.Workspace, error)
	Get(ctx context.Context, id string) (*workspace.Workspace, error)
	GetDefault(ctx context.Context) (*workspace.Workspace, error)
	List(ctx context.Context) ([]workspace.Summary, error)
}

// PlanService defines plan, stage, and task operations needed by the RPC layer.
type PlanService interface {
	Create(ctx context.Context, actorID string, req plan.CreateRequest) (*plan.Plan, error)
	Get(ctx context.Context, workspaceID, id string) (*plan.Plan, error)
	Update(ctx context.Context, actorID, workspaceID string, req plan.UpdateRequest) (*plan.Plan, error)
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]plan.PlanSummary, error)
	AddStage(ctx context.Context, workspaceID, planID, title string, position int) (*plan.Stage, error)
	ListStages(ctx context.Context, planID string) ([]plan.Stage, error)
	DeleteStage(ctx context.Context, planID, id string) error
	CreateTask(ctx context.Context, actorID, workspaceID string, req plan.CreateTaskRequest) (*plan.Task, error)
	UpdateTask(ctx context.Context, req plan.UpdateTaskRequest) (*plan.Task, error)
	TransitionTask(ctx context.Context, actorID, workspaceID, planID, taskID string, to plan.TaskStatus) (*plan.Task, error)
	DeleteTask(ctx context.Context, planID, id string) error
	ListTasks(ctx context.Context, planID string) ([]plan.Task, error)
}

// GoalService defines goal operations needed by the RPC layer.
type GoalService interface {
	Create(ctx context.Context, actorID string, req goal.CreateRequest) (*goal.Goal, error)
	Get(ctx context.Context, workspaceID, id string) (*goal.Goal, error)
	Update(ctx context.Context, workspaceID string, req goal.UpdateRequest) (*goal.Goal, error)
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string) ([]goal.Goal, error)
	LinkPlan(ctx context.Context, workspaceID, goalID, planID string) error
	UnlinkPlan(ctx context.Context, workspaceID, goalID, planID string) error
	Progress(ctx context.Context, workspaceID, goalID string) (*goal.Progress, error)
}

// CalendarService defines calendar operations needed by the RPC layer.
type CalendarService interface {
	CreateEvent(ctx context.Context, actorID, workspaceID string, req calendar.CreateEventRequest) (*calendar.Event, error)
	GetEvent(ctx context.Context, workspaceID, id string) (*calendar.Event, error)
	UpdateEvent(ctx context.Context, workspaceID string, req calendar.UpdateEventRequest) (*calendar.Event, error)
	DeleteEvent(ctx context.Context, workspaceID, id string) error
	ListEvents(ctx context.Context, workspaceID string) ([]calendar.Event, error)
	CreateReminder(ctx context.Context, actorID, workspaceID string, req calendar.CreateReminderRequest) (*calendar.Reminder, error)
	GetReminder(ctx context.Context, workspaceID, id string) (*calendar.Reminder, error)
	UpdateReminder(ctx context.Context, workspaceID string, req calendar.UpdateReminderRequest) (*calendar.Reminder, error)
	DeleteReminder(ctx context.Context, workspaceID, id string) error
	ListReminders(ctx context.Context, workspaceID string) ([]calendar.Reminder, error)
	EventsInRange(ctx context.Context, workspaceID string, rangeStart, rangeEnd time.Time) ([]calendar.EventOccurrence, error)
	RemindersInRange(ctx context.Context, workspaceID string, rangeStart, rangeEnd time.Time) ([]calendar.ReminderOccurrence, error)
	Today(ctx context.Context, workspaceID string, now time.Time) (*calendar.DaySchedule, error)
}

// FocusService defines focus session operations needed by the RPC layer.
type FocusService interface {
	Start(ctx context.Context, userID, workspaceID string, req focus.StartRequest) (*focus.Session, error)
	End(ctx context.Context, sessionID string) (*focus.Session, error)
	Active(ctx context.Context, userID, workspaceID string) (*focus.Session, error)
	ComputeStats(ctx context.Context, userID, workspaceID string) (*focus.Stats, error)
}

// ActivityService defines activity feed operations needed by the RPC layer.
type ActivityService interface {
	Recent(ctx context.Context, workspaceID string, opts activity.ListOptions) ([]activity.Entry, error)
}

// Handler dispatches JSON-RPC methods to domain services.
type Handler struct {
	workspaces WorkspaceService
	plans      PlanService
	goals      GoalService
	calendars  CalendarService
	sessions   FocusService
	activities ActivityService
}

// NewHandler creates a new RPC handler.
func NewHandler(
	workspaces WorkspaceService,
	plans PlanService,
	goals GoalService,
	calendars CalendarService,
	sessions FocusService,
	activities ActivityService,
) *Handler {
	return &Handler{
		workspaces: workspaces,
		plans:      plans,
		goals:      goals,
		calendars:  calendars,
		sessions:   sessions,
		activities: activities,
	}
}

// Handle dispatches a JSON-RPC request to domain services.
func (h *Handler) Handle(ctx context.Context, userID, method string, params json.RawMessage) (any, error) {
	switch method {
	case "workspace.create":
		var req CreateWorkspaceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		ws, err := h.workspaces.Create(ctx, workspace.CreateRequest{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
		})
		return result(ws, err)
	case "workspace.get":
		var req GetWorkspaceParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if req.ID == "" {
			return result(h.workspaces.GetDefault(ctx))
		}
		return result(h.workspaces.Get(ctx, req.ID))
	case "workspace.list":
		return result(h.workspaces.List(ctx))

	case "plan.create":
		var req CreatePlanParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.plans.Create(ctx, userID, plan.CreateRequest{
			WorkspaceID: wsID,
			Title:       req.Title,
			Description: req.Description,
		}))
	case "plan.get":
		var req GetPlanParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.plans.Get(ctx, wsID, req.ID))
	case "plan.update":
		var req UpdatePlanParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		var status *plan.PlanStatus
		if req.Status != nil {
			s := plan.PlanStatus(*req.Status)
			status = &s
		}
		return result(h.plans.Update(ctx, userID, wsID, plan.UpdateRequest{
			ID:          req.ID,
			Title:       req.Title,
			Description: req.Description,
			Status:      status,
		}))
	case "plan.delete":
		var req GetPlanParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return ok(h.plans.Delete(ctx, wsID, req.ID))
	case "plan.list":
		var req ListPlansParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.plans.List(ctx, wsID))
	case "plan.add_stage":
		var req AddStageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.plans.AddStage(ctx, wsID, req.PlanID, req.Title, req.Position))
	case "plan.list_stages":
		var req ListStagesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return result(h.plans.ListStages(ctx, req.PlanID))
	case "plan.delete_stage":
		var req DeleteStageParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return ok(h.plans.DeleteStage(ctx, req.PlanID, req.ID))

	case "task.create":
		var req CreateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.plans.CreateTask(ctx, userID, wsID, plan.CreateTaskRequest{
			PlanID:  req.PlanID,
			StageID: req.StageID,
			Title:   req.Title,
			DueAt:   req.DueAt,
		}))
	case "task.update":
		var req UpdateTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return result(h.plans.UpdateTask(ctx, plan.UpdateTaskRequest{
			PlanID:  req.PlanID,
			ID:      req.ID,
			Title:   req.Title,
			StageID: req.StageID,
			DueAt:   req.DueAt,
		}))
	case "task.transition":
		var req TransitionTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.plans.TransitionTask(ctx, userID, wsID, req.PlanID, req.ID, plan.TaskStatus(req.Status)))
	case "task.complete":
		var req CompleteTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.plans.TransitionTask(ctx, userID, wsID, req.PlanID, req.ID, plan.TaskDone))
	case "task.delete":
		var req DeleteTaskParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return ok(h.plans.DeleteTask(ctx, req.PlanID, req.ID))
	case "task.list":
		var req ListTasksParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return result(h.plans.ListTasks(ctx, req.PlanID))

	case "goal.create":
		var req CreateGoalParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.goals.Create(ctx, userID, goal.CreateRequest{
			WorkspaceID: wsID,
			Title:       req.Title,
			Description: req.Description,
			TargetDate:  req.TargetDate,
			PlanIDs:     req.PlanIDs,
		}))
	case "goal.get":
		var req GetGoalParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.goals.Get(ctx, wsID, req.ID))
	case "goal.update":
		var req UpdateGoalParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.goals.Update(ctx, wsID, goal.UpdateRequest{
			ID:          req.ID,
			Title:       req.Title,
			Description: req.Description,
			TargetDate:  req.TargetDate,
		}))
	case "goal.delete":
		var req GetGoalParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return ok(h.goals.Delete(ctx, wsID, req.ID))
	case "goal.list":
		var req ListPlansParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.goals.List(ctx, wsID))
	case "goal.link_plan":
		var req GoalPlanLinkParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return ok(h.goals.LinkPlan(ctx, wsID, req.GoalID, req.PlanID))
	case "goal.unlink_plan":
		var req GoalPlanLinkParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return ok(h.goals.UnlinkPlan(ctx, wsID, req.GoalID, req.PlanID))
	case "goal.progress":
		var req GetGoalParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.goals.Progress(ctx, wsID, req.ID))

	case "event.create":
		var req CreateEventParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.CreateEvent(ctx, userID, wsID, calendar.CreateEventRequest{
			Title:       req.Title,
			Description: req.Description,
			StartsAt:    req.StartsAt,
			EndsAt:      req.EndsAt,
			Repeat:      req.Repeat,
		}))
	case "event.get":
		var req CalendarItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.GetEvent(ctx, wsID, req.ID))
	case "event.update":
		var req UpdateEventParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.UpdateEvent(ctx, wsID, calendar.UpdateEventRequest{
			ID:          req.ID,
			Title:       req.Title,
			Description: req.Description,
			StartsAt:    req.StartsAt,
			EndsAt:      req.EndsAt,
			Repeat:      req.Repeat,
		}))
	case "event.delete":
		var req CalendarItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return ok(h.calendars.DeleteEvent(ctx, wsID, req.ID))
	case "event.list":
		var req CalendarTodayParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.ListEvents(ctx, wsID))

	case "reminder.create":
		var req CreateReminderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.CreateReminder(ctx, userID, wsID, calendar.CreateReminderRequest{
			Title:    req.Title,
			RemindAt: req.RemindAt,
			Repeat:   req.Repeat,
		}))
	case "reminder.get":
		var req CalendarItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.GetReminder(ctx, wsID, req.ID))
	case "reminder.update":
		var req UpdateReminderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.UpdateReminder(ctx, wsID, calendar.UpdateReminderRequest{
			ID:       req.ID,
			Title:    req.Title,
			RemindAt: req.RemindAt,
			Repeat:   req.Repeat,
		}))
	case "reminder.delete":
		var req CalendarItemParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return ok(h.calendars.DeleteReminder(ctx, wsID, req.ID))
	case "reminder.list":
		var req CalendarTodayParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.ListReminders(ctx, wsID))

	case "calendar.range":
		var req CalendarRangeParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		events, err := h.calendars.EventsInRange(ctx, wsID, req.From, req.To)
		if err != nil {
			return nil, mapError(err)
		}
		reminders, err := h.calendars.RemindersInRange(ctx, wsID, req.From, req.To)
		if err != nil {
			return nil, mapError(err)
		}
		return calendar.DaySchedule{Events: events, Reminders: reminders}, nil
	case "calendar.today":
		var req CalendarTodayParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.calendars.Today(ctx, wsID, time.Now()))

	case "focus.start":
		var req StartFocusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		sess, err := h.sessions.Start(ctx, userID, wsID, focus.StartRequest{
			Context: focus.Context{
				TaskID: req.TaskID,
				PlanID: req.PlanID,
				GoalID: req.GoalID,
			},
			PlannedDurationMinutes: req.PlannedDurationMinutes,
		})
		if errors.Is(err, focus.ErrSessionActive) {
			return nil, &transport.Error{
				Code:    transport.ErrConflictCode,
				Message: err.Error(),
				Data:    sess,
			}
		}
		return result(sess, err)
	case "focus.end":
		var req EndFocusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		sess, err := h.sessions.End(ctx, req.SessionID)
		if err != nil {
			return nil, mapError(err)
		}
		return EndFocusResponse{Session: sess, Discarded: sess == nil}, nil
	case "focus.active":
		var req FocusScopeParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.sessions.Active(ctx, userID, wsID))
	case "focus.stats":
		var req FocusScopeParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		return result(h.sessions.ComputeStats(ctx, userID, wsID))

	case "activity.recent":
		var req RecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		wsID, err := h.resolveWorkspace(ctx, req.WorkspaceID)
		if err != nil {
			return nil, err
		}
		opts := activity.ListOptions{Limit: req.Limit, Offset: req.Offset}
		if req.Kind != "" {
			kind := activity.Kind(req.Kind)
			opts.Kind = &kind
		}
		return result(h.activities.Recent(ctx, wsID, opts))

	default:
		return nil, errMethodNotFound(method)
	}
}

// resolveWorkspace maps an empty workspace ID to the default workspace.
func (h *Handler) resolveWorkspace(ctx context.Context, workspaceID string) (string, error) {
	if workspaceID != "" {
		return workspaceID, nil
	}
	ws, err := h.workspaces.GetDefault(ctx)
	if err != nil {
		return "", mapError(err)
	}
	return ws.ID, nil
}

// result maps the error branch of a service call before returning.
func result[T any](value T, err error) (any, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return value, nil
}

// ok wraps mutation results that have no payload.
func ok(err error) (any, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return map[string]bool{"ok": true}, nil
}

func decodeParams(params json.RawMessage, target any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, target); err != nil {
		return errInvalidParams(err)
	}
	return nil
}
