package task

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"hivedesk/internal/events"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/shared/contextutil"
	taskerrors "hivedesk/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	ListTasks(ctx context.Context) ([]TaskResponse, error)

	Assign(ctx context.Context, actorID string, req AssignTaskRequest) (AssignmentResponse, error)
	Complete(ctx context.Context, actorID, assignmentID string) (AssignmentResponse, error)

	ListForEmployee(ctx context.Context, employeeID string) ([]EmployeeTaskView, error)
	ListAllAssignments(ctx context.Context, page, limit int) ([]AssignmentResponse, int64, error)

	// AssignActiveTasks assigns every active task to the employee, skipping
	// pairs that already exist. Used when a new employee account is created.
	AssignActiveTasks(ctx context.Context, actorID, employeeID string) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox, logger: zap.L().Named("task.service")}
}

func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	if !ValidType(req.Type) {
		return TaskResponse{}, taskerrors.ErrInvalidTaskType
	}

	t := &Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		IsActive:    true,
	}
	if err := s.repo.CreateTask(ctx, t); err != nil {
		s.logger.Error("create task failed", zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("task created", zap.String("task_id", t.ID.String()), zap.String("type", t.Type))
	return mapToTaskResponse(t), nil
}

func (s *service) ListTasks(ctx context.Context) ([]TaskResponse, error) {
	tasks, err := s.repo.ListTasks(ctx, false)
	if err != nil {
		return nil, err
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, mapToTaskResponse(&tasks[i]))
	}
	return resp, nil
}

func (s *service) Assign(ctx context.Context, actorID string, req AssignTaskRequest) (AssignmentResponse, error) {
	if _, err := uuid.Parse(req.TaskID); err != nil {
		return AssignmentResponse{}, taskerrors.ErrInvalidTaskID
	}

	t, err := s.repo.GetTask(ctx, req.TaskID)
	if err != nil {
		return AssignmentResponse{}, MapTaskError(err)
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, taskerrors.ErrInvalidTaskID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	a := &TaskAssignment{
		ID:         uuid.New(),
		TaskID:     t.ID,
		EmployeeID: employeeID,
		Status:     StatusPending,
		AssignedAt: time.Now().UTC(),
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.CreateAssignment(ctx, a); err != nil {
		return AssignmentResponse{}, MapAssignmentError(err)
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.EventTaskAssigned, a, actorID); err != nil {
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	s.logger.Info("task assigned",
		zap.String("assignment_id", a.ID.String()),
		zap.String("task_id", a.TaskID.String()),
		zap.String("employee_id", a.EmployeeID.String()),
		zap.String("actor_id", actorID),
	)
	return mapToAssignmentResponse(a), nil
}

func (s *service) Complete(ctx context.Context, actorID, assignmentID string) (AssignmentResponse, error) {
	a, err := s.repo.GetAssignment(ctx, assignmentID)
	if err != nil {
		return AssignmentResponse{}, MapAssignmentError(err)
	}

	// Completion is owner-only, regardless of path-level access checks.
	if a.EmployeeID.String() != actorID {
		return AssignmentResponse{}, taskerrors.ErrNotAssignmentOwner
	}

	if a.Status == StatusCompleted {
		return AssignmentResponse{}, taskerrors.ErrAlreadyCompleted
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	a.Status = StatusCompleted
	a.CompletedAt = &now

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateAssignment(ctx, a); err != nil {
		return AssignmentResponse{}, err
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.EventTaskCompleted, a, actorID); err != nil {
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	s.logger.Info("task completed",
		zap.String("assignment_id", a.ID.String()),
		zap.String("employee_id", a.EmployeeID.String()),
	)
	return mapToAssignmentResponse(a), nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]EmployeeTaskView, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, taskerrors.ErrInvalidTaskID
	}
	return s.repo.ListForEmployee(ctx, employeeID)
}

func (s *service) ListAllAssignments(ctx context.Context, page, limit int) ([]AssignmentResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	assignments, total, err := s.repo.ListAssignments(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		resp = append(resp, mapToAssignmentResponse(&assignments[i]))
	}
	return resp, total, nil
}

func (s *service) AssignActiveTasks(ctx context.Context, actorID, employeeID string) (int, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, taskerrors.ErrInvalidTaskID
	}

	tasks, err := s.repo.ListTasks(ctx, true)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for i := range tasks {
		a := &TaskAssignment{
			ID:         uuid.New(),
			TaskID:     tasks[i].ID,
			EmployeeID: eid,
			Status:     StatusPending,
			AssignedAt: time.Now().UTC(),
		}
		if err := s.repo.CreateAssignment(ctx, a); err != nil {
			if MapAssignmentError(err) == taskerrors.ErrAlreadyAssigned {
				continue
			}
			return assigned, err
		}
		assigned++
	}

	s.logger.Info("bootstrap assignments created",
		zap.String("employee_id", employeeID),
		zap.Int("assigned", assigned),
	)
	return assigned, nil
}

func (s *service) writeLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, a *TaskAssignment, actorID string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.TaskLifecycleEvent{
		EventType:    eventType,
		AssignmentID: a.ID.String(),
		TaskID:       a.TaskID.String(),
		EmployeeID:   a.EmployeeID.String(),
		ActorID:      actorID,
		OccurredAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "task_assignment",
		AggregateID:   a.ID.String(),
		EventType:     eventType,
		Topic:         events.TaskLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
