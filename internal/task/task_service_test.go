package task

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"hivedesk/internal/messaging/kafka"
	taskerrors "hivedesk/internal/task/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createTaskFn       func(ctx context.Context, t *Task) error
	getTaskFn          func(ctx context.Context, id string) (*Task, error)
	listTasksFn        func(ctx context.Context, activeOnly bool) ([]Task, error)
	createAssignmentFn func(ctx context.Context, a *TaskAssignment) error
	getAssignmentFn    func(ctx context.Context, id string) (*TaskAssignment, error)
	updateAssignmentFn func(ctx context.Context, a *TaskAssignment) error
	listAssignmentsFn  func(ctx context.Context, limit, offset int) ([]TaskAssignment, int64, error)
	listForEmployeeFn  func(ctx context.Context, employeeID string) ([]EmployeeTaskView, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) CreateTask(ctx context.Context, t *Task) error {
	return f.createTaskFn(ctx, t)
}
func (f *fakeRepo) GetTask(ctx context.Context, id string) (*Task, error) {
	return f.getTaskFn(ctx, id)
}
func (f *fakeRepo) ListTasks(ctx context.Context, activeOnly bool) ([]Task, error) {
	return f.listTasksFn(ctx, activeOnly)
}
func (f *fakeRepo) CreateAssignment(ctx context.Context, a *TaskAssignment) error {
	return f.createAssignmentFn(ctx, a)
}
func (f *fakeRepo) GetAssignment(ctx context.Context, id string) (*TaskAssignment, error) {
	return f.getAssignmentFn(ctx, id)
}
func (f *fakeRepo) UpdateAssignment(ctx context.Context, a *TaskAssignment) error {
	return f.updateAssignmentFn(ctx, a)
}
func (f *fakeRepo) ListAssignments(ctx context.Context, limit, offset int) ([]TaskAssignment, int64, error) {
	return f.listAssignmentsFn(ctx, limit, offset)
}
func (f *fakeRepo) ListForEmployee(ctx context.Context, employeeID string) ([]EmployeeTaskView, error) {
	return f.listForEmployeeFn(ctx, employeeID)
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
	err    error
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error      { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, r string) error { return nil }

func TestCreateTaskRejectsUnknownType(t *testing.T) {
	svc := NewService(nil, &fakeRepo{}, nil)
	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{Title: "x", Type: "dance"})
	assert.ErrorIs(t, err, taskerrors.ErrInvalidTaskType)
}

func TestAssignSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	taskID := uuid.New()
	employeeID := uuid.New()

	repo := &fakeRepo{
		getTaskFn: func(ctx context.Context, id string) (*Task, error) {
			return &Task{ID: taskID, Title: "Read handbook", Type: TypeRead, IsActive: true}, nil
		},
		createAssignmentFn: func(ctx context.Context, a *TaskAssignment) error {
			assert.Equal(t, StatusPending, a.Status)
			assert.Equal(t, taskID, a.TaskID)
			assert.Equal(t, employeeID, a.EmployeeID)
			return nil
		},
	}
	outbox := &fakeOutbox{}

	svc := NewService(db, repo, outbox)
	resp, err := svc.Assign(context.Background(), "hr-1", AssignTaskRequest{
		TaskID:     taskID.String(),
		EmployeeID: employeeID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "task.assigned", outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignDuplicatePairConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	taskID := uuid.New()
	repo := &fakeRepo{
		getTaskFn: func(ctx context.Context, id string) (*Task, error) {
			return &Task{ID: taskID, IsActive: true}, nil
		},
		createAssignmentFn: func(ctx context.Context, a *TaskAssignment) error {
			return errors.New(`duplicate key value violates unique constraint "uq_task_assignment_employee_task"`)
		},
	}

	svc := NewService(db, repo, &fakeOutbox{})
	_, err = svc.Assign(context.Background(), "hr-1", AssignTaskRequest{
		TaskID:     taskID.String(),
		EmployeeID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, taskerrors.ErrAlreadyAssigned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignUnknownTask(t *testing.T) {
	repo := &fakeRepo{
		getTaskFn: func(ctx context.Context, id string) (*Task, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(nil, repo, nil)
	_, err := svc.Assign(context.Background(), "hr-1", AssignTaskRequest{
		TaskID:     uuid.NewString(),
		EmployeeID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
}

func TestCompleteSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	employeeID := uuid.New()
	assignmentID := uuid.New()

	var updated *TaskAssignment
	repo := &fakeRepo{
		getAssignmentFn: func(ctx context.Context, id string) (*TaskAssignment, error) {
			return &TaskAssignment{
				ID:         assignmentID,
				TaskID:     uuid.New(),
				EmployeeID: employeeID,
				Status:     StatusPending,
				AssignedAt: time.Now().Add(-time.Hour),
			}, nil
		},
		updateAssignmentFn: func(ctx context.Context, a *TaskAssignment) error {
			updated = a
			return nil
		},
	}
	outbox := &fakeOutbox{}

	svc := NewService(db, repo, outbox)
	resp, err := svc.Complete(context.Background(), employeeID.String(), assignmentID.String())

	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.NotNil(t, resp.CompletedAt)
	assert.NotNil(t, updated)
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "task.completed", outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRejectsNonOwner(t *testing.T) {
	repo := &fakeRepo{
		getAssignmentFn: func(ctx context.Context, id string) (*TaskAssignment, error) {
			return &TaskAssignment{
				ID:         uuid.New(),
				EmployeeID: uuid.New(),
				Status:     StatusPending,
			}, nil
		},
	}

	svc := NewService(nil, repo, nil)
	_, err := svc.Complete(context.Background(), uuid.NewString(), uuid.NewString())

	assert.ErrorIs(t, err, taskerrors.ErrNotAssignmentOwner)
}

func TestCompleteTwiceConflicts(t *testing.T) {
	employeeID := uuid.New()
	done := time.Now().Add(-time.Minute)
	repo := &fakeRepo{
		getAssignmentFn: func(ctx context.Context, id string) (*TaskAssignment, error) {
			return &TaskAssignment{
				ID:          uuid.New(),
				EmployeeID:  employeeID,
				Status:      StatusCompleted,
				CompletedAt: &done,
			}, nil
		},
	}

	svc := NewService(nil, repo, nil)
	_, err := svc.Complete(context.Background(), employeeID.String(), uuid.NewString())

	assert.ErrorIs(t, err, taskerrors.ErrAlreadyCompleted)
}

func TestAssignActiveTasksSkipsExistingPairs(t *testing.T) {
	t1, t2, t3 := uuid.New(), uuid.New(), uuid.New()
	repo := &fakeRepo{
		listTasksFn: func(ctx context.Context, activeOnly bool) ([]Task, error) {
			assert.True(t, activeOnly)
			return []Task{{ID: t1}, {ID: t2}, {ID: t3}}, nil
		},
		createAssignmentFn: func(ctx context.Context, a *TaskAssignment) error {
			if a.TaskID == t2 {
				return errors.New(`duplicate key value violates unique constraint "uq_task_assignment_employee_task"`)
			}
			return nil
		},
	}

	svc := NewService(nil, repo, nil)
	assigned, err := svc.AssignActiveTasks(context.Background(), "system", uuid.NewString())

	assert.NoError(t, err)
	assert.Equal(t, 2, assigned)
}
