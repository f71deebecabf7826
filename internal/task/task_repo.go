package task

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateTask(ctx context.Context, t *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context, activeOnly bool) ([]Task, error)

	CreateAssignment(ctx context.Context, a *TaskAssignment) error
	GetAssignment(ctx context.Context, id string) (*TaskAssignment, error)
	UpdateAssignment(ctx context.Context, a *TaskAssignment) error
	ListAssignments(ctx context.Context, limit, offset int) ([]TaskAssignment, int64, error)

	ListForEmployee(ctx context.Context, employeeID string) ([]EmployeeTaskView, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateTask(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetTask(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) ListTasks(ctx context.Context, activeOnly bool) ([]Task, error) {
	var tasks []Task
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&tasks).Error
	return tasks, err
}

func (r *repository) CreateAssignment(ctx context.Context, a *TaskAssignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetAssignment(ctx context.Context, id string) (*TaskAssignment, error) {
	var a TaskAssignment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) UpdateAssignment(ctx context.Context, a *TaskAssignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) ListAssignments(ctx context.Context, limit, offset int) ([]TaskAssignment, int64, error) {
	var (
		assignments []TaskAssignment
		total       int64
	)

	if err := r.db.WithContext(ctx).Model(&TaskAssignment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("assigned_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&assignments).Error
	return assignments, total, err
}

// ListForEmployee returns the employee checklist in one joined query.
func (r *repository) ListForEmployee(ctx context.Context, employeeID string) ([]EmployeeTaskView, error) {
	var views []EmployeeTaskView
	err := r.db.WithContext(ctx).
		Table("task_assignments AS ta").
		Select(`
			ta.id::text AS assignment_id,
			t.id::text AS task_id,
			t.title,
			t.description,
			t.type,
			ta.status,
			ta.assigned_at,
			ta.completed_at`).
		Joins("JOIN tasks t ON t.id = ta.task_id").
		Where("ta.employee_id = ?", employeeID).
		Order("ta.assigned_at ASC").
		Scan(&views).Error
	return views, err
}
