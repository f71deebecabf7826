package training

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=training_repo.go -destination=mock/training_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateModule(ctx context.Context, m *TrainingModule) error
	GetModule(ctx context.Context, id string) (*TrainingModule, error)
	ListModules(ctx context.Context, activeOnly bool) ([]TrainingModule, error)

	GetProgress(ctx context.Context, employeeID, moduleID string) (*TrainingProgress, error)
	SaveProgress(ctx context.Context, p *TrainingProgress) error
	ListProgressForEmployee(ctx context.Context, employeeID string) ([]TrainingProgress, error)
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

func (r *repository) CreateModule(ctx context.Context, m *TrainingModule) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) GetModule(ctx context.Context, id string) (*TrainingModule, error) {
	var m TrainingModule
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) ListModules(ctx context.Context, activeOnly bool) ([]TrainingModule, error) {
	var modules []TrainingModule
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&modules).Error
	return modules, err
}

// GetProgress returns nil without error when no row exists for the pair.
func (r *repository) GetProgress(ctx context.Context, employeeID, moduleID string) (*TrainingProgress, error) {
	var p TrainingProgress
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND module_id = ?", employeeID, moduleID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) SaveProgress(ctx context.Context, p *TrainingProgress) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) ListProgressForEmployee(ctx context.Context, employeeID string) ([]TrainingProgress, error) {
	var rows []TrainingProgress
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}
