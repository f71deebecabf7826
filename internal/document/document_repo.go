package document

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=document_repo.go -destination=mock/document_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	Update(ctx context.Context, d *Document) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Document, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]Document, int64, error)
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

func (r *repository) Create(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Document, error) {
	var d Document
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Document, error) {
	var docs []Document
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Document, int64, error) {
	var (
		docs  []Document
		total int64
	)

	q := r.db.WithContext(ctx).Model(&Document{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&docs).Error
	return docs, total, err
}
