package employee

import (
	"context"
	"database/sql"

	"hivedesk/internal/user"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// ListWithTaskStats fetches the roster page and its per-employee task
	// counts in a single grouped query.
	ListWithTaskStats(ctx context.Context, limit, offset int) ([]EmployeeListItem, int64, error)
	DeleteCascade(ctx context.Context, id string) error
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

func (r *repository) ListWithTaskStats(ctx context.Context, limit, offset int) ([]EmployeeListItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("role = ?", user.RoleEmployee).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []EmployeeListItem
	err := r.db.WithContext(ctx).Raw(`
SELECT
	u.id::text AS id,
	u.name,
	u.email,
	u.is_active,
	COUNT(ta.id) AS tasks_total,
	COUNT(ta.id) FILTER (WHERE ta.status = 'completed') AS tasks_completed
FROM users u
LEFT JOIN task_assignments ta ON ta.employee_id = u.id
WHERE u.role = ?
GROUP BY u.id, u.name, u.email, u.is_active
ORDER BY u.created_at ASC
LIMIT ? OFFSET ?
`, user.RoleEmployee, limit, offset).Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// DeleteCascade removes an employee and everything hanging off the account.
func (r *repository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM task_assignments WHERE employee_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM documents WHERE employee_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM training_progress WHERE employee_id = ?`, id).Error; err != nil {
			return err
		}

		result := tx.Exec(`DELETE FROM users WHERE id = ? AND role = ?`, id, user.RoleEmployee)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
