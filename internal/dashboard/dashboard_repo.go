package dashboard

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	HRCounts(ctx context.Context) (HRDashboard, error)
	EmployeeCounts(ctx context.Context, employeeID string) (EmployeeDashboard, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HRCounts(ctx context.Context) (HRDashboard, error) {
	var d HRDashboard
	err := r.db.WithContext(ctx).Raw(`
SELECT
	(SELECT COUNT(*) FROM users WHERE role = 'employee') AS total_employees,
	(SELECT COUNT(*) FROM users WHERE role = 'employee' AND is_active) AS active_employees,
	(SELECT COUNT(*) FROM task_assignments WHERE status = 'pending') AS pending_assignments,
	(SELECT COUNT(*) FROM documents WHERE status = 'pending') AS pending_documents
`).Scan(&d).Error
	return d, err
}

func (r *repository) EmployeeCounts(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
	var d EmployeeDashboard
	err := r.db.WithContext(ctx).Raw(`
SELECT
	(SELECT COUNT(*) FROM task_assignments WHERE employee_id = @id) AS tasks_total,
	(SELECT COUNT(*) FROM task_assignments WHERE employee_id = @id AND status = 'completed') AS tasks_completed,
	(SELECT COUNT(*) FROM documents WHERE employee_id = @id) AS documents_uploaded,
	(SELECT COUNT(*) FROM documents WHERE employee_id = @id AND status = 'verified') AS documents_verified
`, map[string]any{"id": employeeID}).Scan(&d).Error
	return d, err
}
