package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeRead   = "read"
	TypeUpload = "upload"
	TypeSign   = "sign"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

func ValidType(t string) bool {
	switch t {
	case TypeRead, TypeUpload, TypeSign:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"type:varchar(20);not null;default:'read'" json:"type"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }

// TaskAssignment links a task to an employee. One row per employee/task
// pair, enforced by uq_task_assignment_employee_task.
type TaskAssignment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TaskID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_task_assignment_employee_task" json:"task_id"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_task_assignment_employee_task" json:"employee_id"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AssignedAt  time.Time  `gorm:"not null" json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (TaskAssignment) TableName() string { return "task_assignments" }
