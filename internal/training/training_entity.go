package training

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// StatusForPercent derives the progress status shown to clients.
func StatusForPercent(percent int) string {
	switch {
	case percent >= 100:
		return StatusCompleted
	case percent > 0:
		return StatusInProgress
	}
	return StatusPending
}

// ClampPercent bounds a reported completion percentage to [0, 100].
func ClampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

type TrainingModule struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (TrainingModule) TableName() string { return "training_modules" }

// TrainingProgress tracks one employee's completion of one module. At most
// one row per pair, enforced by uq_training_progress_employee_module.
type TrainingProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ModuleID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_training_progress_employee_module" json:"module_id"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_training_progress_employee_module" json:"employee_id"`
	Percent     int        `gorm:"not null;default:0" json:"percent"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (TrainingProgress) TableName() string { return "training_progress" }
