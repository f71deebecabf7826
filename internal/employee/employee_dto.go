package employee

import (
	"hivedesk/internal/document"
	"hivedesk/internal/task"
)

type UpdateEmployeeRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

// EmployeeListItem is one row of the HR roster, with task counts computed
// in the listing query itself.
type EmployeeListItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsActive       bool   `json:"is_active"`
	TasksTotal     int    `json:"tasks_total"`
	TasksCompleted int    `json:"tasks_completed"`
}

type EmployeeDetail struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Email     string                      `json:"email"`
	Role      string                      `json:"role"`
	IsActive  bool                        `json:"is_active"`
	Tasks     []task.EmployeeTaskView     `json:"tasks"`
	Documents []document.DocumentResponse `json:"documents"`
}
