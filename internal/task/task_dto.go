package task

import "time"

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=read upload sign"`
}

type AssignTaskRequest struct {
	TaskID     string `json:"task_id" binding:"required,uuid"`
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type CompleteTaskRequest struct {
	AssignmentID string `json:"assignment_id" binding:"required,uuid"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	IsActive    bool   `json:"is_active"`
}

type AssignmentResponse struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	EmployeeID  string     `json:"employee_id"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// EmployeeTaskView is an assignment joined with its task, as shown on
// the employee checklist.
type EmployeeTaskView struct {
	AssignmentID string     `json:"assignment_id"`
	TaskID       string     `json:"task_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	AssignedAt   time.Time  `json:"assigned_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

func mapToTaskResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		IsActive:    t.IsActive,
	}
}

func mapToAssignmentResponse(a *TaskAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:          a.ID.String(),
		TaskID:      a.TaskID.String(),
		EmployeeID:  a.EmployeeID.String(),
		Status:      a.Status,
		AssignedAt:  a.AssignedAt,
		CompletedAt: a.CompletedAt,
	}
}
