package training

import "time"

type CreateModuleRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" binding:"gte=0"`
}

type UpdateProgressRequest struct {
	ModuleID string `json:"module_id" binding:"required,uuid"`
	Percent  int    `json:"percent" binding:"gte=0"`
}

type ModuleResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	IsActive        bool   `json:"is_active"`
}

// ModuleProgressView is a module merged with the employee's progress. A
// module the employee never touched reports pending at 0 percent.
type ModuleProgressView struct {
	ModuleID        string     `json:"module_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"duration_minutes"`
	Percent         int        `json:"percent"`
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

type ProgressResponse struct {
	ModuleID    string     `json:"module_id"`
	EmployeeID  string     `json:"employee_id"`
	Percent     int        `json:"percent"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func mapToModuleResponse(m *TrainingModule) ModuleResponse {
	return ModuleResponse{
		ID:              m.ID.String(),
		Title:           m.Title,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		IsActive:        m.IsActive,
	}
}

func mapToProgressResponse(p *TrainingProgress) ProgressResponse {
	return ProgressResponse{
		ModuleID:    p.ModuleID.String(),
		EmployeeID:  p.EmployeeID.String(),
		Percent:     p.Percent,
		Status:      StatusForPercent(p.Percent),
		StartedAt:   p.StartedAt,
		CompletedAt: p.CompletedAt,
	}
}
