package dashboard

type HRDashboard struct {
	TotalEmployees     int64 `json:"total_employees"`
	ActiveEmployees    int64 `json:"active_employees"`
	PendingAssignments int64 `json:"pending_assignments"`
	PendingDocuments   int64 `json:"pending_documents"`
}

type EmployeeDashboard struct {
	TasksTotal        int64   `json:"tasks_total"`
	TasksCompleted    int64   `json:"tasks_completed"`
	CompletionRate    float64 `json:"completion_rate"`
	DocumentsUploaded int64   `json:"documents_uploaded"`
	DocumentsVerified int64   `json:"documents_verified"`
}
