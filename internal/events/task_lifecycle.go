package events

import "time"

const TaskLifecycleTopic = "hr.onboarding.task.lifecycle.v1"

const (
	EventTaskAssigned  = "task.assigned"
	EventTaskCompleted = "task.completed"
)

type TaskLifecycleEvent struct {
	EventType    string    `json:"event_type"`
	AssignmentID string    `json:"assignment_id"`
	TaskID       string    `json:"task_id"`
	EmployeeID   string    `json:"employee_id"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
