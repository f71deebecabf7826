package events

import "time"

const DocumentLifecycleTopic = "hr.onboarding.document.lifecycle.v1"

type DocumentVerifiedEvent struct {
	EventType  string    `json:"event_type"`
	DocumentID string    `json:"document_id"`
	EmployeeID string    `json:"employee_id"`
	Outcome    string    `json:"outcome"`
	VerifiedBy string    `json:"verified_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
