package events

import "time"

const UserCreatedTopic = "hr.onboarding.user.lifecycle.v1"

type UserCreatedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
	CreatedBy  string    `json:"created_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
