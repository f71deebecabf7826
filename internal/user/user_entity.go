package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// User is the credential store record. Role is immutable after registration
// and IsActive=false revokes authentication; lifecycle services never touch
// either field.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'employee'"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidRole(role string) bool {
	return role == RoleHR || role == RoleEmployee
}
