package document

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TypeAadhar = "aadhar"
	TypeResume = "resume"
	TypeOther  = "other"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusFailed   = "failed"
)

// CanonicalType lowercases and validates a client-supplied document type.
func CanonicalType(t string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case TypeAadhar:
		return TypeAadhar, true
	case TypeResume:
		return TypeResume, true
	case TypeOther:
		return TypeOther, true
	}
	return "", false
}

func ValidOutcome(o string) bool {
	return o == StatusVerified || o == StatusFailed
}

type Document struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	Type        string     `gorm:"type:varchar(20);not null" json:"type"`
	Filename    string     `gorm:"type:varchar(255);not null" json:"filename"`
	StorageRef  string     `gorm:"type:varchar(512);not null" json:"-"`
	ContentType string     `gorm:"type:varchar(100)" json:"content_type"`
	SizeBytes   int64      `gorm:"not null;default:0" json:"size_bytes"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Note        string     `gorm:"type:varchar(500)" json:"note,omitempty"`
	VerifiedBy  *uuid.UUID `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Document) TableName() string { return "documents" }
