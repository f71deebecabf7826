package seed

import (
	"context"
	"time"

	"hivedesk/internal/task"
	"hivedesk/internal/training"
	"hivedesk/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const samplePassword = "password123"

// Run loads a development dataset: one HR account, three employees, the
// standard onboarding checklist and the training catalog. Safe to run more
// than once; existing rows are left alone.
func Run(ctx context.Context, db *gorm.DB) error {
	logger := zap.L().Named("seed")

	hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hr := user.User{
		ID:           uuid.New(),
		Name:         "John HR",
		Email:        "john.hr@company.com",
		PasswordHash: string(hash),
		Role:         user.RoleHR,
		IsActive:     true,
	}
	employees := []user.User{
		{ID: uuid.New(), Name: "Jane Employee", Email: "jane.employee@company.com", PasswordHash: string(hash), Role: user.RoleEmployee, IsActive: true},
		{ID: uuid.New(), Name: "Bob Employee", Email: "bob.employee@company.com", PasswordHash: string(hash), Role: user.RoleEmployee, IsActive: true},
		{ID: uuid.New(), Name: "Alice Employee", Email: "alice.employee@company.com", PasswordHash: string(hash), Role: user.RoleEmployee, IsActive: true},
	}

	users := append([]user.User{hr}, employees...)
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&users).Error; err != nil {
		return err
	}

	tasks := []task.Task{
		{
			ID:          uuid.New(),
			Title:       "Read Company Policy",
			Description: "Please read and understand our company policies and code of conduct",
			Type:        task.TypeRead,
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Title:       "Upload Aadhar Card",
			Description: "Please upload a clear copy of your Aadhar card for identity verification",
			Type:        task.TypeUpload,
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Title:       "Upload Resume",
			Description: "Please upload your latest resume",
			Type:        task.TypeUpload,
			IsActive:    true,
		},
		{
			ID:          uuid.New(),
			Title:       "Sign Employment Agreement",
			Description: "Please review and sign the employment agreement",
			Type:        task.TypeSign,
			IsActive:    true,
		},
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&tasks).Error; err != nil {
		return err
	}

	modules := []training.TrainingModule{
		{
			ID:              uuid.New(),
			Title:           "Workplace Safety",
			Description:     "Essential workplace safety guidelines and emergency procedures",
			DurationMinutes: 30,
			IsActive:        true,
		},
		{
			ID:              uuid.New(),
			Title:           "Company Culture and Values",
			Description:     "Understanding our company mission, vision, and core values",
			DurationMinutes: 45,
			IsActive:        true,
		},
		{
			ID:              uuid.New(),
			Title:           "IT Security Awareness",
			Description:     "Cybersecurity best practices and company IT policies",
			DurationMinutes: 60,
			IsActive:        true,
		},
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&modules).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	var assignments []task.TaskAssignment
	for _, e := range employees {
		for _, t := range tasks {
			assignments = append(assignments, task.TaskAssignment{
				ID:         uuid.New(),
				TaskID:     t.ID,
				EmployeeID: e.ID,
				Status:     task.StatusPending,
				AssignedAt: now,
			})
		}
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&assignments).Error; err != nil {
		return err
	}

	logger.Info("sample data loaded",
		zap.Int("users", len(users)),
		zap.Int("tasks", len(tasks)),
		zap.Int("training_modules", len(modules)),
		zap.Int("assignments", len(assignments)),
	)
	return nil
}
