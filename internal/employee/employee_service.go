package employee

import (
	"context"
	"errors"

	"hivedesk/internal/document"
	employeeerrors "hivedesk/internal/employee/errors"
	"hivedesk/internal/task"
	"hivedesk/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, page, limit int) ([]EmployeeListItem, int64, error)
	Detail(ctx context.Context, id string) (*EmployeeDetail, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (*EmployeeDetail, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	users     user.Repository
	tasks     task.Service
	documents document.Service
	logger    *zap.Logger
}

func NewService(repo Repository, users user.Repository, tasks task.Service, documents document.Service) Service {
	return &service{
		repo:      repo,
		users:     users,
		tasks:     tasks,
		documents: documents,
		logger:    zap.L().Named("employee.service"),
	}
}

func (s *service) List(ctx context.Context, page, limit int) ([]EmployeeListItem, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.ListWithTaskStats(ctx, limit, (page-1)*limit)
}

func (s *service) Detail(ctx context.Context, id string) (*EmployeeDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if u.Role != user.RoleEmployee {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	tasks, err := s.tasks.ListForEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	docs, err := s.documents.ListForEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	return &EmployeeDetail{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Tasks:     tasks,
		Documents: docs,
	}, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (*EmployeeDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	if req.Name == nil && req.Email == nil && req.IsActive == nil {
		return nil, employeeerrors.ErrNothingToUpdate
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if u.Role != user.RoleEmployee {
		return nil, employeeerrors.ErrEmployeeNotFound
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, user.MapError(err)
	}

	s.logger.Info("employee updated", zap.String("employee_id", id))
	return s.Detail(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return mapNotFound(err)
	}

	s.logger.Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	return err
}
