package training

import (
	"context"
	"errors"
	"time"

	trainingerrors "hivedesk/internal/training/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=training_service.go -destination=mock/training_service_mock.go -package=mock
type Service interface {
	CreateModule(ctx context.Context, req CreateModuleRequest) (ModuleResponse, error)
	ListModules(ctx context.Context) ([]ModuleResponse, error)

	// ListForEmployee merges every active module with the employee's
	// recorded progress. Untouched modules report pending at 0 percent.
	ListForEmployee(ctx context.Context, employeeID string) ([]ModuleProgressView, error)

	UpdateProgress(ctx context.Context, employeeID string, req UpdateProgressRequest) (ProgressResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: zap.L().Named("training.service")}
}

func (s *service) CreateModule(ctx context.Context, req CreateModuleRequest) (ModuleResponse, error) {
	m := &TrainingModule{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	if err := s.repo.CreateModule(ctx, m); err != nil {
		s.logger.Error("create module failed", zap.Error(err))
		return ModuleResponse{}, err
	}

	s.logger.Info("training module created", zap.String("module_id", m.ID.String()))
	return mapToModuleResponse(m), nil
}

func (s *service) ListModules(ctx context.Context) ([]ModuleResponse, error) {
	modules, err := s.repo.ListModules(ctx, false)
	if err != nil {
		return nil, err
	}

	resp := make([]ModuleResponse, 0, len(modules))
	for i := range modules {
		resp = append(resp, mapToModuleResponse(&modules[i]))
	}
	return resp, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]ModuleProgressView, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, trainingerrors.ErrInvalidModuleID
	}

	modules, err := s.repo.ListModules(ctx, true)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListProgressForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	byModule := make(map[uuid.UUID]*TrainingProgress, len(rows))
	for i := range rows {
		byModule[rows[i].ModuleID] = &rows[i]
	}

	views := make([]ModuleProgressView, 0, len(modules))
	for i := range modules {
		m := &modules[i]
		view := ModuleProgressView{
			ModuleID:        m.ID.String(),
			Title:           m.Title,
			Description:     m.Description,
			DurationMinutes: m.DurationMinutes,
			Percent:         0,
			Status:          StatusPending,
		}
		if p, ok := byModule[m.ID]; ok {
			view.Percent = p.Percent
			view.Status = StatusForPercent(p.Percent)
			view.StartedAt = p.StartedAt
			view.CompletedAt = p.CompletedAt
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *service) UpdateProgress(ctx context.Context, employeeID string, req UpdateProgressRequest) (ProgressResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return ProgressResponse{}, trainingerrors.ErrInvalidModuleID
	}
	if _, err := uuid.Parse(req.ModuleID); err != nil {
		return ProgressResponse{}, trainingerrors.ErrInvalidModuleID
	}

	m, err := s.repo.GetModule(ctx, req.ModuleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProgressResponse{}, trainingerrors.ErrModuleNotFound
		}
		return ProgressResponse{}, err
	}

	percent := ClampPercent(req.Percent)

	p, err := s.repo.GetProgress(ctx, employeeID, req.ModuleID)
	if err != nil {
		return ProgressResponse{}, err
	}
	if p == nil {
		p = &TrainingProgress{
			ID:         uuid.New(),
			ModuleID:   m.ID,
			EmployeeID: eid,
		}
	}

	now := time.Now().UTC()
	p.Percent = percent
	if percent > 0 && p.StartedAt == nil {
		p.StartedAt = &now
	}
	if percent >= 100 {
		if p.CompletedAt == nil {
			p.CompletedAt = &now
		}
	} else {
		p.CompletedAt = nil
	}

	if err := s.repo.SaveProgress(ctx, p); err != nil {
		s.logger.Error("save progress failed",
			zap.String("employee_id", employeeID),
			zap.String("module_id", req.ModuleID),
			zap.Error(err),
		)
		return ProgressResponse{}, err
	}

	s.logger.Info("training progress updated",
		zap.String("employee_id", employeeID),
		zap.String("module_id", req.ModuleID),
		zap.Int("percent", percent),
	)
	return mapToProgressResponse(p), nil
}
