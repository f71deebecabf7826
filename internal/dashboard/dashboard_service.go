package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	hrCacheKey        = "dashboard:hr"
	employeeCacheKey  = "dashboard:employee:"
	dashboardCacheTTL = 30 * time.Second
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	HRSummary(ctx context.Context) (HRDashboard, error)
	EmployeeSummary(ctx context.Context, employeeID string) (EmployeeDashboard, error)
}

type service struct {
	repo   Repository
	cache  *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, cache *redis.Client) Service {
	return &service{repo: repo, cache: cache, logger: zap.L().Named("dashboard.service")}
}

func (s *service) HRSummary(ctx context.Context) (HRDashboard, error) {
	if cached, ok := s.fromCache(ctx, hrCacheKey); ok {
		var d HRDashboard
		if json.Unmarshal(cached, &d) == nil {
			return d, nil
		}
	}

	// Collapse concurrent cache misses into one set of count queries.
	v, err, _ := s.group.Do(hrCacheKey, func() (any, error) {
		d, err := s.repo.HRCounts(ctx)
		if err != nil {
			return HRDashboard{}, err
		}
		s.toCache(ctx, hrCacheKey, d)
		return d, nil
	})
	if err != nil {
		return HRDashboard{}, err
	}
	return v.(HRDashboard), nil
}

func (s *service) EmployeeSummary(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
	key := employeeCacheKey + employeeID

	if cached, ok := s.fromCache(ctx, key); ok {
		var d EmployeeDashboard
		if json.Unmarshal(cached, &d) == nil {
			return d, nil
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		d, err := s.repo.EmployeeCounts(ctx, employeeID)
		if err != nil {
			return EmployeeDashboard{}, err
		}
		if d.TasksTotal > 0 {
			d.CompletionRate = float64(d.TasksCompleted) / float64(d.TasksTotal)
		}
		s.toCache(ctx, key, d)
		return d, nil
	})
	if err != nil {
		return EmployeeDashboard{}, err
	}
	return v.(EmployeeDashboard), nil
}

func (s *service) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (s *service) toCache(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, dashboardCacheTTL).Err(); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
