package dashboard

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	hrCalls       int
	hrCountsFn    func(ctx context.Context) (HRDashboard, error)
	employeeCalls int
	employeeFn    func(ctx context.Context, employeeID string) (EmployeeDashboard, error)
}

func (f *fakeRepo) HRCounts(ctx context.Context) (HRDashboard, error) {
	f.hrCalls++
	return f.hrCountsFn(ctx)
}
func (f *fakeRepo) EmployeeCounts(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
	f.employeeCalls++
	return f.employeeFn(ctx, employeeID)
}

func TestHRSummaryCacheMissThenHit(t *testing.T) {
	db, mock := redismock.NewClientMock()

	want := HRDashboard{TotalEmployees: 10, ActiveEmployees: 8, PendingAssignments: 4, PendingDocuments: 2}
	payload, err := json.Marshal(want)
	assert.NoError(t, err)

	mock.ExpectGet(hrCacheKey).RedisNil()
	mock.ExpectSet(hrCacheKey, payload, dashboardCacheTTL).SetVal("OK")
	mock.ExpectGet(hrCacheKey).SetVal(string(payload))

	repo := &fakeRepo{
		hrCountsFn: func(ctx context.Context) (HRDashboard, error) {
			return want, nil
		},
	}

	svc := NewService(repo, db)

	got, err := svc.HRSummary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = svc.HRSummary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Equal(t, 1, repo.hrCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeSummaryComputesCompletionRate(t *testing.T) {
	repo := &fakeRepo{
		employeeFn: func(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
			return EmployeeDashboard{TasksTotal: 4, TasksCompleted: 3, DocumentsUploaded: 2, DocumentsVerified: 1}, nil
		},
	}

	svc := NewService(repo, nil)
	got, err := svc.EmployeeSummary(context.Background(), "e1")

	assert.NoError(t, err)
	assert.InDelta(t, 0.75, got.CompletionRate, 0.001)
}

func TestEmployeeSummaryZeroTasks(t *testing.T) {
	repo := &fakeRepo{
		employeeFn: func(ctx context.Context, employeeID string) (EmployeeDashboard, error) {
			return EmployeeDashboard{}, nil
		},
	}

	svc := NewService(repo, nil)
	got, err := svc.EmployeeSummary(context.Background(), "e1")

	assert.NoError(t, err)
	assert.Equal(t, float64(0), got.CompletionRate)
}

func TestHRSummaryToleratesCacheOutage(t *testing.T) {
	db, mock := redismock.NewClientMock()

	mock.ExpectGet(hrCacheKey).SetErr(context.DeadlineExceeded)

	want := HRDashboard{TotalEmployees: 3}
	payload, err := json.Marshal(want)
	assert.NoError(t, err)
	mock.ExpectSet(hrCacheKey, payload, dashboardCacheTTL).SetErr(context.DeadlineExceeded)

	repo := &fakeRepo{
		hrCountsFn: func(ctx context.Context) (HRDashboard, error) {
			return want, nil
		},
	}

	svc := NewService(repo, db)
	got, err := svc.HRSummary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
