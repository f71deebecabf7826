package employee

import (
	"context"
	"database/sql"
	"testing"

	"hivedesk/internal/document"
	employeeerrors "hivedesk/internal/employee/errors"
	"hivedesk/internal/task"
	"hivedesk/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	listWithTaskStatsFn func(ctx context.Context, limit, offset int) ([]EmployeeListItem, int64, error)
	deleteCascadeFn     func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) ListWithTaskStats(ctx context.Context, limit, offset int) ([]EmployeeListItem, int64, error) {
	return f.listWithTaskStatsFn(ctx, limit, offset)
}
func (f *fakeRepo) DeleteCascade(ctx context.Context, id string) error {
	return f.deleteCascadeFn(ctx, id)
}

type fakeUserRepo struct {
	getByIDFn func(ctx context.Context, id string) (*user.User, error)
	updateFn  func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepo) WithTx(tx *sql.Tx) user.Repository                 { return f }
func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error    { return nil }
func (f *fakeUserRepo) GetByEmail(ctx context.Context, e string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeUserRepo) GetActiveByID(ctx context.Context, id string) (*user.User, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	return f.updateFn(ctx, u)
}
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeTaskService struct {
	listForEmployeeFn func(ctx context.Context, employeeID string) ([]task.EmployeeTaskView, error)
}

func (f *fakeTaskService) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	return task.TaskResponse{}, nil
}
func (f *fakeTaskService) ListTasks(ctx context.Context) ([]task.TaskResponse, error) {
	return nil, nil
}
func (f *fakeTaskService) Assign(ctx context.Context, actorID string, req task.AssignTaskRequest) (task.AssignmentResponse, error) {
	return task.AssignmentResponse{}, nil
}
func (f *fakeTaskService) Complete(ctx context.Context, actorID, assignmentID string) (task.AssignmentResponse, error) {
	return task.AssignmentResponse{}, nil
}
func (f *fakeTaskService) ListForEmployee(ctx context.Context, employeeID string) ([]task.EmployeeTaskView, error) {
	return f.listForEmployeeFn(ctx, employeeID)
}
func (f *fakeTaskService) ListAllAssignments(ctx context.Context, page, limit int) ([]task.AssignmentResponse, int64, error) {
	return nil, 0, nil
}
func (f *fakeTaskService) AssignActiveTasks(ctx context.Context, actorID, employeeID string) (int, error) {
	return 0, nil
}

type fakeDocumentService struct {
	listForEmployeeFn func(ctx context.Context, employeeID string) ([]document.DocumentResponse, error)
}

func (f *fakeDocumentService) Upload(ctx context.Context, in document.UploadInput) (document.DocumentResponse, error) {
	return document.DocumentResponse{}, nil
}
func (f *fakeDocumentService) Verify(ctx context.Context, actorID, documentID string, req document.VerifyDocumentRequest) (document.DocumentResponse, error) {
	return document.DocumentResponse{}, nil
}
func (f *fakeDocumentService) Download(ctx context.Context, actorID, actorRole, documentID string) (document.DownloadResult, error) {
	return document.DownloadResult{}, nil
}
func (f *fakeDocumentService) ListForEmployee(ctx context.Context, employeeID string) ([]document.DocumentResponse, error) {
	return f.listForEmployeeFn(ctx, employeeID)
}
func (f *fakeDocumentService) ListByStatus(ctx context.Context, status string, page, limit int) ([]document.DocumentResponse, int64, error) {
	return nil, 0, nil
}

func TestDetailAggregatesTasksAndDocuments(t *testing.T) {
	id := uuid.New()
	users := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, got string) (*user.User, error) {
			assert.Equal(t, id.String(), got)
			return &user.User{ID: id, Name: "Bob", Email: "bob@corp.test", Role: user.RoleEmployee, IsActive: true}, nil
		},
	}
	tasks := &fakeTaskService{
		listForEmployeeFn: func(ctx context.Context, employeeID string) ([]task.EmployeeTaskView, error) {
			return []task.EmployeeTaskView{{Title: "Read handbook", Status: task.StatusPending}}, nil
		},
	}
	docs := &fakeDocumentService{
		listForEmployeeFn: func(ctx context.Context, employeeID string) ([]document.DocumentResponse, error) {
			return []document.DocumentResponse{{Type: document.TypeResume, Status: document.StatusPending}}, nil
		},
	}

	svc := NewService(&fakeRepo{}, users, tasks, docs)
	detail, err := svc.Detail(context.Background(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, "Bob", detail.Name)
	assert.Len(t, detail.Tasks, 1)
	assert.Len(t, detail.Documents, 1)
}

func TestDetailHidesHRAccounts(t *testing.T) {
	id := uuid.New()
	users := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, got string) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleHR}, nil
		},
	}

	svc := NewService(&fakeRepo{}, users, &fakeTaskService{}, &fakeDocumentService{})
	_, err := svc.Detail(context.Background(), id.String())

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestUpdateRequiresAField(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeUserRepo{}, &fakeTaskService{}, &fakeDocumentService{})
	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, employeeerrors.ErrNothingToUpdate)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	repo := &fakeRepo{
		deleteCascadeFn: func(ctx context.Context, id string) error {
			return gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo, &fakeUserRepo{}, &fakeTaskService{}, &fakeDocumentService{})
	err := svc.Delete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestListClampsPagination(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &fakeRepo{
		listWithTaskStatsFn: func(ctx context.Context, limit, offset int) ([]EmployeeListItem, int64, error) {
			gotLimit, gotOffset = limit, offset
			return []EmployeeListItem{}, 0, nil
		},
	}

	svc := NewService(repo, &fakeUserRepo{}, &fakeTaskService{}, &fakeDocumentService{})
	_, _, err := svc.List(context.Background(), -3, 9999)

	assert.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
}
