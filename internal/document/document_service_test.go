package document

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	documenterrors "hivedesk/internal/document/errors"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, d *Document) error
	getByIDFn        func(ctx context.Context, id string) (*Document, error)
	updateFn         func(ctx context.Context, d *Document) error
	listByEmployeeFn func(ctx context.Context, employeeID string) ([]Document, error)
	listByStatusFn   func(ctx context.Context, status string, limit, offset int) ([]Document, int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, d *Document) error {
	return f.createFn(ctx, d)
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Document, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, d *Document) error {
	return f.updateFn(ctx, d)
}
func (f *fakeRepo) ListByEmployee(ctx context.Context, employeeID string) ([]Document, error) {
	return f.listByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]Document, int64, error) {
	return f.listByStatusFn(ctx, status, limit, offset)
}

type fakeStore struct {
	putFn    func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	getFn    func(ctx context.Context, ref string) ([]byte, error)
	deleteFn func(ctx context.Context, ref string) error

	deleted []string
}

func (f *fakeStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.putFn != nil {
		return f.putFn(ctx, key, data, contentType)
	}
	return key, nil
}
func (f *fakeStore) Get(ctx context.Context, ref string) ([]byte, error) {
	return f.getFn(ctx, ref)
}
func (f *fakeStore) Delete(ctx context.Context, ref string) error {
	f.deleted = append(f.deleted, ref)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, ref)
	}
	return nil
}

type fakeOutbox struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error      { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, r string) error { return nil }

func TestUploadSuccessCanonicalizesType(t *testing.T) {
	employeeID := uuid.New()
	var created *Document
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Document) error {
			created = d
			return nil
		},
	}
	store := &fakeStore{}

	svc := NewService(nil, repo, store, nil)
	resp, err := svc.Upload(context.Background(), UploadInput{
		EmployeeID:  employeeID.String(),
		Type:        "  RESUME ",
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
		Data:        []byte("pdf"),
	})

	assert.NoError(t, err)
	assert.Equal(t, TypeResume, resp.Type)
	assert.Equal(t, StatusPending, resp.Status)
	assert.NotNil(t, created)
	assert.Equal(t, employeeID.String()+"_resume_cv.pdf", created.StorageRef)
	assert.Equal(t, int64(3), created.SizeBytes)
}

func TestUploadRejectsUnknownType(t *testing.T) {
	svc := NewService(nil, &fakeRepo{}, &fakeStore{}, nil)
	_, err := svc.Upload(context.Background(), UploadInput{
		EmployeeID: uuid.NewString(),
		Type:       "passport",
		Filename:   "x.png",
		Data:       []byte("x"),
	})
	assert.ErrorIs(t, err, documenterrors.ErrInvalidDocumentType)
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	svc := NewService(nil, &fakeRepo{}, &fakeStore{}, nil)
	_, err := svc.Upload(context.Background(), UploadInput{
		EmployeeID: uuid.NewString(),
		Type:       "other",
		Filename:   "x.png",
	})
	assert.ErrorIs(t, err, documenterrors.ErrEmptyUpload)
}

func TestUploadCleansUpBlobWhenMetadataFails(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, d *Document) error {
			return errors.New("insert failed")
		},
	}
	store := &fakeStore{}

	svc := NewService(nil, repo, store, nil)
	_, err := svc.Upload(context.Background(), UploadInput{
		EmployeeID: uuid.NewString(),
		Type:       "aadhar",
		Filename:   "card.png",
		Data:       []byte("png"),
	})

	assert.Error(t, err)
	assert.Len(t, store.deleted, 1)
}

func TestUploadStorageFailure(t *testing.T) {
	store := &fakeStore{
		putFn: func(ctx context.Context, key string, data []byte, contentType string) (string, error) {
			return "", errors.New("disk full")
		},
	}

	svc := NewService(nil, &fakeRepo{}, store, nil)
	_, err := svc.Upload(context.Background(), UploadInput{
		EmployeeID: uuid.NewString(),
		Type:       "resume",
		Filename:   "cv.pdf",
		Data:       []byte("pdf"),
	})

	assert.ErrorIs(t, err, documenterrors.ErrStorageWrite)
}

func TestVerifySuccessEmitsEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	docID := uuid.New()
	employeeID := uuid.New()
	hrID := uuid.New()

	var updated *Document
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*Document, error) {
			return &Document{
				ID:         docID,
				EmployeeID: employeeID,
				Type:       TypeResume,
				Status:     StatusPending,
			}, nil
		},
		updateFn: func(ctx context.Context, d *Document) error {
			updated = d
			return nil
		},
	}
	outbox := &fakeOutbox{}

	svc := NewService(db, repo, &fakeStore{}, outbox)
	resp, err := svc.Verify(context.Background(), hrID.String(), docID.String(), VerifyDocumentRequest{
		Outcome: StatusVerified,
		Note:    "looks good",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusVerified, resp.Status)
	assert.Equal(t, hrID.String(), resp.VerifiedBy)
	assert.NotNil(t, updated)
	assert.NotNil(t, updated.VerifiedAt)
	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "document.verified", outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyTwiceConflicts(t *testing.T) {
	now := time.Now()
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*Document, error) {
			return &Document{
				ID:         uuid.New(),
				EmployeeID: uuid.New(),
				Status:     StatusVerified,
				VerifiedAt: &now,
			}, nil
		},
	}

	svc := NewService(nil, repo, &fakeStore{}, nil)
	_, err := svc.Verify(context.Background(), uuid.NewString(), uuid.NewString(), VerifyDocumentRequest{
		Outcome: StatusFailed,
	})

	assert.ErrorIs(t, err, documenterrors.ErrAlreadyVerified)
}

func TestVerifyUnknownDocument(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*Document, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(nil, repo, &fakeStore{}, nil)
	_, err := svc.Verify(context.Background(), uuid.NewString(), uuid.NewString(), VerifyDocumentRequest{
		Outcome: StatusVerified,
	})

	assert.ErrorIs(t, err, documenterrors.ErrDocumentNotFound)
}

func TestDownloadOwnerAndHR(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*Document, error) {
			return &Document{
				ID:          uuid.New(),
				EmployeeID:  ownerID,
				Filename:    "cv.pdf",
				ContentType: "application/pdf",
				StorageRef:  "ref-1",
			}, nil
		},
	}
	store := &fakeStore{
		getFn: func(ctx context.Context, ref string) ([]byte, error) {
			return []byte("pdf"), nil
		},
	}

	svc := NewService(nil, repo, store, nil)

	result, err := svc.Download(context.Background(), ownerID.String(), user.RoleEmployee, uuid.NewString())
	assert.NoError(t, err)
	assert.Equal(t, "cv.pdf", result.Filename)

	_, err = svc.Download(context.Background(), uuid.NewString(), user.RoleHR, uuid.NewString())
	assert.NoError(t, err)

	_, err = svc.Download(context.Background(), uuid.NewString(), user.RoleEmployee, uuid.NewString())
	assert.ErrorIs(t, err, documenterrors.ErrNotDocumentOwner)
}
