package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	documenterrors "hivedesk/internal/document/errors"
	"hivedesk/internal/events"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/shared/contextutil"
	"hivedesk/internal/storage"
	"hivedesk/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UploadInput struct {
	EmployeeID  string
	Type        string
	Filename    string
	ContentType string
	Data        []byte
}

type DownloadResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, in UploadInput) (DocumentResponse, error)
	Verify(ctx context.Context, actorID, documentID string, req VerifyDocumentRequest) (DocumentResponse, error)
	Download(ctx context.Context, actorID, actorRole, documentID string) (DownloadResult, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error)
	ListByStatus(ctx context.Context, status string, page, limit int) ([]DocumentResponse, int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	store  storage.Store
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, store storage.Store, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, store: store, outbox: outbox, logger: zap.L().Named("document.service")}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (DocumentResponse, error) {
	docType, ok := CanonicalType(in.Type)
	if !ok {
		return DocumentResponse{}, documenterrors.ErrInvalidDocumentType
	}
	if len(in.Data) == 0 {
		return DocumentResponse{}, documenterrors.ErrEmptyUpload
	}

	employeeID, err := uuid.Parse(in.EmployeeID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrDocumentNotFound
	}

	key := storage.BuildObjectKey(in.EmployeeID, docType, in.Filename)
	ref, err := s.store.Put(ctx, key, in.Data, in.ContentType)
	if err != nil {
		s.logger.Error("blob write failed", zap.String("key", key), zap.Error(err))
		return DocumentResponse{}, documenterrors.ErrStorageWrite
	}

	d := &Document{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Type:        docType,
		Filename:    in.Filename,
		StorageRef:  ref,
		ContentType: in.ContentType,
		SizeBytes:   int64(len(in.Data)),
		Status:      StatusPending,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		// The blob is orphaned without its metadata row, remove it.
		if delErr := s.store.Delete(ctx, ref); delErr != nil {
			s.logger.Error("orphan blob cleanup failed", zap.String("ref", ref), zap.Error(delErr))
		}
		s.logger.Error("document metadata write failed", zap.Error(err))
		return DocumentResponse{}, err
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", d.ID.String()),
		zap.String("employee_id", d.EmployeeID.String()),
		zap.String("type", d.Type),
		zap.Int64("size_bytes", d.SizeBytes),
	)
	return mapToDocumentResponse(d), nil
}

func (s *service) Verify(ctx context.Context, actorID, documentID string, req VerifyDocumentRequest) (DocumentResponse, error) {
	if !ValidOutcome(req.Outcome) {
		return DocumentResponse{}, documenterrors.ErrInvalidOutcome
	}

	d, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return DocumentResponse{}, mapNotFound(err)
	}

	if d.Status != StatusPending {
		return DocumentResponse{}, documenterrors.ErrAlreadyVerified
	}

	verifier, err := uuid.Parse(actorID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrDocumentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DocumentResponse{}, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	d.Status = req.Outcome
	d.Note = req.Note
	d.VerifiedBy = &verifier
	d.VerifiedAt = &now

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, d); err != nil {
		return DocumentResponse{}, err
	}

	if s.outbox != nil {
		event := events.DocumentVerifiedEvent{
			EventType:  "document.verified",
			DocumentID: d.ID.String(),
			EmployeeID: d.EmployeeID.String(),
			Outcome:    d.Status,
			VerifiedBy: actorID,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return DocumentResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "document",
			AggregateID:   d.ID.String(),
			EventType:     event.EventType,
			Topic:         events.DocumentLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return DocumentResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return DocumentResponse{}, err
	}

	s.logger.Info("document reviewed",
		zap.String("document_id", d.ID.String()),
		zap.String("outcome", d.Status),
		zap.String("verified_by", actorID),
	)
	return mapToDocumentResponse(d), nil
}

func (s *service) Download(ctx context.Context, actorID, actorRole, documentID string) (DownloadResult, error) {
	d, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return DownloadResult{}, mapNotFound(err)
	}

	// HR can read any document; employees only their own.
	if actorRole != user.RoleHR && d.EmployeeID.String() != actorID {
		return DownloadResult{}, documenterrors.ErrNotDocumentOwner
	}

	data, err := s.store.Get(ctx, d.StorageRef)
	if err != nil {
		s.logger.Error("blob read failed", zap.String("ref", d.StorageRef), zap.Error(err))
		return DownloadResult{}, documenterrors.ErrStorageRead
	}

	return DownloadResult{
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Data:        data,
	}, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]DocumentResponse, error) {
	docs, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, mapToDocumentResponse(&docs[i]))
	}
	return resp, nil
}

func (s *service) ListByStatus(ctx context.Context, status string, page, limit int) ([]DocumentResponse, int64, error) {
	if status != "" {
		if status != StatusPending && status != StatusVerified && status != StatusFailed {
			return nil, 0, documenterrors.ErrInvalidOutcome
		}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	docs, total, err := s.repo.ListByStatus(ctx, status, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		resp = append(resp, mapToDocumentResponse(&docs[i]))
	}
	return resp, total, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return documenterrors.ErrDocumentNotFound
	}
	return err
}
