package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	autherrors "hivedesk/internal/auth/errors"
	"hivedesk/internal/events"
	"hivedesk/internal/messaging/kafka"
	"hivedesk/internal/shared/contextutil"
	"hivedesk/internal/token"
	"hivedesk/internal/user"
	usererrors "hivedesk/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken string, resp UserResponse, err error)

	// Register creates a new user. Only HR identities reach this path; the
	// route is gated before the service runs.
	Register(ctx context.Context, actorID string, req RegisterRequest) (UserResponse, error)

	GetMe(ctx context.Context, userID string) (*UserResponse, error)
}

type service struct {
	db     *sql.DB
	users  user.Repository
	tokens token.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, users user.Repository, tokens token.Service) Service {
	return &service{db: db, users: users, tokens: tokens, logger: zap.L().Named("auth.service")}
}

func NewServiceWithOutbox(db *sql.DB, users user.Repository, tokens token.Service, outbox kafka.OutboxRepository) Service {
	return &service{db: db, users: users, tokens: tokens, outbox: outbox, logger: zap.L().Named("auth.service")}
}

func (s *service) Login(ctx context.Context, email, password string) (string, UserResponse, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	// Deactivation revokes authentication outright.
	if !u.IsActive {
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(u.ID.String(), u.Role)
	if err != nil {
		return "", UserResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))

	return accessToken, mapToUserResponse(u), nil
}

func (s *service) Register(ctx context.Context, actorID string, req RegisterRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !user.ValidRole(role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, autherrors.ErrHashingFailed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	u := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         role,
		IsActive:     true,
	}

	qtx := s.users.WithTx(tx)
	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Warn("register persist failed", zap.String("email", req.Email), zap.Error(err))
		return UserResponse{}, user.MapError(err)
	}

	if s.outbox != nil {
		event := events.UserCreatedEvent{
			EventType:  "user.created",
			UserID:     u.ID.String(),
			Role:       u.Role,
			CreatedBy:  actorID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return UserResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "user",
			AggregateID:   u.ID.String(),
			EventType:     event.EventType,
			Topic:         events.UserCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("register outbox write failed", zap.Error(err))
			return UserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
		zap.String("created_by", actorID),
	)

	return mapToUserResponse(u), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*UserResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, user.MapError(err)
	}

	resp := mapToUserResponse(u)
	return &resp, nil
}

func mapToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
