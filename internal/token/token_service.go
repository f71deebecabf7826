package token

import (
	"time"

	"hivedesk/internal/config"
	tokenerrors "hivedesk/internal/token/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the validated contents of a bearer token. Validation is pure
// computation over the signed payload; it never touches the user store.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

//go:generate mockgen -source=token_service.go -destination=mock/token_service_mock.go -package=mock
type Service interface {
	Issue(subjectID, role string) (string, error)
	Validate(token string) (Claims, error)
}

type service struct {
	secret   []byte
	lifetime time.Duration
}

func NewService(cfg config.AuthConfig) Service {
	return &service{
		secret:   []byte(cfg.JWTSecret),
		lifetime: cfg.TokenLifetime,
	}
}

func (s *service) Issue(subjectID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"exp":  time.Now().Add(s.lifetime).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", tokenerrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

func (s *service) Validate(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, tokenerrors.ErrInvalidToken
		}
		return s.secret, nil
	})
	// Malformed, badly signed and expired all collapse into the same error
	// so callers cannot distinguish them.
	if err != nil || !parsed.Valid {
		return Claims{}, tokenerrors.ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, tokenerrors.ErrInvalidToken
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok || subject == "" {
		return Claims{}, tokenerrors.ErrInvalidToken
	}
	role, _ := mapClaims["role"].(string)

	claims := Claims{Subject: subject, Role: role}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
