package token_test

import (
	"testing"
	"time"

	"hivedesk/internal/config"
	"hivedesk/internal/token"
	tokenerrors "hivedesk/internal/token/errors"

	"github.com/stretchr/testify/assert"
)

func newTestService(lifetime time.Duration) token.Service {
	return token.NewService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenLifetime: lifetime,
	})
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	signed, err := svc.Issue("u1", "hr")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := svc.Validate(signed)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "hr", claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	signed, err := svc.Issue("u1", "employee")
	assert.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, tokenerrors.ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(tok)
		assert.ErrorIs(t, err, tokenerrors.ErrInvalidToken)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := token.NewService(config.AuthConfig{JWTSecret: "key-one", TokenLifetime: time.Hour})
	verifier := token.NewService(config.AuthConfig{JWTSecret: "key-two", TokenLifetime: time.Hour})

	signed, err := issuer.Issue("u1", "hr")
	assert.NoError(t, err)

	// Rotating the signing key invalidates every outstanding token.
	_, err = verifier.Validate(signed)
	assert.ErrorIs(t, err, tokenerrors.ErrInvalidToken)
}
