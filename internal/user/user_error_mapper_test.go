package user

import (
	"errors"
	"testing"

	usererrors "hivedesk/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, MapError(nil))

	assert.ErrorIs(t, MapError(gorm.ErrRecordNotFound), usererrors.ErrUserNotFound)

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"}
	assert.ErrorIs(t, MapError(pgErr), usererrors.ErrEmailAlreadyRegistered)

	textual := errors.New(`ERROR: duplicate key value violates unique constraint "uq_users_email" (SQLSTATE 23505)`)
	assert.ErrorIs(t, MapError(textual), usererrors.ErrEmailAlreadyRegistered)

	other := errors.New("connection refused")
	assert.Equal(t, other, MapError(other))
}
