package autherrors

import (
	"net/http"

	"hivedesk/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"incorrect email or password",
		http.StatusUnauthorized,
	)
	ErrHashingFailed = apperror.New(
		apperror.CodeInternalError,
		"could not hash password",
		http.StatusInternalServerError,
	)
)
