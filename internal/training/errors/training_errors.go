package trainingerrors

import (
	"net/http"

	"hivedesk/internal/shared/apperror"
)

var (
	ErrModuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"training module not found",
		http.StatusNotFound,
	)
	ErrInvalidModuleID = apperror.New(
		apperror.CodeInvalidInput,
		"module id must be a valid UUID",
		http.StatusBadRequest,
	)
)
