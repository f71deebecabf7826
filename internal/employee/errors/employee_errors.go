package employeeerrors

import (
	"net/http"

	"hivedesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"employee id must be a valid UUID",
		http.StatusBadRequest,
	)
	ErrNothingToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"no updatable fields were provided",
		http.StatusBadRequest,
	)
)
