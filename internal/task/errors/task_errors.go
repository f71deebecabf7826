package taskerrors

import (
	"net/http"

	"hivedesk/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"task not found",
		http.StatusNotFound,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"task assignment not found",
		http.StatusNotFound,
	)
	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"task is already assigned to this employee",
		http.StatusConflict,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeConflict,
		"task assignment is already completed",
		http.StatusConflict,
	)
	ErrNotAssignmentOwner = apperror.New(
		apperror.CodeForbidden,
		"task assignment belongs to another employee",
		http.StatusForbidden,
	)
	ErrInvalidTaskType = apperror.New(
		apperror.CodeInvalidInput,
		"task type must be one of read, upload, sign",
		http.StatusBadRequest,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"task id must be a valid UUID",
		http.StatusBadRequest,
	)
)
