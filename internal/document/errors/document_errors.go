package documenterrors

import (
	"net/http"

	"hivedesk/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"document not found",
		http.StatusNotFound,
	)
	ErrInvalidDocumentType = apperror.New(
		apperror.CodeInvalidInput,
		"document type must be one of aadhar, resume, other",
		http.StatusBadRequest,
	)
	ErrInvalidOutcome = apperror.New(
		apperror.CodeInvalidInput,
		"verification outcome must be verified or failed",
		http.StatusBadRequest,
	)
	ErrEmptyUpload = apperror.New(
		apperror.CodeInvalidInput,
		"uploaded file is empty",
		http.StatusBadRequest,
	)
	ErrAlreadyVerified = apperror.New(
		apperror.CodeConflict,
		"document has already been reviewed",
		http.StatusConflict,
	)
	ErrNotDocumentOwner = apperror.New(
		apperror.CodeForbidden,
		"document belongs to another employee",
		http.StatusForbidden,
	)
	ErrStorageWrite = apperror.New(
		apperror.CodeStorageFailure,
		"could not persist uploaded file",
		http.StatusInternalServerError,
	)
	ErrStorageRead = apperror.New(
		apperror.CodeStorageFailure,
		"could not read stored file",
		http.StatusInternalServerError,
	)
)
