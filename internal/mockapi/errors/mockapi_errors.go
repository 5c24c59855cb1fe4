package mockapierrors

import (
	"net/http"

	"go-hris-admin/internal/shared/apperror"
)

var (
	ErrUnknownResource = apperror.New(
		apperror.CodeNotFound,
		"Unknown resource",
		http.StatusNotFound,
	)

	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Record not found",
		http.StatusNotFound,
	)

	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid record ID",
		http.StatusBadRequest,
	)

	ErrInvalidDocument = apperror.New(
		apperror.CodeInvalidInput,
		"Request body must be a JSON object",
		http.StatusBadRequest,
	)

	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"Record violates a unique constraint",
		http.StatusConflict,
	)
)
