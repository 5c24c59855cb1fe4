package restclienterrors

import (
	"go-hris-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrMissingID = apperror.New(
		apperror.CodeInvalidInput,
		"Record id is required for this operation",
		http.StatusBadRequest,
	)
	ErrRejectedByBackend = apperror.New(
		apperror.CodeInvalidInput,
		"The HR backend rejected the request",
		http.StatusBadRequest,
	)
	ErrConflict = apperror.New(
		apperror.CodeConflict,
		"The HR backend reported a conflicting record",
		http.StatusConflict,
	)
	ErrInvalidBaseURL = apperror.New(
		apperror.CodeInternalError,
		"Backend base URL is invalid",
		http.StatusInternalServerError,
	)
)
