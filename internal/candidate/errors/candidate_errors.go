package candidateerrors

import (
	"net/http"

	"go-hris-admin/internal/shared/apperror"
)

var (
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)
	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of Applied, Interview, Hired, Rejected",
		http.StatusBadRequest,
	)
	ErrUnknownDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusBadRequest,
	)
	ErrIncompleteReconciliation = apperror.New(
		apperror.CodeIncompleteReconciliation,
		"Candidate was saved but its follow-up changes did not all complete; save again to retry",
		http.StatusBadGateway,
	)
)
