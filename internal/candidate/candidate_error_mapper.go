package candidate

import (
	"errors"

	candidateerrors "go-hris-admin/internal/candidate/errors"
	"go-hris-admin/internal/shared/apperror"
)

func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return candidateerrors.ErrCandidateNotFound.WithCause(err)
	}
	return err
}
