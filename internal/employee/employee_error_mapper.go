package employee

import (
	"errors"

	employeeerrors "go-hris-admin/internal/employee/errors"
	restclienterrors "go-hris-admin/internal/restclient/errors"
	"go-hris-admin/internal/shared/apperror"
)

func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return employeeerrors.ErrEmployeeNotFound.WithCause(err)
	}
	if errors.Is(err, restclienterrors.ErrConflict) {
		return employeeerrors.ErrEmployeeAlreadyExists.WithCause(err)
	}
	return err
}
