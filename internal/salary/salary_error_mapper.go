package salary

import (
	"errors"

	restclienterrors "go-hris-admin/internal/restclient/errors"
	salaryerrors "go-hris-admin/internal/salary/errors"
	"go-hris-admin/internal/shared/apperror"
)

func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return salaryerrors.ErrSalaryNotFound.WithCause(err)
	}
	if errors.Is(err, restclienterrors.ErrConflict) {
		return salaryerrors.ErrSalaryEffectiveDateAlreadyExists.WithCause(err)
	}
	return err
}
