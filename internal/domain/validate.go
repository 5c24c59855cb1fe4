package domain

import (
	"strings"
	"sync"

	"go-hris-admin/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		apperror.RegisterJSONTagNames(validate)
	})
	return validate
}

// Validate checks an entity's validate tags locally, before anything is sent
// to the backend. Failures are INVALID_INPUT AppErrors.
func Validate(record any) error {
	if err := validatorInstance().Struct(record); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

// NormalizeEmail is the key used to match people across collections.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
