package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-hris-admin/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", apperror.ErrNotFound)

		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
	})
}

func TestWithCause_StillMatchesSentinel(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := apperror.ErrBackendUnavailable.WithCause(cause)

	assert.True(t, errors.Is(err, apperror.ErrBackendUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, apperror.ErrNotFound))
}

func TestMapValidationError(t *testing.T) {
	type input struct {
		HireDate string `json:"hire_date" validate:"required"`
		Email    string `json:"email" validate:"omitempty,email"`
	}
	v := validator.New()
	apperror.RegisterJSONTagNames(v)

	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(input{}))

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Hire Date is required", appErr.Message)
		assert.Equal(t, map[string]string{"hire_date": "required"}, appErr.Details)
	})

	t.Run("invalid", func(t *testing.T) {
		err := apperror.MapValidationError(v.Struct(input{HireDate: "2024-01-01", Email: "nope"}))

		assert.EqualError(t, err, "Email is invalid")
	})

	t.Run("non validation error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("EOF"))

		assert.EqualError(t, err, "Invalid input")
	})
}
