package errors_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/pos-admin/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *appErrors.AppError
		wantCode   string
		wantStatus int
	}{
		{"Validation", appErrors.ValidationError("bad"), appErrors.ErrCodeValidation, http.StatusBadRequest},
		{"BadRequest", appErrors.BadRequestError("bad"), appErrors.ErrCodeBadRequest, http.StatusBadRequest},
		{"NotFound", appErrors.NotFoundError("missing"), appErrors.ErrCodeNotFound, http.StatusNotFound},
		{"Unauthorized", appErrors.UnauthorizedError("who"), appErrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Forbidden", appErrors.ForbiddenError("no"), appErrors.ErrCodeForbidden, http.StatusForbidden},
		{"Internal", appErrors.InternalError("boom"), appErrors.ErrCodeInternal, http.StatusInternalServerError},
		{"Database", appErrors.DatabaseError("db"), appErrors.ErrCodeDatabaseError, http.StatusInternalServerError},
		{"Duplicate", appErrors.DuplicateEntryError("dup"), appErrors.ErrCodeDuplicateEntry, http.StatusConflict},
		{"Conflict", appErrors.ConflictError("state"), appErrors.ErrCodeConflict, http.StatusConflict},
		{"ThirdParty", appErrors.ThirdPartyError("stripe"), appErrors.ErrCodeThirdPartyError, http.StatusBadGateway},
		{"TooManyRequests", appErrors.TooManyRequestsError("slow"), appErrors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantCode, tc.err.Code)
			assert.Equal(t, tc.wantStatus, tc.err.StatusCode)
			assert.Equal(t, tc.err.Message, tc.err.Error())
		})
	}
}

func TestWithErrorAndDetail(t *testing.T) {
	appErr := appErrors.DatabaseError("Failed to load product").
		WithError(sql.ErrNoRows).
		WithDetail("product 42")

	assert.Equal(t, "product 42", appErr.Detail)
	assert.ErrorIs(t, appErr, sql.ErrNoRows)
	assert.Equal(t, sql.ErrNoRows, errors.Unwrap(appErr))
}

func TestIsAppError(t *testing.T) {
	t.Run("Wrapped app error is found", func(t *testing.T) {
		wrapped := fmt.Errorf("service layer: %w", appErrors.NotFoundError("Sale not found"))

		appErr, ok := appErrors.IsAppError(wrapped)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Plain error is not an app error", func(t *testing.T) {
		appErr, ok := appErrors.IsAppError(errors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, appErr)
	})
}

func TestAddValidationError(t *testing.T) {
	err := appErrors.AddValidationError("copies", "must be positive")

	assert.Equal(t, appErrors.ErrCodeValidation, err.Code)
	assert.Equal(t, "Invalid field 'copies': must be positive", err.Message)
}
