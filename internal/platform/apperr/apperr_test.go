// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetour/api/internal/platform/apperr"
)

/*
TestErrorTaxonomy verifies the code and status mapping of every constructor.
*/
func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", apperr.ValidationError("Validation failed"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"invalid_credentials", apperr.InvalidCredentials(), "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"unauthenticated", apperr.Unauthenticated("Invalid or missing token"), "UNAUTHENTICATED", http.StatusUnauthorized},
		{"not_found", apperr.NotFound("User"), "NOT_FOUND", http.StatusNotFound},
		{"conflict", apperr.Conflict("User already exists"), "CONFLICT", http.StatusConflict},
		{"rate_limited", apperr.RateLimited(), "RATE_LIMITED", http.StatusTooManyRequests},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

/*
TestInvalidCredentials_Indistinguishable verifies that every call produces an
identical client-visible error. Unknown email and wrong password share this
constructor, so the response can never reveal which half failed.
*/
func TestInvalidCredentials_Indistinguishable(t *testing.T) {
	unknownEmail := apperr.InvalidCredentials()
	wrongPassword := apperr.InvalidCredentials()

	assert.Equal(t, unknownEmail.Code, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Message, wrongPassword.Message)
	assert.Equal(t, unknownEmail.HTTPStatus, wrongPassword.HTTPStatus)
	assert.Equal(t, "Invalid credentials", unknownEmail.Message)
}

/*
TestNotFound_MessageShape verifies the resource-name message convention.
*/
func TestNotFound_MessageShape(t *testing.T) {
	assert.Equal(t, "User not found", apperr.NotFound("User").Message)
	assert.Equal(t, "Contact message not found", apperr.NotFound("Contact message").Message)
}

/*
TestAs_Unwrapping verifies AppError extraction through wrapped chains.
*/
func TestAs_Unwrapping(t *testing.T) {
	inner := apperr.Conflict("User already exists")
	wrapped := fmt.Errorf("registration failed: %w", inner)

	extracted := apperr.As(wrapped)
	require.NotNil(t, extracted)
	assert.Equal(t, "CONFLICT", extracted.Code)

	assert.True(t, apperr.IsAppError(wrapped))
	assert.False(t, apperr.IsAppError(errors.New("plain error")))
	assert.Nil(t, apperr.As(errors.New("plain error")))
}

/*
TestInternal_CauseHidden verifies that the underlying cause never reaches the
client-visible message.
*/
func TestInternal_CauseHidden(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.5")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Message, "10.0.0.5")
	assert.ErrorIs(t, err, cause)
}
