// Copyright (c) 2026 SafeTour. All rights reserved.
// Author: dev@safetour.app

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetour/api/internal/platform/apperr"
	"github.com/safetour/api/internal/platform/dberr"
)

/*
TestWrap classifies the three database error families.
*/
func TestWrap(t *testing.T) {
	uniqueViolation := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "account_email_unique",
	}

	tests := []struct {
		name       string
		input      error
		wantCode   string
		wantStatus int
	}{
		{"no_rows_is_not_found", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"unique_violation_is_conflict", uniqueViolation, "CONFLICT", http.StatusConflict},
		{"wrapped_unique_violation", fmt.Errorf("insert failed: %w", uniqueViolation), "CONFLICT", http.StatusConflict},
		{"unknown_error_is_internal", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.input, "User already exists")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
		})
	}
}

/*
TestWrap_Nil verifies the nil passthrough.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "unused"))
}

/*
TestWrap_ConflictMessage verifies the caller-supplied conflict wording is used.
*/
func TestWrap_ConflictMessage(t *testing.T) {
	err := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "User already exists")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "User already exists", ae.Message)
}

/*
TestIsUniqueViolation checks SQLSTATE discrimination.
*/
func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, dberr.IsUniqueViolation(nil))
}
