// Copyright (c) 2026 Pressroom. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/pressroom/internal/platform/apperr"
	"github.com/taibuivan/pressroom/internal/platform/dberr"
)

/*
TestWrap_Classification maps driver errors onto HTTP-facing AppErrors.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), http.StatusNotFound},
		{"foreign_key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, http.StatusUnprocessableEntity},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, http.StatusConflict},
		{"undefined_column", &pgconn.PgError{Code: pgerrcode.UndefinedColumn}, http.StatusBadRequest},
		{"other_sqlstate", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, http.StatusInternalServerError},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(dberr.Wrap(tt.err, "test_action"))
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)
		})
	}
}

/*
TestWrap_Nil passes nil through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_KeepsAppError does not reclassify an already mapped error.
*/
func TestWrap_KeepsAppError(t *testing.T) {
	original := apperr.EntityNotFound("Magazine", 3)
	assert.Same(t, original, dberr.Wrap(original, "noop"))
}

/*
TestWrapNotFound tags missing rows with the entity and id.
*/
func TestWrapNotFound(t *testing.T) {
	err := dberr.WrapNotFound(pgx.ErrNoRows, "get_publisher", "Publisher", 42)

	var notFound *apperr.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Publisher", notFound.Entity)
	assert.Equal(t, 42, notFound.ID)

	// Non-missing errors fall back to the generic mapping
	ae := apperr.As(dberr.WrapNotFound(errors.New("boom"), "get_publisher", "Publisher", 42))
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
}
