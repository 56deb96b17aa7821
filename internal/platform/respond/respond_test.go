// Copyright (c) 2026 Pressroom. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pressroom/internal/platform/apperr"
	"github.com/taibuivan/pressroom/internal/platform/ctxutil"
	"github.com/taibuivan/pressroom/internal/platform/respond"
)

/*
TestCreated wraps data in the success envelope.
*/
func TestCreated(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Created(recorder, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":1}}`, recorder.Body.String())
}

/*
TestNoContent writes no body.
*/
func TestNoContent(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.NoContent(recorder)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, recorder.Body.Len())
}

/*
TestError_AppError keeps the status and code of a classified error.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/publishers/9", nil)

	respond.Error(recorder, request, apperr.EntityNotFound("Publisher", 9))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Equal(t, "Publisher not found with id: 9", envelope.Error)
}

/*
TestError_Unclassified hides unknown errors behind a 500.
*/
func TestError_Unclassified(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/magazines", nil)

	respond.Error(recorder, request, errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}

/*
TestError_NotFoundLoggedAtDebug records missing resources on the request logger.
*/
func TestError_NotFoundLoggedAtDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	request := httptest.NewRequest(http.MethodGet, "/magazines/4", nil)
	request = request.WithContext(ctxutil.WithLogger(request.Context(), logger))

	recorder := httptest.NewRecorder()
	respond.Error(recorder, request, apperr.EntityNotFound("Magazine", 4))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, logs.String(), `"msg":"resource_not_found"`)
	assert.Contains(t, logs.String(), "Magazine not found with id: 4")
}
