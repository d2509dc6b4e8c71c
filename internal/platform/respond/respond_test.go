// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/internal/platform/respond"
	"github.com/taibuivan/lister/pkg/pagination"
)

func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, apperr.CapacityExceeded(10))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, apperr.CodeCapacityExceeded, body.Code)
	assert.Equal(t, "List is full (maximum 10 items)", body.Error)
}

/*
TestError_HidesInternalCause verifies raw errors never leak to the client.
*/
func TestError_HidesInternalCause(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "password")
	assert.Contains(t, recorder.Body.String(), apperr.CodeInternal)
}

func TestOK_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"count":3}}`, recorder.Body.String())
}

func TestPaginated_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, []string{"a"}, pagination.NewMeta(2, 1, 3))

	assert.JSONEq(t, `{"data":["a"],"meta":{"page":2,"limit":1,"total":3,"total_pages":3}}`, recorder.Body.String())
}

func TestMessage_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Message(recorder, "List deleted successfully")

	assert.JSONEq(t, `{"message":"List deleted successfully"}`, recorder.Body.String())
}
