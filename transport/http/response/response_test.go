package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue/shared/constant"
	"venue/shared/failure"
	"venue/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantError  string
		wantFields map[string]string
	}{
		{
			name:      "conflict keeps message",
			err:       failure.Conflict("menu is locked"),
			wantCode:  http.StatusConflict,
			wantError: "menu is locked",
		},
		{
			name:       "validation carries fields",
			err:        failure.ValidationField("email", "email must be a valid email"),
			wantCode:   http.StatusBadRequest,
			wantError:  "validation failed",
			wantFields: map[string]string{"email": "email must be a valid email"},
		},
		{
			name:      "plain error is hidden",
			err:       errors.New("pq: connection refused"),
			wantCode:  http.StatusInternalServerError,
			wantError: constant.ResponseErrorOperationFailed,
		},
		{
			name:      "internal failure is hidden",
			err:       failure.InternalError(errors.New("pq: deadlock detected")),
			wantCode:  http.StatusInternalServerError,
			wantError: constant.ResponseErrorOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantFields, body.Fields)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"token": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"data":{"token":"abc"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec, 30)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get(constant.RequestHeaderRetryAfter))
	assert.JSONEq(t, `{"message":"`+constant.ResponseErrorRequestLimitExceeded+`"}`, rec.Body.String())
}
