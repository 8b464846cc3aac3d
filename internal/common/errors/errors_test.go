package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errors = append(l.errors, msg)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeInvalidRequest, http.StatusBadRequest},
		{ErrCodeMissingProfileFields, http.StatusBadRequest},
		{ErrCodeMessageRequired, http.StatusBadRequest},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeLLMTimeout, http.StatusGatewayTimeout},
		{ErrCodeLLMUnavailable, http.StatusBadGateway},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.code))
		})
	}
}

func TestAsStandardError_Wrapped(t *testing.T) {
	base := NewMissingProfileFieldsError([]string{"education"})
	wrapped := fmt.Errorf("decode profile: %w", base)

	stdErr, ok := AsStandardError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeMissingProfileFields, stdErr.Code)
	assert.True(t, IsClientError(wrapped))
	assert.False(t, IsClientError(fmt.Errorf("plain")))
	assert.False(t, IsClientError(NewLLMTimeoutError(nil)))
}

func TestErrorHandler_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
		expectWarn     bool
	}{
		{
			name:           "missing fields",
			err:            NewMissingProfileFieldsError([]string{"skills"}),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing required profile fields",
			expectWarn:     true,
		},
		{
			name:           "message required",
			err:            NewMessageRequiredError(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Message is required",
			expectWarn:     true,
		},
		{
			name:           "unknown error",
			err:            fmt.Errorf("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			handler := NewErrorHandler(log)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/career-advice", nil)
			handler.HandleHTTPError(rec, req, tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body.Error)

			if tt.expectWarn {
				assert.Len(t, log.warns, 1)
				assert.Empty(t, log.errors)
			} else {
				assert.Len(t, log.errors, 1)
			}
		})
	}
}
