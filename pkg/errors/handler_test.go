package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandler_Handle(t *testing.T) {
	t.Run("Should render validation errors as 400 with code and details", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), false)
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard?from=bad", nil)
		req.Header.Set("X-Request-ID", "req-1")
		rec := httptest.NewRecorder()

		err := NewValidationError("from must be a date in YYYY-MM-DD format").
			WithCode(CodeInvalidDate).
			WithDetail("parameter", "from")
		h.Handle(rec, req, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		resp := decodeErrorResponse(t, rec)
		assert.True(t, resp.Error)
		assert.Equal(t, "VALIDATION", resp.Type)
		assert.Equal(t, CodeInvalidDate, resp.Code)
		assert.Equal(t, "from", resp.Details["parameter"])
		assert.Equal(t, "req-1", resp.RequestID)
		assert.NotContains(t, resp.Details, "stack_trace")
	})

	t.Run("Should find wrapped app errors", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), false)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		wrapped := errors.Join(errors.New("outer"), NewProviderError("graph", errors.New("boom")))
		h.Handle(rec, req, wrapped)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "graph provider failed", decodeErrorResponse(t, rec).Message)
	})

	t.Run("Should hide generic error messages outside debug mode", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), false)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req, errors.New("secret detail"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, "INTERNAL", resp.Type)
		assert.Equal(t, "An internal error occurred", resp.Message)
	})

	t.Run("Should expose generic error messages and stack traces in debug mode", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), true)
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		rec := httptest.NewRecorder()
		h.Handle(rec, req, errors.New("secret detail"))
		assert.Equal(t, "secret detail", decodeErrorResponse(t, rec).Message)

		rec = httptest.NewRecorder()
		h.Handle(rec, req, NewInternalError("kaput"))
		assert.Contains(t, decodeErrorResponse(t, rec).Details, "stack_trace")
	})

	t.Run("Should ignore nil errors", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop(), false)
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
		assert.Equal(t, 0, rec.Body.Len())
	})
}

func TestErrorHandler_WithRequestID(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false).WithRequestID(func(*http.Request) string {
		return "from-context"
	})
	rec := httptest.NewRecorder()

	h.HandleStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusServiceUnavailable, "down")

	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", resp.Type)
	assert.Equal(t, "from-context", resp.RequestID)
}

func TestErrorHandler_HandleStatusTypes(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)

	tests := []struct {
		status   int
		expected ErrorType
	}{
		{http.StatusBadRequest, ErrorTypeValidation},
		{http.StatusNotFound, ErrorTypeNotFound},
		{http.StatusMethodNotAllowed, ErrorTypeMethodNotAllowed},
		{http.StatusRequestTimeout, ErrorTypeTimeout},
		{http.StatusServiceUnavailable, ErrorTypeUnavailable},
		{http.StatusInternalServerError, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.status, "message")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, string(tt.expected), decodeErrorResponse(t, rec).Type)
		})
	}
}

func TestErrorHandler_Middleware(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "panic: test panic", decodeErrorResponse(t, rec).Message)
}

func TestHelpers(t *testing.T) {
	err := NewValidationError("bad")
	assert.Same(t, err, GetAppError(fmt.Errorf("wrapped: %w", err)))
	assert.Nil(t, GetAppError(errors.New("plain")))

	cause := errors.New("root")
	wrapped := NewProviderError("topics", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, wrapped.Error(), "caused by: root")
}
