package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEcho returns an Echo instance wired with the API validator
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newAuthedContext builds a request context as the auth middleware leaves it.
// A nil userID produces an unauthenticated context.
func newAuthedContext(e *echo.Echo, method, path string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	default:
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")
	if userID != uuid.Nil {
		c.Set(UserIDContextKey, userID)
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.ErrorDetail {
	t.Helper()
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestSendServiceError_MapsSentinels(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{services.ErrAccountNotFound, http.StatusNotFound, apierrors.AccountNotFound},
		{fmt.Errorf("load: %w", services.ErrTransactionNotFound), http.StatusNotFound, apierrors.TransactionNotFound},
		{services.ErrInvalidBalance, http.StatusBadRequest, apierrors.ValidationInvalidFormat},
		{services.ErrInvalidChartRange, http.StatusBadRequest, apierrors.ValidationOutOfRange},
		{services.ErrRateLimited, http.StatusTooManyRequests, apierrors.SystemRateLimitExceeded},
		{services.ErrRequestBlocked, http.StatusForbidden, apierrors.SystemRequestBlocked},
		{services.ErrReceiptScanUnavailable, http.StatusServiceUnavailable, apierrors.ReceiptScanUnavailable},
	}

	e := newTestEcho()
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			c, rec := newAuthedContext(e, http.MethodGet, "/", nil, uuid.Nil)

			require.NoError(t, SendServiceError(c, tt.err))
			assert.Equal(t, tt.status, rec.Code)

			detail := decodeError(t, rec)
			assert.Equal(t, string(tt.code), detail.Code)
			assert.Equal(t, "trace-123", detail.TraceID)
		})
	}
}

func TestSendServiceError_InvalidBalanceMessage(t *testing.T) {
	c, rec := newAuthedContext(newTestEcho(), http.MethodPost, "/", nil, uuid.Nil)

	require.NoError(t, SendServiceError(c, services.ErrInvalidBalance))
	assert.Equal(t, "Invalid balance amount", decodeError(t, rec).Message)
}

func TestSendServiceError_UnknownErrorIsHidden(t *testing.T) {
	c, rec := newAuthedContext(newTestEcho(), http.MethodGet, "/", nil, uuid.Nil)

	require.NoError(t, SendServiceError(c, fmt.Errorf("pq: relation \"accounts\" does not exist")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	detail := decodeError(t, rec)
	assert.Equal(t, string(apierrors.SystemInternalError), detail.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}
