package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apierrors "finance-ledger/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

func TestHealthCheck_Healthy(t *testing.T) {
	handler := NewHealthCheckHandler(stubHealthChecker{})
	c, rec := newAuthedContext(newTestEcho(), http.MethodGet, "/health", nil, uuid.Nil)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	handler := NewHealthCheckHandler(stubHealthChecker{err: errors.New("dial tcp: connection refused")})
	c, rec := newAuthedContext(newTestEcho(), http.MethodGet, "/health", nil, uuid.Nil)

	require.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, string(apierrors.SystemServiceUnavailable), decodeError(t, rec).Code)
}
