package middleware

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-ledger/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  *ErrorHandler
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	s.handler = NewErrorHandler(s.registry, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = s.handler.Handle
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext(traceID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	return c, rec
}

func (s *ErrorHandlerTestSuite) errorCount(code string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)

	var total float64
	for _, family := range families {
		if family.GetName() != "api_errors_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" && label.GetValue() == code {
					total += metric.GetCounter().GetValue()
				}
			}
		}
	}
	return total
}

// TestHandle_EchoHTTPError tests handling of Echo HTTP errors
func (s *ErrorHandlerTestSuite) TestHandle_EchoHTTPError() {
	c, rec := s.newContext("test-trace-id")

	s.handler.Handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "test-trace-id")
	s.Contains(rec.Body.String(), "Resource not found")
	s.Contains(rec.Body.String(), "SYSTEM_008")
}

// TestHandle_GenericError tests handling of generic errors
func (s *ErrorHandlerTestSuite) TestHandle_GenericError() {
	c, rec := s.newContext("test-trace-id")

	s.handler.Handle(errors.New("generic error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "generic error")
	s.Equal(float64(1), s.errorCount("SYSTEM_001"))
}

// TestHandle_ValidationErrors tests that field errors are reported by JSON name
func (s *ErrorHandlerTestSuite) TestHandle_ValidationErrors() {
	type request struct {
		Amount string `json:"amount" validate:"required,decimal_amount"`
		Type   string `json:"type" validate:"required,transaction_type"`
	}
	err := validation.NewValidator().Validate(request{Amount: "1.999", Type: "TRANSFER"})
	s.Require().Error(err)

	c, rec := s.newContext("test-trace-id")
	s.handler.Handle(fmt.Errorf("bind: %w", err), c)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "VALIDATION_001")
	s.Contains(body, "amount")
	s.Contains(body, "at most 2 decimal places")
	s.Contains(body, "INCOME, EXPENSE")
	s.Equal(float64(1), s.errorCount("VALIDATION_001"))
}

// TestHandle_NoTraceID tests error handling without trace ID
func (s *ErrorHandlerTestSuite) TestHandle_NoTraceID() {
	c, rec := s.newContext("")

	s.handler.Handle(errors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

// TestHandle_CommittedResponse tests that handler doesn't process committed responses
func (s *ErrorHandlerTestSuite) TestHandle_CommittedResponse() {
	c, rec := s.newContext("")
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler.Handle(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
	s.Zero(s.errorCount("SYSTEM_001"))
}

// TestMapHTTPStatusToErrorCode_AllStatuses tests error code mapping
func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_002"},
		{http.StatusForbidden, "SYSTEM_007"},
		{http.StatusNotFound, "SYSTEM_008"},
		{http.StatusRequestEntityTooLarge, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("status_%d", tc.status), func() {
			c, rec := s.newContext("test-trace-id")

			s.handler.Handle(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestHandle_BoundMessagesFollowFieldKind() {
	type request struct {
		Name  string   `json:"name" validate:"min=3"`
		Tags  []string `json:"tags" validate:"max=1"`
		Limit int      `json:"limit" validate:"max=100"`
	}
	err := validation.NewValidator().Validate(request{Name: "ab", Tags: []string{"a", "b"}, Limit: 500})
	s.Require().Error(err)

	c, rec := s.newContext("test-trace-id")
	s.handler.Handle(err, c)

	body := rec.Body.String()
	s.Contains(body, "name: must be at least 3 characters long")
	s.Contains(body, "tags: must contain at most 1 items")
	s.Contains(body, "limit: must be at most 100")
}

func (s *ErrorHandlerTestSuite) TestHandle_LineBreakInName() {
	type request struct {
		Name string `json:"name" validate:"single_line"`
	}
	err := validation.NewValidator().Validate(request{Name: "Everyday\nBcc: mallory@example.com"})
	s.Require().Error(err)

	c, rec := s.newContext("test-trace-id")
	s.handler.Handle(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "name: must not contain line breaks")
}
