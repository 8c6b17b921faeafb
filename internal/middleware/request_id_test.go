package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const uuidPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

// run sends a request with the given X-Trace-ID and returns the id the
// handler saw together with the response header.
func (s *RequestIDTestSuite) run(incoming string) (seen, header string) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})(c)
	s.Require().NoError(err)

	return seen, rec.Header().Get(TraceIDHeader)
}

func (s *RequestIDTestSuite) TestGeneratesUUIDWhenMissing() {
	seen, header := s.run("")

	s.Regexp(uuidPattern, seen)
	s.Equal(seen, header)
}

func (s *RequestIDTestSuite) TestKeepsWellFormedIncomingID() {
	for _, id := range []string{"existing-trace-id-12345", "req_01HZX.7", strings.Repeat("a", maxTraceIDLength)} {
		seen, header := s.run(id)
		s.Equal(id, seen)
		s.Equal(id, header)
	}
}

func (s *RequestIDTestSuite) TestReplacesMalformedIncomingID() {
	for _, id := range []string{
		"has space",
		"<script>alert(1)</script>",
		"line\nbreak",
		strings.Repeat("a", maxTraceIDLength+1),
	} {
		seen, header := s.run(id)
		s.Regexp(uuidPattern, seen, id)
		s.Equal(seen, header)
	}
}

func (s *RequestIDTestSuite) TestGetTraceIDEmptyWithoutMiddleware() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	s.Empty(GetTraceID(c))
}

func (s *RequestIDTestSuite) TestPropagatesToRequestContext() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-abc")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "ledger-test/1.0")
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		ctx := c.Request().Context()
		s.Equal("trace-abc", services.CorrelationIDFromContext(ctx))

		info := services.ClientInfoFromContext(ctx)
		s.Equal("203.0.113.7", info.IPAddress)
		s.Equal("ledger-test/1.0", info.UserAgent)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
}
