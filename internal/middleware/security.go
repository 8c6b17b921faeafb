package middleware

import (
	"github.com/labstack/echo/v4"
)

// securityHeaders are set on every response. The API only serves JSON, so
// the content security policy denies everything, and balances must never
// be cached.
var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "0",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Content-Security-Policy":   "default-src 'none'; frame-ancestors 'none'",
	"Referrer-Policy":           "no-referrer",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
	"Cache-Control":             "no-store",
	"Pragma":                    "no-cache",
}

// SecurityHeaders adds the OWASP recommended headers for a JSON API
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for name, value := range securityHeaders {
				h.Set(name, value)
			}
			return next(c)
		}
	}
}
