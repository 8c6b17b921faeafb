package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var ErrUnauthorized = errors.New("unauthorized")

// UserIDContextKey holds the local user id set by the auth middleware
const UserIDContextKey = "user_id"

func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

// getIntParam reads a non-negative integer query parameter, falling back to
// def when it is missing or malformed.
func getIntParam(c echo.Context, name string, def int) int {
	value, err := strconv.Atoi(strings.TrimSpace(c.QueryParam(name)))
	if err != nil || value < 0 {
		return def
	}
	return value
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Param(name)))
}
