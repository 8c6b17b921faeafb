package middleware

import (
	"errors"

	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/handlers"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// UserContextKey holds the resolved *models.User
const UserContextKey = "user"

// RequireAuth verifies the identity provider's session token and resolves
// the local user it belongs to, creating that user on first sight
func RequireAuth(verifier services.IdentityVerifierInterface, userService services.UserServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			token, err := verifier.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidToken)
			}

			user, err := userService.EnsureUser(c.Request().Context(), claims)
			if err != nil {
				return handlers.SendServiceError(c, err)
			}

			c.Set(handlers.UserIDContextKey, user.ID)
			c.Set(UserContextKey, user)

			return next(c)
		}
	}
}
