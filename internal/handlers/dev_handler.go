package handlers

import (
	"errors"
	"net/http"
	"time"

	"finance-ledger/internal/dto"
	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// DevTokenTTL is how long a locally minted session token stays valid
const DevTokenTTL = time.Hour

// DevHandler handles development-only endpoints.
// It is only mounted outside production.
type DevHandler struct {
	seedService services.SeedServiceInterface
	verifier    services.IdentityVerifierInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(seedService services.SeedServiceInterface, verifier services.IdentityVerifierInterface) *DevHandler {
	return &DevHandler{
		seedService: seedService,
		verifier:    verifier,
	}
}

// SeedTransactions replaces an account's transactions with generated demo data
//
// Method: POST /api/v1/dev/accounts/:accountId/seed
// Authentication: Required
// Environment: Development only
//
// Success Response: 200 OK with dto.SeedResponse
//
// Error Responses:
//   - 400: Invalid account ID
//   - 401: Unauthorized
//   - 404: Account not found
//   - 500: Internal server error
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	result, err := h.seedService.SeedTransactions(c.Request().Context(), userID, accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{
		AccountID:    result.Account.ID,
		Transactions: result.Transactions,
		Balance:      result.Balance.StringFixed(2),
		Views:        result.Views,
	})
}

// IssueToken mints a session token signed with the local development key
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Success Response: 200 OK with dto.DevTokenResponse
//
// Error Responses:
//   - 400: Invalid request body
//   - 503: No development signing key configured
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	token, expiresAt, err := h.verifier.IssueDevToken(req.Subject, req.Name, req.Email, DevTokenTTL)
	if err != nil {
		if errors.Is(err, services.ErrDevTokensDisabled) {
			return SendError(c, apierrors.SystemServiceUnavailable, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DevTokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	})
}
