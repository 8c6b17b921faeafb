package handlers

import (
	"net/http"

	"finance-ledger/internal/dto"
	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the signed-in user's profile and activity feed
type UserHandler struct {
	userService  services.UserServiceInterface
	auditService services.AuditServiceInterface
}

func NewUserHandler(userService services.UserServiceInterface, auditService services.AuditServiceInterface) *UserHandler {
	return &UserHandler{
		userService:  userService,
		auditService: auditService,
	}
}

// GetMe returns the local user the session token resolved to
// @Summary Current user
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse "Current user"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID,
		Name:      user.DisplayName(),
		Email:     user.Email,
		ImageURL:  user.ImageURL,
		CreatedAt: user.CreatedAt,
	})
}

// ListActivity returns the caller's audit trail, newest first
// @Summary Activity feed
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param action query string false "Only entries with this action"
// @Param resource query string false "Only entries for this resource" Enums(user, account, transaction, budget)
// @Success 200 {object} dto.AuditLogsListResponse "Audit entries"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination or filter"
// @Router /activity [get]
func (h *UserHandler) ListActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	req := dto.ListActivityRequest{
		Offset:   getIntParam(c, "offset", 0),
		Limit:    getIntParam(c, "limit", services.DefaultActivityPageSize),
		Action:   c.QueryParam("action"),
		Resource: c.QueryParam("resource"),
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.Limit == 0 {
		req.Limit = services.DefaultActivityPageSize
	}

	logs, total, err := h.auditService.GetUserActivity(c.Request().Context(), models.AuditLogFilter{
		UserID:   userID,
		Action:   req.Action,
		Resource: req.Resource,
		Offset:   req.Offset,
		Limit:    req.Limit,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	response := dto.AuditLogsListResponse{
		Logs:   make([]dto.AuditLogResponse, 0, len(logs)),
		Total:  total,
		Offset: req.Offset,
		Limit:  req.Limit,
	}
	for _, log := range logs {
		response.Logs = append(response.Logs, dto.AuditLogResponse{
			ID:         log.ID,
			Action:     log.Action,
			Resource:   log.Resource,
			ResourceID: log.ResourceID,
			IPAddress:  log.IPAddress,
			UserAgent:  log.UserAgent,
			TraceID:    log.TraceID,
			Metadata:   log.Metadata,
			CreatedAt:  log.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}
