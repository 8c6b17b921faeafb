package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"finance-ledger/internal/dto"
	"finance-ledger/internal/models"
	"finance-ledger/internal/services"
	"finance-ledger/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type UserHandlerSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	userSvc    *service_mocks.MockUserServiceInterface
	auditSvc   *service_mocks.MockAuditServiceInterface
	handler    *UserHandler
	echo       *echo.Echo
	testUserID uuid.UUID
}

func (s *UserHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userSvc = service_mocks.NewMockUserServiceInterface(s.ctrl)
	s.auditSvc = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewUserHandler(s.userSvc, s.auditSvc)
	s.echo = newTestEcho()
	s.testUserID = uuid.New()
}

func (s *UserHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) TestGetMe_FallsBackToEmail() {
	email := gofakeit.Email()
	s.userSvc.EXPECT().
		GetUser(gomock.Any(), s.testUserID).
		Return(&models.User{ID: s.testUserID, Email: email, CreatedAt: time.Now()}, nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/me", nil, s.testUserID)

	s.Require().NoError(s.handler.GetMe(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.UserResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(s.testUserID, resp.ID)
	s.Equal(email, resp.Name)
}

func (s *UserHandlerSuite) TestGetMe_NotFound() {
	s.userSvc.EXPECT().
		GetUser(gomock.Any(), s.testUserID).
		Return(nil, services.ErrUserNotFound)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/me", nil, s.testUserID)

	s.Require().NoError(s.handler.GetMe(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *UserHandlerSuite) TestListActivity_DefaultPage() {
	logs := []*models.AuditLog{
		{ID: uuid.New(), Action: models.AuditActionTransactionCreated, Resource: models.AuditResourceTransaction, CreatedAt: time.Now()},
		{ID: uuid.New(), Action: models.AuditActionAccountCreated, Resource: models.AuditResourceAccount, CreatedAt: time.Now()},
	}
	s.auditSvc.EXPECT().
		GetUserActivity(gomock.Any(), models.AuditLogFilter{UserID: s.testUserID, Limit: services.DefaultActivityPageSize}).
		Return(logs, int64(2), nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/activity", nil, s.testUserID)

	s.Require().NoError(s.handler.ListActivity(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AuditLogsListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(2), resp.Total)
	s.Len(resp.Logs, 2)
	s.Equal(models.AuditActionTransactionCreated, resp.Logs[0].Action)
}

func (s *UserHandlerSuite) TestListActivity_RejectsLargeLimit() {
	c, _ := newAuthedContext(s.echo, http.MethodGet, "/activity?limit=500", nil, s.testUserID)

	s.Error(s.handler.ListActivity(c))
}

func (s *UserHandlerSuite) TestListActivity_Filters() {
	s.auditSvc.EXPECT().
		GetUserActivity(gomock.Any(), models.AuditLogFilter{
			UserID:   s.testUserID,
			Action:   models.AuditActionBudgetAlertSent,
			Resource: models.AuditResourceBudget,
			Limit:    services.DefaultActivityPageSize,
		}).
		Return([]*models.AuditLog{}, int64(0), nil)

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/activity?action=budget_alert_sent&resource=budget", nil, s.testUserID)

	s.Require().NoError(s.handler.ListActivity(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"logs":[],"total":0,"offset":0,"limit":20}`, rec.Body.String())
}

func (s *UserHandlerSuite) TestListActivity_UnknownAction() {
	s.auditSvc.EXPECT().
		GetUserActivity(gomock.Any(), gomock.Any()).
		Return(nil, int64(0), fmt.Errorf("%w: %s", services.ErrInvalidActivityType, "login"))

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/activity?action=login", nil, s.testUserID)

	s.Require().NoError(s.handler.ListActivity(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *UserHandlerSuite) TestListActivity_RejectsUnknownResource() {
	c, _ := newAuthedContext(s.echo, http.MethodGet, "/activity?resource=customer", nil, s.testUserID)

	s.Error(s.handler.ListActivity(c))
}

func (s *UserHandlerSuite) TestListActivity_StoreFailure() {
	s.auditSvc.EXPECT().
		GetUserActivity(gomock.Any(), models.AuditLogFilter{UserID: s.testUserID, Offset: 10, Limit: 5}).
		Return(nil, int64(0), errors.New("connection reset"))

	c, rec := newAuthedContext(s.echo, http.MethodGet, "/activity?offset=10&limit=5", nil, s.testUserID)

	s.Require().NoError(s.handler.ListActivity(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
