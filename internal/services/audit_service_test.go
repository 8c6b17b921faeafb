package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
	ctx      context.Context
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateActivityType_ValidActions() {
	for _, action := range []string{
		models.AuditActionUserCreated,
		models.AuditActionAccountCreated,
		models.AuditActionTransactionCreated,
		models.AuditActionTransactionsDeleted,
		models.AuditActionBudgetAlertSent,
		models.AuditActionTransactionsSeeded,
	} {
		s.NoError(ValidateActivityType(action), action)
	}
}

func (s *AuditServiceTestSuite) TestValidateActivityType_InvalidAction() {
	s.Error(ValidateActivityType("invalid_action"))
	s.Error(ValidateActivityType(""))
}

func (s *AuditServiceTestSuite) TestRecord_ValidLog() {
	userID := uuid.New()
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionBudgetAlertSent,
		Resource:   models.AuditResourceBudget,
		ResourceID: uuid.NewString(),
	}

	s.mockRepo.EXPECT().
		Create(gomock.Any(), log).
		DoAndReturn(func(_ context.Context, l *models.AuditLog) error {
			l.ID = uuid.New()
			return nil
		}).
		Times(1)

	err := s.service.Record(s.ctx, log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
}

func (s *AuditServiceTestSuite) TestRecord_NilLog() {
	err := s.service.Record(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestRecord_InvalidActivityType() {
	userID := uuid.New()
	err := s.service.Record(s.ctx, &models.AuditLog{
		UserID:   &userID,
		Action:   "login",
		Resource: "auth",
	})
	s.Error(err)
}

func (s *AuditServiceTestSuite) TestRecord_RepositoryError() {
	userID := uuid.New()
	log := &models.AuditLog{
		UserID:   &userID,
		Action:   models.AuditActionBudgetUpdated,
		Resource: models.AuditResourceBudget,
	}

	s.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("database error")).
		Times(1)

	err := s.service.Record(s.ctx, log)
	s.Error(err)
	s.Contains(err.Error(), "failed to create audit log")
}

func (s *AuditServiceTestSuite) TestGetUserActivity() {
	userID := uuid.New()
	expected := []*models.AuditLog{
		{
			ID:        uuid.New(),
			UserID:    &userID,
			Action:    models.AuditActionTransactionCreated,
			Resource:  models.AuditResourceTransaction,
			CreatedAt: time.Now(),
		},
	}

	filter := models.AuditLogFilter{UserID: userID, Action: models.AuditActionTransactionCreated, Offset: 0, Limit: 20}
	s.mockRepo.EXPECT().
		List(gomock.Any(), filter).
		Return(expected, int64(1), nil).
		Times(1)

	logs, total, err := s.service.GetUserActivity(s.ctx, filter)
	s.NoError(err)
	s.Equal(expected, logs)
	s.EqualValues(1, total)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_ClampsPage() {
	userID := uuid.New()
	s.mockRepo.EXPECT().
		List(gomock.Any(), models.AuditLogFilter{UserID: userID, Offset: 0, Limit: DefaultActivityPageSize}).
		Return([]*models.AuditLog{}, int64(0), nil)

	_, _, err := s.service.GetUserActivity(s.ctx, models.AuditLogFilter{UserID: userID, Offset: -3, Limit: 1000})
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_UnknownAction() {
	_, _, err := s.service.GetUserActivity(s.ctx, models.AuditLogFilter{UserID: uuid.New(), Action: "password_reset"})
	s.ErrorIs(err, ErrInvalidActivityType)
}

func (s *AuditServiceTestSuite) TestGetUserActivity_NilUser() {
	_, _, err := s.service.GetUserActivity(s.ctx, models.AuditLogFilter{Limit: 20})
	s.ErrorIs(err, ErrInvalidUserID)
}

func (s *AuditServiceTestSuite) TestNewAuditLog_CarriesClientInfo() {
	userID := uuid.New()
	ctx := WithClientInfo(s.ctx, ClientInfo{IPAddress: "203.0.113.7", UserAgent: "curl/8.4"})
	ctx = WithCorrelationID(ctx, "trace-abc")

	log := newAuditLog(ctx, userID, models.AuditActionTransactionsDeleted, models.AuditResourceTransaction, uuid.Nil, nil)

	s.Equal(&userID, log.UserID)
	s.Equal("203.0.113.7", log.IPAddress)
	s.Equal("curl/8.4", log.UserAgent)
	s.Equal("trace-abc", log.TraceID)
	s.Empty(log.ResourceID)
}
