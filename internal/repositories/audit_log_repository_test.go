package repositories

import (
	"context"
	"testing"
	"time"

	"finance-ledger/internal/database"
	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
	ctx  context.Context
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	userID := uuid.New()

	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionAccountCreated,
		Resource:   models.AuditResourceAccount,
		ResourceID: uuid.NewString(),
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
	}
	log.SetMetadata("name", "Everyday")

	s.NoError(s.repo.Create(s.ctx, log))
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateWithoutUserID() {
	log := &models.AuditLog{
		UserID:   nil, // sweep-originated
		Action:   models.AuditActionBudgetAlertSent,
		Resource: models.AuditResourceBudget,
	}

	s.NoError(s.repo.Create(s.ctx, log))
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_List_Pagination() {
	userID := uuid.New()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.Create(s.ctx, &models.AuditLog{
			UserID:    &userID,
			Action:    models.AuditActionTransactionCreated,
			Resource:  models.AuditResourceTransaction,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	other := uuid.New()
	s.Require().NoError(s.repo.Create(s.ctx, &models.AuditLog{
		UserID:   &other,
		Action:   models.AuditActionTransactionCreated,
		Resource: models.AuditResourceTransaction,
	}))

	page, total, err := s.repo.List(s.ctx, models.AuditLogFilter{UserID: userID, Limit: 2})
	s.Require().NoError(err)
	s.EqualValues(5, total)
	s.Require().Len(page, 2)
	s.True(page[0].CreatedAt.After(page[1].CreatedAt))

	last, total, err := s.repo.List(s.ctx, models.AuditLogFilter{UserID: userID, Offset: 4, Limit: 2})
	s.Require().NoError(err)
	s.EqualValues(5, total)
	s.Len(last, 1)

	past, total, err := s.repo.List(s.ctx, models.AuditLogFilter{UserID: userID, Offset: 10, Limit: 2})
	s.Require().NoError(err)
	s.EqualValues(5, total)
	s.NotNil(past)
	s.Empty(past)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_List_Filters() {
	userID := uuid.New()
	budgetID := uuid.NewString()

	for _, action := range []string{models.AuditActionBudgetUpdated, models.AuditActionBudgetAlertSent} {
		s.Require().NoError(s.repo.Create(s.ctx, &models.AuditLog{
			UserID:     &userID,
			Action:     action,
			Resource:   models.AuditResourceBudget,
			ResourceID: budgetID,
		}))
	}
	s.Require().NoError(s.repo.Create(s.ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionBudgetUpdated,
		Resource:   models.AuditResourceBudget,
		ResourceID: uuid.NewString(),
	}))

	logs, total, err := s.repo.List(s.ctx, models.AuditLogFilter{
		UserID:     userID,
		Resource:   models.AuditResourceBudget,
		ResourceID: budgetID,
		Limit:      10,
	})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	for _, log := range logs {
		s.Equal(budgetID, log.ResourceID)
	}

	sent, total, err := s.repo.List(s.ctx, models.AuditLogFilter{
		UserID: userID,
		Action: models.AuditActionBudgetAlertSent,
		Limit:  10,
	})
	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Equal(models.AuditActionBudgetAlertSent, sent[0].Action)
}
