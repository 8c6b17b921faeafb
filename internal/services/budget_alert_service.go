package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// DefaultSweepPageSize is how many budgets are loaded per page during a sweep
const DefaultSweepPageSize = 100

// SweepReport summarizes one budget alert sweep
type SweepReport struct {
	Checked int
	Alerted int
	Skipped int
	Failed  int
}

type budgetOutcome int

const (
	budgetSkipped budgetOutcome = iota
	budgetWithinLimit
	budgetAlreadyAlerted
	budgetAlerted
)

// BudgetAlertService emails users whose default account has spent at least
// 80% of their monthly budget, at most once per calendar month
type BudgetAlertService struct {
	accountRepo     repositories.AccountRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditService    AuditServiceInterface
	emailSender     EmailSenderInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	pageSize        int
	now             func() time.Time
}

func NewBudgetAlertService(
	accountRepo repositories.AccountRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditService AuditServiceInterface,
	emailSender EmailSenderInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	pageSize int,
) *BudgetAlertService {
	if pageSize <= 0 {
		pageSize = DefaultSweepPageSize
	}

	return &BudgetAlertService{
		accountRepo:     accountRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		auditService:    auditService,
		emailSender:     emailSender,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
		pageSize:        pageSize,
		now:             time.Now,
	}
}

// CheckBudgets evaluates every budget once. A failing budget does not stop
// the sweep; the failures are joined into the returned error so the caller
// can retry the run. Budgets already alerted this month are not alerted
// again, which makes a retried run safe.
func (s *BudgetAlertService) CheckBudgets(ctx context.Context) (*SweepReport, error) {
	started := s.now()
	report := &SweepReport{}
	overThreshold := 0

	var errs []error
	for offset := 0; ; offset += s.pageSize {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		budgets, err := s.budgetRepo.ListWithUsers(ctx, offset, s.pageSize)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to list budgets: %w", err))
			break
		}

		for i := range budgets {
			report.Checked++

			outcome, err := s.checkBudget(ctx, &budgets[i], started)
			if err != nil {
				report.Failed++
				errs = append(errs, fmt.Errorf("budget %s: %w", budgets[i].ID, err))
				continue
			}

			switch outcome {
			case budgetSkipped:
				report.Skipped++
			case budgetAlerted:
				report.Alerted++
				overThreshold++
			case budgetAlreadyAlerted:
				overThreshold++
			}
		}

		if len(budgets) < s.pageSize {
			break
		}
	}

	elapsed := s.now().Sub(started)
	s.metrics.RecordProcessingTime("budget_sweep", elapsed)
	s.metrics.RecordGauge("budgets_over_threshold", float64(overThreshold), nil)
	s.auditLogger.LogSweepCompleted(ctx, report.Checked, report.Alerted, report.Failed, elapsed.Milliseconds())

	return report, errors.Join(errs...)
}

// checkBudget runs evaluate, send and stamp for one budget in that order.
// The stamp is only written once the email has gone out.
func (s *BudgetAlertService) checkBudget(ctx context.Context, budget *models.Budget, now time.Time) (budgetOutcome, error) {
	if budget.Amount.LessThanOrEqual(decimal.Zero) {
		return budgetSkipped, nil
	}

	account, err := s.accountRepo.GetDefaultForUser(ctx, budget.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrDefaultAccountNotFound) {
			s.logger.DebugContext(ctx, "budget owner has no default account",
				slog.String("budget_id", budget.ID.String()),
				slog.String("user_id", budget.UserID.String()),
			)
			return budgetSkipped, nil
		}
		s.auditLogger.LogBudgetAlertFailed(ctx, budget.ID, "evaluate", err.Error())
		return budgetSkipped, err
	}

	from := models.StartOfMonth(now)
	spent, err := s.transactionRepo.SumExpenses(ctx, repositories.ExpenseQuery{
		UserID:    budget.UserID,
		AccountID: account.ID,
		From:      &from,
	})
	if err != nil {
		s.auditLogger.LogBudgetAlertFailed(ctx, budget.ID, "evaluate", err.Error())
		return budgetSkipped, err
	}

	percentageUsed := budget.PercentageUsed(spent)
	alert := budget.ShouldAlert(percentageUsed, now)
	s.auditLogger.LogBudgetEvaluated(ctx, budget.ID, account.ID, percentageUsed.StringFixed(1), alert)

	if !alert {
		if percentageUsed.GreaterThanOrEqual(decimal.NewFromInt(models.BudgetAlertThreshold)) {
			return budgetAlreadyAlerted, nil
		}
		return budgetWithinLimit, nil
	}

	// Subject-only users have nowhere to receive the alert. The budget stays
	// unstamped so it alerts once an email shows up.
	if budget.User.Email == "" {
		s.logger.InfoContext(ctx, "budget owner has no email address",
			slog.String("budget_id", budget.ID.String()),
			slog.String("user_id", budget.UserID.String()),
		)
		return budgetSkipped, nil
	}

	body, err := RenderBudgetAlert(BudgetAlertData{
		UserName:       budget.User.DisplayName(),
		AccountName:    account.Name,
		PercentageUsed: percentageUsed,
		BudgetAmount:   budget.Amount,
		TotalExpenses:  spent,
	})
	if err != nil {
		s.auditLogger.LogBudgetAlertFailed(ctx, budget.ID, "render", err.Error())
		s.metrics.IncrementCounter("budget_alert.failed", nil)
		return budgetSkipped, err
	}

	if err := s.emailSender.Send(ctx, Email{
		To:       []string{budget.User.Email},
		Subject:  BudgetAlertSubject(account.Name),
		HTMLBody: body,
	}); err != nil {
		s.auditLogger.LogBudgetAlertFailed(ctx, budget.ID, "send", err.Error())
		s.metrics.IncrementCounter("budget_alert.failed", nil)
		return budgetSkipped, err
	}

	if err := s.budgetRepo.MarkAlertSent(ctx, budget.ID, now); err != nil {
		s.auditLogger.LogBudgetAlertFailed(ctx, budget.ID, "stamp", err.Error())
		s.metrics.IncrementCounter("budget_alert.failed", nil)
		return budgetSkipped, err
	}

	s.auditLogger.LogBudgetAlertSent(ctx, budget.ID, budget.User.Email, percentageUsed.StringFixed(1))
	s.metrics.IncrementCounter("budget_alert.sent", nil)

	auditLog := newAuditLog(ctx, budget.UserID, models.AuditActionBudgetAlertSent, models.AuditResourceBudget, budget.ID,
		models.JSONBMap{
			"account_id":      account.ID.String(),
			"percentage_used": percentageUsed.StringFixed(1),
		})
	if err := s.auditService.Record(ctx, auditLog); err != nil {
		s.logger.WarnContext(ctx, "failed to record budget alert audit log",
			slog.String("budget_id", budget.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return budgetAlerted, nil
}
