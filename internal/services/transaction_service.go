package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidCategory          = errors.New("category is required")
	ErrInvalidDate              = errors.New("transaction date is required")
	ErrInvalidRecurringInterval = errors.New("recurring transactions need a DAILY, WEEKLY, MONTHLY or YEARLY interval")
	ErrRateLimited              = errors.New("too many requests, please try again later")
	ErrRequestBlocked           = errors.New("request blocked")
)

// transactionCost is the number of rate limit tokens one post spends
const transactionCost = 1

// TransactionInput carries the caller-editable fields of a transaction, used
// both to post and to amend
type TransactionInput struct {
	AccountID         uuid.UUID
	Type              string
	Amount            decimal.Decimal
	Description       string
	Date              time.Time
	Category          string
	ReceiptURL        string
	IsRecurring       bool
	RecurringInterval *string
}

func (in TransactionInput) validate() error {
	if !models.IsValidTransactionType(in.Type) {
		return ErrInvalidTransactionType
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrInvalidCategory
	}
	if in.Date.IsZero() {
		return ErrInvalidDate
	}
	if in.IsRecurring && (in.RecurringInterval == nil || !models.IsValidRecurringInterval(*in.RecurringInterval)) {
		return ErrInvalidRecurringInterval
	}
	return nil
}

func (in TransactionInput) applyTo(t *models.Transaction) {
	t.AccountID = in.AccountID
	t.Type = in.Type
	t.Amount = in.Amount
	t.Description = strings.TrimSpace(in.Description)
	t.Date = in.Date
	t.Category = in.Category
	t.ReceiptURL = in.ReceiptURL
	t.IsRecurring = in.IsRecurring
	t.RecurringInterval = nil
	if in.IsRecurring {
		interval := *in.RecurringInterval
		t.RecurringInterval = &interval
	}
	t.ApplyRecurrence()
}

// TransactionResult is a mutated transaction and the views it made stale
type TransactionResult struct {
	Transaction *models.Transaction
	Views       models.AffectedViews
}

type BulkDeleteResult struct {
	Deleted int64
	Views   models.AffectedViews
}

type transactionService struct {
	uow             repositories.UnitOfWorkInterface
	transactionRepo repositories.TransactionRepositoryInterface
	limiter         RateLimiterInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates the ledger service. Every write goes through
// uow so the transaction rows and the balances they imply move together.
func NewTransactionService(
	uow repositories.UnitOfWorkInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	limiter RateLimiterInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		uow:             uow,
		transactionRepo: transactionRepo,
		limiter:         limiter,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

// PostTransaction records a new transaction and moves the account balance
// by its signed amount
func (s *transactionService) PostTransaction(ctx context.Context, userID uuid.UUID, input TransactionInput) (*TransactionResult, error) {
	if err := s.protect(ctx, userID); err != nil {
		return nil, err
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID: userID,
		Status: models.TransactionStatusCompleted,
	}
	input.applyTo(transaction)
	delta := transaction.SignedAmount()

	err := s.uow.Do(ctx, func(store repositories.Store) error {
		if _, err := store.Accounts().GetByIDForUser(ctx, input.AccountID, userID); err != nil {
			return err
		}

		if err := store.Transactions().Create(ctx, transaction); err != nil {
			return err
		}

		if err := store.Accounts().AdjustBalance(ctx, transaction.AccountID, delta); err != nil {
			return err
		}

		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, userID,
			models.AuditActionTransactionCreated, models.AuditResourceTransaction, transaction.ID,
			models.JSONBMap{
				"account_id": transaction.AccountID.String(),
				"type":       transaction.Type,
				"amount":     transaction.Amount.StringFixed(2),
			}))
	})
	if err != nil {
		return nil, mapLedgerError(err, "failed to post transaction")
	}

	s.auditLogger.LogTransactionPosted(ctx, transaction.ID, transaction.AccountID, transaction.Type, transaction.Amount.StringFixed(2))
	s.auditLogger.LogBalanceAdjusted(ctx, transaction.AccountID, delta.StringFixed(2), "transaction_posted")
	s.metrics.IncrementCounter("transaction.posted", map[string]string{"type": transaction.Type})
	s.recordAdjustment(delta)

	return &TransactionResult{
		Transaction: transaction,
		Views:       models.NewAffectedViews(transaction.AccountID),
	}, nil
}

// AmendTransaction replaces the editable fields of an owned transaction.
// When the account is unchanged the balance moves by the difference of the
// signed amounts; when it changes the old account is reversed and the new one
// credited in full.
func (s *transactionService) AmendTransaction(ctx context.Context, userID, transactionID uuid.UUID, input TransactionInput) (*TransactionResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var (
		updated      *models.Transaction
		oldAccountID uuid.UUID
		adjustments  = map[uuid.UUID]decimal.Decimal{}
	)

	err := s.uow.Do(ctx, func(store repositories.Store) error {
		existing, err := store.Transactions().GetByIDForUser(ctx, transactionID, userID)
		if err != nil {
			return err
		}

		oldAccountID = existing.AccountID
		if input.AccountID != oldAccountID {
			if _, err := store.Accounts().GetByIDForUser(ctx, input.AccountID, userID); err != nil {
				return err
			}
		}

		oldSigned := existing.SignedAmount()
		input.applyTo(existing)
		newSigned := existing.SignedAmount()

		if err := store.Transactions().Update(ctx, existing); err != nil {
			return err
		}

		if existing.AccountID == oldAccountID {
			if adjustment := newSigned.Sub(oldSigned); !adjustment.IsZero() {
				adjustments[oldAccountID] = adjustment
			}
		} else {
			adjustments[oldAccountID] = oldSigned.Neg()
			adjustments[existing.AccountID] = newSigned
		}

		for _, accountID := range sortedAccountIDs(adjustments) {
			if err := store.Accounts().AdjustBalance(ctx, accountID, adjustments[accountID]); err != nil {
				return err
			}
		}

		updated = existing
		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, userID,
			models.AuditActionTransactionUpdated, models.AuditResourceTransaction, existing.ID,
			models.JSONBMap{
				"account_id":          existing.AccountID.String(),
				"previous_account_id": oldAccountID.String(),
				"type":                existing.Type,
				"amount":              existing.Amount.StringFixed(2),
			}))
	})
	if err != nil {
		return nil, mapLedgerError(err, "failed to amend transaction")
	}

	s.auditLogger.LogTransactionAmended(ctx, updated.ID, oldAccountID, updated.AccountID, adjustments[updated.AccountID].StringFixed(2))
	for accountID, delta := range adjustments {
		s.auditLogger.LogBalanceAdjusted(ctx, accountID, delta.StringFixed(2), "transaction_amended")
		s.recordAdjustment(delta)
	}
	s.metrics.IncrementCounter("transaction.amended", nil)

	return &TransactionResult{
		Transaction: updated,
		Views:       models.NewAffectedViews(oldAccountID, updated.AccountID),
	}, nil
}

// BulkDeleteTransactions removes the caller's transactions among ids and
// reverses their effect on each account. Ids the caller does not own are
// skipped without error.
func (s *transactionService) BulkDeleteTransactions(ctx context.Context, userID uuid.UUID, transactionIDs []uuid.UUID) (*BulkDeleteResult, error) {
	ids := uniqueIDs(transactionIDs)
	if len(ids) == 0 {
		return &BulkDeleteResult{Views: models.NewAffectedViews()}, nil
	}

	var (
		deleted   int64
		reversals = map[uuid.UUID]decimal.Decimal{}
	)

	err := s.uow.Do(ctx, func(store repositories.Store) error {
		transactions, err := store.Transactions().GetByIDsForUser(ctx, ids, userID)
		if err != nil {
			return err
		}
		if len(transactions) == 0 {
			return nil
		}

		owned := make([]uuid.UUID, 0, len(transactions))
		for i := range transactions {
			t := &transactions[i]
			owned = append(owned, t.ID)
			reversals[t.AccountID] = reversals[t.AccountID].Sub(t.SignedAmount())
		}

		if deleted, err = store.Transactions().DeleteByIDs(ctx, owned); err != nil {
			return err
		}

		for _, accountID := range sortedAccountIDs(reversals) {
			if reversals[accountID].IsZero() {
				continue
			}
			if err := store.Accounts().AdjustBalance(ctx, accountID, reversals[accountID]); err != nil {
				return err
			}
		}

		accountIDs := make([]string, 0, len(reversals))
		for _, accountID := range sortedAccountIDs(reversals) {
			accountIDs = append(accountIDs, accountID.String())
		}
		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, userID,
			models.AuditActionTransactionsDeleted, models.AuditResourceTransaction, uuid.Nil,
			models.JSONBMap{
				"count":       deleted,
				"account_ids": accountIDs,
			}))
	})
	if err != nil {
		return nil, mapLedgerError(err, "failed to delete transactions")
	}

	accountIDs := sortedAccountIDs(reversals)
	if deleted > 0 {
		s.auditLogger.LogTransactionsDeleted(ctx, userID, int(deleted), accountIDs)
		s.metrics.AddCounter("transaction.deleted", float64(deleted), nil)
		for _, accountID := range accountIDs {
			if !reversals[accountID].IsZero() {
				s.auditLogger.LogBalanceAdjusted(ctx, accountID, reversals[accountID].StringFixed(2), "transactions_deleted")
				s.recordAdjustment(reversals[accountID])
			}
		}
	}

	return &BulkDeleteResult{
		Deleted: deleted,
		Views:   models.NewAffectedViews(accountIDs...),
	}, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(ctx, transactionID, userID)
	if err != nil {
		return nil, mapLedgerError(err, "failed to get transaction")
	}
	return transaction, nil
}

// ListTransactions returns a page of the user's transactions. The page size
// is clamped to MaxTransactionPageSize.
func (s *transactionService) ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.Limit <= 0 {
		filters.Limit = models.DefaultTransactionPageSize
	}
	if filters.Limit > models.MaxTransactionPageSize {
		filters.Limit = models.MaxTransactionPageSize
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	transactions, total, err := s.transactionRepo.GetWithFilters(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

func (s *transactionService) protect(ctx context.Context, userID uuid.UUID) error {
	if s.limiter == nil {
		return nil
	}

	subject := userID.String()
	decision := s.limiter.Protect(ctx, subject, transactionCost)
	if decision.Allowed {
		return nil
	}

	s.auditLogger.LogRateLimitDenied(ctx, subject, decision.Reason, decision.Remaining)
	s.metrics.IncrementCounter("rate_limit.denied", map[string]string{"reason": decision.Reason})

	if decision.Reason == DenyReasonRateLimit {
		return ErrRateLimited
	}
	return ErrRequestBlocked
}

func (s *transactionService) recordAdjustment(delta decimal.Decimal) {
	direction := "credit"
	if delta.IsNegative() {
		direction = "debit"
	}
	s.metrics.IncrementCounter("balance.adjusted", map[string]string{"direction": direction})
}

// mapLedgerError converts repository sentinels into service sentinels and
// wraps anything else with context
func mapLedgerError(err error, msg string) error {
	switch {
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return ErrTransactionNotFound
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// sortedAccountIDs returns the keys of m in a fixed order so balance rows are
// always locked in the same sequence
func sortedAccountIDs(m map[uuid.UUID]decimal.Decimal) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}
