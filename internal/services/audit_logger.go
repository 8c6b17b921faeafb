package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID returns a context carrying the request's trace ID so that
// audit events emitted further down can be joined with the access log.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

type clientInfoKey struct{}

// ClientInfo is the caller's network identity, recorded on audit rows.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, info)
}

func ClientInfoFromContext(ctx context.Context) ClientInfo {
	if ctx == nil {
		return ClientInfo{}
	}
	info, _ := ctx.Value(clientInfoKey{}).(ClientInfo)
	return info
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogTransactionPosted(ctx context.Context, transactionID, accountID uuid.UUID, transactionType, amount string) {
	al.logger.InfoContext(ctx, "transaction posted",
		slog.String("event_type", "transaction_posted"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("type", transactionType),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogTransactionAmended(ctx context.Context, transactionID, oldAccountID, newAccountID uuid.UUID, adjustment string) {
	attrs := []slog.Attr{
		slog.String("event_type", "transaction_amended"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("account_id", newAccountID.String()),
		slog.String("adjustment", adjustment),
	}
	if oldAccountID != newAccountID {
		attrs = append(attrs, slog.String("previous_account_id", oldAccountID.String()))
	}
	attrs = append(attrs,
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)

	al.logger.LogAttrs(ctx, slog.LevelInfo, "transaction amended", attrs...)
}

func (al *AuditLogger) LogTransactionsDeleted(ctx context.Context, userID uuid.UUID, count int, accountIDs []uuid.UUID) {
	ids := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		ids = append(ids, id.String())
	}

	al.logger.InfoContext(ctx, "transactions deleted",
		slog.String("event_type", "transactions_deleted"),
		slog.String("user_id", userID.String()),
		slog.Int("count", count),
		slog.Any("account_ids", ids),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogBalanceAdjusted(ctx context.Context, accountID uuid.UUID, delta string, reason string) {
	al.logger.InfoContext(ctx, "balance adjusted",
		slog.String("event_type", "balance_adjusted"),
		slog.String("account_id", accountID.String()),
		slog.String("delta", delta),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogDefaultAccountChanged(ctx context.Context, userID, accountID uuid.UUID) {
	al.logger.InfoContext(ctx, "default account changed",
		slog.String("event_type", "default_account_changed"),
		slog.String("user_id", userID.String()),
		slog.String("account_id", accountID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogBudgetEvaluated(ctx context.Context, budgetID, accountID uuid.UUID, percentageUsed string, alert bool) {
	al.logger.DebugContext(ctx, "budget evaluated",
		slog.String("event_type", "budget_evaluated"),
		slog.String("budget_id", budgetID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("percentage_used", percentageUsed),
		slog.Bool("alert", alert),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogBudgetAlertSent(ctx context.Context, budgetID uuid.UUID, recipient string, percentageUsed string) {
	al.logger.InfoContext(ctx, "budget alert sent",
		slog.String("event_type", "budget_alert_sent"),
		slog.String("budget_id", budgetID.String()),
		slog.String("recipient", recipient),
		slog.String("percentage_used", percentageUsed),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogBudgetAlertFailed(ctx context.Context, budgetID uuid.UUID, stage string, errorMsg string) {
	al.logger.WarnContext(ctx, "budget alert failed",
		slog.String("event_type", "budget_alert_failed"),
		slog.String("budget_id", budgetID.String()),
		slog.String("stage", stage),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogRateLimitDenied(ctx context.Context, subject, reason string, remaining int) {
	al.logger.WarnContext(ctx, "rate limit denied",
		slog.String("event_type", "rate_limit_denied"),
		slog.String("subject", subject),
		slog.String("reason", reason),
		slog.Int("remaining", remaining),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogReceiptScanned(ctx context.Context, userID uuid.UUID, category string, durationMs int64) {
	al.logger.InfoContext(ctx, "receipt scanned",
		slog.String("event_type", "receipt_scanned"),
		slog.String("user_id", userID.String()),
		slog.String("category", category),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogReceiptScanFailed(ctx context.Context, userID uuid.UUID, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "receipt scan failed",
		slog.String("event_type", "receipt_scan_failed"),
		slog.String("user_id", userID.String()),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogSweepCompleted(ctx context.Context, checked, alerted, failed int, durationMs int64) {
	level := slog.LevelInfo
	if failed > 0 {
		level = slog.LevelWarn
	}

	al.logger.LogAttrs(ctx, level, "budget sweep completed",
		slog.String("event_type", "budget_sweep_completed"),
		slog.Int("checked", checked),
		slog.Int("alerted", alerted),
		slog.Int("failed", failed),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationKey{}).(string); ok {
		return correlationID
	}

	return ""
}
