package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsPosted   *prometheus.CounterVec
	transactionsAmended  prometheus.Counter
	transactionsDeleted  prometheus.Counter
	transactionsSeeded   prometheus.Counter
	balanceAdjustments   *prometheus.CounterVec
	accountsCreated      prometheus.Counter
	budgetsUpdated       prometheus.Counter
	budgetAlerts         *prometheus.CounterVec
	budgetSweepDuration  prometheus.Histogram
	budgetSweepRuns      *prometheus.CounterVec
	receiptScans         *prometheus.CounterVec
	receiptScanDuration  prometheus.Histogram
	rateLimitDenied      *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
	usersProvisioned     prometheus.Counter
	budgetsOverThreshold prometheus.Gauge
}

// NewPrometheusMetrics registers the ledger metrics with reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsPosted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_posted_total",
				Help: "Total number of transactions posted",
			},
			[]string{"type"},
		),
		transactionsAmended: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_amended_total",
				Help: "Total number of transactions amended",
			},
		),
		transactionsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		transactionsSeeded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_seeded_total",
				Help: "Total number of demo transactions generated",
			},
		),
		balanceAdjustments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_balance_adjustments_total",
				Help: "Total number of account balance adjustments",
			},
			[]string{"direction"},
		),
		accountsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_accounts_created_total",
				Help: "Total number of accounts created",
			},
		),
		budgetsUpdated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_budgets_updated_total",
				Help: "Total number of budget updates",
			},
		),
		budgetAlerts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_budget_alerts_total",
				Help: "Total number of budget alert attempts",
			},
			[]string{"status"},
		),
		budgetSweepDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_budget_sweep_duration_seconds",
				Help:    "Budget alert sweep duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		budgetSweepRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_budget_sweep_runs_total",
				Help: "Budget alert sweep attempts by outcome",
			},
			[]string{"status"},
		),
		receiptScans: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_receipt_scans_total",
				Help: "Total number of receipt scans",
			},
			[]string{"status"},
		),
		receiptScanDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_receipt_scan_duration_milliseconds",
				Help:    "Receipt scan duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(50, 2, 10),
			},
		),
		rateLimitDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_rate_limit_denied_total",
				Help: "Total number of requests denied by the rate limiter",
			},
			[]string{"reason"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		usersProvisioned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_users_provisioned_total",
				Help: "Total number of local users created on first sign-in",
			},
		),
		budgetsOverThreshold: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_budgets_over_threshold",
				Help: "Budgets at or above the alert threshold in the last sweep",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction.posted":
		m.transactionsPosted.WithLabelValues(tags["type"]).Add(value)
	case "transaction.amended":
		m.transactionsAmended.Add(value)
	case "transaction.deleted":
		m.transactionsDeleted.Add(value)
	case "transaction.seeded":
		m.transactionsSeeded.Add(value)
	case "balance.adjusted":
		m.balanceAdjustments.WithLabelValues(tags["direction"]).Add(value)
	case "account.created":
		m.accountsCreated.Add(value)
	case "budget.updated":
		m.budgetsUpdated.Add(value)
	case "budget_alert.sent":
		m.budgetAlerts.WithLabelValues("sent").Add(value)
	case "budget_alert.failed":
		m.budgetAlerts.WithLabelValues("failed").Add(value)
	case "budget_sweep.run":
		m.budgetSweepRuns.WithLabelValues(tags["status"]).Add(value)
	case "receipt.scan":
		if status := tags["status"]; status != "" {
			m.receiptScans.WithLabelValues(status).Add(value)
		}
	case "rate_limit.denied":
		m.rateLimitDenied.WithLabelValues(tags["reason"]).Add(value)
	case "user.provisioned":
		m.usersProvisioned.Add(value)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "budget_sweep":
		m.budgetSweepDuration.Observe(duration.Seconds())
	case "receipt_scan":
		m.receiptScanDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "budgets_over_threshold":
		m.budgetsOverThreshold.Set(value)
	}
}
