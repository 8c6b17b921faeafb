package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metricValue sums every sample of the named family, matching labels when given
func metricValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := true
			for key, value := range labels {
				found := false
				for _, pair := range metric.GetLabel() {
					if pair.GetName() == key && pair.GetValue() == value {
						found = true
					}
				}
				matched = matched && found
			}
			if !matched {
				continue
			}
			switch {
			case metric.GetCounter() != nil:
				total += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				total += metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				total += float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return total
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.IncrementCounter("transaction.posted", map[string]string{"type": "EXPENSE"})
	metrics.IncrementCounter("transaction.posted", map[string]string{"type": "EXPENSE"})
	metrics.IncrementCounter("transaction.posted", map[string]string{"type": "INCOME"})
	metrics.AddCounter("transaction.deleted", 4, nil)
	metrics.AddCounter("transaction.seeded", 17, nil)
	metrics.IncrementCounter("balance.adjusted", map[string]string{"direction": "debit"})
	metrics.IncrementCounter("budget_alert.sent", nil)
	metrics.IncrementCounter("budget_alert.failed", nil)
	metrics.IncrementCounter("receipt.scan", map[string]string{"status": "not_a_receipt"})
	metrics.IncrementCounter("rate_limit.denied", map[string]string{"reason": DenyReasonRateLimit})
	metrics.IncrementCounter("no.such.metric", nil)

	assert.Equal(t, 2.0, metricValue(t, reg, "ledger_transactions_posted_total", map[string]string{"type": "EXPENSE"}))
	assert.Equal(t, 3.0, metricValue(t, reg, "ledger_transactions_posted_total", nil))
	assert.Equal(t, 4.0, metricValue(t, reg, "ledger_transactions_deleted_total", nil))
	assert.Equal(t, 17.0, metricValue(t, reg, "ledger_transactions_seeded_total", nil))
	assert.Equal(t, 1.0, metricValue(t, reg, "ledger_balance_adjustments_total", map[string]string{"direction": "debit"}))
	assert.Equal(t, 1.0, metricValue(t, reg, "ledger_budget_alerts_total", map[string]string{"status": "sent"}))
	assert.Equal(t, 1.0, metricValue(t, reg, "ledger_budget_alerts_total", map[string]string{"status": "failed"}))
	assert.Equal(t, 1.0, metricValue(t, reg, "ledger_receipt_scans_total", map[string]string{"status": "not_a_receipt"}))
	assert.Equal(t, 1.0, metricValue(t, reg, "ledger_rate_limit_denied_total", map[string]string{"reason": "RATE_LIMIT"}))
}

func TestPrometheusMetrics_TimingsAndGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordProcessingTime("budget_sweep", 2*time.Second)
	metrics.RecordProcessingTime("receipt_scan", 800*time.Millisecond)
	metrics.RecordGauge("circuit_breaker", float64(StateOpen), map[string]string{"service": "gemini"})
	metrics.RecordGauge("budgets_over_threshold", 3, nil)

	assert.Equal(t, 1.0, metricValue(t, reg, "ledger_budget_sweep_duration_seconds", nil))
	assert.Equal(t, 1.0, metricValue(t, reg, "ledger_receipt_scan_duration_milliseconds", nil))
	assert.Equal(t, 1.0, metricValue(t, reg, "circuit_breaker_state", map[string]string{"service": "gemini"}))
	assert.Equal(t, 3.0, metricValue(t, reg, "ledger_budgets_over_threshold", nil))
}
