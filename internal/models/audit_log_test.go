package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_SetMetadata(t *testing.T) {
	log := &AuditLog{}

	log.SetMetadata("delta", "-50.00")
	log.SetMetadata("account_count", 2)

	assert.Equal(t, JSONBMap{"delta": "-50.00", "account_count": 2}, log.Metadata)
}

func TestJSONBMap_ValueAndScan(t *testing.T) {
	value, err := JSONBMap{"ids": []string{"a", "b"}}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"ids":["a","b"]}`, value)

	empty, err := JSONBMap{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	var scanned JSONBMap
	require.NoError(t, scanned.Scan([]byte(`{"count":3}`)))
	assert.Equal(t, float64(3), scanned["count"])

	require.NoError(t, scanned.Scan(`{"account":"Everyday"}`))
	assert.Equal(t, "Everyday", scanned["account"])

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))
}

func TestAuditLog_String(t *testing.T) {
	userID := uuid.New()
	log := &AuditLog{
		UserID:     &userID,
		Action:     AuditActionTransactionCreated,
		Resource:   AuditResourceTransaction,
		ResourceID: "txn-123",
		TraceID:    "trace-9",
		CreatedAt:  time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	assert.Equal(t,
		"2024-03-01T12:00:00Z transaction_created transaction/txn-123 by "+userID.String()+" (trace trace-9)",
		log.String())

	assert.Contains(t, (&AuditLog{Action: AuditActionBudgetAlertSent}).String(), "by system")
}
