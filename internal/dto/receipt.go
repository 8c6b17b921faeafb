package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScannedReceiptResponse is what the model read off a receipt image, ready
// to prefill a new expense
type ScannedReceiptResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	MerchantName string          `json:"merchantName"`
	Category     string          `json:"category"`
	ReceiptURL   string          `json:"receiptUrl,omitempty"`
}
