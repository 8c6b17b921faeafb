package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-ledger/internal/config"
	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

var (
	ErrInvalidReceiptImage    = errors.New("receipt must be a non-empty image")
	ErrReceiptTooLarge        = errors.New("receipt image is too large")
	ErrNotAReceipt            = errors.New("image does not look like a receipt")
	ErrInvalidReceiptResponse = errors.New("Invalid response format from Gemini")
	ErrReceiptScanUnavailable = errors.New("receipt scanning is unavailable")
)

const receiptPrompt = `Analyze this receipt image and extract the following information in JSON format:
- Total amount (just the number)
- Date (in ISO format)
- Description or items purchased (brief summary)
- Merchant/store name
- Suggested category (one of: %s)

Only respond with valid JSON in this exact format:
{
  "amount": number,
  "date": "ISO date string",
  "description": "string",
  "merchantName": "string",
  "category": "string"
}

If it is not a receipt, return an empty object.`

var receiptDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// ContentGenerator is the slice of the Gemini models API the scanner uses.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGeminiContentGenerator connects to the Gemini API with apiKey
func NewGeminiContentGenerator(ctx context.Context, apiKey string) (ContentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client.Models, nil
}

// ScannedReceipt holds the fields read off a receipt, ready to prefill a
// new expense
type ScannedReceipt struct {
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	MerchantName string          `json:"merchant_name"`
	Category     string          `json:"category"`
	ReceiptURL   string          `json:"receipt_url,omitempty"`
}

type receiptPayload struct {
	Amount       *decimal.Decimal `json:"amount"`
	Date         string           `json:"date"`
	Description  string           `json:"description"`
	MerchantName string           `json:"merchantName"`
	Category     string           `json:"category"`
}

type receiptService struct {
	generator     ContentGenerator
	model         string
	timeout       time.Duration
	maxImageBytes int64
	breaker       CircuitBreakerInterface
	archiver      ReceiptArchiverInterface
	auditLogger   AuditLoggerInterface
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
	now           func() time.Time
}

// NewReceiptService builds the scanner. generator may be nil when no API key
// is configured, and archiver may be nil when receipts are not kept.
func NewReceiptService(
	generator ContentGenerator,
	cfg config.GeminiConfig,
	breaker CircuitBreakerInterface,
	archiver ReceiptArchiverInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReceiptServiceInterface {
	return &receiptService{
		generator:     generator,
		model:         cfg.Model,
		timeout:       cfg.Timeout,
		maxImageBytes: cfg.MaxImageBytes,
		breaker:       breaker,
		archiver:      archiver,
		auditLogger:   auditLogger,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *receiptService) ScanReceipt(ctx context.Context, userID uuid.UUID, image []byte, mimeType string) (*ScannedReceipt, error) {
	if len(image) == 0 || !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrInvalidReceiptImage
	}
	if s.maxImageBytes > 0 && int64(len(image)) > s.maxImageBytes {
		return nil, ErrReceiptTooLarge
	}
	if s.generator == nil || (s.breaker != nil && s.breaker.Allow() != nil) {
		return nil, ErrReceiptScanUnavailable
	}

	started := time.Now()
	receipt, err := s.scan(ctx, image, mimeType)
	elapsed := time.Since(started)
	s.metrics.RecordProcessingTime("receipt_scan", elapsed)

	if err != nil {
		status := "failed"
		if errors.Is(err, ErrNotAReceipt) {
			status = "not_a_receipt"
		}
		s.metrics.IncrementCounter("receipt.scan", map[string]string{"status": status})
		s.auditLogger.LogReceiptScanFailed(ctx, userID, err.Error(), elapsed.Milliseconds())
		return nil, err
	}

	if s.archiver != nil {
		objectName := fmt.Sprintf("receipts/%s/%s%s", userID, uuid.New(), imageExtension(mimeType))
		url, err := s.archiver.Archive(ctx, objectName, image, mimeType)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to archive receipt image",
				slog.String("user_id", userID.String()),
				slog.String("object", objectName),
				slog.String("error", err.Error()),
			)
		} else {
			receipt.ReceiptURL = url
		}
	}

	s.metrics.IncrementCounter("receipt.scan", map[string]string{"status": "success"})
	s.auditLogger.LogReceiptScanned(ctx, userID, receipt.Category, elapsed.Milliseconds())

	return receipt, nil
}

func (s *receiptService) scan(ctx context.Context, image []byte, mimeType string) (*ScannedReceipt, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     image,
					},
				},
				{Text: fmt.Sprintf(receiptPrompt, strings.Join(models.ExpenseCategories(), ","))},
			},
		},
	}

	resp, err := s.generator.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		s.recordFailure()
		return nil, fmt.Errorf("generate content: %w", err)
	}
	s.recordSuccess()

	return s.parseResponse(resp.Text())
}

func (s *receiptService) parseResponse(raw string) (*ScannedReceipt, error) {
	clean := cleanModelJSON(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return nil, ErrInvalidReceiptResponse
	}
	if len(fields) == 0 {
		return nil, ErrNotAReceipt
	}

	var payload receiptPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, ErrInvalidReceiptResponse
	}
	if payload.Amount == nil || payload.Amount.IsNegative() {
		return nil, ErrInvalidReceiptResponse
	}

	date := s.now()
	if strings.TrimSpace(payload.Date) != "" {
		parsed, ok := parseReceiptDate(payload.Date)
		if !ok {
			return nil, ErrInvalidReceiptResponse
		}
		date = parsed
	}

	return &ScannedReceipt{
		Amount:       payload.Amount.Round(2),
		Date:         date,
		Description:  strings.TrimSpace(payload.Description),
		MerchantName: strings.TrimSpace(payload.MerchantName),
		Category:     models.NormalizeExpenseCategory(payload.Category),
	}, nil
}

func (s *receiptService) recordFailure() {
	if s.breaker != nil {
		s.breaker.RecordFailure()
	}
}

func (s *receiptService) recordSuccess() {
	if s.breaker != nil {
		s.breaker.RecordSuccess()
	}
}

// cleanModelJSON strips Markdown fences and any prose around the JSON object
// a model returned
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return strings.Trim(s, "`")
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

func parseReceiptDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range receiptDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func imageExtension(mimeType string) string {
	switch mimeType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	case "image/gif":
		return ".gif"
	default:
		return ""
	}
}
