package handlers

import (
	"io"
	"net/http"
	"strings"

	"finance-ledger/internal/dto"
	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// ReceiptFormField is the multipart field carrying the receipt image
const ReceiptFormField = "file"

type ReceiptHandler struct {
	receiptService services.ReceiptServiceInterface
	maxBytes       int64
}

func NewReceiptHandler(receiptService services.ReceiptServiceInterface, maxBytes int64) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		maxBytes:       maxBytes,
	}
}

// ScanReceipt reads a receipt image and returns the fields for a new expense
// @Summary Scan a receipt
// @Description Upload a receipt image as multipart field "file"; nothing is posted to the ledger
// @Tags Receipts
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt image"
// @Success 200 {object} dto.ScannedReceiptResponse "Extracted receipt"
// @Failure 400 {object} errors.ErrorResponse "RECEIPT_001 - Missing or unsupported image"
// @Failure 502 {object} errors.ErrorResponse "RECEIPT_002 - Invalid response format from Gemini"
// @Failure 503 {object} errors.ErrorResponse "RECEIPT_003 - Receipt scanning unavailable"
// @Router /receipts/scan [post]
func (h *ReceiptHandler) ScanReceipt(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	fileHeader, err := c.FormFile(ReceiptFormField)
	if err != nil {
		return SendError(c, apierrors.ReceiptInvalidFile, apierrors.WithDetails("file is required"))
	}

	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		return SendError(c, apierrors.ReceiptInvalidFile, apierrors.WithDetails(services.ErrReceiptTooLarge.Error()))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	reader := io.Reader(file)
	if h.maxBytes > 0 {
		reader = io.LimitReader(file, h.maxBytes+1)
	}

	image, err := io.ReadAll(reader)
	if err != nil {
		return SendSystemError(c, err)
	}

	mimeType := strings.TrimSpace(fileHeader.Header.Get(echo.HeaderContentType))
	if mimeType == "" || mimeType == echo.MIMEOctetStream {
		mimeType = http.DetectContentType(image)
	}

	receipt, err := h.receiptService.ScanReceipt(c.Request().Context(), userID, image, mimeType)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ScannedReceiptResponse{
		Amount:       receipt.Amount,
		Date:         receipt.Date,
		Description:  receipt.Description,
		MerchantName: receipt.MerchantName,
		Category:     receipt.Category,
		ReceiptURL:   receipt.ReceiptURL,
	})
}
