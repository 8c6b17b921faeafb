package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"finance-ledger/internal/dto"
	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/services"
	"finance-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type ReceiptHandlerSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	service    *service_mocks.MockReceiptServiceInterface
	handler    *ReceiptHandler
	echo       *echo.Echo
	testUserID uuid.UUID
}

func (s *ReceiptHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockReceiptServiceInterface(s.ctrl)
	s.handler = NewReceiptHandler(s.service, 1024)
	s.echo = newTestEcho()
	s.testUserID = uuid.New()
}

func (s *ReceiptHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReceiptHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerSuite))
}

func (s *ReceiptHandlerSuite) uploadContext(field, contentType string, data []byte) (echo.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="receipt"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/receipts/scan", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	c := s.echo.NewContext(req, rec)
	c.Set(UserIDContextKey, s.testUserID)
	return c, rec
}

func (s *ReceiptHandlerSuite) TestScanReceipt_Success() {
	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	s.service.EXPECT().
		ScanReceipt(gomock.Any(), s.testUserID, pngHeader, "image/png").
		Return(&services.ScannedReceipt{
			Amount:       decimal.RequireFromString("18.40"),
			Date:         date,
			Description:  "Groceries",
			MerchantName: "Corner Shop",
			Category:     models.CategoryGroceries,
		}, nil)

	c, rec := s.uploadContext(ReceiptFormField, "image/png", pngHeader)

	s.Require().NoError(s.handler.ScanReceipt(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ScannedReceiptResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Corner Shop", resp.MerchantName)
	s.Equal(models.CategoryGroceries, resp.Category)
	s.True(resp.Date.Equal(date))
}

func (s *ReceiptHandlerSuite) TestScanReceipt_SniffsMissingContentType() {
	s.service.EXPECT().
		ScanReceipt(gomock.Any(), s.testUserID, pngHeader, "image/png").
		Return(&services.ScannedReceipt{}, nil)

	c, rec := s.uploadContext(ReceiptFormField, echo.MIMEOctetStream, pngHeader)

	s.Require().NoError(s.handler.ScanReceipt(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReceiptHandlerSuite) TestScanReceipt_MissingFile() {
	c, rec := s.uploadContext("image", "image/png", pngHeader)

	s.Require().NoError(s.handler.ScanReceipt(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ReceiptInvalidFile), decodeError(s.T(), rec).Code)
}

func (s *ReceiptHandlerSuite) TestScanReceipt_TooLarge() {
	c, rec := s.uploadContext(ReceiptFormField, "image/png", bytes.Repeat([]byte{0xff}, 2048))

	s.Require().NoError(s.handler.ScanReceipt(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.ReceiptInvalidFile), decodeError(s.T(), rec).Code)
}

func (s *ReceiptHandlerSuite) TestScanReceipt_BadModelOutput() {
	s.service.EXPECT().
		ScanReceipt(gomock.Any(), s.testUserID, gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInvalidReceiptResponse)

	c, rec := s.uploadContext(ReceiptFormField, "image/jpeg", pngHeader)

	s.Require().NoError(s.handler.ScanReceipt(c))
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal(string(apierrors.ReceiptInvalidResponse), decodeError(s.T(), rec).Code)
}

func (s *ReceiptHandlerSuite) TestScanReceipt_Unavailable() {
	s.service.EXPECT().
		ScanReceipt(gomock.Any(), s.testUserID, gomock.Any(), gomock.Any()).
		Return(nil, services.ErrReceiptScanUnavailable)

	c, rec := s.uploadContext(ReceiptFormField, "image/png", pngHeader)

	s.Require().NoError(s.handler.ScanReceipt(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}
