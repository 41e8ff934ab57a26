package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/electricity-bill-extractor/dto"
	"github.com/Aashish23092/electricity-bill-extractor/service"
)

type stubPDFProcessor struct {
	pages map[string][][]string
}

func (s stubPDFProcessor) ExtractPages(pdfData []byte, password string) ([][]string, error) {
	pages, ok := s.pages[string(pdfData)]
	if !ok {
		return nil, assert.AnError
	}
	return pages, nil
}

func (s stubPDFProcessor) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	return nil, nil
}

type upload struct {
	field, name, content string
}

func newRouter(maxFileSize int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	proc := stubPDFProcessor{pages: map[string][][]string{
		"bill": {{"Consumer", "Name : ACME REDCROSS SOCIETY", "Total Bill (Rounded) Rs. 12,345.67"}},
	}}
	billService := service.NewBillService(proc, nil, "")

	router := gin.New()
	RegisterRoutes(router, NewBillHandler(billService, maxFileSize, "electricity_bills_output.xlsx"))
	return router
}

func multipartRequest(t *testing.T, path string, uploads ...upload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := w.CreateFormFile(u.field, u.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(u.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(1024).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestExtractBill(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(1024).ServeHTTP(rec, multipartRequest(t, "/api/v1/bills/extract", upload{"file", "march.pdf", "bill"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BillExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "march.pdf", resp.File)
	assert.Len(t, resp.Fields, 15)
	assert.NotEmpty(t, resp.ProcessedAt)

	v, _ := resp.Value("Consumer Name")
	assert.Equal(t, "ACME REDCROSS SOCIETY", v)
	v, _ = resp.Value("Total Bill Amount")
	assert.Equal(t, "12,345.67", v)
}

func TestExtractBillCorruptUpload(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(1024).ServeHTTP(rec, multipartRequest(t, "/api/v1/bills/extract", upload{"file", "broken.pdf", "garbage"}))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BillExtractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	v, _ := resp.Value("Connected Load")
	assert.Equal(t, "139.00", v)
	v, _ = resp.Value("Due Date")
	assert.Equal(t, dto.MissingValue, v)
}

func TestExtractBillRejectsBadUploads(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{"missing file", func(t *testing.T) *http.Request {
			return multipartRequest(t, "/api/v1/bills/extract")
		}},
		{"not a pdf", func(t *testing.T) *http.Request {
			return multipartRequest(t, "/api/v1/bills/extract", upload{"file", "bill.docx", "bill"})
		}},
		{"too large", func(t *testing.T) *http.Request {
			return multipartRequest(t, "/api/v1/bills/extract", upload{"file", "big.pdf", string(make([]byte, 2048))})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(1024).ServeHTTP(rec, tt.req(t))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestBuildReport(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(1024).ServeHTTP(rec, multipartRequest(t, "/api/v1/bills/report",
		upload{"files[]", "march.pdf", "bill"},
		upload{"files[]", "broken.pdf", "garbage"},
	))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "electricity_bills_output.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "File", rows[0][15])
	assert.Equal(t, "march.pdf", rows[1][15])
	assert.Equal(t, "12,345.67", rows[1][12])
	assert.Equal(t, "broken.pdf", rows[2][15])
	assert.Equal(t, "MISSING", rows[2][12])
}

func TestBuildReportRequiresFiles(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(1024).ServeHTTP(rec, multipartRequest(t, "/api/v1/bills/report", upload{"other", "x.pdf", "bill"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_UPLOAD", resp.Error)
}
