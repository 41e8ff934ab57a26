package handler

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Aashish23092/electricity-bill-extractor/dto"
	"github.com/Aashish23092/electricity-bill-extractor/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BillHandler struct {
	billService *service.BillService
	maxFileSize int64
	reportName  string
}

func NewBillHandler(billService *service.BillService, maxFileSize int64, reportName string) *BillHandler {
	return &BillHandler{
		billService: billService,
		maxFileSize: maxFileSize,
		reportName:  reportName,
	}
}

// ExtractBill handles POST /bills/extract with a single "file" upload
func (h *BillHandler) ExtractBill(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "file missing", err)
		return
	}

	if err := dto.ValidateUpload(fileHeader, h.maxFileSize); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "failed to read upload", err)
		return
	}

	record := h.billService.ProcessUpload(fileHeader.Filename, data)

	c.JSON(http.StatusOK, dto.BillExtractResponse{
		ExtractionRecord: record,
		ProcessedAt:      time.Now().Format(time.RFC3339),
	})
}

// BuildReport handles POST /bills/report with "files[]" uploads and
// responds with the XLSX report
func (h *BillHandler) BuildReport(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	request := &dto.BillReportRequest{Files: form.File["files[]"]}
	if err := request.Validate(h.maxFileSize); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	log.Printf("Building report for %d bills", len(request.Files))

	records := make([]dto.ExtractionRecord, 0, len(request.Files))
	for _, fileHeader := range request.Files {
		data, err := readUpload(fileHeader)
		if err != nil {
			log.Printf("Failed to read upload %s: %v", fileHeader.Filename, err)
		}
		records = append(records, h.billService.ProcessUpload(fileHeader.Filename, data))
	}

	content, err := service.ReportBytes(records)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to build report", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.reportName+`"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// sendError sends a structured error response
func (h *BillHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	code := "EXTRACTION_FAILED"
	if errors.Is(err, dto.ErrNotPDF) || errors.Is(err, dto.ErrNoFiles) || errors.Is(err, dto.ErrFileTooLarge) {
		code = "INVALID_UPLOAD"
	}
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    statusCode,
	})
}

// RegisterRoutes mounts the health check and bill endpoints on router
func RegisterRoutes(router *gin.Engine, billHandler *BillHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Electricity Bill Extractor",
		})
	})

	api := router.Group("/api/v1")
	{
		bills := api.Group("/bills")
		{
			bills.POST("/extract", billHandler.ExtractBill)
			bills.POST("/report", billHandler.BuildReport)
		}
	}
}
