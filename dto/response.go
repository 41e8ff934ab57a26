package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// BillExtractResponse is returned for a single uploaded bill
type BillExtractResponse struct {
	ExtractionRecord
	ProcessedAt string `json:"processed_at"`
}
