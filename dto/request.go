package dto

import (
	"errors"
	"mime/multipart"
	"strings"
)

var (
	ErrNoFiles      = errors.New("at least one PDF file is required")
	ErrNotPDF       = errors.New("only .pdf files are accepted")
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

// BillReportRequest represents a multi-file report upload
type BillReportRequest struct {
	Files []*multipart.FileHeader `form:"files[]" binding:"required"`
}

// Validate performs basic validation on the request
func (r *BillReportRequest) Validate(maxFileSize int64) error {
	if len(r.Files) == 0 {
		return ErrNoFiles
	}
	for _, f := range r.Files {
		if err := ValidateUpload(f, maxFileSize); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpload checks a single uploaded bill.
func ValidateUpload(f *multipart.FileHeader, maxFileSize int64) error {
	if !IsPDFName(f.Filename) {
		return ErrNotPDF
	}
	if maxFileSize > 0 && f.Size > maxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// IsPDFName reports whether name carries the .pdf extension, in any case.
func IsPDFName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}
