package service

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/Aashish23092/electricity-bill-extractor/dto"
	"github.com/Aashish23092/electricity-bill-extractor/utils"
)

// minTextLayer is the number of non-space characters below which a bill is
// treated as scanned and handed to OCR.
const minTextLayer = 20

// OCRClient reads text from a page image.
type OCRClient interface {
	ExtractTextFromImage(img image.Image) (string, error)
}

type BillService struct {
	pdfProcessor PDFProcessor
	ocrClient    OCRClient
	password     string
}

// NewBillService wires the extractor. A nil ocrClient disables the scanned
// page fallback.
func NewBillService(pdfProcessor PDFProcessor, ocrClient OCRClient, password string) *BillService {
	return &BillService{
		pdfProcessor: pdfProcessor,
		ocrClient:    ocrClient,
		password:     password,
	}
}

// ExtractText returns the corrected text of the bill at path. Any read
// failure is logged and yields "".
func (s *BillService) ExtractText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logExtractError(path, err)
		return ""
	}

	text, err := s.ExtractTextFromBytes(data)
	if err != nil {
		logExtractError(path, err)
		return ""
	}
	return text
}

// ExtractTextFromBytes reads every page, repairs split labels and joins the
// pages into one newline-separated text.
func (s *BillService) ExtractTextFromBytes(data []byte) (string, error) {
	pages, err := s.pdfProcessor.ExtractPages(data, s.password)
	if err != nil {
		return "", err
	}

	text := utils.MergePages(pages)
	if s.ocrClient == nil || textLayerLength(text) >= minTextLayer {
		return text, nil
	}

	log.Printf("Bill has minimal text (%d chars), attempting image-based OCR", textLayerLength(text))
	ocrText, err := s.ocrText(data)
	if err != nil {
		log.Printf("OCR fallback failed: %v", err)
		return text, nil
	}
	return ocrText, nil
}

func (s *BillService) ocrText(data []byte) (string, error) {
	images, err := s.pdfProcessor.ExtractImages(data, s.password)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", fmt.Errorf("no page images found")
	}

	var pages [][]string
	for i, img := range images {
		pageText, err := s.ocrClient.ExtractTextFromImage(img)
		if err != nil {
			log.Printf("OCR failed for image %d: %v", i+1, err)
			continue
		}
		pages = append(pages, strings.Split(pageText, "\n"))
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("OCR produced no text")
	}
	return utils.MergePages(pages), nil
}

// ProcessFile extracts the record for the bill at path, tagged with its
// file name.
func (s *BillService) ProcessFile(path string) dto.ExtractionRecord {
	return utils.ParseElectricityBill(s.ExtractText(path)).WithFile(filepath.Base(path))
}

// ProcessUpload extracts the record for an uploaded bill.
func (s *BillService) ProcessUpload(name string, data []byte) dto.ExtractionRecord {
	text, err := s.ExtractTextFromBytes(data)
	if err != nil {
		logExtractError(name, err)
		text = ""
	}
	return utils.ParseElectricityBill(text).WithFile(name)
}

func logExtractError(path string, err error) {
	log.Printf("[ERROR] Could not extract from %s: %v", path, err)
}

func textLayerLength(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
