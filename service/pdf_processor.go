package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// wordGapRatio is the horizontal gap, as a fraction of font size, above
// which two text runs on a row are treated as separate words.
const wordGapRatio = 0.2

type PDFProcessor interface {
	// ExtractPages returns the text lines of every page, top to bottom.
	ExtractPages(pdfData []byte, password string) ([][]string, error)
	ExtractImages(pdfData []byte, password string) ([]image.Image, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

func (p *pdfProcessor) ExtractPages(pdfData []byte, password string) (pages [][]string, err error) {
	// ledongthuc/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	if password != "" {
		pdfData = decrypt(pdfData, password)
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, err
	}

	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageIndex, err)
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, joinRow(row.Content))
		}
		pages = append(pages, lines)
	}
	return pages, nil
}

// decrypt returns the decrypted document, or the input unchanged when
// pdfcpu cannot decrypt it (for instance because it is not encrypted).
func decrypt(pdfData []byte, password string) []byte {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
		log.Printf("PDF decrypt skipped: %v", err)
		return pdfData
	}
	return out.Bytes()
}

// joinRow renders the text runs of one row as a single line. A space goes
// between runs separated by a visible gap; runs of whitespace collapse.
func joinRow(texts []pdf.Text) string {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var b strings.Builder
	for i, t := range sorted {
		if i > 0 {
			prev := sorted[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > t.FontSize*wordGapRatio {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (p *pdfProcessor) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	tempDir, err := os.MkdirTemp("", "bill_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile, err := os.CreateTemp("", "bill-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdfData); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}
	tempFile.Close()

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
	}

	// nil selects every page
	if err := api.ExtractImagesFile(tempFile.Name(), tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []image.Image
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		imgFile, err := os.Open(filepath.Join(tempDir, file.Name()))
		if err != nil {
			continue
		}

		img, _, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	return images, nil
}
