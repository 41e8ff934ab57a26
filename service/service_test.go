package service

import (
	"errors"
	"image"
	"strings"
)

// fakePDFProcessor serves canned pages keyed by the raw document content.
type fakePDFProcessor struct {
	pages     map[string][][]string
	images    []image.Image
	imagesErr error
	passwords []string
}

var errCorrupt = errors.New("not a PDF file")

func (f *fakePDFProcessor) ExtractPages(pdfData []byte, password string) ([][]string, error) {
	f.passwords = append(f.passwords, password)
	pages, ok := f.pages[string(pdfData)]
	if !ok {
		return nil, errCorrupt
	}
	return pages, nil
}

func (f *fakePDFProcessor) ExtractImages(pdfData []byte, password string) ([]image.Image, error) {
	if f.imagesErr != nil {
		return nil, f.imagesErr
	}
	return f.images, nil
}

type fakeOCR struct {
	texts []string
	calls int
	err   error
}

func (f *fakeOCR) ExtractTextFromImage(img image.Image) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.texts[(f.calls-1)%len(f.texts)], nil
}

func billPage(consumerNo, total string) []string {
	return strings.Split(`BILL OF SUPPLY FOR THE MONTH OF MARCH 2024
Consumer No. : `+consumerNo+`
Consumer
Name : ACME REDCROSS SOCIETY
Total Bill (Rounded) Rs. `+total, "\n")
}
